package sqlite

import (
	"context"

	"github.com/aussiebroadwan/todolist/internal/todo/domain"
)

const todoColumns = `id, user_id, title, description, date, priority, status, completed, created_at, updated_at`

const newestFirst = ` ORDER BY created_at DESC, id DESC`

type todosRepo struct {
	db dbtx
}

func scanTodo(row rowScanner) (domain.Todo, error) {
	var (
		t        domain.Todo
		priority string
		status   string
	)
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&t.Description,
		&t.Date,
		&priority,
		&status,
		&t.Completed,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	t.Priority = domain.Priority(priority)
	t.Status = domain.Status(status)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func (r *todosRepo) list(ctx context.Context, where string, args ...any) ([]domain.Todo, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+todoColumns+` FROM todos WHERE `+where+newestFirst, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]domain.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *todosRepo) count(ctx context.Context, where string, args ...any) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM todos WHERE `+where, args...).Scan(&n)
	return n, err
}

func (r *todosRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Todo, error) {
	return r.list(ctx, `user_id = ?`, userID)
}

func (r *todosRepo) FindByIDAndUser(ctx context.Context, id, userID int64) (domain.Todo, error) {
	// Writers already hold the database lock under BEGIN IMMEDIATE.
	return scanTodo(r.db.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = ? AND user_id = ?`, id, userID))
}

func (r *todosRepo) FindByUserAndCompleted(ctx context.Context, userID int64, completed bool) ([]domain.Todo, error) {
	return r.list(ctx, `user_id = ? AND completed = ?`, userID, completed)
}

func (r *todosRepo) FindByUserAndStatus(ctx context.Context, userID int64, status domain.Status) ([]domain.Todo, error) {
	return r.list(ctx, `user_id = ? AND status = ?`, userID, string(status))
}

func (r *todosRepo) FindByUserAndPriority(ctx context.Context, userID int64, priority domain.Priority) ([]domain.Todo, error) {
	return r.list(ctx, `user_id = ? AND priority = ?`, userID, string(priority))
}

func (r *todosRepo) SearchByUser(ctx context.Context, userID int64, term string) ([]domain.Todo, error) {
	return r.list(ctx,
		`user_id = ?1 AND (instr(`+foldFunc+`(title), `+foldFunc+`(?2)) > 0 OR instr(`+foldFunc+`(description), `+foldFunc+`(?2)) > 0)`,
		userID, term)
}

func (r *todosRepo) CountByUser(ctx context.Context, userID int64) (int64, error) {
	return r.count(ctx, `user_id = ?`, userID)
}

func (r *todosRepo) CountByUserAndStatus(ctx context.Context, userID int64, status domain.Status) (int64, error) {
	return r.count(ctx, `user_id = ? AND status = ?`, userID, string(status))
}

func (r *todosRepo) CountByUserAndCompleted(ctx context.Context, userID int64, completed bool) (int64, error) {
	return r.count(ctx, `user_id = ? AND completed = ?`, userID, completed)
}

func (r *todosRepo) SaveTodo(ctx context.Context, t domain.Todo) (domain.Todo, error) {
	ts := now()
	t.UpdatedAt = ts

	if t.ID == 0 {
		if t.CreatedAt.IsZero() {
			t.CreatedAt = ts
		}
		res, err := r.db.ExecContext(ctx, `
			INSERT INTO todos (user_id, title, description, date, priority, status, completed, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.UserID, t.Title, t.Description, t.Date, string(t.Priority), string(t.Status), t.Completed,
			t.CreatedAt, t.UpdatedAt,
		)
		if err != nil {
			return domain.Todo{}, err
		}
		if t.ID, err = res.LastInsertId(); err != nil {
			return domain.Todo{}, err
		}
		return t, nil
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE todos
		SET title = ?, description = ?, date = ?, priority = ?, status = ?, completed = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		t.Title, t.Description, t.Date, string(t.Priority), string(t.Status), t.Completed, t.UpdatedAt,
		t.ID, t.UserID,
	)
	if err != nil {
		return domain.Todo{}, err
	}
	if err := checkAffected(res); err != nil {
		return domain.Todo{}, err
	}
	return r.FindByIDAndUser(ctx, t.ID, t.UserID)
}

func (r *todosRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *todosRepo) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
