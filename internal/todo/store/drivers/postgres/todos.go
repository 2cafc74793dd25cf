package postgres

import (
	"context"

	"github.com/aussiebroadwan/todolist/internal/todo/domain"
)

const todoColumns = `id, user_id, title, description, date, priority, status, completed, created_at, updated_at`

const newestFirst = ` ORDER BY created_at DESC, id DESC`

type todosRepo struct {
	db        dbtx
	forUpdate bool
}

func scanTodo(row rowScanner) (domain.Todo, error) {
	var (
		t        domain.Todo
		priority string
		status   string
	)
	if err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Date,
		&priority, &status, &t.Completed, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
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
	return r.list(ctx, `user_id = $1`, userID)
}

func (r *todosRepo) FindByIDAndUser(ctx context.Context, id, userID int64) (domain.Todo, error) {
	q := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1 AND user_id = $2`
	if r.forUpdate {
		q += ` FOR UPDATE`
	}
	return scanTodo(r.db.QueryRowContext(ctx, q, id, userID))
}

func (r *todosRepo) FindByUserAndCompleted(ctx context.Context, userID int64, completed bool) ([]domain.Todo, error) {
	return r.list(ctx, `user_id = $1 AND completed = $2`, userID, completed)
}

func (r *todosRepo) FindByUserAndStatus(ctx context.Context, userID int64, status domain.Status) ([]domain.Todo, error) {
	return r.list(ctx, `user_id = $1 AND status = $2`, userID, string(status))
}

func (r *todosRepo) FindByUserAndPriority(ctx context.Context, userID int64, priority domain.Priority) ([]domain.Todo, error) {
	return r.list(ctx, `user_id = $1 AND priority = $2`, userID, string(priority))
}

func (r *todosRepo) SearchByUser(ctx context.Context, userID int64, term string) ([]domain.Todo, error) {
	return r.list(ctx,
		`user_id = $1 AND (strpos(lower(title), lower($2)) > 0 OR strpos(lower(description), lower($2)) > 0)`,
		userID, term)
}

func (r *todosRepo) CountByUser(ctx context.Context, userID int64) (int64, error) {
	return r.count(ctx, `user_id = $1`, userID)
}

func (r *todosRepo) CountByUserAndStatus(ctx context.Context, userID int64, status domain.Status) (int64, error) {
	return r.count(ctx, `user_id = $1 AND status = $2`, userID, string(status))
}

func (r *todosRepo) CountByUserAndCompleted(ctx context.Context, userID int64, completed bool) (int64, error) {
	return r.count(ctx, `user_id = $1 AND completed = $2`, userID, completed)
}

func (r *todosRepo) SaveTodo(ctx context.Context, t domain.Todo) (domain.Todo, error) {
	ts := now()
	t.UpdatedAt = ts

	if t.ID == 0 {
		if t.CreatedAt.IsZero() {
			t.CreatedAt = ts
		}
		err := r.db.QueryRowContext(ctx, `
			INSERT INTO todos (user_id, title, description, date, priority, status, completed, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id`,
			t.UserID, t.Title, t.Description, t.Date, string(t.Priority), string(t.Status), t.Completed,
			t.CreatedAt, t.UpdatedAt,
		).Scan(&t.ID)
		if err != nil {
			return domain.Todo{}, err
		}
		return t, nil
	}

	return scanTodo(r.db.QueryRowContext(ctx, `
		UPDATE todos
		SET title = $1, description = $2, date = $3, priority = $4, status = $5, completed = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9
		RETURNING `+todoColumns,
		t.Title, t.Description, t.Date, string(t.Priority), string(t.Status), t.Completed, t.UpdatedAt,
		t.ID, t.UserID,
	))
}

func (r *todosRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *todosRepo) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
