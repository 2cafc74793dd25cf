package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/aussiebroadwan/todolist/internal/todo/domain"
	"github.com/aussiebroadwan/todolist/internal/todo/store"
	"github.com/aussiebroadwan/todolist/pkg/slogx"
)

// TodoInput carries the writable fields of a todo. Nil pointers mean the
// field was absent from the request.
type TodoInput struct {
	Title       string
	Description string
	Date        string
	Priority    *string
	Status      *string
	Completed   *bool
}

// TodoFilter selects a subset of a user's todos. At most one criterion is
// applied, in the order Query, Status, Priority, Completed.
type TodoFilter struct {
	Query     string
	Status    string
	Priority  string
	Completed *bool
}

type TodoStats struct {
	Total     int64
	Completed int64
	Pending   int64
	ByStatus  map[domain.Status]int64
}

type TodoService struct {
	Store store.Store
}

// List returns the user's todos newest first.
func (s *TodoService) List(ctx context.Context, userID int64) ([]domain.Todo, error) {
	return s.Store.Todos().ListByUser(ctx, userID)
}

// Filter applies the first non-empty criterion of f, or lists everything.
func (s *TodoService) Filter(ctx context.Context, userID int64, f TodoFilter) ([]domain.Todo, error) {
	switch {
	case f.Query != "":
		return s.Search(ctx, userID, f.Query)
	case f.Status != "":
		st, err := domain.ParseStatus(f.Status)
		if err != nil {
			return nil, err
		}
		return s.FindByStatus(ctx, userID, st)
	case f.Priority != "":
		p, err := domain.ParsePriority(f.Priority)
		if err != nil {
			return nil, err
		}
		return s.FindByPriority(ctx, userID, p)
	case f.Completed != nil:
		return s.FindByCompleted(ctx, userID, *f.Completed)
	default:
		return s.List(ctx, userID)
	}
}

func (s *TodoService) FindByStatus(ctx context.Context, userID int64, st domain.Status) ([]domain.Todo, error) {
	return s.Store.Todos().FindByUserAndStatus(ctx, userID, st)
}

func (s *TodoService) FindByPriority(ctx context.Context, userID int64, p domain.Priority) ([]domain.Todo, error) {
	return s.Store.Todos().FindByUserAndPriority(ctx, userID, p)
}

func (s *TodoService) FindByCompleted(ctx context.Context, userID int64, completed bool) ([]domain.Todo, error) {
	return s.Store.Todos().FindByUserAndCompleted(ctx, userID, completed)
}

func (s *TodoService) Search(ctx context.Context, userID int64, term string) ([]domain.Todo, error) {
	return s.Store.Todos().SearchByUser(ctx, userID, term)
}

func (s *TodoService) CountByStatus(ctx context.Context, userID int64, st domain.Status) (int64, error) {
	return s.Store.Todos().CountByUserAndStatus(ctx, userID, st)
}

func (s *TodoService) CountByCompleted(ctx context.Context, userID int64, completed bool) (int64, error) {
	return s.Store.Todos().CountByUserAndCompleted(ctx, userID, completed)
}

// Stats summarises the user's todos.
func (s *TodoService) Stats(ctx context.Context, userID int64) (TodoStats, error) {
	stats := TodoStats{ByStatus: make(map[domain.Status]int64, len(domain.Statuses))}

	var err error
	if stats.Total, err = s.Store.Todos().CountByUser(ctx, userID); err != nil {
		return TodoStats{}, err
	}
	if stats.Completed, err = s.CountByCompleted(ctx, userID, true); err != nil {
		return TodoStats{}, err
	}
	if stats.Pending, err = s.CountByCompleted(ctx, userID, false); err != nil {
		return TodoStats{}, err
	}
	for _, st := range domain.Statuses {
		n, err := s.CountByStatus(ctx, userID, st)
		if err != nil {
			return TodoStats{}, err
		}
		stats.ByStatus[st] = n
	}
	return stats, nil
}

// Get returns an owned todo or ErrTodoNotFound.
func (s *TodoService) Get(ctx context.Context, id, userID int64) (domain.Todo, error) {
	t, err := s.Store.Todos().FindByIDAndUser(ctx, id, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Todo{}, ErrTodoNotFound
	}
	return t, err
}

// Create stores a new todo owned by userID. Priority defaults to MEDIUM and
// status to PENDING. A given status decides completed; otherwise a given
// completed flag is kept as sent.
func (s *TodoService) Create(ctx context.Context, userID int64, in TodoInput) (domain.Todo, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	if err := validateTodo(in); err != nil {
		return domain.Todo{}, err
	}

	t := domain.Todo{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Priority:    domain.PriorityMedium,
		Status:      domain.StatusPending,
	}

	// 2. Resolve enums and the completed flag
	if in.Priority != nil {
		p, err := domain.ParsePriority(*in.Priority)
		if err != nil {
			return domain.Todo{}, err
		}
		t.Priority = p
	}
	switch {
	case in.Status != nil:
		st, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return domain.Todo{}, err
		}
		t.ApplyStatus(st)
	case in.Completed != nil:
		t.Completed = *in.Completed
	}

	// 3. Persist
	saved, err := s.Store.Todos().SaveTodo(ctx, t)
	if err != nil {
		log.Error("failed to create todo", slog.Int64("user_id", userID), slog.Any("error", err))
		return domain.Todo{}, err
	}

	log.Info("todo created", slog.Int64("user_id", userID), slog.Int64("todo_id", saved.ID))
	return saved, nil
}

// Update replaces title, description, date and completed on an owned todo.
// An absent completed flag means false. A given status overrides completed.
func (s *TodoService) Update(ctx context.Context, id, userID int64, in TodoInput) (domain.Todo, error) {
	log := slogx.FromContext(ctx)

	if err := validateTodo(in); err != nil {
		return domain.Todo{}, err
	}

	var priority *domain.Priority
	if in.Priority != nil {
		p, err := domain.ParsePriority(*in.Priority)
		if err != nil {
			return domain.Todo{}, err
		}
		priority = &p
	}
	var status *domain.Status
	if in.Status != nil {
		st, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return domain.Todo{}, err
		}
		status = &st
	}

	var updated domain.Todo
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.Todos().FindByIDAndUser(ctx, id, userID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrTodoNotFound
		}
		if err != nil {
			return err
		}

		t.Title = in.Title
		t.Description = in.Description
		t.Date = in.Date
		t.Completed = in.Completed != nil && *in.Completed
		if priority != nil {
			t.Priority = *priority
		}
		if status != nil {
			t.ApplyStatus(*status)
		}

		updated, err = tx.Todos().SaveTodo(ctx, t)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrTodoNotFound) {
			log.Error("failed to update todo", slog.Int64("todo_id", id), slog.Any("error", err))
		}
		return domain.Todo{}, err
	}

	log.Info("todo updated", slog.Int64("user_id", userID), slog.Int64("todo_id", id))
	return updated, nil
}

// Toggle flips completed on an owned todo. Status is left untouched.
func (s *TodoService) Toggle(ctx context.Context, id, userID int64) (domain.Todo, error) {
	var toggled domain.Todo
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.Todos().FindByIDAndUser(ctx, id, userID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrTodoNotFound
		}
		if err != nil {
			return err
		}

		t.Completed = !t.Completed
		toggled, err = tx.Todos().SaveTodo(ctx, t)
		return err
	})
	if err != nil {
		return domain.Todo{}, err
	}

	slogx.FromContext(ctx).Debug("todo toggled",
		slog.Int64("todo_id", id),
		slog.Bool("completed", toggled.Completed),
	)
	return toggled, nil
}

// Delete removes an owned todo.
func (s *TodoService) Delete(ctx context.Context, id, userID int64) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Todos().FindByIDAndUser(ctx, id, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTodoNotFound
			}
			return err
		}
		return tx.Todos().DeleteByID(ctx, id)
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("todo deleted", slog.Int64("user_id", userID), slog.Int64("todo_id", id))
	return nil
}

func validateTodo(in TodoInput) error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return invalid("title is required")
	case utf8.RuneCountInString(in.Title) > domain.MaxTitleLength:
		return invalid("title must be at most %d characters", domain.MaxTitleLength)
	case utf8.RuneCountInString(in.Description) > domain.MaxDescriptionLength:
		return invalid("description must be at most %d characters", domain.MaxDescriptionLength)
	}
	return nil
}
