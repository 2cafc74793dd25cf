package http

import (
	"github.com/aussiebroadwan/todolist/internal/todo/domain"
	"github.com/aussiebroadwan/todolist/internal/todo/service"
	"github.com/aussiebroadwan/todolist/pkg/todosdk"
)

func toUser(u domain.User) *todosdk.User {
	return &todosdk.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		IsActive:  u.Active,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toTodo(t domain.Todo) todosdk.Todo {
	return todosdk.Todo{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Date:        t.Date,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
		UserID:      t.UserID,
	}
}

func toTodos(ts []domain.Todo) []todosdk.Todo {
	out := make([]todosdk.Todo, len(ts))
	for i, t := range ts {
		out[i] = toTodo(t)
	}
	return out
}

func toStats(s service.TodoStats) *todosdk.TodoStats {
	byStatus := make(map[string]int64, len(s.ByStatus))
	for st, n := range s.ByStatus {
		byStatus[string(st)] = n
	}
	return &todosdk.TodoStats{
		Total:     s.Total,
		Completed: s.Completed,
		Pending:   s.Pending,
		ByStatus:  byStatus,
	}
}

func toTodoInput(req todosdk.TodoRequest) service.TodoInput {
	return service.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Priority:    req.Priority,
		Status:      req.Status,
		Completed:   req.Completed,
	}
}
