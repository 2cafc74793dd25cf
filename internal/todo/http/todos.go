package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/todolist/internal/todo/service"
	"github.com/aussiebroadwan/todolist/pkg/httpx"
	"github.com/aussiebroadwan/todolist/pkg/slogx"
	"github.com/aussiebroadwan/todolist/pkg/todosdk"
)

// TodosHandler serves the todo endpoints. Every route is behind
// httpx.RequireAuth, so a user id is always bound.
type TodosHandler struct {
	TodoService *service.TodoService
}

// HandleList handles GET /api/todos
//
//	@Summary		List todos
//	@Description	Lists the current user's todos, newest first. At most one filter applies, in the order q, status, priority, completed.
//	@Tags			Todos
//	@Produce		json
//	@Security		SessionCookie
//	@Param			q			query		string						false	"Substring of title or description"
//	@Param			status		query		string						false	"PENDING, IN_PROGRESS, COMPLETED or CANCELLED"
//	@Param			priority	query		string						false	"LOW, MEDIUM or HIGH"
//	@Param			completed	query		bool						false	"Completed flag"
//	@Success		200			{object}	todosdk.TodoListResponse	"success, todos"
//	@Failure		400			{object}	todosdk.MessageResponse		"Failed to fetch todos"
//	@Failure		401			{object}	todosdk.MessageResponse		"Not authenticated"
//	@Router			/api/todos [get].
func (h *TodosHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := httpx.UserIDFromContext(ctx)

	q := r.URL.Query()
	filter := service.TodoFilter{
		Query:    q.Get("q"),
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
	}
	if raw := q.Get("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "Failed to fetch todos: invalid completed filter")
			return
		}
		filter.Completed = &completed
	}

	todos, err := h.TodoService.Filter(ctx, userID, filter)
	if err != nil {
		h.fail(w, r, "Failed to fetch todos", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.TodoListResponse{
		Success: true,
		Todos:   toTodos(todos),
	})
}

// HandleStats handles GET /api/todos/stats
//
//	@Summary		Todo statistics
//	@Tags			Todos
//	@Produce		json
//	@Security		SessionCookie
//	@Success		200	{object}	todosdk.StatsResponse	"success, stats"
//	@Failure		401	{object}	todosdk.MessageResponse	"Not authenticated"
//	@Router			/api/todos/stats [get].
func (h *TodosHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := httpx.UserIDFromContext(ctx)

	stats, err := h.TodoService.Stats(ctx, userID)
	if err != nil {
		h.fail(w, r, "Failed to fetch statistics", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.StatsResponse{
		Success: true,
		Stats:   toStats(stats),
	})
}

// HandleGet handles GET /api/todos/{id}
//
//	@Summary		Get todo
//	@Tags			Todos
//	@Produce		json
//	@Security		SessionCookie
//	@Param			id	path		int						true	"Todo id"
//	@Success		200	{object}	todosdk.TodoResponse	"success, todo"
//	@Failure		401	{object}	todosdk.MessageResponse	"Not authenticated"
//	@Failure		404	{object}	todosdk.MessageResponse	"Todo not found or access denied"
//	@Router			/api/todos/{id} [get].
func (h *TodosHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := httpx.UserIDFromContext(ctx)

	id, ok := todoID(w, r)
	if !ok {
		return
	}

	t, err := h.TodoService.Get(ctx, id, userID)
	if err != nil {
		h.fail(w, r, "Failed to fetch todo", err)
		return
	}

	todo := toTodo(t)
	httpx.WriteJSON(w, http.StatusOK, todosdk.TodoResponse{Success: true, Todo: &todo})
}

// HandleCreate handles POST /api/todos
//
//	@Summary		Create todo
//	@Description	Priority defaults to MEDIUM and status to PENDING. A given status decides completed.
//	@Tags			Todos
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		todosdk.TodoRequest		true	"Todo"
//	@Success		200		{object}	todosdk.TodoResponse	"success, todo, message"
//	@Failure		400		{object}	todosdk.MessageResponse	"Failed to create todo"
//	@Failure		401		{object}	todosdk.MessageResponse	"Not authenticated"
//	@Router			/api/todos [post].
func (h *TodosHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := httpx.UserIDFromContext(ctx)

	var req todosdk.TodoRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Failed to create todo: "+msgInvalidRequest)
		return
	}

	t, err := h.TodoService.Create(ctx, userID, toTodoInput(req))
	if err != nil {
		h.fail(w, r, "Failed to create todo", err)
		return
	}

	todo := toTodo(t)
	httpx.WriteJSON(w, http.StatusOK, todosdk.TodoResponse{
		Success: true,
		Message: "Todo created successfully",
		Todo:    &todo,
	})
}

// HandleUpdate handles PUT /api/todos/{id}
//
//	@Summary		Update todo
//	@Description	Replaces title, description, date and completed. An absent completed means false. A given status overrides completed.
//	@Tags			Todos
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			id		path		int						true	"Todo id"
//	@Param			request	body		todosdk.TodoRequest		true	"Todo"
//	@Success		200		{object}	todosdk.TodoResponse	"success, todo, message"
//	@Failure		400		{object}	todosdk.MessageResponse	"Failed to update todo"
//	@Failure		401		{object}	todosdk.MessageResponse	"Not authenticated"
//	@Failure		404		{object}	todosdk.MessageResponse	"Todo not found or access denied"
//	@Router			/api/todos/{id} [put].
func (h *TodosHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := httpx.UserIDFromContext(ctx)

	id, ok := todoID(w, r)
	if !ok {
		return
	}

	var req todosdk.TodoRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Failed to update todo: "+msgInvalidRequest)
		return
	}

	t, err := h.TodoService.Update(ctx, id, userID, toTodoInput(req))
	if err != nil {
		h.fail(w, r, "Failed to update todo", err)
		return
	}

	todo := toTodo(t)
	httpx.WriteJSON(w, http.StatusOK, todosdk.TodoResponse{
		Success: true,
		Message: "Todo updated successfully",
		Todo:    &todo,
	})
}

// HandleDelete handles DELETE /api/todos/{id}
//
//	@Summary		Delete todo
//	@Tags			Todos
//	@Produce		json
//	@Security		SessionCookie
//	@Param			id	path		int						true	"Todo id"
//	@Success		200	{object}	todosdk.MessageResponse	"Todo deleted successfully"
//	@Failure		401	{object}	todosdk.MessageResponse	"Not authenticated"
//	@Failure		404	{object}	todosdk.MessageResponse	"Todo not found or access denied"
//	@Router			/api/todos/{id} [delete].
func (h *TodosHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := httpx.UserIDFromContext(ctx)

	id, ok := todoID(w, r)
	if !ok {
		return
	}

	if err := h.TodoService.Delete(ctx, id, userID); err != nil {
		h.fail(w, r, "Failed to delete todo", err)
		return
	}

	httpx.WriteMessage(w, "Todo deleted successfully")
}

// HandleToggle handles PUT /api/todos/{id}/toggle
//
//	@Summary		Toggle completed
//	@Description	Flips completed. Status is left unchanged.
//	@Tags			Todos
//	@Produce		json
//	@Security		SessionCookie
//	@Param			id	path		int						true	"Todo id"
//	@Success		200	{object}	todosdk.TodoResponse	"success, todo, message"
//	@Failure		401	{object}	todosdk.MessageResponse	"Not authenticated"
//	@Failure		404	{object}	todosdk.MessageResponse	"Todo not found or access denied"
//	@Router			/api/todos/{id}/toggle [put].
func (h *TodosHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := httpx.UserIDFromContext(ctx)

	id, ok := todoID(w, r)
	if !ok {
		return
	}

	t, err := h.TodoService.Toggle(ctx, id, userID)
	if err != nil {
		h.fail(w, r, "Failed to toggle todo", err)
		return
	}

	todo := toTodo(t)
	httpx.WriteJSON(w, http.StatusOK, todosdk.TodoResponse{
		Success: true,
		Message: "Todo status updated successfully",
		Todo:    &todo,
	})
}

// fail writes the envelope for a service error. Missing or foreign todos
// are 404, known failures are 400 with their message appended to prefix,
// anything else is logged and reported with prefix alone.
func (h *TodosHandler) fail(w http.ResponseWriter, r *http.Request, prefix string, err error) {
	if errors.Is(err, service.ErrTodoNotFound) {
		httpx.WriteError(w, http.StatusNotFound, msgTodoNotFound)
		return
	}
	if msg, ok := clientMessage(err); ok {
		slogx.FromContext(r.Context()).Warn(prefix, "error", err)
		httpx.WriteError(w, http.StatusBadRequest, prefix+": "+msg)
		return
	}
	slogx.FromContext(r.Context()).Error(prefix, "error", err)
	httpx.WriteError(w, http.StatusBadRequest, prefix)
}

// todoID parses the {id} path value. Ids that cannot name a row are
// reported like a missing todo.
func todoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteError(w, http.StatusNotFound, msgTodoNotFound)
		return 0, false
	}
	return id, true
}
