package todosdk

import "time"

// ============================================================================
// Entities
// ============================================================================

// User is the public view of an account. It never carries the password hash.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// Todo is a task owned by a single user. Priority and Status are upper case
// enum names.
type Todo struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UserID      int64     `json:"userId"`
}

// TodoStats counts a user's todos.
type TodoStats struct {
	Total     int64            `json:"total"`
	Completed int64            `json:"completed"`
	Pending   int64            `json:"pending"`
	ByStatus  map[string]int64 `json:"byStatus"`
}

// ============================================================================
// Requests
// ============================================================================

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginRequest struct {
	// UsernameOrEmail matches either the username or the email exactly.
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// TodoRequest is the body of create and update. Nil fields are omitted from
// the JSON and treated as absent by the server.
type TodoRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// ============================================================================
// Responses
// ============================================================================

// MessageResponse is the bare envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// AuthResponse is returned by register, login and profile updates.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
}

type LogoutResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// MeResponse always arrives with HTTP 200. IsAuthenticated tells whether the
// session resolved to a user.
type MeResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message,omitempty"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	User            *User  `json:"user,omitempty"`
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

type TodoListResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Todos   []Todo `json:"todos"`
}

type TodoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Todo    *Todo  `json:"todo,omitempty"`
}

type StatsResponse struct {
	Success bool       `json:"success"`
	Stats   *TodoStats `json:"stats,omitempty"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Sessions string `json:"sessions"`
}
