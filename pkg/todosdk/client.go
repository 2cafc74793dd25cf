package todosdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the todo list service. It is safe for concurrent use but
// all calls share one cookie jar, i.e. one logged-in identity.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client with a fresh cookie jar and a 10s timeout.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil) // only fails with a non-nil options list
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}

// Cookie returns the named cookie the jar would send to the service.
func (c *Client) Cookie(name string) *http.Cookie {
	u, err := url.Parse(c.BaseURL + "/")
	if err != nil || c.HTTPClient.Jar == nil {
		return nil
	}
	for _, ck := range c.HTTPClient.Jar.Cookies(u) {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), rdr)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// decodeJSON reads the body and decodes it into target when the status is
// expectedStatus, otherwise it returns an *APIError.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) call(ctx context.Context, method, path string, body, target any) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, http.StatusOK)
}

// ============================================================================
// Auth
// ============================================================================

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.call(ctx, http.MethodPost, "/api/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, usernameOrEmail, password string) (*AuthResponse, error) {
	var out AuthResponse
	req := LoginRequest{UsernameOrEmail: usernameOrEmail, Password: password}
	if err := c.call(ctx, http.MethodPost, "/api/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) (*LogoutResponse, error) {
	var out LogoutResponse
	if err := c.call(ctx, http.MethodPost, "/api/auth/logout", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*MeResponse, error) {
	var out MeResponse
	if err := c.call(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CheckUsername(ctx context.Context, username string) (*AvailabilityResponse, error) {
	var out AvailabilityResponse
	if err := c.call(ctx, http.MethodGet, "/api/auth/check-username/"+url.PathEscape(username), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CheckEmail(ctx context.Context, email string) (*AvailabilityResponse, error) {
	var out AvailabilityResponse
	if err := c.call(ctx, http.MethodGet, "/api/auth/check-email/"+url.PathEscape(email), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.call(ctx, http.MethodPut, "/api/auth/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) (*MessageResponse, error) {
	var out MessageResponse
	req := ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	if err := c.call(ctx, http.MethodPut, "/api/auth/change-password", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Todos
// ============================================================================

// ListOptions narrows ListTodos. The server applies at most one, in the
// order Query, Status, Priority, Completed.
type ListOptions struct {
	Query     string
	Status    string
	Priority  string
	Completed *bool
}

func (o ListOptions) encode() string {
	v := url.Values{}
	if o.Query != "" {
		v.Set("q", o.Query)
	}
	if o.Status != "" {
		v.Set("status", o.Status)
	}
	if o.Priority != "" {
		v.Set("priority", o.Priority)
	}
	if o.Completed != nil {
		v.Set("completed", strconv.FormatBool(*o.Completed))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (c *Client) ListTodos(ctx context.Context, opts ListOptions) ([]Todo, error) {
	var out TodoListResponse
	if err := c.call(ctx, http.MethodGet, "/api/todos"+opts.encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.Todos, nil
}

func (c *Client) GetTodo(ctx context.Context, id int64) (*Todo, error) {
	var out TodoResponse
	if err := c.call(ctx, http.MethodGet, todoPath(id), nil, &out); err != nil {
		return nil, err
	}
	return out.Todo, nil
}

func (c *Client) CreateTodo(ctx context.Context, req TodoRequest) (*TodoResponse, error) {
	var out TodoResponse
	if err := c.call(ctx, http.MethodPost, "/api/todos", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTodo(ctx context.Context, id int64, req TodoRequest) (*TodoResponse, error) {
	var out TodoResponse
	if err := c.call(ctx, http.MethodPut, todoPath(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ToggleTodo(ctx context.Context, id int64) (*TodoResponse, error) {
	var out TodoResponse
	if err := c.call(ctx, http.MethodPut, todoPath(id)+"/toggle", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTodo(ctx context.Context, id int64) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.call(ctx, http.MethodDelete, todoPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Stats(ctx context.Context) (*TodoStats, error) {
	var out StatsResponse
	if err := c.call(ctx, http.MethodGet, "/api/todos/stats", nil, &out); err != nil {
		return nil, err
	}
	return out.Stats, nil
}

// ============================================================================
// Health
// ============================================================================

func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.call(ctx, http.MethodGet, "/livez", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.call(ctx, http.MethodGet, "/readyz", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func todoPath(id int64) string {
	return "/api/todos/" + strconv.FormatInt(id, 10)
}

// String returns a pointer to s, for optional TodoRequest fields.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for optional TodoRequest fields.
func Bool(b bool) *bool { return &b }
