package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	todohttp "github.com/aussiebroadwan/todolist/internal/todo/http"
	"github.com/aussiebroadwan/todolist/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

func TestHealthProbes(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	ctx := context.Background()
	c := srv.client()

	live, err := c.Livez(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)
	require.Nil(t, live.Checks)

	ready, err := c.Readyz(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Sessions)
}

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestReadyzDegraded(t *testing.T) {
	t.Parallel()
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	h := todohttp.ReadyzHandler(time.Now().Add(-time.Minute), "v1", up, down)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body todosdk.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "degraded", body.Status)
	require.Equal(t, "v1", body.Version)
	require.Regexp(t, `^1m\d+s$`, body.Uptime)
	require.Equal(t, "ok", body.Checks.Database)
	require.Equal(t, "error: connection refused", body.Checks.Sessions)
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/livez", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "abc-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}

func TestCORS(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/todos", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
		req.Header.Set("Access-Control-Request-Headers", "content-type")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		require.Equal(t, http.StatusNoContent, resp.StatusCode)
		require.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
		require.Equal(t, "3600", resp.Header.Get("Access-Control-Max-Age"))
	})

	t.Run("foreign origin gets no grant", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/auth/me", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "http://evil.example")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	})
}

func TestSPA(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	get := func(t *testing.T, path string) (int, string) {
		t.Helper()
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	index := string(testStatic["index.html"].Data)

	tests := []struct {
		name   string
		path   string
		status int
		body   string
	}{
		{"root", "/", http.StatusOK, index},
		{"client route", "/dashboard", http.StatusOK, index},
		{"nested client route", "/todos/42/edit", http.StatusOK, index},
		{"asset", "/assets/app.js", http.StatusOK, "console.log('todo')"},
		{"static asset", "/static/css/a.css", http.StatusOK, "body{}"},
		{"missing asset", "/missing.png", http.StatusNotFound, ""},
		{"too deep", "/a/b/c/d", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, tt.path)
			require.Equal(t, tt.status, status)
			if tt.body != "" {
				require.Equal(t, tt.body, body)
			}
		})
	}
}
