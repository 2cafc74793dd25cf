package http_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"testing/fstest"

	todohttp "github.com/aussiebroadwan/todolist/internal/todo/http"
	"github.com/aussiebroadwan/todolist/internal/todo/service"
	"github.com/aussiebroadwan/todolist/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todolist/pkg/cryptox"
	"github.com/aussiebroadwan/todolist/pkg/sessionx"
	"github.com/aussiebroadwan/todolist/pkg/slogx"
	"github.com/aussiebroadwan/todolist/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	URL      string
	Auth     *service.AuthService
	Sessions *sessionx.MemoryStore
}

func (s *testServer) client() *todosdk.Client {
	return todosdk.NewClient(s.URL)
}

var testStatic = fstest.MapFS{
	"index.html":       {Data: []byte("<!doctype html><title>todo</title>")},
	"assets/app.js":    {Data: []byte("console.log('todo')")},
	"favicon.ico":      {Data: []byte{0, 0, 1, 0}},
	"static/css/a.css": {Data: []byte("body{}")},
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.FileDSN(filepath.Join(t.TempDir(), "todo.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	sessions := sessionx.NewMemoryStore()
	manager := sessionx.NewManager(sessions, sessionx.Options{})

	authSvc := &service.AuthService{
		Store:  st,
		Hasher: cryptox.NewHasher(cryptox.MinBcryptCost, 0),
	}

	r := todohttp.NewRouter("test", st, manager, slogx.Discard())
	r.AuthService = authSvc
	r.TodoService = &service.TodoService{Store: st}
	r.StaticFS = testStatic
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Auth: authSvc, Sessions: sessions}
}

// registered returns a client logged in as a fresh account.
func registered(t *testing.T, srv *testServer, username string) (*todosdk.Client, *todosdk.User) {
	t.Helper()
	c := srv.client()
	resp, err := c.Register(context.Background(), todosdk.RegisterRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "pw-" + username,
		FirstName: "First",
		LastName:  "Last",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotNil(t, resp.User)
	return c, resp.User
}

func requireAPIError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	var apiErr *todosdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *todosdk.APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	if msg != "" {
		require.Equal(t, msg, apiErr.Message)
	}
}
