package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/todolist/internal/todo/domain"
	"github.com/aussiebroadwan/todolist/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todolist/pkg/cryptox"
	"github.com/aussiebroadwan/todolist/pkg/sessionx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.FileDSN(filepath.Join(t.TempDir(), "todo.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	return &AuthService{
		Store:  newTestStore(t),
		Hasher: cryptox.NewHasher(cryptox.MinBcryptCost, 0),
	}
}

func registerUser(t *testing.T, svc *AuthService, username string) domain.User {
	t.Helper()
	u, err := svc.Register(context.Background(), RegisterInput{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "secret-" + username,
		FirstName: "First",
		LastName:  "Last",
	})
	require.NoError(t, err)
	return u
}

// newSession returns an empty session handle backed by mgr, plus the
// recorder that collects its cookies.
func newSession(t *testing.T, mgr *sessionx.Manager, cookies ...*http.Cookie) (*sessionx.Session, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	sess, err := mgr.Attach(rec, req)
	require.NoError(t, err)
	return sess, rec
}

func fingerprint(token string) string { return cryptox.FingerprintToken(token) }
