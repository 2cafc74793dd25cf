package sessionx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/todolist/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestManager(t *testing.T) (*Manager, *MemoryStore, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStore()
	store.now = clock.now
	m := NewManager(store, Options{IdleTimeout: time.Hour})
	m.now = clock.now
	return m, store, clock
}

// attach runs Attach for a request carrying the given cookies.
func attach(t *testing.T, m *Manager, cookies ...*http.Cookie) (*Session, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	sess, err := m.Attach(rec, req)
	require.NoError(t, err)
	return sess, rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAttachWithoutCookieIsEmpty(t *testing.T) {
	t.Parallel()
	m, store, _ := newTestManager(t)

	sess, rec := attach(t, m)
	require.False(t, sess.Exists())
	_, ok := sess.Get("userId")
	require.False(t, ok)
	require.Empty(t, rec.Result().Cookies(), "no session is created on read")
	require.Zero(t, store.Len())
}

func TestPutCreatesSessionAndCookie(t *testing.T) {
	t.Parallel()
	m, store, _ := newTestManager(t)
	ctx := context.Background()

	sess, rec := attach(t, m)
	require.NoError(t, sess.Put(ctx, "userId", "42"))
	require.True(t, sess.Exists())

	c := sessionCookie(t, rec, DefaultCookieName)
	require.NotNil(t, c)
	require.Len(t, c.Value, 43)
	require.True(t, c.HttpOnly)
	require.Equal(t, "/", c.Path)
	require.Equal(t, http.SameSiteLaxMode, c.SameSite)

	// Stored under the fingerprint, never the raw token.
	_, err := store.Get(ctx, c.Value)
	require.ErrorIs(t, err, ErrNotFound)
	stored, err := store.Get(ctx, cryptox.FingerprintToken(c.Value))
	require.NoError(t, err)
	require.Equal(t, "42", stored.Values["userId"])
	require.Equal(t, time.Hour, stored.MaxInactive)

	again, _ := attach(t, m, c)
	v, ok := again.Get("userId")
	require.True(t, ok)
	require.Equal(t, "42", v)
}

func TestUnknownCookieIsEmpty(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestManager(t)

	sess, _ := attach(t, m, &http.Cookie{Name: DefaultCookieName, Value: "forged"})
	require.False(t, sess.Exists())
}

func TestIdleExpiryIsSliding(t *testing.T) {
	t.Parallel()
	m, store, clock := newTestManager(t)
	ctx := context.Background()

	sess, rec := attach(t, m)
	require.NoError(t, sess.Put(ctx, "userId", "1"))
	c := sessionCookie(t, rec, DefaultCookieName)

	// Each access inside the window pushes expiry out.
	for range 3 {
		clock.t = clock.t.Add(50 * time.Minute)
		s, _ := attach(t, m, c)
		require.True(t, s.Exists())
	}

	clock.t = clock.t.Add(time.Hour)
	s, _ := attach(t, m, c)
	require.False(t, s.Exists())

	n, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Zero(t, store.Len())
}

func TestRemoveAndInvalidate(t *testing.T) {
	t.Parallel()
	m, store, _ := newTestManager(t)
	ctx := context.Background()

	sess, rec := attach(t, m)
	require.NoError(t, sess.Put(ctx, "userId", "7"))
	require.NoError(t, sess.Put(ctx, "theme", "dark"))
	c := sessionCookie(t, rec, DefaultCookieName)

	s, _ := attach(t, m, c)
	require.NoError(t, s.Remove(ctx, "theme"))
	_, ok := s.Get("theme")
	require.False(t, ok)

	s, out := attach(t, m, c)
	_, ok = s.Get("theme")
	require.False(t, ok, "removal is persisted")
	require.NoError(t, s.Invalidate(ctx))
	require.False(t, s.Exists())
	require.Zero(t, store.Len())

	expired := sessionCookie(t, out, DefaultCookieName)
	require.NotNil(t, expired)
	require.Empty(t, expired.Value)
	require.Equal(t, -1, expired.MaxAge)

	s, _ = attach(t, m, c)
	require.False(t, s.Exists())
}

// racingStore runs afterGet once, between a Get and the following write.
type racingStore struct {
	*MemoryStore
	afterGet func()
}

func (s *racingStore) Get(ctx context.Context, key string) (Record, error) {
	rec, err := s.MemoryStore.Get(ctx, key)
	if fn := s.afterGet; fn != nil {
		s.afterGet = nil
		fn()
	}
	return rec, err
}

func TestLogoutDuringAttachIsNotUndone(t *testing.T) {
	t.Parallel()
	mem := NewMemoryStore()
	store := &racingStore{MemoryStore: mem}
	m := NewManager(store, Options{IdleTimeout: time.Hour})
	ctx := context.Background()

	sess, rec := attach(t, m)
	require.NoError(t, sess.Put(ctx, "userId", "1"))
	c := sessionCookie(t, rec, DefaultCookieName)

	store.afterGet = func() {
		logout, _ := attach(t, m, c)
		require.NoError(t, logout.Remove(ctx, "userId"))
		require.NoError(t, logout.Invalidate(ctx))
	}
	inflight, _ := attach(t, m, c)
	require.False(t, inflight.Exists())
	require.Zero(t, mem.Len())

	again, _ := attach(t, m, c)
	require.False(t, again.Exists())
	_, ok := again.Get("userId")
	require.False(t, ok)
}

func TestMemoryStoreTouch(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore()
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	_, err := store.Touch(ctx, "missing", start)
	require.ErrorIs(t, err, ErrNotFound)
	require.Zero(t, store.Len())

	require.NoError(t, store.Save(ctx, "k", Record{
		Values:         map[string]string{"userId": "3"},
		LastAccessedAt: start,
		MaxInactive:    time.Minute,
	}))

	got, err := store.Touch(ctx, "k", start.Add(30*time.Second))
	require.NoError(t, err)
	require.Equal(t, "3", got.Values["userId"])
	require.Equal(t, start.Add(30*time.Second), got.LastAccessedAt)

	_, err = store.Touch(ctx, "k", start.Add(2*time.Minute))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInvalidateWithoutSessionStillClearsCookie(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestManager(t)

	sess, rec := attach(t, m)
	require.NoError(t, sess.Invalidate(context.Background()))
	require.NotNil(t, sessionCookie(t, rec, DefaultCookieName))
}

func TestRenewRotatesToken(t *testing.T) {
	t.Parallel()
	m, store, _ := newTestManager(t)
	ctx := context.Background()

	sess, rec := attach(t, m)
	require.NoError(t, sess.Put(ctx, "cart", "3"))
	old := sessionCookie(t, rec, DefaultCookieName)

	s, out := attach(t, m, old)
	require.NoError(t, s.Renew(ctx))
	fresh := sessionCookie(t, out, DefaultCookieName)
	require.NotNil(t, fresh)
	require.NotEqual(t, old.Value, fresh.Value)
	require.Equal(t, 1, store.Len())

	gone, _ := attach(t, m, old)
	require.False(t, gone.Exists())

	kept, _ := attach(t, m, fresh)
	v, ok := kept.Get("cart")
	require.True(t, ok)
	require.Equal(t, "3", v)
}

func TestMiddlewareBindsSession(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestManager(t)

	var got *Session
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, got)
	require.False(t, got.Exists())
	require.Nil(t, FromContext(context.Background()))
}

func TestMemoryStoreDeleteExpired(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewMemoryStore()
	s.now = clock.now
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "a", Record{LastAccessedAt: clock.t, MaxInactive: time.Minute}))
	require.NoError(t, s.Save(ctx, "b", Record{LastAccessedAt: clock.t, MaxInactive: time.Hour}))

	clock.t = clock.t.Add(2 * time.Minute)
	n, err := s.DeleteExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 1, s.Len())

	_, err = s.Get(ctx, "b")
	require.NoError(t, err)
}
