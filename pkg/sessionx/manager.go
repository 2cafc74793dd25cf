package sessionx

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/todolist/pkg/cryptox"
	"github.com/aussiebroadwan/todolist/pkg/slogx"
)

const (
	DefaultCookieName  = "JSESSIONID"
	DefaultIdleTimeout = 24 * time.Hour
)

type Options struct {
	CookieName  string
	Secure      bool
	IdleTimeout time.Duration
}

// Manager binds sessions to requests through a cookie.
type Manager struct {
	Store       Store
	CookieName  string
	Secure      bool
	IdleTimeout time.Duration

	now func() time.Time
}

func NewManager(store Store, opts Options) *Manager {
	if opts.CookieName == "" {
		opts.CookieName = DefaultCookieName
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = DefaultIdleTimeout
	}
	return &Manager{
		Store:       store,
		CookieName:  opts.CookieName,
		Secure:      opts.Secure,
		IdleTimeout: opts.IdleTimeout,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Attach returns the session named by the request cookie. A missing,
// unknown or idle-expired cookie yields an empty handle that creates a
// session on its first Put. Attaching a live session refreshes its idle
// timer.
func (m *Manager) Attach(w http.ResponseWriter, r *http.Request) (*Session, error) {
	s := &Session{m: m, w: w}

	c, err := r.Cookie(m.CookieName)
	if err != nil || c.Value == "" {
		return s, nil
	}

	ctx := r.Context()
	key := cryptox.FingerprintToken(c.Value)
	rec, err := m.Store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return s, err
	}

	now := m.now()
	if rec.Expired(now) {
		_ = m.Store.Delete(ctx, key)
		return s, nil
	}

	// A concurrent Invalidate may have removed the record since Get.
	rec, err = m.Store.Touch(ctx, key, now)
	if errors.Is(err, ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return s, err
	}

	s.token = c.Value
	s.key = key
	s.rec = &rec
	return s, nil
}

type ctxKey struct{}

// Middleware attaches the request's session to its context. Store failures
// are logged and the request continues with an empty session.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.Attach(w, r)
		if err != nil {
			slogx.FromContext(r.Context()).Warn("session attach failed", "error", err)
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the attached session, or nil outside Middleware.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}

func (m *Manager) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     m.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
