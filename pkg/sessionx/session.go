package sessionx

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/aussiebroadwan/todolist/pkg/cryptox"
)

// Session is a per-request handle onto a session record. The zero handle
// (no record) is valid: reads miss and the first Put creates the record.
type Session struct {
	m *Manager
	w http.ResponseWriter

	mu    sync.Mutex
	token string
	key   string
	rec   *Record
}

// Exists reports whether the handle is bound to a stored record.
func (s *Session) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec != nil
}

func (s *Session) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec == nil {
		return "", false
	}
	v, ok := s.rec.Values[key]
	return v, ok
}

// Put stores value under key, creating the session and setting its cookie
// if the handle is empty.
func (s *Session) Put(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rec == nil {
		if err := s.create(); err != nil {
			return err
		}
	}
	s.rec.Values[key] = value
	return s.m.Store.Save(ctx, s.key, *s.rec)
}

func (s *Session) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rec == nil {
		return nil
	}
	if _, ok := s.rec.Values[key]; !ok {
		return nil
	}
	delete(s.rec.Values, key)
	return s.m.Store.Save(ctx, s.key, *s.rec)
}

// SetMaxInactiveInterval changes the idle timeout of an existing session.
func (s *Session) SetMaxInactiveInterval(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rec == nil {
		return nil
	}
	s.rec.MaxInactive = d
	return s.m.Store.Save(ctx, s.key, *s.rec)
}

// Renew moves an existing session to a fresh token, keeping its values.
// Call it when the identity behind a session changes.
func (s *Session) Renew(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rec == nil {
		return nil
	}
	oldKey := s.key
	rec := *s.rec
	if err := s.create(); err != nil {
		return err
	}
	s.rec.Values = rec.clone().Values
	s.rec.CreatedAt = rec.CreatedAt
	s.rec.MaxInactive = rec.MaxInactive
	if err := s.m.Store.Save(ctx, s.key, *s.rec); err != nil {
		return err
	}
	return s.m.Store.Delete(ctx, oldKey)
}

// Invalidate destroys the record and tells the client to drop the cookie.
func (s *Session) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if s.rec != nil {
		err = s.m.Store.Delete(ctx, s.key)
	}
	s.token, s.key, s.rec = "", "", nil

	c := s.m.cookie("")
	c.MaxAge = -1
	http.SetCookie(s.w, c)
	return err
}

// create mints a token and an empty record and sets the cookie. The caller
// holds s.mu and is responsible for saving the record.
func (s *Session) create() error {
	token, err := cryptox.GenerateToken(cryptox.SessionTokenSize)
	if err != nil {
		return err
	}
	now := s.m.now()
	s.token = token
	s.key = cryptox.FingerprintToken(token)
	s.rec = &Record{
		Values:         make(map[string]string),
		CreatedAt:      now,
		LastAccessedAt: now,
		MaxInactive:    s.m.IdleTimeout,
	}
	http.SetCookie(s.w, s.m.cookie(token))
	return nil
}
