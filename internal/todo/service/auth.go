package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/todolist/internal/todo/domain"
	"github.com/aussiebroadwan/todolist/internal/todo/store"
	"github.com/aussiebroadwan/todolist/pkg/cryptox"
	"github.com/aussiebroadwan/todolist/pkg/sessionx"
	"github.com/aussiebroadwan/todolist/pkg/slogx"
)

// SessionUserKey is the session attribute holding the authenticated user id.
const SessionUserKey = "userId"

// DefaultSessionIdleTimeout applies to sessions created at login.
const DefaultSessionIdleTimeout = 24 * time.Hour

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Email     string
}

type AuthService struct {
	Store  store.Store
	Hasher *cryptox.Hasher

	// SessionIdleTimeout is set on every session at login.
	SessionIdleTimeout time.Duration

	dummyOnce sync.Once
	dummyHash string
}

// Register creates an active user. The password is hashed before the
// transaction opens so the write lock is held only for the uniqueness checks
// and insert.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	switch {
	case strings.TrimSpace(in.Username) == "":
		return domain.User{}, invalid("username is required")
	case strings.TrimSpace(in.Email) == "":
		return domain.User{}, invalid("email is required")
	case in.Password == "":
		return domain.User{}, invalid("password is required")
	}

	// 2. Hash the password
	hash, err := s.Hasher.Hash(ctx, in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	// 3. Check uniqueness and insert atomically
	var created domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		taken, err := tx.Users().ExistsByUsername(ctx, in.Username)
		if err != nil {
			return err
		}
		if taken {
			return ErrUsernameTaken
		}

		taken, err = tx.Users().ExistsByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}

		created, err = tx.Users().CreateUser(ctx, domain.User{
			Username:     in.Username,
			Email:        in.Email,
			PasswordHash: hash,
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Active:       true,
		})
		return err
	})
	if err != nil {
		err = mapUserConflict(err)
		if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrEmailTaken) {
			log.Warn("registration conflict",
				slog.String("username", in.Username),
				slog.String("reason", err.Error()),
			)
			return domain.User{}, err
		}
		log.Error("failed to register user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.Int64("user_id", created.ID),
		slog.String("username", created.Username),
	)
	return created, nil
}

// Authenticate resolves usernameOrEmail and checks the password. Unknown
// users and wrong passwords fail identically.
func (s *AuthService) Authenticate(ctx context.Context, usernameOrEmail, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Lookup by username or email
	user, err := s.Store.Users().GetUserByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Spend the same hashing time as a real check.
			_ = s.Hasher.Verify(ctx, password, s.timingHash(ctx))
			log.Warn("login failed: unknown user")
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	// 2. Reject deactivated accounts
	if !user.Active {
		log.Warn("login failed: account deactivated", slog.Int64("user_id", user.ID))
		return domain.User{}, ErrAccountDeactivated
	}

	// 3. Verify password
	if err := s.Hasher.Verify(ctx, password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("login failed: wrong password", slog.Int64("user_id", user.ID))
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user authenticated", slog.Int64("user_id", user.ID))
	return user, nil
}

// CreateSession binds user to sess. An existing session is moved to a fresh
// token first so a pre-login cookie cannot be reused.
func (s *AuthService) CreateSession(ctx context.Context, sess *sessionx.Session, user domain.User) error {
	if sess.Exists() {
		if err := sess.Renew(ctx); err != nil {
			return err
		}
	}
	if err := sess.Put(ctx, SessionUserKey, strconv.FormatInt(user.ID, 10)); err != nil {
		return err
	}
	return sess.SetMaxInactiveInterval(ctx, s.idleTimeout())
}

// CurrentUser resolves the session's user through the store. A dangling or
// deactivated user is unbound from the session.
func (s *AuthService) CurrentUser(ctx context.Context, sess *sessionx.Session) (domain.User, bool, error) {
	if sess == nil {
		return domain.User{}, false, nil
	}
	raw, ok := sess.Get(SessionUserKey)
	if !ok {
		return domain.User{}, false, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		_ = sess.Remove(ctx, SessionUserKey)
		return domain.User{}, false, nil
	}

	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, false, err
	}
	if err != nil || !user.Active {
		slogx.FromContext(ctx).Info("clearing session for unavailable user", slog.Int64("user_id", id))
		if rmErr := sess.Remove(ctx, SessionUserKey); rmErr != nil {
			return domain.User{}, false, rmErr
		}
		return domain.User{}, false, nil
	}
	return user, true, nil
}

// Logout unbinds the user and destroys the session.
func (s *AuthService) Logout(ctx context.Context, sess *sessionx.Session) error {
	if err := sess.Remove(ctx, SessionUserKey); err != nil {
		return err
	}
	return sess.Invalidate(ctx)
}

// UpdateProfile replaces the names and email of userID. Uniqueness is only
// re-checked when the email actually changes.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(in.Email) == "" {
		return domain.User{}, invalid("email is required")
	}

	var updated domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByID(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		if user.Email != in.Email {
			taken, err := tx.Users().ExistsByEmail(ctx, in.Email)
			if err != nil {
				return err
			}
			if taken {
				return ErrEmailTaken
			}
		}

		user.FirstName = in.FirstName
		user.LastName = in.LastName
		user.Email = in.Email
		if err := tx.Users().SaveUser(ctx, user); err != nil {
			return err
		}

		updated, err = tx.Users().GetUserByID(ctx, userID)
		return err
	})
	if err != nil {
		err = mapUserConflict(err)
		log.Warn("profile update failed", slog.Int64("user_id", userID), slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("profile updated", slog.Int64("user_id", userID))
	return updated, nil
}

// ChangePassword verifies current before storing a hash of next.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	log := slogx.FromContext(ctx)

	if next == "" {
		return invalid("new password is required")
	}

	// 1. Load the user and verify the current password
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if err := s.Hasher.Verify(ctx, current, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("password change rejected", slog.Int64("user_id", userID))
			return ErrCurrentPasswordWrong
		}
		return err
	}

	// 2. Hash the replacement outside the transaction
	hash, err := s.Hasher.Hash(ctx, next)
	if err != nil {
		return err
	}

	// 3. Store it against a fresh read of the row
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByID(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}
		u.PasswordHash = hash
		return tx.Users().SaveUser(ctx, u)
	})
	if err != nil {
		log.Error("failed to store new password", slog.Int64("user_id", userID), slog.Any("error", err))
		return err
	}

	log.Info("password changed", slog.Int64("user_id", userID))
	return nil
}

func (s *AuthService) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	taken, err := s.Store.Users().ExistsByUsername(ctx, username)
	return !taken, err
}

func (s *AuthService) IsEmailAvailable(ctx context.Context, email string) (bool, error) {
	taken, err := s.Store.Users().ExistsByEmail(ctx, email)
	return !taken, err
}

// GetUser fetches a user by id.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return user, err
}

// DeactivateUser blocks future logins and session resolution for userID.
func (s *AuthService) DeactivateUser(ctx context.Context, userID int64) error {
	err := s.Store.Users().SetActive(ctx, userID, false)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	if err == nil {
		slogx.FromContext(ctx).Info("user deactivated", slog.Int64("user_id", userID))
	}
	return err
}

// ActivateUser reverses DeactivateUser.
func (s *AuthService) ActivateUser(ctx context.Context, userID int64) error {
	err := s.Store.Users().SetActive(ctx, userID, true)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// DeleteUser removes userID together with all of their todos.
func (s *AuthService) DeleteUser(ctx context.Context, userID int64) error {
	err := s.Store.Users().DeleteUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	if err == nil {
		slogx.FromContext(ctx).Info("user deleted", slog.Int64("user_id", userID))
	}
	return err
}

func (s *AuthService) idleTimeout() time.Duration {
	if s.SessionIdleTimeout > 0 {
		return s.SessionIdleTimeout
	}
	return DefaultSessionIdleTimeout
}

// timingHash is a throwaway hash at the configured cost, compared against
// when the user does not exist.
func (s *AuthService) timingHash(ctx context.Context) string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.Hasher.Hash(ctx, "timing-equaliser")
	})
	return s.dummyHash
}

// mapUserConflict translates store-level unique violations raised by the
// database itself into service errors.
func mapUserConflict(err error) error {
	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		return ErrUsernameTaken
	case errors.Is(err, store.ErrEmailTaken):
		return ErrEmailTaken
	default:
		return err
	}
}
