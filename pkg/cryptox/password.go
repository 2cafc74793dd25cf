package cryptox

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

const (
	// MinBcryptCost is the lowest work factor a Hasher accepts.
	MinBcryptCost = 10
	// DefaultBcryptCost is used when no cost is configured.
	DefaultBcryptCost = 12
)

// ErrPasswordMismatch is returned by Verify when the plaintext does not
// match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// Hasher produces and checks bcrypt password hashes. The number of hashes
// computed at once is bounded so that a burst of logins cannot starve the
// rest of the process of CPU.
type Hasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewHasher returns a Hasher using the given bcrypt cost, clamped to at
// least MinBcryptCost. A concurrency of zero or less means GOMAXPROCS.
func NewHasher(cost, concurrency int) *Hasher {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	return &Hasher{cost: cost, sem: semaphore.NewWeighted(int64(concurrency))}
}

// Cost reports the bcrypt work factor used for new hashes.
func (h *Hasher) Cost() int { return h.cost }

// Hash returns the bcrypt encoding of password with a fresh salt.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify compares a plaintext password against a bcrypt hash. It returns
// ErrPasswordMismatch on a clean mismatch and a wrapped error when the
// stored hash is malformed.
func (h *Hasher) Verify(ctx context.Context, password, encodedHash string) error {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer h.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("invalid hash format: %w", err)
	}
}
