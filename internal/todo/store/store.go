package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/todolist/internal/todo/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrUsernameTaken = errors.New("store: username already exists")
	ErrEmailTaken    = errors.New("store: email already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Sub-repositories are reached through methods so that a Tx
// hands out repositories bound to the same transaction.
type Store interface {
	Users() Users
	Todos() Todos

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts u and returns it with the database assigned id.
	// Unique violations surface as ErrUsernameTaken or ErrEmailTaken.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	GetUserByID(ctx context.Context, id int64) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByUsernameOrEmail matches either column exactly. A username
	// match wins over an email match on a different row.
	GetUserByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (domain.User, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// SaveUser writes the mutable columns (email, names, password hash,
	// active) and bumps updated_at. The username column is never written.
	SaveUser(ctx context.Context, u domain.User) error

	SetActive(ctx context.Context, id int64, active bool) error

	// DeleteUser cascades to the user's todos (per schema).
	DeleteUser(ctx context.Context, id int64) error
}

type Todos interface {
	// ListByUser returns the user's todos newest first.
	ListByUser(ctx context.Context, userID int64) ([]domain.Todo, error)

	// FindByIDAndUser returns the todo only if userID owns it. Inside a
	// transaction the row is locked for the remainder of the transaction
	// where the driver supports it.
	FindByIDAndUser(ctx context.Context, id, userID int64) (domain.Todo, error)

	FindByUserAndCompleted(ctx context.Context, userID int64, completed bool) ([]domain.Todo, error)
	FindByUserAndStatus(ctx context.Context, userID int64, status domain.Status) ([]domain.Todo, error)
	FindByUserAndPriority(ctx context.Context, userID int64, priority domain.Priority) ([]domain.Todo, error)

	// SearchByUser matches term case-insensitively as a literal substring
	// of the title or description.
	SearchByUser(ctx context.Context, userID int64, term string) ([]domain.Todo, error)

	CountByUser(ctx context.Context, userID int64) (int64, error)
	CountByUserAndStatus(ctx context.Context, userID int64, status domain.Status) (int64, error)
	CountByUserAndCompleted(ctx context.Context, userID int64, completed bool) (int64, error)

	// SaveTodo inserts t when t.ID is zero and updates it otherwise. The
	// stored row is returned.
	SaveTodo(ctx context.Context, t domain.Todo) (domain.Todo, error)

	DeleteByID(ctx context.Context, id int64) error

	// DeleteByUser removes every todo owned by userID and reports how many
	// rows went.
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
}
