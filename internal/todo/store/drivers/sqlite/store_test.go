package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/todolist/internal/todo/domain"
	"github.com/aussiebroadwan/todolist/internal/todo/store"
	"github.com/aussiebroadwan/todolist/internal/todo/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.FileDSN(filepath.Join(t.TempDir(), "todo.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func createUser(t *testing.T, s store.Store, username string) domain.User {
	t.Helper()

	u, err := s.Users().CreateUser(context.Background(), domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$10$hash",
		FirstName:    "First",
		LastName:     "Last",
		Active:       true,
	})
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	return u
}

func TestApplyMigrationsIdempotent(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	alice := createUser(t, s, "alice")

	t.Run("lookups", func(t *testing.T) {
		got, err := s.Users().GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "alice", got.Username)
		require.Equal(t, "alice@example.com", got.Email)
		require.True(t, got.Active)
		require.WithinDuration(t, alice.CreatedAt, got.CreatedAt, time.Millisecond)

		got, err = s.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, alice.ID, got.ID)

		got, err = s.Users().GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, alice.ID, got.ID)

		_, err = s.Users().GetUserByID(ctx, 9999)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("username or email", func(t *testing.T) {
		for _, key := range []string{"alice", "alice@example.com"} {
			got, err := s.Users().GetUserByUsernameOrEmail(ctx, key)
			require.NoError(t, err)
			require.Equal(t, alice.ID, got.ID)
		}
		_, err := s.Users().GetUserByUsernameOrEmail(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := s.Users().ExistsByUsername(ctx, "alice")
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = s.Users().ExistsByUsername(ctx, "Alice")
		require.NoError(t, err)
		require.False(t, ok, "usernames are case sensitive")

		ok, err = s.Users().ExistsByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("unique violations", func(t *testing.T) {
		_, err := s.Users().CreateUser(ctx, domain.User{
			Username: "alice", Email: "other@example.com", PasswordHash: "x", Active: true,
		})
		require.ErrorIs(t, err, store.ErrUsernameTaken)

		_, err = s.Users().CreateUser(ctx, domain.User{
			Username: "other", Email: "alice@example.com", PasswordHash: "x", Active: true,
		})
		require.ErrorIs(t, err, store.ErrEmailTaken)
	})

	t.Run("save and set active", func(t *testing.T) {
		bob := createUser(t, s, "bob")
		bob.FirstName = "Robert"
		bob.Email = "robert@example.com"
		require.NoError(t, s.Users().SaveUser(ctx, bob))

		got, err := s.Users().GetUserByID(ctx, bob.ID)
		require.NoError(t, err)
		require.Equal(t, "Robert", got.FirstName)
		require.Equal(t, "robert@example.com", got.Email)
		require.False(t, got.UpdatedAt.Before(got.CreatedAt))

		bob.Email = "alice@example.com"
		require.ErrorIs(t, s.Users().SaveUser(ctx, bob), store.ErrEmailTaken)

		require.NoError(t, s.Users().SetActive(ctx, bob.ID, false))
		got, err = s.Users().GetUserByID(ctx, bob.ID)
		require.NoError(t, err)
		require.False(t, got.Active)

		require.ErrorIs(t, s.Users().SetActive(ctx, 9999, true), store.ErrNotFound)
	})
}

func TestTodos(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")

	save := func(userID int64, title, desc string, p domain.Priority, st domain.Status) domain.Todo {
		todo := domain.Todo{UserID: userID, Title: title, Description: desc, Date: "2024-01-01", Priority: p}
		todo.ApplyStatus(st)
		saved, err := s.Todos().SaveTodo(ctx, todo)
		require.NoError(t, err)
		require.NotZero(t, saved.ID)
		return saved
	}

	milk := save(alice.ID, "Buy milk", "2% from the corner shop", domain.PriorityHigh, domain.StatusPending)
	report := save(alice.ID, "Write report", "quarterly", domain.PriorityMedium, domain.StatusInProgress)
	done := save(alice.ID, "File taxes", "", domain.PriorityLow, domain.StatusCompleted)
	bobs := save(bob.ID, "Bob's milk", "", domain.PriorityHigh, domain.StatusPending)

	t.Run("list newest first", func(t *testing.T) {
		todos, err := s.Todos().ListByUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, todos, 3)
		require.Equal(t, []int64{done.ID, report.ID, milk.ID}, ids(todos))
		for _, td := range todos {
			require.Equal(t, alice.ID, td.UserID)
		}
	})

	t.Run("ownership", func(t *testing.T) {
		_, err := s.Todos().FindByIDAndUser(ctx, bobs.ID, alice.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err := s.Todos().FindByIDAndUser(ctx, milk.ID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "Buy milk", got.Title)
		require.Equal(t, domain.PriorityHigh, got.Priority)
		require.Equal(t, "2024-01-01", got.Date)
	})

	t.Run("filters", func(t *testing.T) {
		todos, err := s.Todos().FindByUserAndCompleted(ctx, alice.ID, true)
		require.NoError(t, err)
		require.Equal(t, []int64{done.ID}, ids(todos))

		todos, err = s.Todos().FindByUserAndStatus(ctx, alice.ID, domain.StatusInProgress)
		require.NoError(t, err)
		require.Equal(t, []int64{report.ID}, ids(todos))

		todos, err = s.Todos().FindByUserAndPriority(ctx, alice.ID, domain.PriorityHigh)
		require.NoError(t, err)
		require.Equal(t, []int64{milk.ID}, ids(todos))
	})

	t.Run("search", func(t *testing.T) {
		todos, err := s.Todos().SearchByUser(ctx, alice.ID, "MILK")
		require.NoError(t, err)
		require.Equal(t, []int64{milk.ID}, ids(todos))

		todos, err = s.Todos().SearchByUser(ctx, alice.ID, "quarter")
		require.NoError(t, err)
		require.Equal(t, []int64{report.ID}, ids(todos))

		todos, err = s.Todos().SearchByUser(ctx, alice.ID, "2%")
		require.NoError(t, err)
		require.Equal(t, []int64{milk.ID}, ids(todos))

		todos, err = s.Todos().SearchByUser(ctx, alice.ID, "%")
		require.NoError(t, err)
		require.Equal(t, []int64{milk.ID}, ids(todos), "wildcards match literally")
	})

	t.Run("search non-ascii", func(t *testing.T) {
		carol := createUser(t, s, "carol")
		trip := save(carol.ID, "École trip", "Visite du musée", domain.PriorityLow, domain.StatusPending)

		for _, term := range []string{"école", "École", "ÉCOLE", "MUSÉE"} {
			todos, err := s.Todos().SearchByUser(ctx, carol.ID, term)
			require.NoError(t, err)
			require.Equal(t, []int64{trip.ID}, ids(todos), term)
		}
	})

	t.Run("counts", func(t *testing.T) {
		n, err := s.Todos().CountByUser(ctx, alice.ID)
		require.NoError(t, err)
		require.EqualValues(t, 3, n)

		n, err = s.Todos().CountByUserAndStatus(ctx, alice.ID, domain.StatusPending)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		n, err = s.Todos().CountByUserAndCompleted(ctx, alice.ID, false)
		require.NoError(t, err)
		require.EqualValues(t, 2, n)
	})

	t.Run("update", func(t *testing.T) {
		milk.Title = "Buy oat milk"
		milk.ApplyStatus(domain.StatusCompleted)
		got, err := s.Todos().SaveTodo(ctx, milk)
		require.NoError(t, err)
		require.Equal(t, "Buy oat milk", got.Title)
		require.True(t, got.Completed)
		require.Equal(t, domain.StatusCompleted, got.Status)

		stolen := bobs
		stolen.UserID = alice.ID
		_, err = s.Todos().SaveTodo(ctx, stolen)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Todos().DeleteByID(ctx, report.ID))
		require.ErrorIs(t, s.Todos().DeleteByID(ctx, report.ID), store.ErrNotFound)

		n, err := s.Todos().DeleteByUser(ctx, bob.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
	})
}

func TestDeleteUserCascades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	carol := createUser(t, s, "carol")
	_, err := s.Todos().SaveTodo(ctx, domain.Todo{
		UserID: carol.ID, Title: "t", Priority: domain.PriorityLow, Status: domain.StatusPending,
	})
	require.NoError(t, err)

	require.NoError(t, s.Users().DeleteUser(ctx, carol.ID))

	n, err := s.Todos().CountByUser(ctx, carol.ID)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestWithTx(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := s.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Users().CreateUser(ctx, domain.User{
				Username: "ghost", Email: "ghost@example.com", PasswordHash: "x", Active: true,
			})
			require.NoError(t, err)
			return boom
		})
		require.ErrorIs(t, err, boom)

		ok, err := s.Users().ExistsByUsername(ctx, "ghost")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("commit on success", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Users().CreateUser(ctx, domain.User{
				Username: "dave", Email: "dave@example.com", PasswordHash: "x", Active: true,
			})
			return err
		})
		require.NoError(t, err)

		ok, err := s.Users().ExistsByUsername(ctx, "dave")
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("no nesting", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.WithTx(ctx, func(store.Tx) error { return nil })
		})
		require.Error(t, err)
	})
}

func TestInMemoryDSN(t *testing.T) {
	t.Parallel()

	s, err := sqlite.NewStore("file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	createUser(t, s, "mem")
}

func ids(todos []domain.Todo) []int64 {
	out := make([]int64, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.ID)
	}
	return out
}
