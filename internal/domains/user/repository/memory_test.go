package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	user "book-manager/internal/domains/user"
)

func newUser(email string) *user.User {
	return &user.User{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}
}

func TestMemoryRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	u := newUser("alice@example.com")
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)

	exists, err := repo.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.FindByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("alice@example.com")))
	err := repo.Create(ctx, newUser("alice@example.com"))
	assert.ErrorIs(t, err, user.ErrUserAlreadyExists)
}

func TestMemoryRepository_ConcurrentRegistrationSameEmail(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	const workers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.Create(ctx, newUser("race@example.com")); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("alice@example.com")))

	got, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.Name, "store must not hand out its own records")
}

func TestMemoryRepository_CancelledContext(t *testing.T) {
	repo := NewMemoryRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Create(ctx, newUser("a@example.com")), context.Canceled)
}
