package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"book-manager/internal/domains/user"
	"book-manager/internal/domains/user/repository"
	"book-manager/pkg/jwt"
)

// fakeRepo cho phép inject lỗi storage
type fakeRepo struct {
	user.Repository
	existsErr error
	createErr error
	findErr   error
	exists    bool
}

func (f *fakeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeRepo) Create(ctx context.Context, u *user.User) error {
	return f.createErr
}

func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, f.findErr
}

func newTestService(repo user.Repository) user.Service {
	return NewUserService(repo, jwt.NewManager("test-secret", time.Hour), bcrypt.MinCost)
}

func registerReq(email string) user.RegisterRequest {
	return user.RegisterRequest{Name: "Alice", Email: email, Password: "s3cret"}
}

func TestRegister_Success(t *testing.T) {
	svc := newTestService(repository.NewMemoryRepository())

	res, err := svc.Register(context.Background(), registerReq("alice@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "Alice", res.User.Name)
	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.NotEqual(t, "s3cret", res.User.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("s3cret")))
	assert.False(t, res.User.CreatedAt.IsZero())

	identity, err := svc.VerifyToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, identity.UserID)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.Equal(t, "Alice", identity.Name)
}

func TestRegister_KeepsSuppliedCreatedAt(t *testing.T) {
	svc := newTestService(repository.NewMemoryRepository())
	createdAt := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	req := registerReq("alice@example.com")
	req.CreatedAt = &createdAt

	res, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(res.User.CreatedAt))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService(repository.NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("alice@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq("alice@example.com"))
	assert.ErrorIs(t, err, user.ErrUserAlreadyExists)
}

func TestRegister_StoreRejectsDuplicateAfterCheck(t *testing.T) {
	// exists check passes but the unique constraint fires on insert
	svc := newTestService(&fakeRepo{createErr: user.ErrUserAlreadyExists})

	_, err := svc.Register(context.Background(), registerReq("alice@example.com"))
	assert.ErrorIs(t, err, user.ErrUserAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService(repository.NewMemoryRepository())

	tests := []struct {
		name string
		req  user.RegisterRequest
	}{
		{"missing name", user.RegisterRequest{Email: "a@example.com", Password: "x"}},
		{"missing email", user.RegisterRequest{Name: "A", Password: "x"}},
		{"bad email", user.RegisterRequest{Name: "A", Email: "not-an-email", Password: "x"}},
		{"missing password", user.RegisterRequest{Name: "A", Email: "a@example.com"}},
		{"long password", user.RegisterRequest{Name: "A", Email: "a@example.com", Password: strings.Repeat("x", 73)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			var verrs validation.Errors
			assert.True(t, errors.As(err, &verrs), "expected validation error, got %v", err)
		})
	}
}

func TestRegister_StorageFailure(t *testing.T) {
	dbErr := errors.New("db down")

	_, err := newTestService(&fakeRepo{existsErr: dbErr}).Register(context.Background(), registerReq("a@example.com"))
	assert.ErrorIs(t, err, dbErr)

	_, err = newTestService(&fakeRepo{createErr: dbErr}).Register(context.Background(), registerReq("a@example.com"))
	assert.ErrorIs(t, err, dbErr)
}

func TestLogin(t *testing.T) {
	svc := newTestService(repository.NewMemoryRepository())
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerReq("alice@example.com"))
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		res, err := svc.Login(ctx, user.LoginRequest{Email: "alice@example.com", Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, res.User.ID)

		identity, err := svc.VerifyToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, identity.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, user.LoginRequest{Email: "alice@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, user.ErrInvalidPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, user.LoginRequest{Email: "bob@example.com", Password: "s3cret"})
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		dbErr := errors.New("db down")
		_, err := newTestService(&fakeRepo{findErr: dbErr}).Login(ctx, user.LoginRequest{Email: "a@example.com", Password: "x"})
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestVerifyToken(t *testing.T) {
	svc := newTestService(repository.NewMemoryRepository())

	_, err := svc.VerifyToken("")
	assert.ErrorIs(t, err, user.ErrMissingToken)

	_, err = svc.VerifyToken("garbled.token.value")
	assert.ErrorIs(t, err, user.ErrInvalidToken)

	otherKey, err := jwt.NewManager("other-secret", time.Hour).GenerateToken("7f0c7a4e-3b5d-4a7b-9a0e-2f9b1c1d2e3f", "A", "a@example.com")
	require.NoError(t, err)
	_, err = svc.VerifyToken(otherKey)
	assert.ErrorIs(t, err, user.ErrInvalidToken)

	expired, err := jwt.NewManager("test-secret", -time.Minute).GenerateToken("7f0c7a4e-3b5d-4a7b-9a0e-2f9b1c1d2e3f", "A", "a@example.com")
	require.NoError(t, err)
	_, err = svc.VerifyToken(expired)
	assert.ErrorIs(t, err, user.ErrInvalidToken)

	badID, err := jwt.NewManager("test-secret", time.Hour).GenerateToken("not-a-uuid", "A", "a@example.com")
	require.NoError(t, err)
	_, err = svc.VerifyToken(badID)
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}
