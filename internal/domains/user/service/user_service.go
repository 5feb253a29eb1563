package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"book-manager/internal/domains/user"
	"book-manager/internal/shared"
	"book-manager/pkg/jwt"
)

// DefaultBcryptCost - balance giữa security và performance
const DefaultBcryptCost = 12

// userService implement user.Service interface (Auth Service)
type userService struct {
	repo       user.Repository // Credential store
	jwtManager *jwt.Manager    // Ký và verify token
	bcryptCost int
	now        func() time.Time
}

// NewUserService tạo service instance
// Inject repository và JWT manager qua constructor (Dependency Injection)
func NewUserService(repo user.Repository, jwtManager *jwt.Manager, bcryptCost int) user.Service {
	if bcryptCost == 0 {
		bcryptCost = DefaultBcryptCost
	}
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
		bcryptCost: bcryptCost,
		now:        time.Now,
	}
}

// ========================================
// AUTHENTICATION
// ========================================

// Register tạo user mới và trả về token
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.AuthResult, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. BUSINESS RULE: Check email already exists
	// Store cũng enforce unique, check này chỉ để fail sớm
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, user.ErrUserAlreadyExists
	}

	// 3. HASH PASSWORD
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, user.ErrPasswordTooLong
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. CREATE USER ENTITY
	createdAt := s.now().UTC()
	if req.CreatedAt != nil && !req.CreatedAt.IsZero() {
		createdAt = req.CreatedAt.UTC()
	}

	newUser := &user.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		CreatedAt:    createdAt,
	}

	// 5. PERSIST TO DATABASE
	if err := s.repo.Create(ctx, newUser); err != nil {
		if errors.Is(err, user.ErrUserAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// 6. ISSUE TOKEN
	token, err := s.issueToken(newUser)
	if err != nil {
		return nil, err
	}

	return &user.AuthResult{User: newUser, Token: token}, nil
}

// Login xác thực user và trả về token
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.AuthResult, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. FIND USER BY EMAIL
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	// 3. VERIFY PASSWORD
	// bcrypt.CompareHashAndPassword là constant-time comparison
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidPassword
	}

	// 4. ISSUE TOKEN
	token, err := s.issueToken(u)
	if err != nil {
		return nil, err
	}

	return &user.AuthResult{User: u, Token: token}, nil
}

// VerifyToken verify chữ ký + expiry, không có session store phía server
func (s *userService) VerifyToken(token string) (*shared.Identity, error) {
	if token == "" {
		return nil, user.ErrMissingToken
	}

	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad user id: %v", user.ErrInvalidToken, err)
	}

	return &shared.Identity{
		UserID: userID,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}

// ========================================
// HELPERS
// ========================================

func (s *userService) issueToken(u *user.User) (string, error) {
	token, err := s.jwtManager.GenerateToken(u.ID.String(), u.Name, u.Email)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}
