package user

import (
	"context"

	"book-manager/internal/shared"
)

// Service định nghĩa Auth Service contract
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)

	// VerifyToken không chạm tới store: verify thuần cryptographic
	VerifyToken(token string) (*shared.Identity, error)
}
