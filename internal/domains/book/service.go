package book

import (
	"context"

	"book-manager/internal/shared"
)

// Service - ownership-scoped CRUD.
// Identity luôn đến từ token đã verify
type Service interface {
	Create(ctx context.Context, identity shared.Identity, req CreateBookRequest) (*Book, error)
	ListMine(ctx context.Context, identity shared.Identity) ([]Book, error)
	GetByID(ctx context.Context, identity shared.Identity, bookID string) (*Book, error)
	Update(ctx context.Context, identity shared.Identity, bookID string, req UpdateBookRequest) (*Book, error)
	Delete(ctx context.Context, identity shared.Identity, bookID string) error
}
