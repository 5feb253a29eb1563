package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository - Book Store contract.
// Mỗi method là một single-row operation, atomic ở store level
type Repository interface {
	Create(ctx context.Context, book *Book) error

	// FindByID returns ErrBookNotFound nếu không tồn tại
	FindByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// ListByOwner trả về slice (không nil), thứ tự mặc định của store
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Book, error)

	// Update ghi đè title/author/description/publication_date.
	// Returns ErrBookNotFound nếu row đã bị xóa
	Update(ctx context.Context, book *Book) error

	// Delete hard delete. Returns ErrBookNotFound nếu không có row nào bị xóa
	Delete(ctx context.Context, id uuid.UUID) error
}
