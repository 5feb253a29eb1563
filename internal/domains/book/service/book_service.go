package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"book-manager/internal/domains/book"
	"book-manager/internal/shared"
)

// bookService implement book.Service.
// Mọi operation đều scoped theo identity của caller
type bookService struct {
	repo book.Repository
	now  func() time.Time
}

// NewBookService - Constructor with DI
func NewBookService(repo book.Repository) book.Service {
	return &bookService{
		repo: repo,
		now:  time.Now,
	}
}

// Create tạo book mới, owner = caller
func (s *bookService) Create(ctx context.Context, identity shared.Identity, req book.CreateBookRequest) (*book.Book, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. BUILD ENTITY
	publishedAt := s.now().UTC()
	if req.PublicationDate != nil && !req.PublicationDate.IsZero() {
		publishedAt = req.PublicationDate.UTC()
	}

	b := &book.Book{
		ID:              uuid.New(),
		Title:           req.Title,
		Author:          req.Author,
		Description:     req.Description,
		PublicationDate: publishedAt,
		Owner: book.Owner{
			ID:    identity.UserID,
			Email: identity.Email,
		},
	}

	// 3. PERSIST
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return b, nil
}

// ListMine trả về books của caller, không bao giờ nil
func (s *bookService) ListMine(ctx context.Context, identity shared.Identity) ([]book.Book, error) {
	books, err := s.repo.ListByOwner(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if books == nil {
		books = []book.Book{}
	}
	return books, nil
}

func (s *bookService) GetByID(ctx context.Context, identity shared.Identity, bookID string) (*book.Book, error) {
	return s.findOwned(ctx, identity, bookID)
}

// Update - partial update, owner giữ nguyên
func (s *bookService) Update(ctx context.Context, identity shared.Identity, bookID string, req book.UpdateBookRequest) (*book.Book, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. LOAD + OWNERSHIP CHECK
	b, err := s.findOwned(ctx, identity, bookID)
	if err != nil {
		return nil, err
	}

	// 3. APPLY + PERSIST
	req.ApplyTo(b)
	if err := s.repo.Update(ctx, b); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update book: %w", err)
	}

	return b, nil
}

func (s *bookService) Delete(ctx context.Context, identity shared.Identity, bookID string) error {
	b, err := s.findOwned(ctx, identity, bookID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, b.ID); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			return err
		}
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

// ========================================
// HELPERS
// ========================================

// findOwned load book và check owner.
// ID không parse được coi như không tồn tại
func (s *bookService) findOwned(ctx context.Context, identity shared.Identity, bookID string) (*book.Book, error) {
	id, err := uuid.Parse(bookID)
	if err != nil {
		return nil, book.ErrBookNotFound
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find book: %w", err)
	}

	if !b.IsOwnedBy(identity.UserID) {
		return nil, book.ErrForbidden
	}

	return b, nil
}
