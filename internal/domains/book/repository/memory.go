package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"book-manager/internal/domains/book"
)

// memoryRepository - Book Store trong RAM, giữ thứ tự insert
type memoryRepository struct {
	mu    sync.RWMutex
	books map[uuid.UUID]book.Book
	order []uuid.UUID
}

func NewMemoryRepository() book.Repository {
	return &memoryRepository{books: make(map[uuid.UUID]book.Book)}
}

func (r *memoryRepository) Create(ctx context.Context, b *book.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.books[b.ID] = *b
	r.order = append(r.order, b.ID)
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return &b, nil
}

func (r *memoryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]book.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]book.Book, 0)
	for _, id := range r.order {
		if b := r.books[id]; b.Owner.ID == ownerID {
			books = append(books, b)
		}
	}
	return books, nil
}

func (r *memoryRepository) Update(ctx context.Context, b *book.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.books[b.ID]
	if !ok {
		return book.ErrBookNotFound
	}

	existing.Title = b.Title
	existing.Author = b.Author
	existing.Description = b.Description
	existing.PublicationDate = b.PublicationDate
	r.books[b.ID] = existing
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return book.ErrBookNotFound
	}

	delete(r.books, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
