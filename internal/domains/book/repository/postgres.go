package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-manager/internal/domains/book"
)

// postgresRepository - Raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository - Constructor
func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

const selectBookColumns = `
	SELECT id, title, author, description, publication_date, owner_id, owner_email
	FROM books
`

func scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.Description,
		&b.PublicationDate,
		&b.Owner.ID,
		&b.Owner.Email,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create insert book mới; owner lấy từ identity ở service layer
func (r *postgresRepository) Create(ctx context.Context, b *book.Book) error {
	query := `
		INSERT INTO books (id, title, author, description, publication_date, owner_id, owner_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		b.ID,
		b.Title,
		b.Author,
		b.Description,
		b.PublicationDate,
		b.Owner.ID,
		b.Owner.Email,
	)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	b, err := scanBook(r.pool.QueryRow(ctx, selectBookColumns+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book by id: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]book.Book, error) {
	rows, err := r.pool.Query(ctx, selectBookColumns+` WHERE owner_id = $1`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := make([]book.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}

	return books, nil
}

// Update chỉ ghi 4 mutable fields, owner_id/owner_email không bao giờ nằm trong SET
func (r *postgresRepository) Update(ctx context.Context, b *book.Book) error {
	query := `
		UPDATE books
		SET title = $2, author = $3, description = $4, publication_date = $5
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		b.ID,
		b.Title,
		b.Author,
		b.Description,
		b.PublicationDate,
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}
