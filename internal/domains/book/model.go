package book

import (
	"time"

	"github.com/google/uuid"
)

// Owner là snapshot của user tại thời điểm tạo book.
// Không re-sync khi user đổi email
type Owner struct {
	ID    uuid.UUID `db:"owner_id" json:"id"`
	Email string    `db:"owner_email" json:"email"`
}

// Book - domain entity, ánh xạ bảng books
type Book struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Author          string    `db:"author" json:"author"`
	Description     string    `db:"description" json:"description"`
	PublicationDate time.Time `db:"publication_date" json:"publicationDate"`

	// Owner cố định từ lúc tạo, update không được đổi
	Owner Owner `json:"owner"`
}

// IsOwnedBy kiểm tra quyền sở hữu
func (b *Book) IsOwnedBy(userID uuid.UUID) bool {
	return b.Owner.ID == userID
}

// CacheKey - "book:<id>"
func CacheKey(id uuid.UUID) string {
	return "book:" + id.String()
}
