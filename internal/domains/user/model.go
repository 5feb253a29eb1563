package user

import (
	"time"

	"github.com/google/uuid"

	"book-manager/internal/shared"
)

// User là domain entity - ánh xạ 1:1 với bảng users trong DB
type User struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Name  string    `db:"name" json:"name"`
	Email string    `db:"email" json:"email"`

	// Authentication
	PasswordHash string `db:"password_hash" json:"-"` // Never expose in JSON

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Identity trả về phần thông tin được ký vào token
func (u *User) Identity() shared.Identity {
	return shared.Identity{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
	}
}
