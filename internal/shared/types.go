package shared

import "github.com/google/uuid"

// Identity là thông tin user đã xác thực, extract từ token.
// Đặt ở shared để tránh import cycle giữa user và book domain
type Identity struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
}
