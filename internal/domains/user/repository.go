package user

import "context"

// Repository định nghĩa contract cho credential store
type Repository interface {
	// Create tạo user mới
	// Returns: ErrUserAlreadyExists nếu email đã tồn tại (enforce ở store level)
	Create(ctx context.Context, user *User) error

	// FindByEmail tìm user theo email (dùng cho login)
	// Returns: ErrUserNotFound nếu không tìm thấy
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail kiểm tra email đã tồn tại chưa
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
