package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// AUTH DTOs
// ========================================

// RegisterRequest - POST /register
type RegisterRequest struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(3, 255),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(1, 72).Error("password must be at most 72 characters"),
		),
	)
}

// LoginRequest - POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("email is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// AuthResult là kết quả của Register/Login: user đã lưu + token đã ký
type AuthResult struct {
	User  *User
	Token string
}

// RegisterResponse - 201 body của /register
type RegisterResponse struct {
	Msg     string `json:"msg"`
	NewUser *User  `json:"newUser"`
	Token   string `json:"token"`
}

// LoginResponse - 201 body của /login
type LoginResponse struct {
	Msg   string `json:"msg"`
	User  *User  `json:"user"`
	Token string `json:"token"`
}
