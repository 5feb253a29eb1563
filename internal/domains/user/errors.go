package user

import "errors"

// Repository-level errors
var (
	// Not Found
	ErrUserNotFound = errors.New("user not found")

	// Conflict
	ErrUserAlreadyExists = errors.New("user already exists")
)

// Service-level (Business logic) errors
var (
	// Authentication
	ErrInvalidPassword = errors.New("invalid password")

	// Token
	ErrMissingToken = errors.New("no token, authorization denied")
	ErrInvalidToken = errors.New("token is not valid")
)

// Validation errors
var (
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
)

// Client-facing messages, giữ nguyên wording của API
const (
	MsgUserAlreadyExists = "User already exists"
	MsgUserNotFound      = "User not found!"
	MsgInvalidPassword   = "Invalid password!"
	MsgMissingToken      = "No token, authorization denied"
	MsgInvalidToken      = "Token is not valid"
)
