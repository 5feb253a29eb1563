package book

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")
	ErrForbidden    = errors.New("not authorized to access this book")
)

// Client-facing messages
const (
	MsgBookNotFound = "Book not found"
	MsgForbidden    = "Not authorized to access this book"
	MsgCreateFailed = "Failed to create book"
	MsgListFailed   = "Failed to fetch books"
	MsgGetFailed    = "Failed to fetch book"
	MsgUpdateFailed = "Failed to update book"
	MsgDeleteFailed = "Failed to delete book"
)
