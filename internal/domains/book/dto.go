package book

import validation "github.com/go-ozzo/ozzo-validation/v4"

// CreateBookRequest - POST /books
type CreateBookRequest struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Description     string `json:"description"`
	PublicationDate *Date  `json:"publicationDate,omitempty"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Author, validation.Required.Error("author is required")),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
	)
}

// UpdateBookRequest - PATCH /books/:bookId
// Field nil = giữ nguyên giá trị cũ
type UpdateBookRequest struct {
	Title           *string `json:"title,omitempty"`
	Author          *string `json:"author,omitempty"`
	Description     *string `json:"description,omitempty"`
	PublicationDate *Date   `json:"publicationDate,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty.Error("title cannot be empty")),
		validation.Field(&r.Author, validation.NilOrNotEmpty.Error("author cannot be empty")),
		validation.Field(&r.Description, validation.NilOrNotEmpty.Error("description cannot be empty")),
	)
}

// ApplyTo ghi đè các mutable fields có mặt trong request. Owner không bị đụng tới
func (r UpdateBookRequest) ApplyTo(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Author != nil {
		b.Author = *r.Author
	}
	if r.Description != nil {
		b.Description = *r.Description
	}
	if r.PublicationDate != nil && !r.PublicationDate.IsZero() {
		b.PublicationDate = r.PublicationDate.UTC()
	}
}

// ========================================
// RESPONSES
// ========================================

type BookResponse struct {
	Book *Book `json:"book"`
}

type BookMessageResponse struct {
	Msg  string `json:"msg"`
	Book *Book  `json:"book"`
}

type ListBooksResponse struct {
	Books []Book `json:"books"`
}
