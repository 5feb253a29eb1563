package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"book-manager/internal/domains/book"
	"book-manager/internal/shared/middleware"
	"book-manager/internal/shared/response"
)

// BookHandler - HTTP Handler cho /books (tất cả routes đều cần token)
type BookHandler struct {
	service book.Service
}

// NewBookHandler - Constructor with DI
func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// CreateBook - POST /books
func (h *BookHandler) CreateBook(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), *identity, req)
	if err != nil {
		h.handleError(c, err, book.MsgCreateFailed)
		return
	}

	response.JSON(c, http.StatusCreated, book.BookMessageResponse{
		Msg:  "Book created successfully",
		Book: b,
	})
}

// ListBooks - GET /books
// Chỉ trả books của caller, không phân trang
func (h *BookHandler) ListBooks(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	books, err := h.service.ListMine(c.Request.Context(), *identity)
	if err != nil {
		h.handleError(c, err, book.MsgListFailed)
		return
	}

	response.JSON(c, http.StatusOK, book.ListBooksResponse{Books: books})
}

// GetBook - GET /books/:bookId
func (h *BookHandler) GetBook(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), *identity, c.Param("bookId"))
	if err != nil {
		h.handleError(c, err, book.MsgGetFailed)
		return
	}

	response.JSON(c, http.StatusOK, book.BookResponse{Book: b})
}

// UpdateBook - PATCH /books/:bookId
func (h *BookHandler) UpdateBook(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	// Body rỗng = update không đổi gì, trả về book hiện tại
	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), *identity, c.Param("bookId"), req)
	if err != nil {
		h.handleError(c, err, book.MsgUpdateFailed)
		return
	}

	response.JSON(c, http.StatusOK, book.BookMessageResponse{
		Msg:  "Book updated successfully",
		Book: b,
	})
}

// DeleteBook - DELETE /books/:bookId
func (h *BookHandler) DeleteBook(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	if err := h.service.Delete(c.Request.Context(), *identity, c.Param("bookId")); err != nil {
		h.handleError(c, err, book.MsgDeleteFailed)
		return
	}

	response.Message(c, http.StatusOK, "Book deleted successfully")
}

// handleError map domain errors thành HTTP status codes.
// faultMsg là message trả về client khi storage lỗi
func (h *BookHandler) handleError(c *gin.Context, err error, faultMsg string) {
	var verrs validation.Errors

	switch {
	case errors.As(err, &verrs):
		response.BadRequest(c, verrs.Error())
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, book.MsgBookNotFound)
	case errors.Is(err, book.ErrForbidden):
		response.Forbidden(c, book.MsgForbidden)
	default:
		log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("book_id", c.Param("bookId")).
			Msg("book request failed")
		response.InternalServerError(c, faultMsg)
	}
}
