package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"book-manager/internal/domains/user"
	"book-manager/internal/shared/response"
	"book-manager/pkg/logger"
)

// UserHandler xử lý HTTP requests cho auth (register/login)
// Struct này là stateless - chỉ chứa dependencies
type UserHandler struct {
	service user.Service
}

// NewUserHandler tạo handler instance
func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// ========================================
// AUTHENTICATION ENDPOINTS
// ========================================

// Register xử lý POST /register
func (h *UserHandler) Register(c *gin.Context) {
	// STEP 1: PARSE REQUEST BODY
	var req user.RegisterRequest
	if err := h.bindJSON(c, &req); err != nil {
		return
	}

	// STEP 2: CALL SERVICE LAYER
	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// STEP 3: SUCCESS RESPONSE
	response.JSON(c, http.StatusCreated, user.RegisterResponse{
		Msg:     "User registered successfully",
		NewUser: res.User,
		Token:   res.Token,
	})
}

// Login xử lý POST /login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := h.bindJSON(c, &req); err != nil {
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, user.LoginResponse{
		Msg:   "User logged in successfully",
		User:  res.User,
		Token: res.Token,
	})
}

// ========================================
// HELPERS
// ========================================

// handleError map domain errors thành HTTP status codes
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors

	switch {
	// 400 Bad Request - validation
	case errors.As(err, &verrs):
		response.BadRequest(c, verrs.Error())
	case errors.Is(err, user.ErrPasswordTooLong):
		response.BadRequest(c, err.Error())

	// 400 - register/login failures
	case errors.Is(err, user.ErrUserAlreadyExists):
		response.BadRequest(c, user.MsgUserAlreadyExists)
	case errors.Is(err, user.ErrUserNotFound):
		response.BadRequest(c, user.MsgUserNotFound)
	case errors.Is(err, user.ErrInvalidPassword):
		response.BadRequest(c, user.MsgInvalidPassword)

	// 500 Internal Server Error - storage faults
	default:
		logger.Error("auth request failed", err)
		response.InternalServerError(c, "Internal server error")
	}
}

func (h *UserHandler) bindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return err
	}
	return nil
}
