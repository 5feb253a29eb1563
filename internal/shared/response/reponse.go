package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody là shape chung cho mọi lỗi: {"error": "..."}
type ErrorBody struct {
	Error string `json:"error"`
}

// Success responses
func JSON(c *gin.Context, statusCode int, body interface{}) {
	c.JSON(statusCode, body)
}

func Message(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, gin.H{"msg": msg})
}

// Error responses
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// AbortWithError ghi lỗi và dừng middleware chain
func AbortWithError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: message})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

func Unauthorized(c *gin.Context, message string) {
	AbortWithError(c, 401, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 403, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, 500, message)
}
