package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"book-manager/internal/domains/user"
	"book-manager/internal/shared"
	"book-manager/internal/shared/response"
)

const (
	// TokenHeader là custom header chứa token (không dùng "Authorization: Bearer")
	TokenHeader = "token"

	identityKey = "identity"
)

// TokenVerifier là phần của Auth Service mà middleware cần
type TokenVerifier interface {
	VerifyToken(token string) (*shared.Identity, error)
}

// AuthMiddleware - Middleware xác thực token trong header "token"
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ header
		token := c.GetHeader(TokenHeader)

		// 2. Verify token qua Auth Service
		identity, err := verifier.VerifyToken(token)
		if err != nil {
			msg := user.MsgInvalidToken
			if errors.Is(err, user.ErrMissingToken) {
				msg = user.MsgMissingToken
			}

			log.Debug().
				Str("request_id", c.GetString(requestIDKey)).
				Err(err).
				Msg("token rejected")

			response.Unauthorized(c, msg)
			return
		}

		// 3. Set identity vào context cho handlers
		c.Set(identityKey, identity)

		c.Next()
	}
}

// GetIdentity lấy identity do AuthMiddleware set.
// ok = false nếu route không đi qua AuthMiddleware
func GetIdentity(c *gin.Context) (*shared.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*shared.Identity)
	return identity, ok && identity != nil
}
