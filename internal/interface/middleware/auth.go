package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ferroblog/internal/domain/security"
	"ferroblog/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// Auth validates the bearer token and injects the authenticated user into the
// Gin context. Every verifier failure, expired tokens included, is treated as
// an authentication reject here rather than a server fault.
func Auth(tokens security.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.Abort()
			return
		}

		uid, err := uuid.Parse(claims.Sub)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid token subject", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, uid)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(CtxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	uid, ok := v.(uuid.UUID)
	return uid, ok
}
