package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/staffhub/staffhub/internal/auth"
)

// userIDKey is the gin context key holding the authenticated user id.
const userIDKey = "user_id"

// Auth returns a middleware that requires a valid bearer token and stores its
// subject as the caller's user id.
func Auth(verifier auth.Verifier, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		claims, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			logger.Debugw("token rejected", "path", c.Request.URL.Path, "error", err)
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, "token expired")
				return
			}
			abortUnauthorized(c, "invalid token")
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *gin.Context) (string, bool) {
	id := c.GetString(userIDKey)
	return id, id != ""
}

// SetUserID stores userID as the authenticated caller.
func SetUserID(c *gin.Context, userID string) {
	c.Set(userIDKey, userID)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
