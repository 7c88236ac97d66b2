package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/auth"
	apierrors "tasktracker/internal/errors"
)

// Context keys for the authenticated identity.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
)

// RequireAuth verifies the bearer token on incoming requests and stores
// the decoded identity in the request context.
//
// The Authorization value is split on spaces and the second field is taken
// as the token; the scheme word itself is not checked. A non-Bearer scheme
// therefore fails token verification rather than being rejected up front.
// Missing header aside, every failure is reported as TOKEN_INVALID so that
// callers cannot distinguish expired from malformed tokens.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apierrors.Unauthorized(c, apierrors.ErrCodeTokenRequired, "Authorization header is required")
			c.Abort()
			return
		}

		var tokenString string
		if parts := strings.Split(authHeader, " "); len(parts) > 1 {
			tokenString = parts[1]
		}

		claims, err := auth.VerifyToken(tokenString, secret)
		if err != nil {
			apierrors.Unauthorized(c, apierrors.ErrCodeTokenInvalid, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUsername, claims.Username)
		c.Next()
	}
}

// GetUsername retrieves the authenticated username from context.
func GetUsername(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextKeyUsername)
	if !exists {
		return "", false
	}

	username, ok := value.(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}

// GetUserID retrieves the authenticated user ID from context.
func GetUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}

	userID, ok := value.(uint64)
	if !ok {
		return 0, false
	}
	return userID, true
}
