package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tripmate/pkg/utils"
)

const UserIDKey = "user_id"

// OptionalJWTMiddleware identifies the caller from a Bearer token when one is
// present and valid. Missing or invalid tokens leave the request as a guest.
func OptionalJWTMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(secret, tokenString)
		if err == nil {
			c.Set(UserIDKey, claims.UserID)
		}
		c.Next()
	}
}

// UserID returns the identified caller, or nil for guests.
func UserID(c *gin.Context) *string {
	id := c.GetString(UserIDKey)
	if id == "" {
		return nil
	}
	return &id
}
