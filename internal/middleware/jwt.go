package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/todolist/internal/pkg/jwt"
)

const ContextUserIDKey = "user_id"

// JWTAuth guards protected routes. A missing or malformed Authorization
// header is reported as 401; a token that fails signature or expiry checks
// is reported as 403. On success the subject user id is injected into the
// request context for downstream handlers.
func JWTAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		claims, err := jwt.ParseToken(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}
		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}
