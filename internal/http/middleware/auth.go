package middleware

import (
	"net/http"
	"strings"

	"todo_webapp/internal/service"

	"github.com/gin-gonic/gin"
)

// Context keys populated by JWT for downstream handlers.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

// JWT guards a route with a bearer token. A missing Authorization header is
// 401; a malformed header or a token that fails signature/expiry checks is
// 403. On success the decoded user id and username land in the gin context,
// and handlers must use only those, never a client-supplied owner id.
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid authorization header"})
			return
		}

		claims, err := service.ParseJWT(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Next()
	}
}
