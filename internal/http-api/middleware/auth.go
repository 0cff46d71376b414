package middleware

import (
	"net/http"
	"strings"

	"gamecomment/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAdmin for downstream handlers.
const (
	ContextAdmin   = "admin"
	ContextAdminID = "adminID"
)

// RequireAdmin is a Gin middleware guarding the admin surface. It checks the
// Bearer token and re-resolves the identity against the configured tenant;
// handlers behind it can rely on ContextAdmin being set.
func RequireAdmin(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication token required"})
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization header format"})
			c.Abort()
			return
		}

		admin, err := authService.VerifyToken(parts[1])
		if err != nil {
			// Bad signature, expiry, and unknown-or-foreign-tenant identity
			// all look the same from outside.
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid authentication token"})
			c.Abort()
			return
		}

		c.Set(ContextAdmin, admin)
		c.Set(ContextAdminID, admin.ID)

		c.Next()
	}
}
