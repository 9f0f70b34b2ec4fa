package middleware

import (
	"net/http"
	"strings"

	"go-resto-manager/helpers"
	"go-resto-manager/models"

	"github.com/gin-gonic/gin"
)

// Authentication validates the bearer token and stashes the caller's
// identity in the gin context.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Request.Header.Get("Authorization")
		if clientToken == "" {
			clientToken = c.Request.Header.Get("token")
		}
		clientToken = strings.TrimPrefix(clientToken, "Bearer ")
		if clientToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			c.Abort()
			return
		}

		claims, err := helpers.ValidateToken(clientToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Set("uid", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRole gates a route to the given roles. Admin always passes.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("role")
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "role missing from token"})
			c.Abort()
			return
		}
		current, _ := role.(models.Role)
		if current == models.RoleAdmin {
			c.Next()
			return
		}
		for _, allowed := range roles {
			if current == allowed {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		c.Abort()
	}
}
