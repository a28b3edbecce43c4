package middleware

import (
	"net/http"

	"vantage/internal/domain"

	"github.com/gin-gonic/gin"
)

// AdminRequired gates a route to callers whose token carries the ADMIN role.
// Must run after AuthRequired, which stores the role claim in the context.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
