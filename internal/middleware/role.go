package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole restringe o grupo aos papéis informados.
// super_admin passa por qualquer guarda.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.MustGet(ContextUserRole).(string)

		if role == "super_admin" {
			c.Next()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
	}
}
