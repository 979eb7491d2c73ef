package middleware

import (
	"net/http"

	"pardarsh/internal/domain"
	"pardarsh/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole admits the request only when the authenticated caller's role is
// in the given set. Must run after JWTAuth.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "Authorization denied")
			c.Abort()
			return
		}

		callerRole := domain.Role(roleVal.(string))
		for _, r := range roles {
			if callerRole == r {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "Access denied. Not authorized to access this resource")
		c.Abort()
	}
}
