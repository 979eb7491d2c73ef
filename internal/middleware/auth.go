package middleware

import (
	"net/http"
	"strings"

	"pardarsh/internal/pkg/jwt"
	"pardarsh/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// JWTAuth verifies the bearer token and attaches the caller's identity
// (user_id, role) to the request context. Routes behind it are reachable by
// any valid token holder; combine with RequireRole to gate by role.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization denied")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization denied")
			c.Abort()
			return
		}

		claims, err := jwtService.Verify(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
