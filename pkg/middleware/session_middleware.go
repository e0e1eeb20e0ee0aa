package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripreco/pkg/utils"
)

// SessionAuthMiddleware validates the bearer session token and exposes
// session_id and user_id to handlers. Liveness of the session itself is
// checked against the store by the handlers.
func SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateSessionToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("session_id", claims.ID)
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
