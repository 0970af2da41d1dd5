package auth

import (
	"net/http"
	"strings"

	"gdsgames/backend/internal/handler"
	"gdsgames/backend/internal/store"
	"gdsgames/backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid Bearer token whose session record is still
// active and unexpired. On success it stores userID and sessionID in the
// request context.
func AuthMiddleware(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			handler.AbortFail(c, http.StatusUnauthorized, "authentication required")
			return
		}

		claims, err := token.Parse(parts[1])
		if err != nil {
			handler.AbortFail(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		session, err := s.GetSession(claims.SessionID)
		if err != nil || session.UserID != claims.UserID {
			handler.AbortFail(c, http.StatusUnauthorized, "session expired")
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("sessionID", claims.SessionID)
		c.Next()
	}
}
