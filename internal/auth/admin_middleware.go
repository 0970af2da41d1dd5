package auth

import (
	"net/http"

	"gdsgames/backend/internal/handler"
	"gdsgames/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware checks the admin flag of the authenticated user. The flag
// is re-fetched on every call rather than trusted from the token. It must be
// used AFTER the standard AuthMiddleware.
func AdminMiddleware(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			// Should not happen if AuthMiddleware runs first.
			handler.AbortFail(c, http.StatusUnauthorized, "authentication required")
			return
		}

		user, err := s.GetUserByID(userID.(string))
		if err != nil {
			handler.AbortFail(c, http.StatusNotFound, "authenticated user not found")
			return
		}

		if !user.IsAdmin {
			handler.AbortFail(c, http.StatusForbidden, "admin access required")
			return
		}

		c.Next()
	}
}
