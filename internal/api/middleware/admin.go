package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-chat/internal/core/admin"
	"recipe-chat/internal/pkg/common"
)

// SessionCookie is the admin session cookie name.
const SessionCookie = "admin_session"

// RequireAdmin aborts with 401 unless the request carries a valid admin
// session cookie.
func RequireAdmin(sessions *admin.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || !sessions.Verify(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": common.ErrUnauthorized.Message,
			})
			return
		}
		c.Next()
	}
}

// IsAdmin reports whether the request carries a valid admin session without
// gating it.
func IsAdmin(c *gin.Context, sessions *admin.Sessions) bool {
	token, err := c.Cookie(SessionCookie)
	return err == nil && sessions.Verify(token)
}
