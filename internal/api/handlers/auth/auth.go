// Package auth exposes the admin login surface. Sessions live in an
// HttpOnly cookie; there is a single admin identity guarded by password.
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-chat/internal/api/middleware"
	"recipe-chat/internal/core/admin"
	"recipe-chat/internal/pkg/common"
)

type Handler struct {
	sessions *admin.Sessions
}

func NewHandler(sessions *admin.Sessions) *Handler {
	return &Handler{sessions: sessions}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login checks the admin password and sets the session cookie.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := common.DecodeJSON(c.Request.Body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrInvalidRequest.Message})
		return
	}

	if !h.sessions.CheckPassword(common.SafeString(req.Password)) {
		common.LogWarn("admin login rejected", zap.String("ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Zle haslo!"})
		return
	}

	token, err := h.sessions.Issue()
	if err != nil {
		common.LogError("admin session issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": common.ErrInternalError.Message})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Logout clears the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me reports whether the caller holds a valid admin session.
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"loggedIn": middleware.IsAdmin(c, h.sessions)})
}
