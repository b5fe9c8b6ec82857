package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-chat/internal/infrastructure/config"
	"recipe-chat/internal/pkg/common"
	"recipe-chat/internal/storage"
)

// Handler reports service health and storage status.
type Handler struct {
	cfg   *config.Config
	store storage.Store
}

func NewHandler(cfg *config.Config, store storage.Store) *Handler {
	return &Handler{cfg: cfg, store: store}
}

// Check reports the active storage backend and record counts.
func (h *Handler) Check(c *gin.Context) {
	recipes, err := h.store.CountRecipes()
	if err != nil {
		common.LogError("health check: recipe count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":    false,
			"error": common.ErrInternalError.Message,
		})
		return
	}

	// The feedback count is informational; a failure does not mark the
	// service unhealthy.
	feedback, err := h.store.CountFeedback()
	if err != nil {
		common.LogWarn("health check: feedback count failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"storage":  h.store.Backend(),
		"dbName":   h.cfg.Storage.DBName,
		"dbTable":  h.cfg.Storage.DBTable,
		"dbError":  storage.LastDBError(),
		"recipes":  recipes,
		"feedback": feedback,
	})
}
