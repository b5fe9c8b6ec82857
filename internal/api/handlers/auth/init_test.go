package auth

import (
	"go.uber.org/zap"

	"recipe-chat/internal/pkg/common"
)

// Tests exercise code paths that use the global logger, which is only
// initialized by main in production.
func init() {
	common.Logger = zap.NewNop()
}
