package storage

import (
	"recipe-chat/internal/infrastructure/config"
	"recipe-chat/internal/pkg/common"

	"go.uber.org/zap"
)

// lastDBError keeps the MySQL init failure for the health endpoint. Written
// once during startup, read-only afterwards.
var lastDBError string

// LastDBError returns the MySQL init failure message, if the service fell
// back to the file store. Empty when MySQL is live or was never configured.
func LastDBError() string {
	return lastDBError
}

// Open selects the store backend: MySQL when configured and reachable,
// otherwise the JSON file store. A failed MySQL init is logged and falls
// back rather than aborting startup.
func Open(cfg config.StorageConfig) (Store, error) {
	if cfg.HasDBConfig() {
		store, err := NewMySQLStore(cfg)
		if err == nil {
			common.LogInfo("connected to mysql store",
				zap.String("host", cfg.DBHost),
				zap.String("database", cfg.DBName),
				zap.String("table", cfg.DBTable),
			)
			return store, nil
		}
		lastDBError = err.Error()
		common.LogWarn("mysql init failed, falling back to file store",
			zap.Error(err),
		)
	}

	store, err := NewFileStore(cfg.FilePath)
	if err != nil {
		return nil, err
	}
	common.LogInfo("using file store", zap.String("path", cfg.FilePath))
	return store, nil
}
