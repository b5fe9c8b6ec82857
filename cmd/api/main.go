package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"recipe-chat/internal/api"
	"recipe-chat/internal/core/admin"
	"recipe-chat/internal/core/ai/cache"
	"recipe-chat/internal/core/ai/groq"
	"recipe-chat/internal/core/chat"
	"recipe-chat/internal/infrastructure/config"
	"recipe-chat/internal/pkg/common"
	"recipe-chat/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("configuration loaded",
		zap.String("groq_api_key", config.MaskAPIKey(cfg.Groq.APIKey)),
		zap.String("groq_model", cfg.Groq.Model),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	cacheSvc, err := cache.NewService(cfg.Cache)
	if err != nil {
		// Cache is an optimization; a dead Redis never blocks startup.
		common.LogWarn("completion cache unavailable", zap.Error(err))
		disabled := cfg.Cache
		disabled.Enabled = false
		cacheSvc, _ = cache.NewService(disabled)
	}
	defer cacheSvc.Close()

	store, err := storage.Open(cfg.Storage)
	if err != nil {
		common.LogFatal("failed to open store", zap.Error(err))
	}
	defer store.Close()

	completer := groq.NewClient(cfg.Groq, cacheSvc)
	defer completer.Close()

	chatSvc := chat.NewService(store, completer)
	sessions := admin.NewSessions(cfg.Admin)

	router := api.SetupRouter(cfg, store, chatSvc, sessions)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	instanceID := common.GenerateUUID()

	go func() {
		common.LogInfo("starting server",
			zap.String("instance_id", instanceID),
			zap.Int("port", cfg.Server.Port),
			zap.String("storage", store.Backend()),
			zap.Bool("debug", cfg.App.Debug),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("server failed", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	common.LogInfo("server exited")
}
