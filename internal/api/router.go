package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authHandler "recipe-chat/internal/api/handlers/auth"
	chatHandler "recipe-chat/internal/api/handlers/chat"
	"recipe-chat/internal/api/handlers/health"
	recipeHandler "recipe-chat/internal/api/handlers/recipe"
	"recipe-chat/internal/api/middleware"
	"recipe-chat/internal/core/admin"
	chatService "recipe-chat/internal/core/chat"
	"recipe-chat/internal/infrastructure/config"
	"recipe-chat/internal/pkg/common"
	"recipe-chat/internal/storage"
)

const (
	// Completion calls dominate request latency; the budget covers one
	// slow model round trip.
	timeoutDuration = 60 * time.Second
	maxBodySize     = 1 << 20
)

// SetupRouter wires middleware, handlers and routes.
func SetupRouter(cfg *config.Config, store storage.Store, chatSvc *chatService.Service, sessions *admin.Sessions) *gin.Engine {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.BodySizeLimit(maxBodySize))
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	healthH := health.NewHandler(cfg, store)
	authH := authHandler.NewHandler(sessions)
	chatH := chatHandler.NewHandler(chatSvc, store)
	recipeH := recipeHandler.NewHandler(store)

	backend := router.Group("/backend")
	{
		backend.GET("/health", healthH.Check)

		adminGroup := backend.Group("/admin")
		{
			adminGroup.GET("/me", authH.Me)
			adminGroup.POST("/login", authH.Login)
			adminGroup.POST("/logout", authH.Logout)
		}

		// Model-backed routes share one completion budget.
		completionLimit := middleware.RateLimit(60, time.Minute)

		chatGroup := backend.Group("/chat")
		{
			chatGroup.POST("/options", completionLimit, chatH.Options)
			chatGroup.POST("/feedback", chatH.Feedback)
		}

		backend.POST("/generuj", completionLimit, chatH.Generate)
		backend.GET("/public/recipes/:id", recipeH.PublicGet)

		recipes := backend.Group("/recipes", middleware.RequireAdmin(sessions))
		{
			recipes.GET("", recipeH.List)
			recipes.POST("", recipeH.Create)
			recipes.GET("/:id", recipeH.Get)
			recipes.PUT("/:id", recipeH.Update)
			recipes.DELETE("/:id", recipeH.Delete)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nieznany endpoint."})
	})

	common.LogInfo("router setup completed",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("storage", store.Backend()),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router
}
