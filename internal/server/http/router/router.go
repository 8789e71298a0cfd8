package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/action"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/config"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/server/http/handlers"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(registry *action.Registry, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	webhookHandler := handlers.NewWebhookHandler(registry, cfg.RequestTimeout, logger)
	healthHandler := handlers.NewHealthHandler(registry)

	engine.POST("/webhook", webhookHandler.Run)
	engine.GET("/health", healthHandler.Status)
	engine.GET("/actions", healthHandler.Actions)

	return engine
}
