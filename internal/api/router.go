package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sheikhmdsamiul/productchat/internal/api/middleware"
	"github.com/sheikhmdsamiul/productchat/internal/service"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	AllowOrigins []string
	Debug        bool
}

// SetupRouter sets up the Gin router
func SetupRouter(
	catalogService *service.CatalogService,
	chatService *service.ChatService,
	logger *zap.Logger,
	cfg RouterConfig,
) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	handler := NewHandler(catalogService, chatService, logger)
	apiGroup := r.Group("/api")
	handler.RegisterRoutes(apiGroup)

	return r
}
