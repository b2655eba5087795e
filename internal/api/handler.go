package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sheikhmdsamiul/productchat/internal/domain"
	"github.com/sheikhmdsamiul/productchat/internal/service"
)

// Handler handles the catalog and chat API requests
type Handler struct {
	catalogService *service.CatalogService
	chatService    *service.ChatService
	logger         *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(catalogService *service.CatalogService, chatService *service.ChatService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		catalogService: catalogService,
		chatService:    chatService,
		logger:         logger,
	}
}

// RegisterRoutes registers API routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/products", h.Products)
	r.POST("/chat", h.Chat)
}

// Products triggers a catalog fetch and replaces the indexed document set.
func (h *Handler) Products(c *gin.Context) {
	total, err := h.catalogService.Refresh(c.Request.Context())
	if err != nil {
		h.logger.Error("catalog refresh failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, domain.ProductsResponse{
		Message:       "Product catalog loaded successfully",
		TotalProducts: total,
	})
}

// Chat answers one user query against the indexed catalog.
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query cannot be empty"})
		return
	}

	history, answer, err := h.chatService.Chat(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Query cannot be empty"})
			return
		}
		h.logger.Error("chat request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error in chatbot: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, domain.ChatResponse{
		ChatHistory: history,
		Response:    answer,
	})
}
