package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sheikhmdsamiul/productchat/internal/api"
	"github.com/sheikhmdsamiul/productchat/internal/catalog"
	"github.com/sheikhmdsamiul/productchat/internal/config"
	"github.com/sheikhmdsamiul/productchat/internal/domain"
	"github.com/sheikhmdsamiul/productchat/internal/embeddings"
	"github.com/sheikhmdsamiul/productchat/internal/llm"
	"github.com/sheikhmdsamiul/productchat/internal/rag"
	"github.com/sheikhmdsamiul/productchat/internal/service"
	"github.com/sheikhmdsamiul/productchat/internal/state"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Embeddings initialize independently of the chat model so catalog
	// indexing works without a Groq key.
	embedder := embeddings.NewClient(embeddings.Config{
		BaseURL: cfg.Embeddings.BaseURL,
		APIKey:  cfg.Embeddings.APIKey,
		Model:   cfg.Embeddings.Model,
		Timeout: cfg.Embeddings.Timeout,
	})

	generator, err := llm.NewClient(llm.Config{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	})
	if err != nil {
		// Chat requests will fail with a clear model-unavailable error;
		// catalog fetch and indexing keep working.
		logger.Warn("Language model not configured, chat disabled", zap.Error(err))
	}

	chatState := state.New()

	// A typed nil *llm.Client must not masquerade as a usable Generator.
	var gen domain.Generator
	if generator != nil {
		gen = generator
	}
	orchestrator := rag.NewOrchestrator(embedder, gen, logger)

	catalogClient := catalog.NewClient(cfg.Catalog.URL, cfg.Catalog.Timeout)
	catalogService := service.NewCatalogService(catalogClient, chatState, logger)
	chatService := service.NewChatService(orchestrator, chatState, logger)

	// Setup router
	router := api.SetupRouter(catalogService, chatService, logger, api.RouterConfig{
		AllowOrigins: []string{"*"},
		Debug:        cfg.Debug,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting product chat server",
			zap.String("address", cfg.Address()),
			zap.String("catalog_url", cfg.Catalog.URL),
			zap.String("llm_model", cfg.LLM.Model),
			zap.String("embedding_model", cfg.Embeddings.Model),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Debug {
		return zap.NewDevelopment()
	}

	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
