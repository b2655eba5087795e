// Package rag implements the retrieval-augmented generation pipeline:
// history-aware query reformulation, top-k similarity retrieval over a
// per-request index, and grounded answer synthesis.
package rag

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sheikhmdsamiul/productchat/internal/domain"
	"github.com/sheikhmdsamiul/productchat/internal/vectorstore"
)

// TopK is the fixed retrieval cutoff.
const TopK = 3

// historyWindow bounds how many trailing history messages reach the model.
// The full history still accumulates in chat state; only the model-facing
// window is capped.
const historyWindow = 20

// Orchestrator composes reformulation, retrieval, and synthesis into one
// request/response cycle. It owns per-request index construction and is
// side-effect free beyond its return value; history mutation belongs to the
// caller.
type Orchestrator struct {
	embedder  domain.Embedder
	generator domain.Generator
	logger    *zap.Logger
}

// NewOrchestrator creates an orchestrator. generator may be nil when no
// language-model key is configured; Answer then fails with
// ErrModelUnavailable instead of crashing.
func NewOrchestrator(embedder domain.Embedder, generator domain.Generator, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		embedder:  embedder,
		generator: generator,
		logger:    logger,
	}
}

// Answer runs one full RAG cycle over the given document set.
func (o *Orchestrator) Answer(ctx context.Context, query string, history []domain.Message, docs []domain.Document) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("%w: query cannot be empty", domain.ErrValidation)
	}

	// Nothing indexed yet: degrade to the content-level fallback rather
	// than failing the request.
	if len(docs) == 0 {
		o.logger.Info("no documents indexed, returning fallback answer")
		return FallbackAnswer, nil
	}

	if o.generator == nil {
		return "", fmt.Errorf("%w: no language model configured", domain.ErrModelUnavailable)
	}

	window := windowed(history)

	index, err := vectorstore.BuildIndex(ctx, docs, o.embedder)
	if err != nil {
		return "", err
	}

	standalone, err := Reformulate(ctx, o.generator, window, query)
	if err != nil {
		return "", err
	}

	retrieved, err := index.Retrieve(ctx, o.embedder, standalone, TopK)
	if err != nil {
		return "", err
	}
	o.logger.Debug("retrieval complete",
		zap.String("standalone_query", standalone),
		zap.Int("retrieved", len(retrieved)),
	)
	if len(retrieved) == 0 {
		return FallbackAnswer, nil
	}

	answer, err := Synthesize(ctx, o.generator, retrieved, window, query)
	if err != nil {
		return "", err
	}
	return answer, nil
}

func windowed(history []domain.Message) []domain.Message {
	if len(history) <= historyWindow {
		return history
	}
	return history[len(history)-historyWindow:]
}
