// Package service composes the catalog pipeline and the RAG pipeline over
// the shared chat state.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/sheikhmdsamiul/productchat/internal/domain"
	"github.com/sheikhmdsamiul/productchat/internal/state"
)

// Answerer runs one full RAG cycle over a document set.
type Answerer interface {
	Answer(ctx context.Context, query string, history []domain.Message, docs []domain.Document) (string, error)
}

// ChatService handles chat turns: it owns history mutation around the
// side-effect-free orchestrator.
type ChatService struct {
	orchestrator Answerer
	state        *state.ChatState
	logger       *zap.Logger

	// Serializes turns so each user message is followed by its own
	// assistant message; concurrent requests queue rather than interleave.
	turnMu sync.Mutex
}

// NewChatService creates a new chat service.
func NewChatService(orchestrator Answerer, st *state.ChatState, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{orchestrator: orchestrator, state: st, logger: logger}
}

// Chat answers one user query against the current document set and records
// both turns in the history. Returns the full history and the answer.
func (s *ChatService) Chat(ctx context.Context, query string) ([]domain.Message, string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, "", fmt.Errorf("%w: query cannot be empty", domain.ErrValidation)
	}

	s.turnMu.Lock()
	defer s.turnMu.Unlock()

	// Snapshot history before recording the current turn; the orchestrator
	// receives the prior conversation, not the question it is answering.
	history := s.state.History()
	docs := s.state.Documents()

	s.state.AppendMessage(domain.RoleUser, query)

	answer, err := s.orchestrator.Answer(ctx, query, history, docs)
	if err != nil {
		s.logger.Error("chat turn failed", zap.Error(err))
		return nil, "", err
	}

	s.state.AppendMessage(domain.RoleAssistant, answer)

	return s.state.History(), answer, nil
}
