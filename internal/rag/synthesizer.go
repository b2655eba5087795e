package rag

import (
	"context"
	"fmt"

	"github.com/sheikhmdsamiul/productchat/internal/domain"
)

// Synthesize produces a grounded answer from the retrieved documents, the
// chat history, and the (reformulated) query. The system prompt enforces the
// context-only contract; the raw model text is returned unmodified.
func Synthesize(ctx context.Context, gen domain.Generator, retrieved []domain.Document, history []domain.Message, query string) (string, error) {
	if gen == nil {
		return "", fmt.Errorf("%w: no language model configured", domain.ErrModelUnavailable)
	}

	contexts := make([]string, len(retrieved))
	for i, doc := range retrieved {
		contexts[i] = doc.Content
	}

	messages := make([]domain.Message, 0, len(history)+2)
	messages = append(messages, domain.Message{Role: domain.RoleSystem, Content: synthesisPrompt(contexts)})
	messages = append(messages, history...)
	messages = append(messages, domain.Message{Role: domain.RoleUser, Content: query})

	answer, err := gen.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("synthesize answer: %w", err)
	}
	return answer, nil
}
