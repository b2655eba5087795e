package rag

import (
	"context"
	"fmt"

	"github.com/sheikhmdsamiul/productchat/internal/domain"
)

// Reformulate rewrites the latest user question as a standalone query using
// the chat history for context. With no history the raw query already stands
// alone, so no model call is made. A provider failure propagates; retrieval
// quality depends on reformulation when history exists, so there is no
// silent fallback to the raw query.
func Reformulate(ctx context.Context, gen domain.Generator, history []domain.Message, query string) (string, error) {
	if len(history) == 0 {
		return query, nil
	}
	if gen == nil {
		return "", fmt.Errorf("%w: no language model configured", domain.ErrModelUnavailable)
	}

	messages := make([]domain.Message, 0, len(history)+2)
	messages = append(messages, domain.Message{Role: domain.RoleSystem, Content: reformulatePrompt})
	messages = append(messages, history...)
	messages = append(messages, domain.Message{Role: domain.RoleUser, Content: query})

	standalone, err := gen.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("reformulate query: %w", err)
	}
	return standalone, nil
}
