package domain

import "context"

// Embedder converts text into numeric vectors for similarity comparison.
type Embedder interface {
	// EmbedDocuments embeds a batch of document texts, one vector per text.
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
	// EmbedQuery embeds a single query string.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// Generator invokes a language model with an ordered message sequence and
// returns the generated text.
type Generator interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}
