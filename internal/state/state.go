// Package state holds the process-wide chat state: the accumulated chat
// history and the current retrievable document set. One instance is created
// in main and injected into the services that read or mutate it. A single
// mutex guards every mutation so concurrent chat turns cannot corrupt the
// history sequence and a catalog refresh cannot race a reader.
package state

import (
	"sync"

	"github.com/sheikhmdsamiul/productchat/internal/domain"
)

// ChatState is the only cross-request shared mutable resource. Reads return
// copies so callers never alias internal slices.
type ChatState struct {
	mu        sync.RWMutex
	history   []domain.Message
	documents []domain.Document
}

// New creates an empty chat state.
func New() *ChatState {
	return &ChatState{}
}

// SetDocuments replaces the document set wholesale. There is no incremental
// update; each catalog fetch swaps the full set atomically.
func (s *ChatState) SetDocuments(docs []domain.Document) {
	copied := make([]domain.Document, len(docs))
	copy(copied, docs)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = copied
}

// Documents returns a copy of the current document set.
func (s *ChatState) Documents() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Document, len(s.documents))
	copy(out, s.documents)
	return out
}

// AppendMessage appends one chat turn to the history.
func (s *ChatState) AppendMessage(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, domain.Message{Role: role, Content: content})
}

// History returns a copy of the accumulated chat history.
func (s *ChatState) History() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Message, len(s.history))
	copy(out, s.history)
	return out
}
