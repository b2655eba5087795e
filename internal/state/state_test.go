package state

import (
	"fmt"
	"sync"
	"testing"

	"github.com/sheikhmdsamiul/productchat/internal/domain"
)

func TestHistoryAccumulation(t *testing.T) {
	s := New()

	const turns = 5
	for i := 0; i < turns; i++ {
		s.AppendMessage(domain.RoleUser, fmt.Sprintf("question %d", i))
		s.AppendMessage(domain.RoleAssistant, fmt.Sprintf("answer %d", i))
	}

	history := s.History()
	if len(history) != 2*turns {
		t.Fatalf("history length = %d, want %d", len(history), 2*turns)
	}
	for i := 0; i < turns; i++ {
		if history[2*i].Role != domain.RoleUser || history[2*i+1].Role != domain.RoleAssistant {
			t.Fatalf("turn %d roles out of order: %q, %q", i, history[2*i].Role, history[2*i+1].Role)
		}
	}
}

func TestDocumentsSwapAtomically(t *testing.T) {
	s := New()

	s.SetDocuments([]domain.Document{{Content: "a"}, {Content: "b"}})
	if n := len(s.Documents()); n != 2 {
		t.Fatalf("documents length = %d, want 2", n)
	}

	s.SetDocuments([]domain.Document{{Content: "c"}})
	docs := s.Documents()
	if len(docs) != 1 || docs[0].Content != "c" {
		t.Errorf("swap must replace the full set, got %v", docs)
	}
}

func TestSnapshotsDoNotAliasInternalState(t *testing.T) {
	s := New()
	s.SetDocuments([]domain.Document{{Content: "original"}})
	s.AppendMessage(domain.RoleUser, "original")

	docs := s.Documents()
	docs[0].Content = "mutated"
	history := s.History()
	history[0].Content = "mutated"

	if s.Documents()[0].Content != "original" {
		t.Error("mutating a documents snapshot leaked into state")
	}
	if s.History()[0].Content != "original" {
		t.Error("mutating a history snapshot leaked into state")
	}
}

func TestConcurrentAppendsAndSwaps(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.AppendMessage(domain.RoleUser, fmt.Sprintf("q%d", i))
			s.AppendMessage(domain.RoleAssistant, fmt.Sprintf("a%d", i))
		}(i)
		go func(i int) {
			defer wg.Done()
			s.SetDocuments([]domain.Document{{Content: fmt.Sprintf("doc%d", i)}})
			_ = s.Documents()
			_ = s.History()
		}(i)
	}
	wg.Wait()

	if n := len(s.History()); n != 20 {
		t.Errorf("history length = %d, want 20", n)
	}
}
