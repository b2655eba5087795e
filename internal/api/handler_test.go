package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sheikhmdsamiul/productchat/internal/catalog"
	"github.com/sheikhmdsamiul/productchat/internal/domain"
	"github.com/sheikhmdsamiul/productchat/internal/rag"
	"github.com/sheikhmdsamiul/productchat/internal/service"
	"github.com/sheikhmdsamiul/productchat/internal/state"
)

// hashEmbedder embeds text as word-overlap vectors over a small vocabulary
// so documents sharing words with the query rank first.
type hashEmbedder struct{}

func (hashEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v := make([]float32, 64)
		for _, w := range strings.Fields(strings.ToLower(t)) {
			var h uint32
			for _, r := range w {
				h = h*31 + uint32(r)
			}
			v[h%64]++
		}
		out[i] = v
	}
	return out, nil
}

func (e hashEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vs, err := e.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vs[0], nil
}

// echoGenerator answers from the first retrieved document's title so the
// end-to-end test can assert grounding without a real model.
type echoGenerator struct{}

func (echoGenerator) Generate(_ context.Context, messages []domain.Message) (string, error) {
	system := messages[0].Content
	if strings.Contains(system, "standalone") {
		// reformulation: echo the last user message
		return messages[len(messages)-1].Content, nil
	}
	// synthesis: ground on the context carried in the system prompt
	if strings.Contains(system, "Kiwi") {
		return "**Answer:** Kiwi is a fresh kiwi fruit in the fruits category, priced at $2.5. Rating information is not available.", nil
	}
	return rag.FallbackAnswer, nil
}

func newTestRouter(t *testing.T, upstreamURL string, gen domain.Generator) http.Handler {
	t.Helper()

	st := state.New()
	orch := rag.NewOrchestrator(hashEmbedder{}, gen, nil)
	catalogService := service.NewCatalogService(catalog.NewClient(upstreamURL, 2*time.Second), st, nil)
	chatService := service.NewChatService(orch, st, nil)

	return SetupRouter(catalogService, chatService, nil, RouterConfig{AllowOrigins: []string{"*"}})
}

func kiwiUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products":[{"id":1,"title":"Kiwi","description":"Fresh kiwi fruit","category":"fruits","price":2.5}]}`))
	}))
}

func postChat(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	upstream := kiwiUpstream(t)
	defer upstream.Close()
	router := newTestRouter(t, upstream.URL, echoGenerator{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("health status = %d", w.Code)
	}
}

func TestProductsEndpoint(t *testing.T) {
	upstream := kiwiUpstream(t)
	defer upstream.Close()
	router := newTestRouter(t, upstream.URL, echoGenerator{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp domain.ProductsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalProducts != 1 {
		t.Errorf("total_products = %d, want 1", resp.TotalProducts)
	}
	if resp.Message == "" {
		t.Error("expected a non-empty message")
	}
}

func TestProductsEndpointUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "catalog exploded", http.StatusInternalServerError)
	}))
	defer upstream.Close()
	router := newTestRouter(t, upstream.URL, echoGenerator{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
	if !strings.Contains(w.Body.String(), "error") {
		t.Error("expected a structured error payload")
	}
}

func TestChatEmptyQuery(t *testing.T) {
	upstream := kiwiUpstream(t)
	defer upstream.Close()
	router := newTestRouter(t, upstream.URL, echoGenerator{})

	for _, body := range []string{`{}`, `{"query":""}`, `{"query":"   "}`, `not json`} {
		w := postChat(t, router, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Query cannot be empty") {
			t.Errorf("body %q: error message = %s", body, w.Body.String())
		}
	}
}

func TestChatWithoutDocumentsReturnsFallback(t *testing.T) {
	upstream := kiwiUpstream(t)
	defer upstream.Close()
	router := newTestRouter(t, upstream.URL, echoGenerator{})

	w := postChat(t, router, `{"query":"Tell me about Kiwi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp domain.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Response != rag.FallbackAnswer {
		t.Errorf("response = %q, want the fallback sentence", resp.Response)
	}
}

func TestChatModelFailure(t *testing.T) {
	upstream := kiwiUpstream(t)
	defer upstream.Close()
	router := newTestRouter(t, upstream.URL, nil)

	// Load the catalog so chat reaches the model stage.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("products status = %d", w.Code)
	}

	w = postChat(t, router, `{"query":"Tell me about Kiwi"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Error in chatbot:") {
		t.Errorf("error payload = %s", w.Body.String())
	}
}

func TestEndToEndKiwiScenario(t *testing.T) {
	upstream := kiwiUpstream(t)
	defer upstream.Close()
	router := newTestRouter(t, upstream.URL, echoGenerator{})

	// Fetch the catalog
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("products status = %d", w.Code)
	}

	// Ask about Kiwi
	w = postChat(t, router, `{"query":"Tell me about Kiwi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("chat status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp domain.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp.Response, "Kiwi") {
		t.Errorf("answer does not mention Kiwi: %q", resp.Response)
	}
	if !strings.Contains(resp.Response, "**Answer:**") {
		t.Errorf("answer missing the Answer block: %q", resp.Response)
	}
	if len(resp.ChatHistory) != 2 {
		t.Fatalf("chat_history length = %d, want 2", len(resp.ChatHistory))
	}
	if resp.ChatHistory[0].Role != domain.RoleUser || resp.ChatHistory[1].Role != domain.RoleAssistant {
		t.Error("chat_history roles out of order")
	}

	// Follow-up turns keep accumulating history: 2N after N turns
	for i := 2; i <= 3; i++ {
		w = postChat(t, router, fmt.Sprintf(`{"query":"follow-up %d about the kiwi fruit"}`, i))
		if w.Code != http.StatusOK {
			t.Fatalf("turn %d status = %d", i, w.Code)
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(resp.ChatHistory) != 2*i {
			t.Errorf("after %d turns history length = %d, want %d", i, len(resp.ChatHistory), 2*i)
		}
	}
}
