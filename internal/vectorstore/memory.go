// Package vectorstore implements an in-memory brute-force cosine similarity
// index. The index is built fresh from the current document set on every
// chat request, so it is never shared mutable state across requests.
package vectorstore

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/sheikhmdsamiul/productchat/internal/domain"
)

// Index holds embedded documents with back-references to their sources.
// Vectors are L2-normalized at insert so the dot product equals cosine
// similarity.
type Index struct {
	dimension int
	vectors   [][]float32
	docs      []domain.Document
}

// Scored pairs a retrieved document with its similarity score.
type Scored struct {
	Document domain.Document
	Score    float64
}

// BuildIndex embeds every document's content via the provider and returns a
// ready index. Any embedding failure or dimension mismatch aborts the build;
// there is no partial index.
func BuildIndex(ctx context.Context, docs []domain.Document, emb domain.Embedder) (*Index, error) {
	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Content
	}

	vectors, err := emb.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexBuild, err)
	}
	if len(vectors) != len(docs) {
		return nil, fmt.Errorf("%w: got %d vectors for %d documents", domain.ErrIndexBuild, len(vectors), len(docs))
	}

	idx := &Index{docs: docs}
	for i, v := range vectors {
		if len(v) == 0 {
			return nil, fmt.Errorf("%w: empty vector for document %d", domain.ErrIndexBuild, i)
		}
		if idx.dimension == 0 {
			idx.dimension = len(v)
		} else if len(v) != idx.dimension {
			return nil, fmt.Errorf("%w: vector dimension mismatch: %d != %d", domain.ErrIndexBuild, len(v), idx.dimension)
		}
		idx.vectors = append(idx.vectors, normalize(v))
	}
	return idx, nil
}

// Retrieve returns up to k documents ranked by descending cosine similarity
// to the query. Ties break by original insertion order, keeping retrieval
// deterministic for identical inputs.
func (idx *Index) Retrieve(ctx context.Context, emb domain.Embedder, query string, k int) ([]domain.Document, error) {
	scored, err := idx.RetrieveScored(ctx, emb, query, k)
	if err != nil {
		return nil, err
	}
	docs := make([]domain.Document, len(scored))
	for i, s := range scored {
		docs[i] = s.Document
	}
	return docs, nil
}

// RetrieveScored is Retrieve with similarity scores exposed.
func (idx *Index) RetrieveScored(ctx context.Context, emb domain.Embedder, query string, k int) ([]Scored, error) {
	if k <= 0 || len(idx.vectors) == 0 {
		return nil, nil
	}

	qv, err := emb.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(qv) != idx.dimension {
		return nil, fmt.Errorf("%w: query dimension %d != index dimension %d", domain.ErrIndexBuild, len(qv), idx.dimension)
	}
	qv = normalize(qv)

	type ranked struct {
		pos   int
		score float64
	}
	scores := make([]ranked, len(idx.vectors))
	for i, v := range idx.vectors {
		scores[i] = ranked{pos: i, score: dot(v, qv)}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	if k > len(scores) {
		k = len(scores)
	}
	results := make([]Scored, 0, k)
	for i := 0; i < k; i++ {
		results = append(results, Scored{Document: idx.docs[scores[i].pos], Score: scores[i].score})
	}
	return results, nil
}

// Len reports the number of indexed documents.
func (idx *Index) Len() int { return len(idx.docs) }

func dot(a, b []float32) float64 {
	sum := 0.0
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func normalize(v []float32) []float32 {
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return v
	}
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}
