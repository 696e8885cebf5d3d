package service

import (
	"context"
	"log"
	"math"
	"sort"
	"sync"

	"github.com/kknudson15/ai-portfolio-starter/internal/domain"
	"golang.org/x/sync/singleflight"
)

// EmbeddingClient defines the interface for generating embeddings
type EmbeddingClient interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// VectorIndex builds and queries an embedding-based similarity index
// over the knowledge base documents. It is built at most once per
// process lifetime and is safe for concurrent readers once built.
type VectorIndex struct {
	embedder EmbeddingClient

	group singleflight.Group

	mu    sync.RWMutex
	docs  []domain.IndexedDocument
	built bool
}

// NewVectorIndex creates an empty index backed by the given embedding client.
func NewVectorIndex(embedder EmbeddingClient) *VectorIndex {
	return &VectorIndex{embedder: embedder}
}

// EnsureBuilt builds the index from the knowledge base if it has not
// been built yet. Concurrent callers share one in-flight build rather
// than issuing duplicate embedding calls. A document whose embedding
// fails is logged and skipped; the build still completes, so a
// partial (or even empty) index is a valid built state.
//
// The build outcome is shared by every waiter, so it runs detached
// from the winning caller's context: a client that disconnects
// mid-build must not cancel the embedding calls for everyone else.
func (ix *VectorIndex) EnsureBuilt(ctx context.Context, kb *domain.KnowledgeBase) error {
	if ix.isBuilt() {
		return nil
	}

	_, err, _ := ix.group.Do("build", func() (interface{}, error) {
		if ix.isBuilt() {
			return nil, nil
		}

		buildCtx := context.WithoutCancel(ctx)

		docs, err := kb.Documents()
		if err != nil {
			return nil, err
		}

		indexed := make([]domain.IndexedDocument, 0, len(docs))
		for _, doc := range docs {
			embedding, err := ix.embedder.GenerateEmbedding(buildCtx, doc.Text)
			if err != nil {
				log.Printf("index: skipping document %q: embedding failed: %v", doc.ID, err)
				continue
			}
			indexed = append(indexed, domain.IndexedDocument{Document: doc, Embedding: embedding})
		}

		ix.mu.Lock()
		ix.docs = indexed
		ix.built = true
		ix.mu.Unlock()

		return nil, nil
	})

	return err
}

// Query ranks every indexed document against the query embedding by
// cosine similarity and returns the top topK results in descending
// score order. Ties keep insertion order. An empty or unbuilt index
// returns an empty slice.
func (ix *VectorIndex) Query(queryEmbedding []float32, topK int) []domain.ScoredDocument {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if len(ix.docs) == 0 || topK <= 0 {
		return []domain.ScoredDocument{}
	}

	scored := make([]domain.ScoredDocument, 0, len(ix.docs))
	for _, doc := range ix.docs {
		scored = append(scored, domain.ScoredDocument{
			IndexedDocument: doc,
			Score:           cosineSimilarity(queryEmbedding, doc.Embedding),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topK > len(scored) {
		topK = len(scored)
	}
	return scored[:topK]
}

// Size returns the number of indexed documents.
func (ix *VectorIndex) Size() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.docs)
}

func (ix *VectorIndex) isBuilt() bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.built
}

// cosineSimilarity calculates cosine similarity between two vectors.
// Mismatched lengths or a zero-norm vector yield 0 rather than NaN.
func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
