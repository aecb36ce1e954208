package ranking

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Embedder is the embedding capability: given text, it returns a fixed-length vector.
// Implementations must be safe for concurrent use.
type Embedder interface {
	Embed(ctx context.Context, text string) (types.EmbeddingVector, error)
}

// BatchEmbedder is an Embedder that can embed several texts in one model invocation.
type BatchEmbedder interface {
	Embedder
	EmbedBatch(ctx context.Context, texts []string) ([]types.EmbeddingVector, error)
}

// CosineSimilarity returns the cosine similarity of two embedding vectors clamped
// into [0,1]. Mismatched lengths or zero vectors score 0.
func CosineSimilarity(a, b types.EmbeddingVector) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}

	return clamp01(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

// SemanticSimilarity embeds both documents and returns their cosine similarity.
// An empty document scores 0 without calling the embedder. Any embedder failure is
// returned as a *SemanticUnavailableError.
func SemanticSimilarity(ctx context.Context, embedder Embedder, a, b types.Document) (float64, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return 0.0, nil
	}

	cache := newEmbeddingCache(embedder)
	ta, tb := embeddingText(a), embeddingText(b)
	if err := cache.load(ctx, ta, tb); err != nil {
		return 0.0, err
	}
	return cache.similarity(ta, tb), nil
}

// embeddingText is the text sent to the model for a document: the original
// wording with whitespace collapsed. Stopwords are kept since encoders use them.
func embeddingText(doc types.Document) string {
	return strings.Join(strings.Fields(doc.Raw()), " ")
}

// embeddingCache holds the vectors of one scoring call so each distinct text is
// embedded at most once. It is discarded when the call returns.
type embeddingCache struct {
	embedder Embedder
	vectors  map[string]types.EmbeddingVector
}

func newEmbeddingCache(embedder Embedder) *embeddingCache {
	return &embeddingCache{
		embedder: embedder,
		vectors:  make(map[string]types.EmbeddingVector),
	}
}

// load embeds every text not yet cached, in a single batch when the embedder
// supports it. Errors and panics from the embedder become SemanticUnavailableError.
func (c *embeddingCache) load(ctx context.Context, texts ...string) (err error) {
	if c.embedder == nil {
		return unavailable(errNoEmbedder)
	}

	pending := make([]string, 0, len(texts))
	queued := make(map[string]bool, len(texts))
	for _, text := range texts {
		if text == "" || queued[text] {
			continue
		}
		if _, ok := c.vectors[text]; ok {
			continue
		}
		queued[text] = true
		pending = append(pending, text)
	}
	if len(pending) == 0 {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = unavailable(fmt.Errorf("embedder panic: %v", r))
		}
	}()

	vectors, err := c.embed(ctx, pending)
	if err != nil {
		return unavailable(err)
	}

	dim := -1
	for _, vec := range c.vectors {
		dim = len(vec)
		break
	}
	for i, vec := range vectors {
		if len(vec) == 0 {
			return unavailable(fmt.Errorf("empty embedding for text %d", i))
		}
		if dim >= 0 && len(vec) != dim {
			return unavailable(fmt.Errorf("embedding dimension mismatch: got %d, want %d", len(vec), dim))
		}
		dim = len(vec)
	}

	for i, text := range pending {
		c.vectors[text] = vectors[i]
	}
	return nil
}

func (c *embeddingCache) embed(ctx context.Context, texts []string) ([]types.EmbeddingVector, error) {
	if batch, ok := c.embedder.(BatchEmbedder); ok {
		vectors, err := batch.EmbedBatch(ctx, texts)
		if err != nil {
			return nil, err
		}
		if len(vectors) != len(texts) {
			return nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(texts))
		}
		return vectors, nil
	}

	vectors := make([]types.EmbeddingVector, len(texts))
	for i, text := range texts {
		vec, err := c.embedder.Embed(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("embed text %d: %w", i, err)
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// similarity compares two cached texts; a text that was never loaded scores 0.
func (c *embeddingCache) similarity(a, b string) float64 {
	va, okA := c.vectors[a]
	vb, okB := c.vectors[b]
	if !okA || !okB {
		return 0.0
	}
	return CosineSimilarity(va, vb)
}
