package llm

import (
	"context"
	"fmt"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Embedder is an abstraction over embedding providers
type Embedder interface {
	// Embed returns the embedding vector of one text
	Embed(ctx context.Context, text string) (types.EmbeddingVector, error)
	// EmbedBatch embeds several texts, returning vectors in input order
	EmbedBatch(ctx context.Context, texts []string) ([]types.EmbeddingVector, error)
	// ModelName returns the underlying model name
	ModelName() string
	// Close releases any resources held by the client
	Close() error
}

// NewEmbedder creates a new embedding client based on configuration.
// ProviderNone returns a nil Embedder and no error.
func NewEmbedder(ctx context.Context, config *Config) (Embedder, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini, "":
		client, err := NewGeminiEmbedder(ctx, config)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderOllama:
		return NewOllamaEmbedder(config), nil
	case ProviderNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider %q", config.Provider)
	}
}

// chunk splits texts into consecutive slices of at most size elements.
func chunk(texts []string, size int) [][]string {
	if size <= 0 {
		size = len(texts)
	}
	var out [][]string
	for start := 0; start < len(texts); start += size {
		end := min(start+size, len(texts))
		out = append(out, texts[start:end])
	}
	return out
}
