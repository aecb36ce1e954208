package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/ats-scorer/internal/types"
)

// geminiBatchLimit is the largest number of requests BatchEmbedContents accepts.
const geminiBatchLimit = 100

// GeminiEmbedder implements Embedder for the Google Gemini embedding API
type GeminiEmbedder struct {
	client *genai.Client
	model  *genai.EmbeddingModel
	name   string
}

// NewGeminiEmbedder creates a new Gemini embedding client
func NewGeminiEmbedder(ctx context.Context, config *Config) (*GeminiEmbedder, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	name := config.GetModel()
	model := client.EmbeddingModel(name)
	model.TaskType = genai.TaskTypeSemanticSimilarity

	return &GeminiEmbedder{
		client: client,
		model:  model,
		name:   name,
	}, nil
}

// Embed returns the embedding of one text
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) (types.EmbeddingVector, error) {
	resp, err := e.model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if resp == nil || resp.Embedding == nil {
		return nil, fmt.Errorf("no embedding in response")
	}
	return types.EmbeddingVector(resp.Embedding.Values), nil
}

// EmbedBatch embeds texts with BatchEmbedContents, splitting into API-sized requests
func (e *GeminiEmbedder) EmbedBatch(ctx context.Context, texts []string) ([]types.EmbeddingVector, error) {
	out := make([]types.EmbeddingVector, 0, len(texts))
	for _, part := range chunk(texts, geminiBatchLimit) {
		batch := e.model.NewBatch()
		for _, text := range part {
			batch.AddContent(genai.Text(text))
		}

		resp, err := e.model.BatchEmbedContents(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("failed to batch embed contents: %w", err)
		}
		if resp == nil || len(resp.Embeddings) != len(part) {
			return nil, fmt.Errorf("batch embed returned wrong number of embeddings")
		}
		for _, emb := range resp.Embeddings {
			if emb == nil {
				return nil, fmt.Errorf("nil embedding in batch response")
			}
			out = append(out, types.EmbeddingVector(emb.Values))
		}
	}
	return out, nil
}

// ModelName returns the embedding model name
func (e *GeminiEmbedder) ModelName() string {
	return e.name
}

// Close releases resources held by the client
func (e *GeminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}
