package llm

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedTexts(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("text %d", i)
	}
	return out
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		size  int
		sizes []int
	}{
		{"empty", 0, geminiBatchLimit, nil},
		{"smaller than size", 3, geminiBatchLimit, []int{3}},
		{"exact multiple", 200, geminiBatchLimit, []int{100, 100}},
		{"remainder", 250, geminiBatchLimit, []int{100, 100, 50}},
		{"non-positive size keeps one chunk", 7, 0, []int{7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			texts := numberedTexts(tt.n)
			got := chunk(texts, tt.size)

			var sizes []int
			var flat []string
			for _, part := range got {
				sizes = append(sizes, len(part))
				flat = append(flat, part...)
			}
			assert.Equal(t, tt.sizes, sizes)
			if tt.n > 0 {
				assert.Equal(t, texts, flat, "chunks keep input order")
			}
		})
	}
}

func TestNewGeminiEmbedder_RequiresAPIKey(t *testing.T) {
	client, err := NewGeminiEmbedder(context.Background(), &Config{Provider: ProviderGemini})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
	assert.Nil(t, client)
}
