package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "text-embedding-004", config.GetModel())
}

func TestDefaultOllamaConfig(t *testing.T) {
	config := DefaultOllamaConfig()

	assert.Equal(t, ProviderOllama, config.Provider)
	assert.Equal(t, "nomic-embed-text", config.GetModel())
	assert.Equal(t, "http://localhost:11434", config.BaseURL)
}

func TestGetModel_FallsBackToProviderDefault(t *testing.T) {
	assert.Equal(t, DefaultOllamaModel, (&Config{Provider: ProviderOllama}).GetModel())
	assert.Equal(t, DefaultGeminiModel, (&Config{Provider: ProviderGemini}).GetModel())
	assert.Equal(t, "", (&Config{Provider: ProviderNone}).GetModel())
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	newConfig := config.WithModel("custom-model")

	// Original should be unchanged
	assert.Equal(t, DefaultGeminiModel, config.GetModel())
	assert.Equal(t, "custom-model", newConfig.GetModel())
	assert.Equal(t, ProviderGemini, newConfig.Provider)
}

func TestParseProvider(t *testing.T) {
	tests := []struct {
		in      string
		want    Provider
		wantErr bool
	}{
		{"", ProviderGemini, false},
		{"gemini", ProviderGemini, false},
		{"ollama", ProviderOllama, false},
		{"none", ProviderNone, false},
		{"openai", "", true},
	}
	for _, tt := range tests {
		got, err := ParseProvider(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewEmbedder(t *testing.T) {
	ctx := context.Background()

	emb, err := NewEmbedder(ctx, &Config{Provider: ProviderNone})
	require.NoError(t, err)
	assert.Nil(t, emb)

	emb, err = NewEmbedder(ctx, DefaultOllamaConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultOllamaModel, emb.ModelName())

	_, err = NewEmbedder(ctx, &Config{Provider: ProviderGemini})
	assert.ErrorContains(t, err, "API key is required")

	_, err = NewEmbedder(ctx, &Config{Provider: "openai"})
	assert.Error(t, err)
}
