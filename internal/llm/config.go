// Package llm provides embedding model configuration and provider clients.
// This package enables switching between hosted and local embedding providers.
package llm

import (
	"fmt"
	"time"
)

// Provider represents an embedding provider
type Provider string

// Provider constants define supported embedding providers
const (
	// ProviderGemini is the Google Gemini embedding API
	ProviderGemini Provider = "gemini"
	// ProviderOllama is a local Ollama server
	ProviderOllama Provider = "ollama"
	// ProviderNone disables semantic scoring
	ProviderNone Provider = "none"
)

// Default models and endpoints per provider.
const (
	DefaultGeminiModel   = "text-embedding-004"
	DefaultOllamaModel   = "nomic-embed-text"
	DefaultOllamaBaseURL = "http://localhost:11434"
	DefaultTimeout       = 30 * time.Second
)

// Config holds the embedding configuration for the application
type Config struct {
	Provider Provider
	Model    string
	APIKey   string        // gemini only
	BaseURL  string        // ollama only
	Timeout  time.Duration // ollama request timeout
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultGeminiModel,
	}
}

// DefaultOllamaConfig returns the default Ollama configuration
func DefaultOllamaConfig() *Config {
	return &Config{
		Provider: ProviderOllama,
		Model:    DefaultOllamaModel,
		BaseURL:  DefaultOllamaBaseURL,
		Timeout:  DefaultTimeout,
	}
}

// ParseProvider converts a configuration string into a Provider. The empty string
// selects Gemini.
func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case "", ProviderGemini:
		return ProviderGemini, nil
	case ProviderOllama:
		return ProviderOllama, nil
	case ProviderNone:
		return ProviderNone, nil
	default:
		return "", fmt.Errorf("unknown embedding provider %q (want gemini, ollama or none)", s)
	}
}

// GetModel returns the configured model, falling back to the provider default
func (c *Config) GetModel() string {
	if c.Model != "" {
		return c.Model
	}
	switch c.Provider {
	case ProviderOllama:
		return DefaultOllamaModel
	case ProviderGemini:
		return DefaultGeminiModel
	default:
		return ""
	}
}

// WithModel returns a new Config with a specific model
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	newConfig.Model = model
	return &newConfig
}
