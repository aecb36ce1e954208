// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/ats-scorer/internal/ranking"
)

// Defaults for values not set in the config file, environment or flags.
// Score weights default to ranking.DefaultLexicalWeight and ranking.DefaultSemanticWeight.
const (
	DefaultProvider   = "gemini"
	DefaultBatchLimit = 4
	DefaultTopK       = 20
	DefaultPort       = 8080
	DefaultSQLitePath = "data/history.db"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults, environment variables or CLI flags.
type Config struct {
	// Embeddings
	EmbeddingProvider string `json:"embedding_provider,omitempty"` // gemini, ollama or none
	EmbeddingModel    string `json:"embedding_model,omitempty"`    // Provider model name
	APIKey            string `json:"api_key,omitempty"`            // Gemini API key
	OllamaBaseURL     string `json:"ollama_base_url,omitempty"`    // Ollama server URL

	// Scoring
	LexicalWeight  float64 `json:"lexical_weight,omitempty"`  // Weight of TF-IDF similarity (0.0-1.0)
	SemanticWeight float64 `json:"semantic_weight,omitempty"` // Weight of embedding similarity (0.0-1.0)
	BatchLimit     int     `json:"batch_limit,omitempty"`     // Concurrent scoring calls in a batch
	TopK           int     `json:"top_k,omitempty"`           // Keywords kept per document

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	SQLitePath  string `json:"sqlite_path,omitempty"`  // SQLite file used when no database URL is set

	// Server
	Port int `json:"port,omitempty"`

	// Logging
	LogJSON bool `json:"log_json,omitempty"` // JSON log encoding
	Debug   bool `json:"debug,omitempty"`    // Debug log level
}

// Defaults returns a Config with every default value set.
func Defaults() Config {
	return Config{
		EmbeddingProvider: DefaultProvider,
		LexicalWeight:     ranking.DefaultLexicalWeight,
		SemanticWeight:    ranking.DefaultSemanticWeight,
		BatchLimit:        DefaultBatchLimit,
		TopK:              DefaultTopK,
		Port:              DefaultPort,
		SQLitePath:        DefaultSQLitePath,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from environment variables when they are set.
func (c *Config) ApplyEnv() {
	setString(&c.APIKey, "GEMINI_API_KEY")
	setString(&c.EmbeddingProvider, "EMBEDDING_PROVIDER")
	setString(&c.EmbeddingModel, "EMBEDDING_MODEL")
	setString(&c.OllamaBaseURL, "OLLAMA_BASE_URL")
	setString(&c.DatabaseURL, "DATABASE_URL")
	setString(&c.SQLitePath, "SQLITE_PATH")

	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		c.Port = v
	}
	if v, err := strconv.ParseBool(os.Getenv("LOG_JSON")); err == nil {
		c.LogJSON = v
	}
}

func setString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

// Validate checks that the configuration has valid values.
// Note: zero values are accepted since MergeWithDefaults fills them in.
func (c *Config) Validate() error {
	switch c.EmbeddingProvider {
	case "", "gemini", "ollama", "none":
	default:
		return fmt.Errorf("config error: unknown 'embedding_provider' %q", c.EmbeddingProvider)
	}

	if c.LexicalWeight < 0 || c.LexicalWeight > 1 {
		return fmt.Errorf("config error: 'lexical_weight' must be between 0 and 1")
	}
	if c.SemanticWeight < 0 || c.SemanticWeight > 1 {
		return fmt.Errorf("config error: 'semantic_weight' must be between 0 and 1")
	}
	if (c.LexicalWeight != 0 || c.SemanticWeight != 0) && math.Abs(c.LexicalWeight+c.SemanticWeight-1) > 1e-9 {
		return fmt.Errorf("config error: 'lexical_weight' and 'semantic_weight' must sum to 1")
	}

	if c.BatchLimit < 0 {
		return fmt.Errorf("config error: 'batch_limit' must be non-negative")
	}
	if c.TopK < 0 {
		return fmt.Errorf("config error: 'top_k' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.EmbeddingProvider == "" {
		result.EmbeddingProvider = defaults.EmbeddingProvider
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.OllamaBaseURL == "" {
		result.OllamaBaseURL = defaults.OllamaBaseURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SQLitePath == "" {
		result.SQLitePath = defaults.SQLitePath
	}

	// Weights are merged as a pair so a partial override cannot break the sum
	if result.LexicalWeight == 0 && result.SemanticWeight == 0 {
		result.LexicalWeight = defaults.LexicalWeight
		result.SemanticWeight = defaults.SemanticWeight
	}

	// Int fields: use default if zero
	if result.BatchLimit == 0 {
		result.BatchLimit = defaults.BatchLimit
	}
	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Resolve builds the effective configuration: the optional JSON file at path,
// overridden by the environment, then validated and merged with Defaults.
func Resolve(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg.MergeWithDefaults(Defaults()), nil
}
