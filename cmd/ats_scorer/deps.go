package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/db"
	"github.com/jonathan/ats-scorer/internal/llm"
	"github.com/jonathan/ats-scorer/internal/logger"
	"github.com/jonathan/ats-scorer/internal/ranking"
	"github.com/jonathan/ats-scorer/internal/report"
)

// embeddingConfig maps the application config onto the provider config.
func embeddingConfig(cfg config.Config) (*llm.Config, error) {
	provider, err := llm.ParseProvider(cfg.EmbeddingProvider)
	if err != nil {
		return nil, err
	}

	var ec *llm.Config
	switch provider {
	case llm.ProviderOllama:
		ec = llm.DefaultOllamaConfig()
		if cfg.OllamaBaseURL != "" {
			ec.BaseURL = cfg.OllamaBaseURL
		}
	case llm.ProviderNone:
		ec = &llm.Config{Provider: llm.ProviderNone}
	default:
		ec = llm.DefaultGeminiConfig()
		ec.APIKey = cfg.APIKey
	}

	if cfg.EmbeddingModel != "" {
		ec = ec.WithModel(cfg.EmbeddingModel)
	}
	return ec, nil
}

// buildEmbedder returns the configured embedding client, or nil when semantic
// scoring is disabled or the provider cannot be set up. A nil embedder makes
// every score lexical-only.
func buildEmbedder(ctx context.Context, cfg config.Config, log *zap.Logger) llm.Embedder {
	ec, err := embeddingConfig(cfg)
	if err != nil {
		log.Warn("invalid embedding configuration, semantic scoring disabled", zap.Error(err))
		return nil
	}

	embedder, err := llm.NewEmbedder(ctx, ec)
	if err != nil {
		log.Warn("embedding provider unavailable, semantic scoring disabled",
			zap.String(logger.FieldProvider, string(ec.Provider)),
			zap.Error(err))
		return nil
	}
	if embedder == nil {
		log.Info("semantic scoring disabled by configuration")
	}
	return embedder
}

// buildAnalyzer wires the embedder, scorer and analyzer from configuration.
// The returned cleanup releases the embedding client.
func buildAnalyzer(ctx context.Context, cfg config.Config, log *zap.Logger) (*report.Analyzer, func()) {
	embedder := buildEmbedder(ctx, cfg, log)

	scorerLog := log
	var rankingEmbedder ranking.Embedder
	cleanup := func() {}
	if embedder != nil {
		rankingEmbedder = embedder
		scorerLog = logger.WithEmbedding(log, cfg.EmbeddingProvider, embedder.ModelName())
		cleanup = func() {
			if err := embedder.Close(); err != nil {
				log.Warn("closing embedding client", zap.Error(err))
			}
		}
	}

	weights := ranking.Weights{Lexical: cfg.LexicalWeight, Semantic: cfg.SemanticWeight}
	scorer := ranking.NewScorer(rankingEmbedder,
		ranking.WithWeights(weights),
		ranking.WithLogger(scorerLog),
	)
	return report.NewAnalyzer(scorer, cfg.TopK), cleanup
}

// openStore opens the history store named by the configuration.
func openStore(ctx context.Context, cfg config.Config) (db.HistoryStore, error) {
	store, err := db.Open(ctx, cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}
	return store, nil
}
