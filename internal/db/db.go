// Package db provides storage for scored analyses, backed by PostgreSQL or SQLite.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/ats-scorer/internal/types"
)

// DefaultListLimit is used when ListAnalyses is called with a non-positive limit.
const DefaultListLimit = 20

// MaxListLimit caps the number of analyses returned by one ListAnalyses call.
const MaxListLimit = 200

// HistoryStore persists analyses so they can be listed and fetched later.
type HistoryStore interface {
	// SaveAnalysis stores an analysis, replacing any existing one with the same ID
	SaveAnalysis(ctx context.Context, a *types.Analysis) error
	// GetAnalysis returns the analysis with the given ID, or nil when it does not exist
	GetAnalysis(ctx context.Context, id uuid.UUID) (*types.Analysis, error)
	// ListAnalyses returns the most recent analyses, newest first
	ListAnalyses(ctx context.Context, limit int) ([]types.Analysis, error)
	// Close releases the underlying connections
	Close() error
}

// Open returns a PostgreSQL store when databaseURL is set, otherwise a SQLite
// store at sqlitePath. The schema is created if it does not exist.
func Open(ctx context.Context, databaseURL, sqlitePath string) (HistoryStore, error) {
	if databaseURL != "" {
		database, err := Connect(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, err
		}
		return database, nil
	}

	if sqlitePath == "" {
		return nil, fmt.Errorf("no database configured: set a database URL or a SQLite path")
	}
	return OpenSQLite(ctx, sqlitePath)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}

func marshalAnalysis(a *types.Analysis) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("analysis is nil")
	}
	if a.ID == uuid.Nil {
		return nil, fmt.Errorf("analysis has no ID")
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}
	return data, nil
}

func unmarshalAnalysis(data []byte) (*types.Analysis, error) {
	var a types.Analysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return &a, nil
}
