package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/ats-scorer/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

var _ HistoryStore = (*DB)(nil)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS analyses (
	id                UUID PRIMARY KEY,
	label             TEXT NOT NULL DEFAULT '',
	overall_score     INTEGER NOT NULL,
	method            TEXT NOT NULL,
	semantic_degraded BOOLEAN NOT NULL DEFAULT FALSE,
	content           JSONB NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS analyses_created_at_idx ON analyses (created_at DESC);
`

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// EnsureSchema creates the analyses table if it does not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (db *DB) Close() error {
	if db.pool != nil {
		db.pool.Close()
	}
	return nil
}

// SaveAnalysis stores an analysis as JSONB alongside its searchable columns
func (db *DB) SaveAnalysis(ctx context.Context, a *types.Analysis) error {
	content, err := marshalAnalysis(a)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO analyses (id, label, overall_score, method, semantic_degraded, content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET label = $2, overall_score = $3, method = $4,
		   semantic_degraded = $5, content = $6`,
		a.ID, a.Label, a.Breakdown.Overall, a.Breakdown.Method, a.Breakdown.SemanticDegraded, content, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis %s: %w", a.ID, err)
	}
	return nil
}

// GetAnalysis retrieves an analysis by ID. Returns nil if not found.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.Analysis, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM analyses WHERE id = $1`,
		id,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis %s: %w", id, err)
	}
	return unmarshalAnalysis(content)
}

// ListAnalyses returns the most recent analyses, newest first
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]types.Analysis, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT content FROM analyses ORDER BY created_at DESC, id LIMIT $1`,
		clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	analyses := []types.Analysis{}
	for rows.Next() {
		var content []byte
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		a, err := unmarshalAnalysis(content)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return analyses, nil
}
