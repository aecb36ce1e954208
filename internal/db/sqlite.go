package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/jonathan/ats-scorer/internal/types"
)

// SQLiteStore is a file-backed HistoryStore for local use.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

var _ HistoryStore = (*SQLiteStore)(nil)

// sqliteTimeLayout is fixed-width so created_at sorts correctly as text.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS analyses (
	id                TEXT PRIMARY KEY,
	label             TEXT NOT NULL DEFAULT '',
	overall_score     INTEGER NOT NULL,
	method            TEXT NOT NULL,
	semantic_degraded INTEGER NOT NULL DEFAULT 0,
	content           TEXT NOT NULL,
	created_at        TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS analyses_created_at_idx ON analyses (created_at DESC);
`

// OpenSQLite opens (creating if needed) the SQLite database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveAnalysis stores an analysis, replacing any existing row with the same ID.
func (s *SQLiteStore) SaveAnalysis(ctx context.Context, a *types.Analysis) error {
	content, err := marshalAnalysis(a)
	if err != nil {
		return err
	}

	degraded := 0
	if a.Breakdown.SemanticDegraded {
		degraded = 1
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, label, overall_score, method, semantic_degraded, content, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET label = excluded.label, overall_score = excluded.overall_score,
		   method = excluded.method, semantic_degraded = excluded.semantic_degraded, content = excluded.content`,
		a.ID.String(), a.Label, a.Breakdown.Overall, a.Breakdown.Method, degraded, string(content),
		a.CreatedAt.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("saving analysis %s: %w", a.ID, err)
	}
	return nil
}

// GetAnalysis returns the analysis with the given ID, or nil if it does not exist.
func (s *SQLiteStore) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.Analysis, error) {
	var content string
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM analyses WHERE id = ?`, id.String(),
	).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting analysis %s: %w", id, err)
	}
	return unmarshalAnalysis([]byte(content))
}

// ListAnalyses returns the most recent analyses, newest first.
func (s *SQLiteStore) ListAnalyses(ctx context.Context, limit int) ([]types.Analysis, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT content FROM analyses ORDER BY created_at DESC, id LIMIT ?`, clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	defer rows.Close()

	analyses := []types.Analysis{}
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("scanning analysis: %w", err)
		}
		a, err := unmarshalAnalysis([]byte(content))
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analyses: %w", err)
	}
	return analyses, nil
}
