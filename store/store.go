// Package store persists analysis snapshots and extraction feedback in a
// local SQLite database. Snapshots let the office re-open an analysis
// without re-downloading the case's PDFs; feedback is an append-only record
// of reviewer verdicts on individual extractions.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// Store wraps the SQLite connection. A single database file holds all
// cases; snapshots are keyed by (case_id, kind).
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates the database under dir. The directory is created
// when missing. WAL mode is always enabled; SQLite supports one writer, so
// the pool is pinned to a single connection.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	dbPath := filepath.Join(dir, "transcripts.db")

	db, err := sql.Open("sqlite", dbPath+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{db: db, dbPath: dbPath}
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	schema := `
	-- One row per (case, analysis kind); re-running an analysis replaces it
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		case_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		payload TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(case_id, kind)
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_case ON snapshots(case_id);

	-- Feedback rows are never updated or deleted
	CREATE TABLE IF NOT EXISTS feedback (
		id TEXT PRIMARY KEY,
		extraction_id TEXT NOT NULL,
		is_correct INTEGER,
		correct_value TEXT,
		comments TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_feedback_extraction ON feedback(extraction_id);
	`
	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// SaveSnapshot stores an analysis result under (caseID, kind), replacing
// any previous snapshot of the same kind for the case. The payload is
// marshaled to JSON.
func (s *Store) SaveSnapshot(ctx context.Context, caseID, kind string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (case_id, kind, payload) VALUES (?, ?, ?)
		ON CONFLICT(case_id, kind) DO UPDATE SET
			payload = excluded.payload,
			created_at = CURRENT_TIMESTAMP`,
		caseID, kind, string(data))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the latest snapshot for (caseID, kind) into out.
// Returns sql.ErrNoRows when the case has no snapshot of that kind.
func (s *Store) LoadSnapshot(ctx context.Context, caseID, kind string, out any) error {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM snapshots WHERE case_id = ? AND kind = ?`,
		caseID, kind).Scan(&payload)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return nil
}
