// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records conversion runs and their per-line diagnostics in
// a SQLite database, and exports them as YAML or JSON.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/mdtex/pkg/types"
)

// DefaultDBPath is used when HistoryConfig.DBPath is empty.
const DefaultDBPath = ".mdtex/history.db"

// timeLayout is how started_at is stored; it sorts lexically.
const timeLayout = time.RFC3339Nano

// Store manages the run history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at cfg.DBPath, creating
// its directory and schema if they do not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = DefaultDBPath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			started_at TEXT NOT NULL,
			lines INTEGER NOT NULL DEFAULT 0,
			fragments INTEGER NOT NULL DEFAULT 0,
			failures INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			error TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS diagnostics (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			line INTEGER NOT NULL,
			text TEXT NOT NULL,
			message TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
		`CREATE INDEX IF NOT EXISTS idx_diagnostics_run_id ON diagnostics(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores rec and its diagnostics in one transaction and returns the
// new run ID. Skipped runs (status none) are not stored and return 0.
func (s *Store) Record(ctx context.Context, rec types.RunRecord) (int64, error) {
	if rec.Status == types.RunNone {
		return 0, nil
	}
	if rec.StartedAt.IsZero() {
		rec.StartedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (source, started_at, lines, fragments, failures, status, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Source, rec.StartedAt.UTC().Format(timeLayout),
		rec.Lines, rec.Fragments, rec.Failures, string(rec.Status),
		sql.NullString{String: rec.Error, Valid: rec.Error != ""},
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	if len(rec.Diagnostics) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO diagnostics (run_id, line, text, message) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return 0, fmt.Errorf("preparing insert: %w", err)
		}
		defer stmt.Close()

		for _, d := range rec.Diagnostics {
			if _, err := stmt.ExecContext(ctx, id, d.Line, d.Text, d.Message); err != nil {
				return 0, fmt.Errorf("inserting diagnostic for line %d: %w", d.Line, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return id, nil
}

// RecordAll stores each record in recs, skipping those with status none.
func (s *Store) RecordAll(ctx context.Context, recs []types.RunRecord) error {
	for _, rec := range recs {
		if _, err := s.Record(ctx, rec); err != nil {
			return fmt.Errorf("recording %s: %w", rec.Source, err)
		}
	}
	return nil
}

// Prune deletes all but the newest keep runs, with their diagnostics, and
// returns how many runs were removed.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY started_at DESC, id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned runs: %w", err)
	}
	return n, nil
}
