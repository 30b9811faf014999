// Package sqlite implements the store.Store interface using SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tovrstra/python-unidiff/internal/store"
)

// Store implements the store.Store interface using SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a new SQLite store at the given path.
// Use ":memory:" for an in-memory database (useful for testing).
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &Store{db: db}

	if err := s.createSchema(); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return s, nil
}

// createSchema creates all tables and indexes if they don't exist.
func (s *Store) createSchema() error {
	schema := `
	-- One row per parsed diff
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		timestamp INTEGER NOT NULL,
		source TEXT NOT NULL,
		files INTEGER NOT NULL,
		added INTEGER NOT NULL,
		removed INTEGER NOT NULL
	);

	-- Per-file summaries belonging to a run
	CREATE TABLE IF NOT EXISTS run_files (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		path TEXT NOT NULL,
		status TEXT NOT NULL CHECK(status IN ('added', 'removed', 'modified')),
		hunks INTEGER NOT NULL,
		added INTEGER NOT NULL,
		removed INTEGER NOT NULL,
		FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_run_files_run ON run_files(run_id);
	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("exec schema: %w", err)
	}
	return nil
}

// SaveRun stores a run and its per-file stats in one transaction.
func (s *Store) SaveRun(ctx context.Context, run store.Run, files []store.FileStat) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, timestamp, source, files, added, removed) VALUES (?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Timestamp.Unix(), run.Source, run.Files, run.Added, run.Removed,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, f := range files {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_files (run_id, path, status, hunks, added, removed) VALUES (?, ?, ?, ?, ?, ?)`,
			run.RunID, f.Path, f.Status, f.Hunks, f.Added, f.Removed,
		)
		if err != nil {
			return fmt.Errorf("insert file stat %s: %w", f.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetRun retrieves a run and its file stats by ID.
func (s *Store) GetRun(ctx context.Context, runID string) (store.Run, []store.FileStat, error) {
	var run store.Run
	var ts int64
	err := s.db.QueryRowContext(ctx,
		`SELECT run_id, timestamp, source, files, added, removed FROM runs WHERE run_id = ?`, runID,
	).Scan(&run.RunID, &ts, &run.Source, &run.Files, &run.Added, &run.Removed)
	if err == sql.ErrNoRows {
		return store.Run{}, nil, fmt.Errorf("run not found: %s", runID)
	}
	if err != nil {
		return store.Run{}, nil, fmt.Errorf("query run: %w", err)
	}
	run.Timestamp = unixTime(ts)

	rows, err := s.db.QueryContext(ctx,
		`SELECT path, status, hunks, added, removed FROM run_files WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return store.Run{}, nil, fmt.Errorf("query file stats: %w", err)
	}
	defer rows.Close()

	var files []store.FileStat
	for rows.Next() {
		var f store.FileStat
		if err := rows.Scan(&f.Path, &f.Status, &f.Hunks, &f.Added, &f.Removed); err != nil {
			return store.Run{}, nil, fmt.Errorf("scan file stat: %w", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return store.Run{}, nil, fmt.Errorf("iterate file stats: %w", err)
	}

	return run, files, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, timestamp, source, files, added, removed FROM runs ORDER BY timestamp DESC, run_id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		var run store.Run
		var ts int64
		if err := rows.Scan(&run.RunID, &ts, &run.Source, &run.Files, &run.Added, &run.Removed); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Timestamp = unixTime(ts)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
