// Package store defines the persistence layer for parse-run history.
package store

import (
	"context"
	"time"
)

// Store persists summaries of parsed diffs so earlier runs can be listed
// and compared.
type Store interface {
	SaveRun(ctx context.Context, run Run, files []FileStat) error
	GetRun(ctx context.Context, runID string) (Run, []FileStat, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	Close() error
}

// Run summarizes one parse of a diff.
type Run struct {
	RunID     string
	Timestamp time.Time
	Source    string // file path, "stdin", or "git:base..target"
	Files     int
	Added     int
	Removed   int
}

// FileStat is the per-file summary belonging to a run.
type FileStat struct {
	Path    string
	Status  string // "added", "removed", or "modified"
	Hunks   int
	Added   int
	Removed int
}

// File status values recorded by the store.
const (
	FileStatusAdded    = "added"
	FileStatusRemoved  = "removed"
	FileStatusModified = "modified"
)
