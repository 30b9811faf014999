package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tovrstra/python-unidiff/internal/adapter/store/sqlite"
	"github.com/tovrstra/python-unidiff/internal/store"
)

func setupTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	// Use in-memory database for testing
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err, "failed to create test store")

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func TestStore_SaveRun_GetRun(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	run := store.Run{
		RunID:     "run-123",
		Timestamp: time.Now().UTC().Truncate(time.Second), // Truncate to avoid precision issues
		Source:    "change.diff",
		Files:     2,
		Added:     5,
		Removed:   3,
	}
	files := []store.FileStat{
		{Path: "a.txt", Status: store.FileStatusModified, Hunks: 1, Added: 2, Removed: 3},
		{Path: "b.txt", Status: store.FileStatusAdded, Hunks: 1, Added: 3, Removed: 0},
	}

	require.NoError(t, s.SaveRun(ctx, run, files))

	retrieved, retrievedFiles, err := s.GetRun(ctx, run.RunID)
	require.NoError(t, err)

	assert.Equal(t, run, retrieved)
	assert.Equal(t, files, retrievedFiles)
}

func TestStore_GetRun_NotFound(t *testing.T) {
	s := setupTestStore(t)

	_, _, err := s.GetRun(context.Background(), "missing")
	assert.Error(t, err)
}

func TestStore_SaveRun_DuplicateID(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	run := store.Run{RunID: "run-dup", Timestamp: time.Now().UTC().Truncate(time.Second), Source: "stdin"}
	require.NoError(t, s.SaveRun(ctx, run, nil))
	assert.Error(t, s.SaveRun(ctx, run, nil))
}

func TestStore_ListRuns_NewestFirst(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"run-a", "run-b", "run-c"} {
		run := store.Run{
			RunID:     id,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Source:    "stdin",
		}
		require.NoError(t, s.SaveRun(ctx, run, nil))
	}

	runs, err := s.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-c", runs[0].RunID)
	assert.Equal(t, "run-b", runs[1].RunID)
}

func TestStore_ListRuns_DefaultLimit(t *testing.T) {
	s := setupTestStore(t)

	runs, err := s.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
