package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sire-cli/internal/sire"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestRecordRun(t *testing.T) {
	s := newTestStore(t)

	stats := sire.Stats{Total: 10, Valid: 7, Skipped: 2, Colombianos: 1}
	run, err := s.RecordRun(context.Background(), "guests.xlsx", "E", 7, stats)
	require.NoError(t, err)

	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "guests.xlsx", run.InputFile)
	assert.Equal(t, "E", run.Direction)
	assert.Equal(t, 7, run.Lines)
	assert.Equal(t, stats, run.Stats)
	assert.False(t, run.CreatedAt.IsZero())
}

func TestListRuns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.RecordRun(ctx, "guests.xlsx", "E", i, sire.Stats{Total: i})
		require.NoError(t, err)
	}

	runs, err := s.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	// Stats round-trip through their JSON column.
	totals := make(map[int]bool)
	for _, r := range runs {
		totals[r.Stats.Total] = true
	}
	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true}, totals)
}

func TestListRuns_Limit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.RecordRun(ctx, "guests.xlsx", "S", i, sire.Stats{Total: i})
		require.NoError(t, err)
	}

	runs, err := s.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestListRuns_Empty(t *testing.T) {
	s := newTestStore(t)

	runs, err := s.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
