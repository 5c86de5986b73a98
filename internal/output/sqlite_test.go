package output

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	w, err := NewSQLiteWriter(path)
	require.NoError(t, err)
	defer w.Close()

	rpt := sampleReport()
	require.NoError(t, w.Write(rpt))

	runs, err := w.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, rpt.ID, run.ID)
	assert.Equal(t, "/srv/app", run.ProjectPath)
	assert.Equal(t, 30, run.PeriodDays)
	assert.Equal(t, 49.2, run.OverallScore)
	assert.Equal(t, "low", run.OverallLevel)
	assert.Equal(t, int64(1500), run.DurationMs)
	assert.True(t, run.GeneratedAt.Equal(rpt.GeneratedAt))
}

func TestSQLiteWriterListsNewestFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	w, err := NewSQLiteWriter(path)
	require.NoError(t, err)
	defer w.Close()

	older := sampleReport()
	older.ID = "run-older"
	older.GeneratedAt = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, w.Write(older))

	newer := sampleReport()
	newer.ID = "run-newer"
	newer.GeneratedAt = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	require.NoError(t, w.Write(newer))

	runs, err := w.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-newer", runs[0].ID)
	assert.Equal(t, "run-older", runs[1].ID)

	limited, err := w.ListRuns(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "run-newer", limited[0].ID)
}

func TestSQLiteWriterReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	w, err := NewSQLiteWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleReport()))
	require.NoError(t, w.Close())

	// schema creation is idempotent and history survives reopening
	reopened, err := NewSQLiteWriter(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.ListRuns(10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
