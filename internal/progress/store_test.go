package progress

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/pitch-puzzle/internal/models"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "puzzle_2026-09-01", Key("2026-09-01"))
}

// exerciseStore runs the per-date record lifecycle against any Store.
func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	const date = "2026-09-01"

	_, err := store.Get(ctx, date)
	require.ErrorIs(t, err, ErrNotFound)

	rec := models.Progress{
		Completed: true,
		Attempts:  2,
		Date:      date,
		Correct:   true,
	}
	require.NoError(t, store.Put(ctx, date, rec))

	got, err := store.Get(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	// Writes replace the prior record wholesale.
	rec.Attempts = 3
	rec.Correct = false
	require.NoError(t, store.Put(ctx, date, rec))
	got, err = store.Get(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	// Records are keyed per date.
	_, err = store.Get(ctx, "2026-09-02")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Delete(ctx, date))
	_, err = store.Get(ctx, date)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent record is not an error.
	require.NoError(t, store.Delete(ctx, date))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	exerciseStore(t, store)
}

func TestSQLiteStore(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "progress.db"))
	require.NoError(t, err)
	defer store.Close()
	exerciseStore(t, store)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "progress.db")
	const date = "2026-09-01"

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, date, models.Progress{
		Completed: true, Attempts: 1, Date: date, Correct: true, ChainCompleted: true,
	}))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	rec, err := reopened.Get(ctx, date)
	require.NoError(t, err)
	assert.True(t, rec.ChainCompleted)
	assert.Equal(t, 1, rec.Attempts)
}
