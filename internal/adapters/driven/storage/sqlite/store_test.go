package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
)

// setupTestStore creates a SQLite store in a temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "lexicon.db"))
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func sampleRecord() *domain.SymptomRecord {
	record := domain.NewSymptomRecord()
	record.Add("Mumps", "Swollen glands")
	record.Add("Flu", "Fever, cough")
	record.Add("Asthma", "Wheezing")
	return record
}

// ==================== Store Creation Tests ====================

func TestNewStore_EmptyPath(t *testing.T) {
	store, err := NewStore("")
	assert.Nil(t, store)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewStore_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "lexicon.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, path, store.Path())
	assert.FileExists(t, path)
}

func TestNewStore_Migrations(t *testing.T) {
	store := setupTestStore(t)

	var version int
	err := store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	for _, table := range []string{"lexicon_entries", "lexicon_meta", "runs"} {
		var name string
		err := store.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		require.NoError(t, err, table)
	}
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.db")
	ctx := context.Background()

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, sampleRecord()))
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	record, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleRecord().Entries(), record.Entries())
}

// ==================== Lexicon Tests ====================

func TestStore_LoadBeforeSave(t *testing.T) {
	store := setupTestStore(t)

	record, err := store.Load(context.Background())
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_SaveAndLoad_PreservesOrder(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleRecord()))

	record, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleRecord().Entries(), record.Entries())
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleRecord()))

	replacement := domain.NewSymptomRecord()
	replacement.Add("Measles", "Rash")
	require.NoError(t, store.Save(ctx, replacement))

	record, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.SymptomEntry{{Disease: "Measles", Symptoms: "Rash"}}, record.Entries())
}

func TestStore_SaveEmpty(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewSymptomRecord()))

	record, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, record.Len())
}

// ==================== Run History Tests ====================

func TestStore_RecordRun_AssignsID(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.RecordRun(ctx, domain.RunSummary{
		StartedAt:  start,
		FinishedAt: start.Add(time.Minute),
		Kept:       3,
	}))

	runs, err := store.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.NotEmpty(t, runs[0].ID)
	assert.Equal(t, 3, runs[0].Kept)
	assert.True(t, runs[0].StartedAt.Equal(start))
}

func TestStore_ListRuns_MostRecentFirst(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"first", "second", "third"} {
		started := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, store.RecordRun(ctx, domain.RunSummary{
			ID:          id,
			StartedAt:   started,
			FinishedAt:  started.Add(time.Minute),
			UniqueNames: 10 + i,
		}))
	}

	runs, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "third", runs[0].ID)
	assert.Equal(t, "second", runs[1].ID)
	assert.Equal(t, 12, runs[0].UniqueNames)
}

func TestStore_ListRuns_Empty(t *testing.T) {
	store := setupTestStore(t)

	runs, err := store.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
