package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
)

func TestNewStore_EmptyPath(t *testing.T) {
	store, err := NewStore("")
	assert.Nil(t, store)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_SaveWritesOrderedObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "final_dis_symp.json")
	store, err := NewStore(path)
	require.NoError(t, err)

	record := domain.NewSymptomRecord()
	record.Add("Mumps", "Swollen glands")
	record.Add("Flu", "Fever, cough")
	require.NoError(t, store.Save(context.Background(), record))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Mumps": "Swollen glands", "Flu": "Fever, cough"}`, string(data))
	assert.Less(t, strings.Index(string(data), "Mumps"), strings.Index(string(data), "Flu"))
}

func TestStore_SaveOverwritesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Old": "stale"}`), 0o644))

	store, err := NewStore(path)
	require.NoError(t, err)

	record := domain.NewSymptomRecord()
	record.Add("Flu", "Fever")
	require.NoError(t, store.Save(context.Background(), record))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.SymptomEntry{{Disease: "Flu", Symptoms: "Fever"}}, loaded.Entries())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_SaveEmptyRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	store, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), domain.NewSymptomRecord()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestStore_LoadMissing(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	record, err := store.Load(context.Background())
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte(`["not", "an", "object"]`), 0o644))
	store, err := NewStore(path)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_SaveIntoMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")
	store, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), domain.NewSymptomRecord()))
	assert.FileExists(t, path)
	assert.NoError(t, store.Close())
}
