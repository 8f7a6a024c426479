package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Seeded(t *testing.T) {
	seed := map[string]any{"search.qualifier": "wiki"}
	store := NewConfigStore(seed)
	require.NotNil(t, store)

	// The seed map is copied.
	seed["search.qualifier"] = "changed"
	assert.Equal(t, "wiki", store.GetString("search.qualifier"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore(map[string]any{
		"string_key": "value",
		"int_key":    42,
		"int64_key":  int64(7),
		"float_key":  3.0,
		"bool_key":   true,
	})

	assert.Equal(t, "value", store.GetString("string_key"))
	assert.Equal(t, 42, store.GetInt("int_key"))
	assert.Equal(t, 7, store.GetInt("int64_key"))
	assert.Equal(t, 3, store.GetInt("float_key"))
	assert.True(t, store.GetBool("bool_key"))

	assert.Empty(t, store.GetString("int_key"))
	assert.Zero(t, store.GetInt("string_key"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_SetAndKeys(t *testing.T) {
	store := NewConfigStore(nil)

	require.NoError(t, store.Set("paths.output", "out.db"))
	require.NoError(t, store.Set("directory.alphabet", "ab"))
	require.NoError(t, store.Set("paths.output", "lexicon.db"))

	assert.Equal(t, []string{"directory.alphabet", "paths.output"}, store.Keys())
	assert.Equal(t, "lexicon.db", store.GetString("paths.output"))
}

func TestConfigStore_Unset(t *testing.T) {
	store := NewConfigStore(map[string]any{"search.pause": "2s"})

	require.NoError(t, store.Unset("search.pause"))
	require.NoError(t, store.Unset("search.pause"))

	_, ok := store.Get("search.pause")
	assert.False(t, ok)
	assert.Empty(t, store.Keys())
}

func TestConfigStore_PersistenceNoops(t *testing.T) {
	store := NewConfigStore(nil)

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}
