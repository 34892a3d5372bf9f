package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("catalog.url", "https://example.com/restaurants.json"))
	require.NoError(t, store.Set("map.fallback_lat", 40.722216))

	assert.Equal(t, "https://example.com/restaurants.json", store.GetString("catalog.url"))
	assert.InDelta(t, 40.722216, store.GetFloat("map.fallback_lat"), 1e-9)
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("absent"))
	assert.Zero(t, store.GetFloat("absent"))
	_, ok := store.Get("absent")
	assert.False(t, ok)
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("catalog.file", "data/restaurants.json"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "data/restaurants.json", reopened.GetString("catalog.file"))
}

func TestConfigStore_IntegerReadAsFloat(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("map.fallback_lat", int64(40)))

	assert.InDelta(t, 40.0, store.GetFloat("map.fallback_lat"), 1e-9)
}
