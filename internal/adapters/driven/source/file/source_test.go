package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "restaurants.json")
	payload := `{"restaurants": [{"id": 5, "name": "Superiority Burger", "cuisine_type": "American", "neighborhood": "Manhattan"}]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0600))

	s := NewSource(path)
	restaurants, err := s.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "Superiority Burger", restaurants[0].Name)
}

func TestFetch_MissingFile(t *testing.T) {
	s := NewSource(filepath.Join(t.TempDir(), "absent.json"))

	_, err := s.Fetch(context.Background())

	assert.Error(t, err)
}

func TestFetch_ReadsLatestContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "restaurants.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"restaurants": [{"id": 1, "name": "A"}]}`), 0600))
	s := NewSource(path)

	first, err := s.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	require.NoError(t, os.WriteFile(path, []byte(`{"restaurants": [{"id": 1, "name": "A"}, {"id": 2, "name": "B"}]}`), 0600))
	second, err := s.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 2)
}

func TestFetch_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "restaurants.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"restaurants": []}`), 0600))
	s := NewSource(path)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Fetch(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
