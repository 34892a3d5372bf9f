package httpjson

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"restaurants": [{"id": 1, "name": "Emily", "cuisine_type": "Pizza", "neighborhood": "Brooklyn", "latlng": {"lat": 40.68, "lng": -73.96}}]}`))
	}))
	defer srv.Close()

	s := NewSource(srv.URL)
	restaurants, err := s.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "Emily", restaurants[0].Name)
	assert.Equal(t, "Pizza", restaurants[0].CuisineType)
}

func TestFetch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewSource(srv.URL)
	_, err := s.Fetch(context.Background())

	assert.Error(t, err)
}

func TestFetch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	s := NewSource(srv.URL)
	_, err := s.Fetch(context.Background())

	assert.Error(t, err)
}

func TestFetch_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // immediately unreachable

	s := NewSource(srv.URL)
	_, err := s.Fetch(context.Background())

	assert.Error(t, err)
}
