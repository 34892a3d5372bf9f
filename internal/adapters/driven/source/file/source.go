// Package file serves the restaurant catalog from a local JSON file
// and can watch it for changes.
package file

import (
	"context"
	"fmt"
	"os"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driven/source"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// Source reads the catalog document from disk on every fetch.
type Source struct {
	path string
}

// NewSource creates a file catalog source for the given path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the backing file path.
func (s *Source) Path() string {
	return s.path
}

// Fetch implements driven.CatalogSource.
func (s *Source) Fetch(ctx context.Context) ([]domain.Restaurant, error) {
	payload, err := s.FetchPayload(ctx)
	if err != nil {
		return nil, err
	}
	return source.Decode(payload)
}

// FetchPayload reads the raw catalog document. The read itself is not
// interruptible, so cancellation is honoured before touching the disk.
func (s *Source) FetchPayload(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return payload, nil
}
