// Package memory provides an in-memory catalog source for tests and
// demo data.
package memory

import (
	"context"
	"sync"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// Source is an in-memory implementation of driven.CatalogSource.
type Source struct {
	mu          sync.RWMutex
	restaurants []domain.Restaurant
	err         error
}

// NewSource creates a source serving the given restaurants.
func NewSource(restaurants []domain.Restaurant) *Source {
	return &Source{restaurants: restaurants}
}

// Fetch returns the configured restaurants, or the configured error.
func (s *Source) Fetch(_ context.Context) ([]domain.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]domain.Restaurant(nil), s.restaurants...), nil
}

// SetRestaurants replaces the served collection.
func (s *Source) SetRestaurants(restaurants []domain.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurants = restaurants
	s.err = nil
}

// SetError makes subsequent fetches fail with err.
func (s *Source) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}
