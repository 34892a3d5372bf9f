package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/ports/driven"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/ports/driving"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.Catalog = (*CatalogService)(nil)

// CatalogService owns the restaurant collection, the derived filter
// option sets, the filter selection, the current selection and the
// filtered result. One instance lives for the whole session.
//
// Refreshes may run on concurrent goroutines (TUI commands, file
// watcher), so state is guarded by a mutex, and a token issued per
// refresh guarantees that the last *triggered* refresh is the one whose
// result survives: an earlier, slower fetch that resolves late is
// discarded rather than clobbering fresher data.
type CatalogService struct {
	source         driven.CatalogSource
	fallbackCenter domain.Coordinate

	mu            sync.RWMutex
	refreshToken  string
	all           []domain.Restaurant
	cuisines      []string
	neighborhoods []string
	filter        domain.Filter
	selectedID    int
	hasSelection  bool
	filtered      []domain.Restaurant
}

// CatalogOption configures a CatalogService.
type CatalogOption func(*CatalogService)

// WithFallbackCenter overrides the default map centre used when the
// filtered set is empty.
func WithFallbackCenter(c domain.Coordinate) CatalogOption {
	return func(s *CatalogService) {
		s.fallbackCenter = c
	}
}

// NewCatalogService creates a catalog backed by the given source.
func NewCatalogService(source driven.CatalogSource, opts ...CatalogOption) *CatalogService {
	s := &CatalogService{
		source:         source,
		fallbackCenter: domain.DefaultCenter,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh replaces the collection from the source and recomputes all
// derived state. A fetch failure empties the catalog (a stale list
// after a failed fetch would be a bug, not graceful degradation); the
// error is logged and never returned.
func (s *CatalogService) Refresh(ctx context.Context) {
	token := uuid.NewString()
	s.mu.Lock()
	s.refreshToken = token
	s.mu.Unlock()

	fetched, err := s.source.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refreshToken != token {
		// A newer refresh was triggered while this one was in flight.
		logger.Debug("catalog: discarding stale refresh result (%d restaurants)", len(fetched))
		return
	}
	if err != nil {
		logger.Warn("catalog: fetch failed, emptying catalog: %v", err)
		fetched = nil
	} else {
		logger.Debug("catalog: refreshed with %d restaurants", len(fetched))
	}
	s.all = fetched
	s.recomputeLocked()
}

// SetFilters updates the selection. Values go through sentinel
// translation, so callers may pass either "all" or the empty string for
// an open dimension. The filtered slice is recomputed before returning;
// it is never observably stale.
func (s *CatalogService) SetFilters(cuisine, neighborhood string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = domain.Filter{
		Cuisine:      domain.NormalizeFilterValue(cuisine),
		Neighborhood: domain.NormalizeFilterValue(neighborhood),
	}
	s.refilterLocked()
}

// Select marks the restaurant with the given id as selected. The
// selection invariant holds by construction: only a member of the
// current collection can be selected.
func (s *CatalogService) Select(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.findLocked(id); !ok {
		return domain.ErrNotFound
	}
	s.selectedID = id
	s.hasSelection = true
	return nil
}

// ClearSelection drops the selection and re-runs the filter pipeline.
func (s *CatalogService) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasSelection = false
	s.refilterLocked()
}

// Restaurants returns a copy of the full collection in source order.
func (s *CatalogService) Restaurants() []domain.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyRestaurants(s.all)
}

// Filtered returns a copy of the filtered collection, order preserved
// from the full collection.
func (s *CatalogService) Filtered() []domain.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyRestaurants(s.filtered)
}

// Cuisines returns the distinct cuisine values in encounter order.
func (s *CatalogService) Cuisines() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.cuisines...)
}

// Neighborhoods returns the distinct neighbourhood values in encounter
// order.
func (s *CatalogService) Neighborhoods() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.neighborhoods...)
}

// Filter returns the current selection.
func (s *CatalogService) Filter() domain.Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Selected returns the selected restaurant, if any.
func (s *CatalogService) Selected() (domain.Restaurant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasSelection {
		return domain.Restaurant{}, false
	}
	return s.findLocked(s.selectedID)
}

// RestaurantByID looks a restaurant up in the current collection.
func (s *CatalogService) RestaurantByID(id int) (domain.Restaurant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLocked(id)
}

// CenterOfFiltered returns the arithmetic mean coordinate of the
// filtered collection, or the configured fallback centre when it is
// empty.
func (s *CatalogService) CenterOfFiltered() domain.Coordinate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.filtered) == 0 {
		return s.fallbackCenter
	}
	var lat, lng float64
	for _, r := range s.filtered {
		lat += r.Coord.Lat
		lng += r.Coord.Lng
	}
	n := float64(len(s.filtered))
	return domain.Coordinate{Lat: lat / n, Lng: lng / n}
}

// recomputeLocked rebuilds all derived state after the collection
// changed: option sets from scratch (the invariant "derived data always
// matches current catalog" outweighs the recomputation cost at this
// scale), selection revalidation, and the filtered slice.
func (s *CatalogService) recomputeLocked() {
	s.cuisines = s.cuisines[:0]
	s.neighborhoods = s.neighborhoods[:0]
	seenCuisine := make(map[string]struct{}, len(s.all))
	seenNeighborhood := make(map[string]struct{}, len(s.all))
	for _, r := range s.all {
		if _, ok := seenCuisine[r.CuisineType]; !ok {
			seenCuisine[r.CuisineType] = struct{}{}
			s.cuisines = append(s.cuisines, r.CuisineType)
		}
		if _, ok := seenNeighborhood[r.Neighborhood]; !ok {
			seenNeighborhood[r.Neighborhood] = struct{}{}
			s.neighborhoods = append(s.neighborhoods, r.Neighborhood)
		}
	}

	if s.hasSelection {
		if _, ok := s.findLocked(s.selectedID); !ok {
			// Stale selection referencing removed data.
			logger.Debug("catalog: selection %d no longer present, clearing", s.selectedID)
			s.hasSelection = false
		}
	}

	s.refilterLocked()
}

func (s *CatalogService) refilterLocked() {
	s.filtered = s.filtered[:0]
	for _, r := range s.all {
		if s.filter.Matches(r) {
			s.filtered = append(s.filtered, r)
		}
	}
}

func (s *CatalogService) findLocked(id int) (domain.Restaurant, bool) {
	for _, r := range s.all {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Restaurant{}, false
}

func copyRestaurants(src []domain.Restaurant) []domain.Restaurant {
	if src == nil {
		return nil
	}
	return append([]domain.Restaurant(nil), src...)
}
