package driving

import (
	"context"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
)

// Catalog is the full command-and-query surface of the restaurant
// catalog. The controller is its only mutating caller in the TUI; the
// one-shot CLI commands drive it directly.
type Catalog interface {
	// Refresh replaces the restaurant collection from the source.
	// Fetch failures are absorbed: the catalog becomes empty and the
	// error is logged, never returned. If refreshes overlap, only the
	// last triggered one is applied.
	Refresh(ctx context.Context)

	// SetFilters updates the selection synchronously. The empty string
	// means no filter on that dimension; the UI sentinel "all" is
	// translated before it reaches stored state. The filtered slice is
	// recomputed before SetFilters returns.
	SetFilters(cuisine, neighborhood string)

	// Select marks the restaurant with the given id as selected.
	// Returns domain.ErrNotFound when the id is not in the catalog.
	Select(id int) error

	// ClearSelection drops the selection and re-runs the filter
	// pipeline.
	ClearSelection()

	// Restaurants returns the full collection in source order.
	Restaurants() []domain.Restaurant

	// Filtered returns the filtered collection, order preserved from
	// Restaurants.
	Filtered() []domain.Restaurant

	// Cuisines returns the distinct cuisine values in encounter order.
	Cuisines() []string

	// Neighborhoods returns the distinct neighbourhood values in
	// encounter order.
	Neighborhoods() []string

	// Filter returns the current selection.
	Filter() domain.Filter

	// Selected returns the selected restaurant, if any.
	Selected() (domain.Restaurant, bool)

	// RestaurantByID looks a restaurant up in the current collection.
	RestaurantByID(id int) (domain.Restaurant, bool)

	// CenterOfFiltered returns the arithmetic mean coordinate of the
	// filtered collection, or the configured fallback centre when it
	// is empty.
	CenterOfFiltered() domain.Coordinate
}
