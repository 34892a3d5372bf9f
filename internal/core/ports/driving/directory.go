package driving

import (
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
)

// Directory is the read-only surface views render from. Views pull
// state exclusively through this interface - never from the catalog
// directly - and emit intents back through a Dispatcher.
type Directory interface {
	// Filtered returns the restaurants to display, in catalog order.
	Filtered() []domain.Restaurant

	// Cuisines returns the cuisine filter options in encounter order.
	Cuisines() []string

	// Neighborhoods returns the neighbourhood filter options in
	// encounter order.
	Neighborhoods() []string

	// Filter returns the active filter selection.
	Filter() domain.Filter

	// Selected returns the selected restaurant, if any.
	Selected() (domain.Restaurant, bool)

	// RestaurantByID looks a restaurant up in the current catalog.
	RestaurantByID(id int) (domain.Restaurant, bool)

	// Mode returns the global view mode, derived from the selection.
	Mode() domain.Mode

	// Center returns the map centre for the current state.
	Center() domain.Coordinate
}

// Renderer is the single entry point of a view collaborator. Render
// pulls current state from the Directory it was constructed with and
// has no return value. It must be idempotent: safe to call repeatedly
// with unchanged state, and safe to call before the first refresh has
// completed (a "no data" rendering, never a panic).
type Renderer interface {
	Render()
}

// Scroller is an optional view capability. The controller scrolls the
// list to the top when entering the details view.
type Scroller interface {
	ScrollTop()
}
