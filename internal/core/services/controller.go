package services

import (
	"context"
	"errors"
	"sync"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/ports/driven"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/ports/driving"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/logger"
)

// Ensure Controller implements the driving interfaces.
var (
	_ driving.Directory  = (*Controller)(nil)
	_ driving.Dispatcher = (*Controller)(nil)
)

// Controller wiring errors.
var (
	// ErrMissingCatalog indicates the controller was built without a catalog.
	ErrMissingCatalog = errors.New("missing catalog")

	// ErrMissingListView indicates the list view renderer is not set.
	ErrMissingListView = errors.New("missing list view")

	// ErrMissingMapView indicates the map view renderer is not set.
	ErrMissingMapView = errors.New("missing map view")
)

// Views aggregates the render collaborators the controller fans out to.
// This is the single injection point for the view layer; the controller
// never discovers views ambiently.
type Views struct {
	// List renders the restaurant list, or the detail panel in details
	// mode.
	List driving.Renderer

	// Filters renders the cuisine/neighbourhood filter controls.
	Filters driving.Renderer

	// Map renders the map markers.
	Map driving.Renderer

	// Chrome renders the surrounding app chrome (breadcrumb, status).
	Chrome driving.Renderer
}

// Validate ensures the required renderers are set. Filters and Chrome
// are optional: headless and partial wirings (tests, one-shot CLI)
// leave them nil.
func (v Views) Validate() error {
	if v.List == nil {
		return ErrMissingListView
	}
	if v.Map == nil {
		return ErrMissingMapView
	}
	return nil
}

// Controller is the sole mutator of shared state. It owns the catalog,
// reacts to intents from the UI and from URL navigation, and explicitly
// invokes each dependent view's render entry point after every state
// change. Views read back through the controller's Directory surface.
type Controller struct {
	// mu serialises intent handling. Intents arrive from several
	// goroutines (tea commands, the file watcher), and mutation plus
	// the render fan-out must be one critical section so views never
	// observe or render a half-applied transition.
	mu sync.Mutex

	catalog driving.Catalog
	nav     driven.Navigator
	views   Views
}

// NewController wires a controller. nav may be nil, in which case
// SelectRequested transitions directly instead of going through the
// address bar.
func NewController(catalog driving.Catalog, nav driven.Navigator, views Views) (*Controller, error) {
	if catalog == nil {
		return nil, ErrMissingCatalog
	}
	if err := views.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		catalog: catalog,
		nav:     nav,
		views:   views,
	}, nil
}

// Start performs the startup sequence: refresh the catalog and render
// every view. The initial mode is overview.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.catalog.Refresh(ctx)
	c.renderAll()
}

// Dispatch handles one intent. All state mutation in the application
// funnels through here, which keeps the mutation/render sequence
// auditable. Overlapping dispatches are serialised.
func (c *Controller) Dispatch(ctx context.Context, intent driving.Intent) {
	// Moving the address bar stays outside the critical section: the
	// navigator feeds the resulting NavigationChanged straight back
	// into Dispatch, which must be free to take the lock.
	if in, ok := intent.(driving.SelectRequested); ok && c.nav != nil {
		target := domain.Target{Mode: domain.ModeDetails, ID: in.ID}
		if err := c.nav.Go(target.Fragment()); err != nil {
			logger.Warn("controller: navigation to %s failed: %v", target.Fragment(), err)
		}
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	switch in := intent.(type) {
	case driving.FilterChanged:
		c.handleFilterChanged(ctx, in)
	case driving.NavigationChanged:
		c.handleNavigation(in.URL)
	case driving.SelectRequested:
		// No navigator wired: transition directly.
		target := domain.Target{Mode: domain.ModeDetails, ID: in.ID}
		c.handleNavigation(target.Fragment())
	case driving.RefreshRequested:
		c.catalog.Refresh(ctx)
		c.renderAll()
	default:
		logger.Warn("controller: unknown intent %T", intent)
	}
}

func (c *Controller) handleFilterChanged(ctx context.Context, in driving.FilterChanged) {
	if c.Mode() == domain.ModeDetails {
		// Filter controls are inert in details mode.
		logger.Debug("controller: dropping filter change while in details mode")
		return
	}
	c.catalog.SetFilters(in.Cuisine, in.Neighborhood)
	c.catalog.Refresh(ctx)
	c.render(c.views.Filters, c.views.List, c.views.Map)
}

func (c *Controller) handleNavigation(url string) {
	target := domain.DecodeFragment(url)
	if target.Mode == domain.ModeOverview {
		c.toOverview()
		return
	}
	if err := c.catalog.Select(target.ID); err != nil {
		// The fragment names a restaurant that does not exist. Falling
		// back to overview keeps the rendered state consistent with
		// the rest of the fragment handling.
		logger.Warn("controller: fragment references unknown restaurant %d, showing overview", target.ID)
		c.toOverview()
		return
	}
	c.render(c.views.List, c.views.Map, c.views.Chrome)
	if s, ok := c.views.List.(driving.Scroller); ok {
		s.ScrollTop()
	}
}

func (c *Controller) toOverview() {
	c.catalog.ClearSelection()
	c.renderAll()
}

// renderAll pushes a render to every view in a fixed order.
func (c *Controller) renderAll() {
	c.render(c.views.Filters, c.views.List, c.views.Map, c.views.Chrome)
}

func (c *Controller) render(views ...driving.Renderer) {
	for _, v := range views {
		if v != nil {
			v.Render()
		}
	}
}

// Filtered implements driving.Directory.
func (c *Controller) Filtered() []domain.Restaurant {
	return c.catalog.Filtered()
}

// Cuisines implements driving.Directory.
func (c *Controller) Cuisines() []string {
	return c.catalog.Cuisines()
}

// Neighborhoods implements driving.Directory.
func (c *Controller) Neighborhoods() []string {
	return c.catalog.Neighborhoods()
}

// Filter implements driving.Directory.
func (c *Controller) Filter() domain.Filter {
	return c.catalog.Filter()
}

// Selected implements driving.Directory.
func (c *Controller) Selected() (domain.Restaurant, bool) {
	return c.catalog.Selected()
}

// RestaurantByID implements driving.Directory.
func (c *Controller) RestaurantByID(id int) (domain.Restaurant, bool) {
	return c.catalog.RestaurantByID(id)
}

// Mode implements driving.Directory. The mode is derived from the
// selection: a present selection means details.
func (c *Controller) Mode() domain.Mode {
	if _, ok := c.catalog.Selected(); ok {
		return domain.ModeDetails
	}
	return domain.ModeOverview
}

// Center implements driving.Directory. In details mode the map centres
// tightly on the selected restaurant.
func (c *Controller) Center() domain.Coordinate {
	if r, ok := c.catalog.Selected(); ok {
		return r.Coord
	}
	return c.catalog.CenterOfFiltered()
}
