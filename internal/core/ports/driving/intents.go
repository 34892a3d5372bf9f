package driving

import "context"

// Intent is a request for a state change, dispatched into the single
// controller handler. Modelling UI events as an explicit enumeration
// keeps the control flow deterministic and independent of any
// particular event system.
type Intent interface {
	isIntent()
}

// FilterChanged requests a new filter selection. Values are UI-layer
// strings: the sentinel "all" is accepted and translated to absence.
type FilterChanged struct {
	Cuisine      string
	Neighborhood string
}

// NavigationChanged reports that the current URL changed, fragment-only
// changes included.
type NavigationChanged struct {
	URL string
}

// SelectRequested asks for a restaurant's details view, e.g. the user
// activated a summary card. The controller navigates to the encoded
// fragment; the resulting NavigationChanged performs the transition.
type SelectRequested struct {
	ID int
}

// RefreshRequested asks for a catalog refresh, e.g. the data file
// changed on disk.
type RefreshRequested struct{}

func (FilterChanged) isIntent()     {}
func (NavigationChanged) isIntent() {}
func (SelectRequested) isIntent()   {}
func (RefreshRequested) isIntent()  {}

// Dispatcher accepts intents for the controller to handle. Dispatch is
// synchronous: when it returns, state is consistent and the dependent
// views have been rendered.
type Dispatcher interface {
	Dispatch(ctx context.Context, intent Intent)
}
