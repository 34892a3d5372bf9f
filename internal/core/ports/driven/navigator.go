package driven

// Navigator abstracts the address bar: the current URL and programmatic
// navigation. The URL fragment is the sole persisted encoding of "is a
// restaurant selected", which keeps that state bookmarkable.
//
// Implementations live in driving adapters (the TUI owns its fragment
// state). Go must result in a NavigationChanged intent being dispatched
// back into the controller, mirroring how a browser fires a hashchange
// event after location updates.
type Navigator interface {
	// Current returns the full current URL, fragment included.
	Current() string

	// Go navigates to the given fragment, e.g. "#42" or "#".
	Go(fragment string) error
}
