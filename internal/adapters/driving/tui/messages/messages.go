// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture;
// the controller intents themselves are dispatched synchronously from
// command goroutines, and these messages tell the program to repaint
// or react afterwards.
package messages

// CatalogRefreshed signals that a dispatch touching the catalog has
// completed and the views have re-rendered.
type CatalogRefreshed struct{}

// DataFileChanged signals that the watched catalog file changed on
// disk.
type DataFileChanged struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
