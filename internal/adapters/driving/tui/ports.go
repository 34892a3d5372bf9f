// Package tui provides an interactive terminal user interface for the
// restaurant directory. It implements a driving adapter following
// hexagonal architecture principles.
package tui

import (
	"fmt"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Directory is the read surface the views pull state from.
	Directory driving.Directory

	// Dispatch receives the intents the TUI translates key presses into.
	Dispatch driving.Dispatcher
}

// NewPorts creates a new Ports aggregate.
func NewPorts(directory driving.Directory, dispatch driving.Dispatcher) *Ports {
	return &Ports{
		Directory: directory,
		Dispatch:  dispatch,
	}
}

// Validate ensures all required ports are set. Failures wrap
// ErrInvalidPorts together with the specific missing-port error.
func (p *Ports) Validate() error {
	if p.Directory == nil {
		return fmt.Errorf("%w: %w", ErrInvalidPorts, ErrMissingDirectory)
	}
	if p.Dispatch == nil {
		return fmt.Errorf("%w: %w", ErrInvalidPorts, ErrMissingDispatcher)
	}
	return nil
}
