// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// CatalogService owns all mutable catalog state; Controller is the
// only component that mutates it in response to intents, and fans
// render calls out to the view collaborators after every change.
package services
