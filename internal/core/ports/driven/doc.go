// Package driven defines interfaces the core consumes: the catalog
// source, the snapshot cache, configuration, and browser-style
// navigation. These are the "driven" ports in hexagonal architecture
// terminology - the application drives them.
//
// Implementations live under internal/adapters/driven, except the
// Navigator, which driving adapters implement because they own the
// address-bar state.
package driven
