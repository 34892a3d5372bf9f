// Package domain defines the core business entities for the restaurant
// directory.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Restaurant: A restaurant record with location, hours and reviews
//   - Review: A single customer review with a 1-5 rating
//   - Filter: The cuisine/neighbourhood filter selection
//   - Target: A decoded navigation target (overview or details)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
