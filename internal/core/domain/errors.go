package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRating indicates a review rating outside the 1-5 range.
	// This is a hard contract violation: it means the source data is
	// corrupt, unlike the soft fetch/navigation failures which are
	// absorbed where they occur.
	ErrInvalidRating = errors.New("invalid rating")

	// ErrSourceUnavailable indicates the catalog source could not be
	// reached and no cached snapshot was available.
	ErrSourceUnavailable = errors.New("catalog source unavailable")
)
