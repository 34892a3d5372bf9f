package domain

import (
	"fmt"
	"strings"
)

// ImageBasePath is the fixed base path under which restaurant
// photographs are served.
const ImageBasePath = "/img"

// Rating bounds for reviews.
const (
	MinRating = 1
	MaxRating = 5
)

// Weekdays is the display order for operating hours.
// OperatingHours is keyed by these labels.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday",
	"Friday", "Saturday", "Sunday",
}

// Coordinate is a geographic point.
type Coordinate struct {
	// Lat is the latitude in decimal degrees.
	Lat float64

	// Lng is the longitude in decimal degrees.
	Lng float64
}

// Review is a single customer review of a restaurant.
type Review struct {
	// Name is the review author.
	Name string

	// Date is the free-text publication date from the source data.
	Date string

	// Rating is the star rating, 1 to 5 inclusive.
	Rating int

	// Comments is the free-text review body.
	Comments string
}

// Restaurant is one record in the catalog. Records are constructed once
// per fetched entry and never mutated afterwards; the catalog service
// owns the collection for the session.
type Restaurant struct {
	// ID is the unique identifier from the source data.
	ID int

	// Name is the restaurant's display name.
	Name string

	// CuisineType is the cuisine label, e.g. "Asian" or "Pizza".
	CuisineType string

	// Neighborhood is the neighbourhood label, e.g. "Brooklyn".
	Neighborhood string

	// Address is the street address.
	Address string

	// Coord is the restaurant's location.
	Coord Coordinate

	// Photograph is the photograph reference from the source data.
	Photograph string

	// OperatingHours maps a weekday label (see Weekdays) to a
	// free-text hours string.
	OperatingHours map[string]string

	// Reviews is the ordered review list from the source data.
	Reviews []Review
}

// ImageURL returns the image location derived from the photograph
// reference and the fixed base path. References without an extension
// get ".jpg" appended, matching how the source data names its assets.
func (r Restaurant) ImageURL() string {
	ref := r.Photograph
	if ref == "" {
		ref = fmt.Sprintf("%d", r.ID)
	}
	if !strings.Contains(ref, ".") {
		ref += ".jpg"
	}
	return ImageBasePath + "/" + ref
}

// Fragment returns the URL fragment that addresses this restaurant's
// details view.
func (r Restaurant) Fragment() string {
	return fmt.Sprintf("#%d", r.ID)
}

// RatingIndicator renders a rating as filled and empty star indicators,
// e.g. 3 -> "★★★☆☆". A rating outside [MinRating, MaxRating] returns
// ErrInvalidRating: corrupt source data fails loudly rather than
// rendering nonsense.
func RatingIndicator(rating int) (string, error) {
	if rating < MinRating || rating > MaxRating {
		return "", fmt.Errorf("%w: %d is outside [%d, %d]", ErrInvalidRating, rating, MinRating, MaxRating)
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", MaxRating-rating), nil
}
