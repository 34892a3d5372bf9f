package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode is the single global view mode of the application.
type Mode int

const (
	// ModeOverview shows the filtered list and all matching markers.
	ModeOverview Mode = iota

	// ModeDetails shows one selected restaurant.
	ModeDetails
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeOverview:
		return "overview"
	case ModeDetails:
		return "details"
	default:
		return "unknown"
	}
}

// Target is a decoded navigation request. ID is only meaningful when
// Mode is ModeDetails.
type Target struct {
	Mode Mode
	ID   int
}

// DecodeFragment interprets a URL's fragment as a navigation target.
//
// The rule follows the last "#" in the raw URL: no "#", or "#" as the
// final character, means overview. A numeric fragment addresses that
// restaurant's details view. A non-numeric fragment deliberately falls
// back to overview; it is not an error condition.
//
// The raw string is inspected directly rather than via url.Parse, which
// would normalise away the distinction between "no fragment" and an
// empty one.
func DecodeFragment(rawURL string) Target {
	i := strings.LastIndex(rawURL, "#")
	if i < 0 || i == len(rawURL)-1 {
		return Target{Mode: ModeOverview}
	}
	id, err := strconv.Atoi(rawURL[i+1:])
	if err != nil {
		return Target{Mode: ModeOverview}
	}
	return Target{Mode: ModeDetails, ID: id}
}

// Fragment encodes the target back into a URL fragment. Overview
// encodes as the root fragment "#".
func (t Target) Fragment() string {
	if t.Mode == ModeDetails {
		return fmt.Sprintf("#%d", t.ID)
	}
	return "#"
}
