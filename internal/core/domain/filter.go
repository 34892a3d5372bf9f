package domain

import "strings"

// FilterAll is the UI-layer sentinel meaning "no filter applied" for a
// dimension. It must be translated to absence (the empty string) before
// it reaches the catalog; the model never stores the literal.
const FilterAll = "all"

// DefaultCenter is the city-centre fallback coordinate used when the
// filtered set is empty and no centre can be computed.
var DefaultCenter = Coordinate{Lat: 40.722216, Lng: -73.987501}

// Filter is the current cuisine/neighbourhood selection. The empty
// string on a dimension means that dimension passes everything.
type Filter struct {
	Cuisine      string
	Neighborhood string
}

// NormalizeFilterValue translates the UI sentinel into absence. Any
// other value is returned unchanged.
func NormalizeFilterValue(v string) string {
	if strings.EqualFold(v, FilterAll) {
		return ""
	}
	return v
}

// Matches reports whether the restaurant passes both dimensions:
// exact match, or pass-through when the dimension is absent.
func (f Filter) Matches(r Restaurant) bool {
	if f.Cuisine != "" && r.CuisineType != f.Cuisine {
		return false
	}
	if f.Neighborhood != "" && r.Neighborhood != f.Neighborhood {
		return false
	}
	return true
}

// IsZero reports whether no filter is applied on either dimension.
func (f Filter) IsZero() bool {
	return f.Cuisine == "" && f.Neighborhood == ""
}
