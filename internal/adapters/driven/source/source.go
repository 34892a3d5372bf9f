// Package source holds the payload decoding shared by the catalog
// source adapters. The upstream document is the static restaurants.json
// shape: {"restaurants": [...]}. Older revisions of the data encode
// coordinates and photograph references as strings, so numeric fields
// are parsed leniently.
package source

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
)

// flexFloat decodes a JSON number or a numeric string.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parsing number %q: %w", s, err)
	}
	*f = flexFloat(v)
	return nil
}

// flexString decodes a JSON string or a bare number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(data)
	return nil
}

type documentJSON struct {
	Restaurants []restaurantJSON `json:"restaurants"`
}

type restaurantJSON struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	CuisineType    string            `json:"cuisine_type"`
	Neighborhood   string            `json:"neighborhood"`
	Address        string            `json:"address"`
	LatLng         coordJSON         `json:"latlng"`
	Photograph     flexString        `json:"photograph"`
	OperatingHours map[string]string `json:"operating_hours"`
	Reviews        []reviewJSON      `json:"reviews"`
}

type coordJSON struct {
	Lat flexFloat `json:"lat"`
	Lng flexFloat `json:"lng"`
}

type reviewJSON struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

// Decode parses a raw catalog payload into restaurant records.
func Decode(payload []byte) ([]domain.Restaurant, error) {
	var doc documentJSON
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog payload: %w", err)
	}
	restaurants := make([]domain.Restaurant, 0, len(doc.Restaurants))
	for _, rj := range doc.Restaurants {
		restaurants = append(restaurants, rj.toDomain())
	}
	return restaurants, nil
}

func (rj restaurantJSON) toDomain() domain.Restaurant {
	reviews := make([]domain.Review, 0, len(rj.Reviews))
	for _, rev := range rj.Reviews {
		reviews = append(reviews, domain.Review{
			Name:     rev.Name,
			Date:     rev.Date,
			Rating:   rev.Rating,
			Comments: rev.Comments,
		})
	}
	return domain.Restaurant{
		ID:             rj.ID,
		Name:           rj.Name,
		CuisineType:    rj.CuisineType,
		Neighborhood:   rj.Neighborhood,
		Address:        rj.Address,
		Coord:          domain.Coordinate{Lat: float64(rj.LatLng.Lat), Lng: float64(rj.LatLng.Lng)},
		Photograph:     string(rj.Photograph),
		OperatingHours: rj.OperatingHours,
		Reviews:        reviews,
	}
}
