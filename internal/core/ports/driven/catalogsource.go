package driven

import (
	"context"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
)

// CatalogSource fetches the full restaurant list. The catalog replaces
// its collection wholesale with whatever a fetch returns; sources never
// deliver partial updates.
type CatalogSource interface {
	// Fetch retrieves every restaurant from the source.
	Fetch(ctx context.Context) ([]domain.Restaurant, error)
}
