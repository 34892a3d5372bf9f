// Package cached wraps a catalog source with a fetch-through snapshot
// cache, the analogue of the original application's offline asset
// cache: successful payloads are stored, and when the upstream is
// unreachable the last good snapshot is served instead.
package cached

import (
	"context"
	"fmt"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driven/source"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/ports/driven"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// PayloadFetcher retrieves the raw catalog document. The HTTP and file
// sources both provide it.
type PayloadFetcher interface {
	FetchPayload(ctx context.Context) ([]byte, error)
}

// Source is a fetch-through cache around a PayloadFetcher.
type Source struct {
	fetcher PayloadFetcher
	store   driven.SnapshotStore
	key     string
}

// NewSource wraps fetcher with the snapshot store. key identifies the
// snapshot, conventionally the source URL or path.
func NewSource(fetcher PayloadFetcher, store driven.SnapshotStore, key string) *Source {
	return &Source{
		fetcher: fetcher,
		store:   store,
		key:     key,
	}
}

// Fetch implements driven.CatalogSource. Network first; on failure the
// cached snapshot; an error only when both are unavailable. A snapshot
// write failure is logged, not propagated - losing the offline copy
// must not fail a successful fetch.
func (s *Source) Fetch(ctx context.Context) ([]domain.Restaurant, error) {
	payload, err := s.fetcher.FetchPayload(ctx)
	if err != nil {
		logger.Warn("cached: upstream fetch failed, trying snapshot: %v", err)
		cachedPayload, cacheErr := s.store.Get(ctx, s.key)
		if cacheErr != nil {
			return nil, fmt.Errorf("%w: fetch failed (%v) and no snapshot", domain.ErrSourceUnavailable, err)
		}
		logger.Info("cached: serving catalog from snapshot")
		return source.Decode(cachedPayload)
	}

	restaurants, err := source.Decode(payload)
	if err != nil {
		return nil, err
	}
	if putErr := s.store.Put(ctx, s.key, payload); putErr != nil {
		logger.Warn("cached: storing snapshot failed: %v", putErr)
	}
	return restaurants, nil
}
