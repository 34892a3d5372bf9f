// Package httpjson fetches the restaurant catalog over HTTP as a JSON
// document.
package httpjson

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driven/source"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/ports/driven"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

const (
	fetchTimeout = 10 * time.Second

	// maxPayloadSize bounds the response body; the catalog document is
	// a few hundred kilobytes at most.
	maxPayloadSize = 8 << 20
)

// Source fetches the catalog payload from a URL. Requests are rate
// limited: rapid filter changes each trigger a refresh, and the
// upstream is a static document that does not change between them.
type Source struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
}

// NewSource creates an HTTP catalog source for the given URL.
func NewSource(url string) *Source {
	return &Source{
		url:     url,
		client:  &http.Client{Timeout: fetchTimeout},
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

// Fetch implements driven.CatalogSource.
func (s *Source) Fetch(ctx context.Context) ([]domain.Restaurant, error) {
	payload, err := s.FetchPayload(ctx)
	if err != nil {
		return nil, err
	}
	return source.Decode(payload)
}

// FetchPayload retrieves the raw catalog document. Exposed so the
// cached source can persist the bytes it decodes.
func (s *Source) FetchPayload(ctx context.Context) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("httpjson: fetching catalog from %s", s.url)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching catalog: unexpected status %s", resp.Status)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
	if err != nil {
		return nil, fmt.Errorf("reading catalog payload: %w", err)
	}
	return payload, nil
}
