// Command restaurants is the entry point for the restaurant directory.
// It wires the driven adapters (config, catalog source, snapshot cache)
// into the core services and hands them to the CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	configfile "github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driven/config/file"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driven/source/cached"
	sourcefile "github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driven/source/file"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driven/source/httpjson"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driven/storage/sqlite"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driving/cli"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/ports/driven"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/services"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/logger"
)

// defaultCatalogURL serves the catalog document in development.
const defaultCatalogURL = "http://localhost:1337/data/restaurants.json"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for development overrides.
	_ = godotenv.Load()

	config, err := configfile.NewConfigStore(os.Getenv("RESTAURANTS_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	source, watchPath, cleanup, err := buildSource(config)
	if err != nil {
		return err
	}
	defer cleanup()

	catalog := services.NewCatalogService(source, catalogOptions(config)...)

	cli.SetCatalog(catalog)
	cli.SetBrowseConfig(&cli.BrowseConfig{WatchPath: watchPath})

	return cli.Execute()
}

// buildSource picks the catalog source: a local file when configured,
// otherwise the HTTP document wrapped with the snapshot cache so the
// app still opens offline. Returns the path to watch for live reload,
// if any.
func buildSource(config driven.ConfigStore) (driven.CatalogSource, string, func(), error) {
	noop := func() {}

	if path := firstNonEmpty(os.Getenv("RESTAURANTS_CATALOG_FILE"), config.GetString("catalog.file")); path != "" {
		return sourcefile.NewSource(path), path, noop, nil
	}

	url := firstNonEmpty(os.Getenv("RESTAURANTS_CATALOG_URL"), config.GetString("catalog.url"), defaultCatalogURL)
	upstream := httpjson.NewSource(url)

	store, err := sqlite.NewSnapshotStore(config.GetString("cache.dir"))
	if err != nil {
		// The cache is an optimisation; without it the app is simply
		// online-only.
		logger.Warn("main: snapshot cache unavailable: %v", err)
		return upstream, "", noop, nil
	}
	return cached.NewSource(upstream, store, "catalog"), "", func() {
		if err := store.Close(); err != nil {
			logger.Warn("main: closing snapshot cache: %v", err)
		}
	}, nil
}

func catalogOptions(config driven.ConfigStore) []services.CatalogOption {
	lat := config.GetFloat("map.fallback_lat")
	lng := config.GetFloat("map.fallback_lng")
	if lat == 0 && lng == 0 {
		return nil
	}
	return []services.CatalogOption{
		services.WithFallbackCenter(domain.Coordinate{Lat: lat, Lng: lng}),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
