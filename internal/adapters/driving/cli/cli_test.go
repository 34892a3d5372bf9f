package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driven/source/memory"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/services"
)

// setupTestCatalog injects a catalog backed by an in-memory source and
// returns a cleanup restoring the previous wiring.
func setupTestCatalog(restaurants []domain.Restaurant) func() {
	previous := catalog
	SetCatalog(services.NewCatalogService(memory.NewSource(restaurants)))
	return func() {
		SetCatalog(previous)
		listCuisine = ""
		listNeighborhood = ""
		rootCmd.SetArgs(nil)
	}
}

func cliRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{ID: 1, Name: "Mission Chinese Food", CuisineType: "Asian", Neighborhood: "Manhattan",
			Address: "171 E Broadway, New York, NY 10002",
			OperatingHours: map[string]string{
				"Monday": "5:30 pm - 11:00 pm",
				"Friday": "5:30 pm - 12:00 am",
			},
			Reviews: []domain.Review{
				{Name: "Steve", Date: "October 26, 2016", Rating: 4, Comments: "Solid."},
			}},
		{ID: 2, Name: "Emily", CuisineType: "Pizza", Neighborhood: "Brooklyn",
			Address: "919 Fulton St, Brooklyn, NY 11238"},
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestListCmd_PrintsAllByDefault(t *testing.T) {
	cleanup := setupTestCatalog(cliRestaurants())
	defer cleanup()

	out, err := execute(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Mission Chinese Food")
	assert.Contains(t, out, "Emily")
}

func TestListCmd_FiltersByCuisine(t *testing.T) {
	cleanup := setupTestCatalog(cliRestaurants())
	defer cleanup()

	out, err := execute(t, "list", "--cuisine", "Pizza")

	require.NoError(t, err)
	assert.Contains(t, out, "Emily")
	assert.NotContains(t, out, "Mission Chinese Food")
}

func TestListCmd_SentinelMatchesEverything(t *testing.T) {
	cleanup := setupTestCatalog(cliRestaurants())
	defer cleanup()

	out, err := execute(t, "list", "--cuisine", "all", "--neighborhood", "all")

	require.NoError(t, err)
	assert.Contains(t, out, "Mission Chinese Food")
	assert.Contains(t, out, "Emily")
}

func TestListCmd_NoMatches(t *testing.T) {
	cleanup := setupTestCatalog(cliRestaurants())
	defer cleanup()

	out, err := execute(t, "list", "--cuisine", "Ethiopian")

	require.NoError(t, err)
	assert.Contains(t, out, "No restaurants found")
}

func TestListCmd_NotConfigured(t *testing.T) {
	previous := catalog
	SetCatalog(nil)
	defer SetCatalog(previous)

	_, err := execute(t, "list")

	assert.ErrorContains(t, err, "catalog service not configured")
}

func TestShowCmd_PrintsDetails(t *testing.T) {
	cleanup := setupTestCatalog(cliRestaurants())
	defer cleanup()

	out, err := execute(t, "show", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Mission Chinese Food")
	assert.Contains(t, out, "171 E Broadway")
	assert.Contains(t, out, "Image: /img/1.jpg")
	assert.Contains(t, out, "Opening Hours")
	assert.Contains(t, out, "★★★★☆")
	// Weekday order, not map order.
	assert.Less(t, bytes.Index([]byte(out), []byte("Monday")), bytes.Index([]byte(out), []byte("Friday")))
}

func TestShowCmd_UnknownID(t *testing.T) {
	cleanup := setupTestCatalog(cliRestaurants())
	defer cleanup()

	_, err := execute(t, "show", "42")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShowCmd_InvalidID(t *testing.T) {
	cleanup := setupTestCatalog(cliRestaurants())
	defer cleanup()

	_, err := execute(t, "show", "abc")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestShowCmd_InvalidRatingFailsLoudly(t *testing.T) {
	restaurants := cliRestaurants()
	restaurants[0].Reviews = []domain.Review{{Name: "Mallory", Rating: 11}}
	cleanup := setupTestCatalog(restaurants)
	defer cleanup()

	_, err := execute(t, "show", "1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRating)
}

func TestShowCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestCatalog(cliRestaurants())
	defer cleanup()

	_, err := execute(t, "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestVersionCmd_PrintsVersion(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "restaurants version")
}

func TestBrowseCmd_HasAtFlag(t *testing.T) {
	flag := browseCmd.Flags().Lookup("at")
	require.NotNil(t, flag, "at flag should exist")
	assert.Equal(t, "", flag.DefValue)
}

func TestBrowseCmd_NotConfigured(t *testing.T) {
	previous := catalog
	SetCatalog(nil)
	defer SetCatalog(previous)

	_, err := execute(t, "browse")

	assert.ErrorContains(t, err, "catalog service not configured")
}
