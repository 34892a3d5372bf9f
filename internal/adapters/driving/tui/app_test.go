package tui

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driven/source/memory"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driving/tui/messages"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/ports/driving"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/services"
)

func testRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{ID: 1, Name: "Mission Chinese Food", CuisineType: "Asian", Neighborhood: "Manhattan",
			Coord: domain.Coordinate{Lat: 40.713829, Lng: -73.989667}},
		{ID: 2, Name: "Emily", CuisineType: "Pizza", Neighborhood: "Brooklyn",
			Coord: domain.Coordinate{Lat: 40.683555, Lng: -73.966393},
			Reviews: []domain.Review{{Name: "Steve", Date: "October 26, 2016", Rating: 4, Comments: "Solid pie."}}},
		{ID: 3, Name: "Kang Ho Dong Baekjeong", CuisineType: "Asian", Neighborhood: "Manhattan",
			Coord: domain.Coordinate{Lat: 40.747143, Lng: -73.985414}},
	}
}

// newTestApp wires a complete app against an in-memory source: real
// catalog service, real controller, the app acting as navigator.
func newTestApp(t *testing.T) (*App, *memory.Source) {
	t.Helper()

	src := memory.NewSource(testRestaurants())
	catalog := services.NewCatalogService(src)
	app := NewApp()

	controller, err := services.NewController(catalog, app, services.Views{
		List:    app.ListView(),
		Filters: app.FilterView(),
		Map:     app.MapView(),
		Chrome:  app.ChromeView(),
	})
	require.NoError(t, err)
	require.NoError(t, app.SetPorts(NewPorts(controller, controller)))

	controller.Start(context.Background())
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return app, src
}

func TestSetPorts_MissingDirectory(t *testing.T) {
	app := NewApp()

	err := app.SetPorts(&Ports{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDirectory)
	assert.ErrorIs(t, err, ErrInvalidPorts)
}

func TestSetPorts_MissingDispatcher(t *testing.T) {
	app, _ := newTestApp(t)
	other := NewApp()

	err := other.SetPorts(&Ports{Directory: app.ports.Directory})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDispatcher)
	assert.ErrorIs(t, err, ErrInvalidPorts)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := newTestApp(t)

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_View_ShowsOverview(t *testing.T) {
	app, _ := newTestApp(t)

	view := app.View()

	assert.Contains(t, view, "Restaurants (3)")
	assert.Contains(t, view, "Mission Chinese Food")
	assert.Contains(t, view, "Home")
}

func TestApp_Go_OpensDetails(t *testing.T) {
	app, _ := newTestApp(t)

	require.NoError(t, app.Go("#2"))

	assert.Equal(t, "app://restaurants/#2", app.Current())
	view := app.View()
	assert.Contains(t, view, "Emily")
	assert.Contains(t, view, "★★★★☆")
	assert.Contains(t, view, "Home / Emily")
	assert.NotContains(t, view, "Restaurants (3)")
}

func TestApp_Go_RootReturnsToOverview(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, app.Go("#2"))

	require.NoError(t, app.Go("#"))

	assert.Equal(t, "app://restaurants/", app.Current())
	assert.Contains(t, app.View(), "Restaurants (3)")
}

func TestApp_Go_UnknownIDFallsBackToOverview(t *testing.T) {
	app, _ := newTestApp(t)

	require.NoError(t, app.Go("#999"))

	assert.Contains(t, app.View(), "Restaurants (3)")
	// The address must not keep pointing at the dead id once the
	// transition fell back to overview.
	assert.Equal(t, "app://restaurants/", app.Current())
}

func TestApp_Go_UnknownIDKeepsFragmentAndStateAligned(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, app.Go("#2"))

	require.NoError(t, app.Go("#999"))

	// Fallback cleared the selection, so the address follows.
	assert.Equal(t, "app://restaurants/", app.Current())
	assert.Contains(t, app.View(), "Restaurants (3)")
}

func TestApp_EnterOpensSelectedCard(t *testing.T) {
	app, _ := newTestApp(t)

	// Move the cursor to the second card and activate it. The command
	// dispatches through the navigator, so the fragment updates too.
	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, "app://restaurants/#2", app.Current())
	assert.Contains(t, app.View(), "Emily")
}

func TestApp_EscNavigatesBack(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, app.Go("#1"))

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, "app://restaurants/", app.Current())
	assert.Contains(t, app.View(), "Restaurants (3)")
}

func TestApp_CycleCuisineFilters(t *testing.T) {
	app, _ := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	require.NotNil(t, cmd)
	cmd()

	view := app.View()
	assert.Contains(t, view, "cuisine [c]: Asian")
	assert.Contains(t, view, "Restaurants (2)")
	assert.NotContains(t, view, "Emily")
}

func TestApp_FilterInertInDetails(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, app.Go("#2"))

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	require.NotNil(t, cmd)
	cmd()

	// Still in details, filter untouched.
	assert.Contains(t, app.View(), "Home / Emily")
	assert.Contains(t, app.View(), "cuisine [c]: all")
}

func TestApp_DataFileChangedRefreshes(t *testing.T) {
	app, src := newTestApp(t)
	src.SetRestaurants(testRestaurants()[:1])

	_, cmd := app.Update(messages.DataFileChanged{})
	require.NotNil(t, cmd)
	cmd()

	assert.Contains(t, app.View(), "Restaurants (1)")
}

func TestApp_StartupFragmentRestoresDetails(t *testing.T) {
	src := memory.NewSource(testRestaurants())
	catalog := services.NewCatalogService(src)
	app := NewApp().WithFragment("#3")

	controller, err := services.NewController(catalog, app, services.Views{
		List:    app.ListView(),
		Filters: app.FilterView(),
		Map:     app.MapView(),
		Chrome:  app.ChromeView(),
	})
	require.NoError(t, err)
	require.NoError(t, app.SetPorts(NewPorts(controller, controller)))

	msg := app.startupCmd()()
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	app.Update(msg)

	assert.Contains(t, app.View(), "Kang Ho Dong Baekjeong")
}

func TestApp_QuitKeys(t *testing.T) {
	app, _ := newTestApp(t)

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		_, cmd := app.Update(key)
		require.NotNil(t, cmd, "key %s should quit", key.String())
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestApp_View_NotReady(t *testing.T) {
	app := NewApp()

	assert.True(t, strings.Contains(app.View(), "Initialising"))
}

func TestApp_StartupUnknownFragmentResetsAddress(t *testing.T) {
	src := memory.NewSource(testRestaurants())
	catalog := services.NewCatalogService(src)
	app := NewApp().WithFragment("#999")

	controller, err := services.NewController(catalog, app, services.Views{
		List:    app.ListView(),
		Filters: app.FilterView(),
		Map:     app.MapView(),
		Chrome:  app.ChromeView(),
	})
	require.NoError(t, err)
	require.NoError(t, app.SetPorts(NewPorts(controller, controller)))

	msg := app.startupCmd()()
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	app.Update(msg)

	assert.Contains(t, app.View(), "Restaurants (3)")
	assert.Equal(t, "app://restaurants/", app.Current())
}

func TestApp_ConcurrentDispatches(t *testing.T) {
	app, _ := newTestApp(t)

	// Each tea command dispatches from its own goroutine and the file
	// watcher sends from another; overlapping intents must leave the
	// views in a consistent state. Frame reads race the dispatches the
	// same way the tea loop's View calls do.
	intents := []driving.Intent{
		driving.FilterChanged{Cuisine: "Asian"},
		driving.FilterChanged{Cuisine: "all"},
		driving.NavigationChanged{URL: "app://restaurants/#2"},
		driving.NavigationChanged{URL: "app://restaurants/"},
		driving.RefreshRequested{},
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		for _, intent := range intents {
			wg.Add(1)
			go func(in driving.Intent) {
				defer wg.Done()
				app.ports.Dispatch.Dispatch(context.Background(), in)
			}(intent)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = app.View()
		}()
	}
	wg.Wait()

	require.NoError(t, app.Go("#"))
	assert.Contains(t, app.View(), "Restaurants (3)")
}
