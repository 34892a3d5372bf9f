package tui

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driving/tui/keymap"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driving/tui/messages"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driving/tui/styles"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driving/tui/views/chrome"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driving/tui/views/filterbar"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driving/tui/views/list"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driving/tui/views/mapview"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/ports/driven"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/ports/driving"
)

// addressScheme prefixes the synthetic address the app maintains. The
// fragment appended to it is the part the navigation codec cares about.
const addressScheme = "app://restaurants/"

// App is the main TUI application following the Elm architecture. It
// implements tea.Model for use with Bubbletea, and doubles as the
// driven Navigator: its address fragment plays the role a browser's
// location hash plays, so selections are restorable from a fragment.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the keybindings.
	keys *keymap.KeyMap

	// filterView is the cuisine/neighbourhood filter bar.
	filterView *filterbar.View

	// listView is the restaurant list / detail panel.
	listView *list.View

	// mapView is the marker map.
	mapView *mapview.View

	// chromeView is the breadcrumb status bar.
	chromeView *chrome.View

	// mu guards fragment, which commands read from goroutines.
	mu sync.Mutex

	// fragment is the current address fragment, "" at the root.
	fragment string

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model and the navigator port.
var (
	_ tea.Model        = (*App)(nil)
	_ driven.Navigator = (*App)(nil)
)

// NewApp creates a new TUI application with its view components. Ports
// are wired afterwards via SetPorts: the controller needs the views and
// the navigator, both of which live here.
func NewApp() *App {
	s := styles.DefaultStyles()
	return &App{
		ctx:        context.Background(),
		styles:     s,
		keys:       keymap.DefaultKeyMap(),
		filterView: filterbar.NewView(s),
		listView:   list.NewView(s),
		mapView:    mapview.NewView(s),
		chromeView: chrome.NewView(s),
	}
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithFragment sets the startup address fragment, e.g. "#42" to open a
// restaurant's details directly.
func (a *App) WithFragment(fragment string) *App {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fragment = fragment
	return a
}

// SetPorts wires the driving ports and hands every view its read
// surface. Must be called before the program runs.
func (a *App) SetPorts(ports *Ports) error {
	if err := ports.Validate(); err != nil {
		return fmt.Errorf("wiring app: %w", err)
	}
	a.ports = ports
	a.filterView.SetDirectory(ports.Directory)
	a.listView.SetDirectory(ports.Directory)
	a.mapView.SetDirectory(ports.Directory)
	a.chromeView.SetDirectory(ports.Directory)
	return nil
}

// ListView exposes the list view for controller wiring.
func (a *App) ListView() *list.View { return a.listView }

// FilterView exposes the filter bar for controller wiring.
func (a *App) FilterView() *filterbar.View { return a.filterView }

// MapView exposes the map view for controller wiring.
func (a *App) MapView() *mapview.View { return a.mapView }

// ChromeView exposes the status bar for controller wiring.
func (a *App) ChromeView() *chrome.View { return a.chromeView }

// Current implements driven.Navigator. It returns the full synthetic
// address including the fragment.
func (a *App) Current() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return addressScheme + a.fragment
}

// Go implements driven.Navigator. It moves the address to the given
// fragment and feeds the change back in as a NavigationChanged intent,
// mirroring a browser's hashchange event.
func (a *App) Go(fragment string) error {
	a.mu.Lock()
	if fragment == "#" {
		fragment = ""
	}
	a.fragment = fragment
	a.mu.Unlock()

	if a.ports == nil {
		return ErrMissingDispatcher
	}
	a.ports.Dispatch.Dispatch(a.ctx, driving.NavigationChanged{URL: a.Current()})
	a.reconcileFragment()
	return nil
}

// reconcileFragment re-derives the address fragment from the state the
// dispatch actually produced. A fragment naming an unknown restaurant
// falls back to overview; the address must not keep pointing at the
// dead id.
func (a *App) reconcileFragment() {
	fragment := ""
	if selected, ok := a.ports.Directory.Selected(); ok {
		fragment = selected.Fragment()
	}
	a.mu.Lock()
	a.fragment = fragment
	a.mu.Unlock()
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("Restaurant Reviews"),
		a.startupCmd(),
	)
}

// startupCmd loads the catalog and restores the startup fragment, if
// any, before the first frame is drawn.
func (a *App) startupCmd() tea.Cmd {
	return func() tea.Msg {
		a.ports.Dispatch.Dispatch(a.ctx, driving.RefreshRequested{})
		if current := a.Current(); current != addressScheme {
			a.ports.Dispatch.Dispatch(a.ctx, driving.NavigationChanged{URL: current})
			a.reconcileFragment()
		}
		return messages.CatalogRefreshed{}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.filterView.SetDimensions(msg.Width, msg.Height)
		a.listView.SetDimensions(msg.Width/2, msg.Height)
		a.mapView.SetDimensions(msg.Width, msg.Height)
		a.chromeView.SetDimensions(msg.Width, msg.Height)
		a.renderAll()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.CatalogRefreshed:
		// State and views are already consistent; repaint.
		return a, nil

	case messages.DataFileChanged:
		return a, a.dispatchCmd(driving.RefreshRequested{})

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	overview := a.ports.Directory.Mode() == domain.ModeOverview

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Back):
		return a, a.navigateCmd("#")

	case key.Matches(msg, a.keys.Up):
		if overview {
			a.listView.CursorUp()
		}
		return a, nil

	case key.Matches(msg, a.keys.Down):
		if overview {
			a.listView.CursorDown()
		}
		return a, nil

	case key.Matches(msg, a.keys.Open):
		if id, ok := a.listView.SelectedID(); ok && overview {
			return a, a.dispatchCmd(driving.SelectRequested{ID: id})
		}
		return a, nil

	case key.Matches(msg, a.keys.Cuisine):
		filter := a.ports.Directory.Filter()
		return a, a.dispatchCmd(driving.FilterChanged{
			Cuisine:      a.filterView.NextCuisine(),
			Neighborhood: filter.Neighborhood,
		})

	case key.Matches(msg, a.keys.Neighbourhood):
		filter := a.ports.Directory.Filter()
		return a, a.dispatchCmd(driving.FilterChanged{
			Cuisine:      filter.Cuisine,
			Neighborhood: a.filterView.NextNeighborhood(),
		})

	case key.Matches(msg, a.keys.Refresh):
		return a, a.dispatchCmd(driving.RefreshRequested{})
	}

	return a, nil
}

// dispatchCmd hands an intent to the controller from a command
// goroutine. Dispatch is synchronous, so by the time the message
// arrives every dependent view has re-rendered.
func (a *App) dispatchCmd(intent driving.Intent) tea.Cmd {
	return func() tea.Msg {
		a.ports.Dispatch.Dispatch(a.ctx, intent)
		return messages.CatalogRefreshed{}
	}
}

// navigateCmd moves the address bar. The resulting NavigationChanged
// intent is dispatched inside Go.
func (a *App) navigateCmd(fragment string) tea.Cmd {
	return func() tea.Msg {
		if err := a.Go(fragment); err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		return messages.CatalogRefreshed{}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready || a.ports == nil {
		return a.styles.Muted.Render("Initialising...")
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.listView.View(),
		"  ",
		a.mapView.View(),
	)

	sections := []string{
		a.filterView.View(),
		"",
		body,
	}
	if a.err != nil {
		sections = append(sections, a.styles.Error.Render(a.err.Error()))
	}
	sections = append(sections, a.chromeView.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready reports whether the app has received its terminal dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// renderAll repaints every view from current directory state.
func (a *App) renderAll() {
	a.filterView.Render()
	a.listView.Render()
	a.mapView.Render()
	a.chromeView.Render()
}
