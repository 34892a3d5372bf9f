package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driven/source/file"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driving/tui"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driving/tui/messages"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/services"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/logger"
)

// BrowseConfig holds configuration for the browse command.
type BrowseConfig struct {
	// WatchPath is a local data file to watch for changes. Empty
	// disables watching.
	WatchPath string
}

// browseConfig holds the current browse configuration.
var browseConfig *BrowseConfig

var browseAt string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

The UI shows the filter bar, the restaurant list and the marker map.
Opening a restaurant navigates to its address fragment, so a details
view can be restored directly with --at.

Controls:
  ↑/k, ↓/j - Move the list cursor
  Enter    - Open the highlighted restaurant
  Esc      - Back to the overview
  c, n     - Cycle the cuisine / neighbourhood filter
  r        - Refresh the catalog
  q        - Quit`,
	RunE: runBrowse,
}

// SetBrowseConfig sets the configuration for the browse command.
func SetBrowseConfig(config *BrowseConfig) {
	browseConfig = config
}

func init() {
	browseCmd.Flags().StringVar(&browseAt, "at", "", `address fragment to open at, e.g. "#42"`)
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if catalog == nil {
		return errors.New("catalog service not configured")
	}

	app := tui.NewApp().WithContext(cmd.Context())
	if browseAt != "" {
		app.WithFragment(browseAt)
	}

	controller, err := services.NewController(catalog, app, services.Views{
		List:    app.ListView(),
		Filters: app.FilterView(),
		Map:     app.MapView(),
		Chrome:  app.ChromeView(),
	})
	if err != nil {
		return fmt.Errorf("failed to wire controller: %w", err)
	}
	if err := app.SetPorts(tui.NewPorts(controller, controller)); err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	if browseConfig != nil && browseConfig.WatchPath != "" {
		watcher, err := file.Watch(browseConfig.WatchPath, func() {
			p.Send(messages.DataFileChanged{})
		})
		if err != nil {
			// A broken watcher degrades to manual refresh.
			logger.Warn("cli: watching %s failed: %v", browseConfig.WatchPath, err)
		} else {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
