// Package cli provides the command line interface for the restaurant
// directory. It implements a driving adapter following hexagonal
// architecture principles: commands receive core services through
// injection and never construct them.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/ports/driving"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/logger"
)

// version is the application version, overridable at build time via
// -ldflags "-X .../cli.version=...".
var version = "dev"

// catalog is the injected catalog service shared by the one-shot
// commands. The browse command wires its own controller on top of it.
var catalog driving.Catalog

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "restaurants",
	Short: "Browse neighbourhood restaurants and their reviews",
	Long: `restaurants is a small directory of neighbourhood restaurants.

Filter by cuisine and neighbourhood, inspect opening hours and reviews,
and see the matches plotted around their geographic centre. The browse
command opens the interactive terminal UI; list and show provide
one-shot output for scripting.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

// SetCatalog injects the catalog service the commands run against.
func SetCatalog(c driving.Catalog) {
	catalog = c
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
