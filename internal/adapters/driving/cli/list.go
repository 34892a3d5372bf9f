package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listCuisine      string
	listNeighborhood string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List restaurants matching the filters",
	Long: `Lists the restaurants matching the cuisine and neighbourhood
filters, in catalog order. The sentinel value "all" matches everything
and is the default for both dimensions.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listCuisine, "cuisine", "", `cuisine filter, e.g. "Asian"`)
	listCmd.Flags().StringVar(&listNeighborhood, "neighborhood", "", `neighbourhood filter, e.g. "Brooklyn"`)
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if catalog == nil {
		return errors.New("catalog service not configured")
	}

	catalog.SetFilters(listCuisine, listNeighborhood)
	catalog.Refresh(cmd.Context())

	filtered := catalog.Filtered()
	if len(filtered) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No restaurants found")
		return nil
	}

	for _, r := range filtered {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s · %s\t%s\n",
			r.ID, r.Name, r.CuisineType, r.Neighborhood, r.Address)
	}
	return nil
}
