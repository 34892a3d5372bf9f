package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a restaurant's details",
	Long: `Shows the full details of one restaurant: address, image
location, opening hours in weekday order and the review list.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if catalog == nil {
		return errors.New("catalog service not configured")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: restaurant id %q is not numeric", domain.ErrInvalidInput, args[0])
	}

	catalog.Refresh(cmd.Context())

	r, ok := catalog.RestaurantByID(id)
	if !ok {
		return fmt.Errorf("restaurant %d: %w", id, domain.ErrNotFound)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, r.Name)
	fmt.Fprintf(out, "%s · %s\n", r.CuisineType, r.Neighborhood)
	fmt.Fprintln(out, r.Address)
	fmt.Fprintf(out, "Image: %s\n", r.ImageURL())

	if len(r.OperatingHours) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Opening Hours")
		for _, day := range domain.Weekdays {
			hours, ok := r.OperatingHours[day]
			if !ok {
				continue
			}
			fmt.Fprintf(out, "  %-10s %s\n", day, hours)
		}
	}

	if len(r.Reviews) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Reviews (%d)\n", len(r.Reviews))
		for _, review := range r.Reviews {
			stars, err := domain.RatingIndicator(review.Rating)
			if err != nil {
				// Corrupt source data fails the command instead of
				// printing a made-up rating.
				return fmt.Errorf("review by %s: %w", review.Name, err)
			}
			fmt.Fprintf(out, "  %s %s (%s)\n  %s\n", review.Name, stars, review.Date, review.Comments)
		}
	}
	return nil
}
