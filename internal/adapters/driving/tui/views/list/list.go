// Package list provides the restaurant list view component for the
// TUI. It renders one of three conditions: the detail panel when a
// restaurant is selected, one summary card per filtered restaurant, or
// a "no matches" placeholder when the filtered set is empty.
package list

import (
	"fmt"
	"strings"
	"sync"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driving/tui/styles"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/ports/driving"
)

// Ensure View implements the render contract.
var (
	_ driving.Renderer = (*View)(nil)
	_ driving.Scroller = (*View)(nil)
)

// View is the restaurant list view.
type View struct {
	styles *styles.Styles
	dir    driving.Directory

	// mu guards the fields below: Render runs under the controller's
	// dispatch, cursor movement and View on the tea loop.
	mu           sync.Mutex
	cursor       int
	scrollOffset int
	width        int
	height       int
	content      string
	err          error
}

// NewView creates a new list view.
func NewView(s *styles.Styles) *View {
	return &View{styles: s}
}

// SetDirectory wires the read surface the view pulls from.
func (v *View) SetDirectory(dir driving.Directory) {
	v.dir = dir
}

// SetDimensions sets the terminal dimensions.
func (v *View) SetDimensions(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width = width
	v.height = height
}

// Render implements driving.Renderer.
func (v *View) Render() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.dir == nil {
		v.content = v.styles.Placeholder.Render("Loading restaurants...")
		return
	}

	if selected, ok := v.dir.Selected(); ok {
		v.content = v.renderDetails(selected)
		return
	}

	filtered := v.dir.Filtered()
	if len(filtered) == 0 {
		v.content = v.styles.Placeholder.Render("No restaurants found")
		return
	}
	v.clampCursor(len(filtered))
	v.content = v.renderCards(filtered)
}

// renderCards renders one summary card per restaurant, preserving
// filtered order.
func (v *View) renderCards(filtered []domain.Restaurant) string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Restaurants (%d)", len(filtered))))
	b.WriteString("\n")
	for i, r := range filtered {
		name := r.Name
		if i == v.cursor {
			name = v.styles.Selected.Render(" " + r.Name + " ")
		} else {
			name = v.styles.Normal.Render(name)
		}
		card := fmt.Sprintf("%s\n%s\n%s",
			name,
			v.styles.Muted.Render(r.CuisineType+" · "+r.Neighborhood),
			v.styles.Muted.Render(r.Address),
		)
		b.WriteString(v.styles.Card.Render(card))
		b.WriteString("\n")
	}
	return b.String()
}

// renderDetails renders the full detail panel for the selected
// restaurant: address, image location, operating hours in weekday
// order, and the review list with star indicators.
func (v *View) renderDetails(r domain.Restaurant) string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render(r.Name))
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render(r.CuisineType + " · " + r.Neighborhood))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(r.Address))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Image: " + r.ImageURL()))
	b.WriteString("\n")

	if len(r.OperatingHours) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Opening Hours"))
		b.WriteString("\n")
		for _, day := range domain.Weekdays {
			hours, ok := r.OperatingHours[day]
			if !ok {
				continue
			}
			b.WriteString(v.styles.Normal.Render(fmt.Sprintf("  %-10s %s", day, hours)))
			b.WriteString("\n")
		}
	}

	if len(r.Reviews) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Reviews (%d)", len(r.Reviews))))
		b.WriteString("\n")
		for _, review := range r.Reviews {
			b.WriteString(v.renderReview(review))
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("[esc] back to overview"))
	return b.String()
}

func (v *View) renderReview(review domain.Review) string {
	stars, err := domain.RatingIndicator(review.Rating)
	if err != nil {
		// Corrupt source data surfaces loudly instead of rendering a
		// made-up rating.
		v.err = err
		return v.styles.Error.Render(fmt.Sprintf("  %s: %v", review.Name, err)) + "\n"
	}
	return fmt.Sprintf("  %s %s\n  %s\n  %s\n",
		v.styles.Normal.Render(review.Name),
		v.styles.Marker.Render(stars),
		v.styles.Muted.Render(review.Date),
		v.styles.Normal.Render(review.Comments),
	)
}

// View returns the rendered content.
func (v *View) View() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.content
}

// Err returns the last rendering error, e.g. an invalid rating.
func (v *View) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// CursorUp moves the highlight up one card.
func (v *View) CursorUp() {
	v.mu.Lock()
	if v.cursor > 0 {
		v.cursor--
	}
	v.mu.Unlock()
	v.Render()
}

// CursorDown moves the highlight down one card.
func (v *View) CursorDown() {
	if v.dir == nil {
		return
	}
	last := len(v.dir.Filtered()) - 1
	v.mu.Lock()
	if v.cursor < last {
		v.cursor++
	}
	v.mu.Unlock()
	v.Render()
}

// SelectedID returns the restaurant id under the cursor.
func (v *View) SelectedID() (int, bool) {
	if v.dir == nil {
		return 0, false
	}
	filtered := v.dir.Filtered()
	v.mu.Lock()
	cursor := v.cursor
	v.mu.Unlock()
	if len(filtered) == 0 || cursor >= len(filtered) {
		return 0, false
	}
	return filtered[cursor].ID, true
}

// ScrollTop implements driving.Scroller: entering the details view
// starts reading from the top.
func (v *View) ScrollTop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scrollOffset = 0
}

func (v *View) clampCursor(n int) {
	if v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}
