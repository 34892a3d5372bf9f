// Package filterbar provides the cuisine/neighbourhood filter controls
// view component for the TUI.
package filterbar

import (
	"fmt"
	"strings"
	"sync"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driving/tui/styles"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/ports/driving"
)

// Ensure View implements the render contract.
var _ driving.Renderer = (*View)(nil)

// View is the filter controls bar. It renders the two filter
// dimensions with their current selection and cycles through the
// option sets the directory derives from the catalog.
type View struct {
	styles *styles.Styles
	dir    driving.Directory

	// mu guards width and content across the tea loop and the
	// controller's render fan-out.
	mu      sync.Mutex
	width   int
	content string
}

// NewView creates a new filter bar view.
func NewView(s *styles.Styles) *View {
	return &View{styles: s}
}

// SetDirectory wires the read surface the view pulls from.
func (v *View) SetDirectory(dir driving.Directory) {
	v.dir = dir
}

// SetDimensions sets the terminal dimensions.
func (v *View) SetDimensions(width, _ int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width = width
}

// Render implements driving.Renderer. It rebuilds the bar from current
// directory state; calling it with unchanged state reproduces the same
// content.
func (v *View) Render() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.dir == nil {
		v.content = v.styles.Muted.Render("Loading filters...")
		return
	}

	filter := v.dir.Filter()
	inert := v.dir.Mode() == domain.ModeDetails

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Filter"))
	b.WriteString("  ")
	b.WriteString(v.renderDimension("cuisine [c]", filter.Cuisine, inert))
	b.WriteString("  ")
	b.WriteString(v.renderDimension("neighbourhood [n]", filter.Neighborhood, inert))
	if inert {
		b.WriteString("  ")
		b.WriteString(v.styles.Muted.Render("(inactive in details)"))
	}
	v.content = b.String()
}

func (v *View) renderDimension(label, value string, inert bool) string {
	display := value
	if display == "" {
		display = domain.FilterAll
	}
	text := fmt.Sprintf("%s: %s", label, display)
	if inert {
		return v.styles.Muted.Render(text)
	}
	return v.styles.Normal.Render(text)
}

// View returns the rendered content.
func (v *View) View() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.content
}

// NextCuisine returns the cuisine value following the current one,
// cycling through "all" and the directory's option set.
func (v *View) NextCuisine() string {
	filter := v.dir.Filter()
	return next(v.dir.Cuisines(), filter.Cuisine)
}

// NextNeighborhood returns the neighbourhood value following the
// current one.
func (v *View) NextNeighborhood() string {
	filter := v.dir.Filter()
	return next(v.dir.Neighborhoods(), filter.Neighborhood)
}

// next cycles: absence -> options[0] -> options[1] -> ... -> absence.
// The returned value is a UI-layer string: the sentinel stands in for
// absence.
func next(options []string, current string) string {
	if len(options) == 0 {
		return domain.FilterAll
	}
	if current == "" {
		return options[0]
	}
	for i, opt := range options {
		if opt == current {
			if i == len(options)-1 {
				return domain.FilterAll
			}
			return options[i+1]
		}
	}
	return domain.FilterAll
}
