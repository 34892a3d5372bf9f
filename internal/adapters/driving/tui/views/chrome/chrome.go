// Package chrome provides the status bar view component for the TUI.
// It renders the breadcrumb trail, the current address fragment and the
// key hints for the active mode.
package chrome

import (
	"strings"
	"sync"

	"github.com/AndreasRafn/RestaurantReviewsApp/internal/adapters/driving/tui/styles"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/domain"
	"github.com/AndreasRafn/RestaurantReviewsApp/internal/core/ports/driving"
)

// Ensure View implements the render contract.
var _ driving.Renderer = (*View)(nil)

// View is the status bar view.
type View struct {
	styles *styles.Styles
	dir    driving.Directory

	// mu guards width and content across the tea loop and the
	// controller's render fan-out.
	mu      sync.Mutex
	width   int
	content string
}

// NewView creates a new chrome view.
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

// Render implements driving.Renderer.
func (v *View) Render() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.dir == nil {
		v.content = v.styles.Chrome.Render("Restaurant Reviews")
		return
	}

	var b strings.Builder
	b.WriteString(v.breadcrumb())
	b.WriteString("  ")
	b.WriteString(v.fragment())
	b.WriteString("  ")
	b.WriteString(v.hints())
	v.content = v.styles.Chrome.Width(v.width).Render(b.String())
}

// breadcrumb renders "Home" in overview and "Home / <name>" in details.
func (v *View) breadcrumb() string {
	if selected, ok := v.dir.Selected(); ok {
		return "Home / " + selected.Name
	}
	return "Home"
}

// fragment shows the address fragment the current state would restore
// from, which makes the mode transitions visible and bookmarkable.
func (v *View) fragment() string {
	if selected, ok := v.dir.Selected(); ok {
		return selected.Fragment()
	}
	return "#"
}

func (v *View) hints() string {
	if v.dir.Mode() == domain.ModeDetails {
		return "[esc] back  [r] refresh  [q] quit"
	}
	return "[↑/↓] move  [enter] open  [c/n] filter  [r] refresh  [q] quit"
}

// View returns the rendered content.
func (v *View) View() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.content
}
