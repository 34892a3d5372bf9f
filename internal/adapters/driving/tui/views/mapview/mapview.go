// Package mapview provides the map view component for the TUI. It
// plots the filtered restaurants as markers on a character grid scaled
// around the directory's current centre, a single marker when one
// restaurant is selected.
package mapview

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

const (
	defaultGridWidth  = 40
	defaultGridHeight = 12

	// span is the coordinate window drawn around the centre, in
	// degrees. Details mode zooms in tighter.
	overviewSpan = 0.16
	detailsSpan  = 0.02
)

// View is the map view.
type View struct {
	styles *styles.Styles
	dir    driving.Directory

	// mu guards the grid dimensions and content: Render runs under the
	// controller's dispatch, View and SetDimensions on the tea loop.
	mu         sync.Mutex
	gridWidth  int
	gridHeight int
	content    string
}

// NewView creates a new map view.
func NewView(s *styles.Styles) *View {
	return &View{
		styles:     s,
		gridWidth:  defaultGridWidth,
		gridHeight: defaultGridHeight,
	}
}

// SetDirectory wires the read surface the view pulls from.
func (v *View) SetDirectory(dir driving.Directory) {
	v.dir = dir
}

// SetDimensions sets the terminal dimensions; the grid takes roughly
// half the width.
func (v *View) SetDimensions(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if w := width/2 - 4; w > 10 {
		v.gridWidth = w
	}
	if h := height - 10; h > 6 {
		v.gridHeight = h
	}
}

// Render implements driving.Renderer.
func (v *View) Render() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.dir == nil {
		v.content = v.styles.Muted.Render("Loading map...")
		return
	}

	center := v.dir.Center()
	span := overviewSpan
	markers := v.dir.Filtered()
	if selected, ok := v.dir.Selected(); ok {
		span = detailsSpan
		markers = []domain.Restaurant{selected}
	}

	grid := make([][]rune, v.gridHeight)
	for y := range grid {
		grid[y] = make([]rune, v.gridWidth)
		for x := range grid[y] {
			grid[y][x] = '·'
		}
	}

	// Centre cross-hair underneath the markers.
	grid[v.gridHeight/2][v.gridWidth/2] = '+'

	plotted := 0
	for _, r := range markers {
		x, y, ok := v.project(r.Coord, center, span)
		if !ok {
			continue
		}
		grid[y][x] = '●'
		plotted++
	}

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Map"))
	b.WriteString("\n")
	for _, row := range grid {
		for _, cell := range row {
			switch cell {
			case '●':
				b.WriteString(v.styles.Marker.Render(string(cell)))
			case '+':
				b.WriteString(v.styles.Normal.Render(string(cell)))
			default:
				b.WriteString(v.styles.Muted.Render(string(cell)))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(v.styles.Muted.Render(markerSummary(plotted, len(markers))))
	v.content = b.String()
}

// project maps a coordinate into grid cells. Latitude grows north,
// grid rows grow down, so the vertical axis flips.
func (v *View) project(c, center domain.Coordinate, span float64) (x, y int, ok bool) {
	dx := (c.Lng - center.Lng) / span
	dy := (center.Lat - c.Lat) / span
	x = v.gridWidth/2 + int(dx*float64(v.gridWidth))
	y = v.gridHeight/2 + int(dy*float64(v.gridHeight))
	if x < 0 || x >= v.gridWidth || y < 0 || y >= v.gridHeight {
		return 0, 0, false
	}
	return x, y, true
}

func markerSummary(plotted, total int) string {
	if total == 0 {
		return "no markers"
	}
	if plotted == total {
		return pluralMarkers(total)
	}
	return pluralMarkers(plotted) + " in view"
}

func pluralMarkers(n int) string {
	if n == 1 {
		return "1 marker"
	}
	return fmt.Sprintf("%d markers", n)
}

// View returns the rendered content.
func (v *View) View() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.content
}
