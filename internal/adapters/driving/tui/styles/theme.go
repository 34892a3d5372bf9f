// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Marker is the map marker colour.
	Marker lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#D97706"), // Amber
		Secondary:  lipgloss.Color("#0891B2"), // Teal
		Foreground: lipgloss.Color("#E7E5E4"), // Warm gray
		Muted:      lipgloss.Color("#78716C"), // Stone
		Marker:     lipgloss.Color("#DC2626"), // Red
		Error:      lipgloss.Color("#F87171"), // Light red
		Border:     lipgloss.Color("#44403C"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for the highlighted list row.
	Selected lipgloss.Style

	// Card style for restaurant summary cards.
	Card lipgloss.Style

	// Marker style for map markers.
	Marker lipgloss.Style

	// Placeholder style for the "no matches" message.
	Placeholder lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Chrome style for the status bar.
	Chrome lipgloss.Style
}

// DefaultStyles returns styles based on the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	return &Styles{
		theme:    theme,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),
		Normal:   lipgloss.NewStyle().Foreground(theme.Foreground),
		Muted:    lipgloss.NewStyle().Foreground(theme.Muted),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Reverse(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		Marker:      lipgloss.NewStyle().Bold(true).Foreground(theme.Marker),
		Placeholder: lipgloss.NewStyle().Italic(true).Foreground(theme.Muted),
		Error:       lipgloss.NewStyle().Bold(true).Foreground(theme.Error),
		Chrome: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(lipgloss.Color("#292524")).
			Padding(0, 1),
	}
}

// Theme returns the theme the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
