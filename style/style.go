// Package style provides a functional API for composing and applying lipgloss-based CLI styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/unitconv-cli/unitconv/color"
	"github.com/unitconv-cli/unitconv/unit"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Standard text transformation helpers.
var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders a highlighted banner.
var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

// Category renders a category name in its accent color.
func Category(c unit.Category) string {
	accent := map[unit.Category]lipgloss.Color{
		unit.Length:      color.Length,
		unit.Weight:      color.Weight,
		unit.Temperature: color.Temperature,
		unit.Time:        color.Time,
	}[c]
	return New().Bold(true).Foreground(accent).Render(c.String())
}
