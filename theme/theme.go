// Package theme defines the light and dark appearances of the interactive form.
//
// A Theme is an immutable value: the form holds one and swaps it for another on toggle,
// nothing in the process shares or mutates it.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode names a theme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Modes returns the available theme names.
func Modes() []string {
	return []string{string(Light), string(Dark)}
}

// ParseMode resolves a theme name, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("unknown theme %q, expected one of %s", s, strings.Join(Modes(), ", "))
	}
}

// Palette holds the raw colors a theme is derived from.
type Palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Subtext    lipgloss.Color
	Accent     lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
}

// Theme is a palette plus the styles rendered with it.
type Theme struct {
	Mode    Mode
	Palette Palette

	App          lipgloss.Style
	Title        lipgloss.Style
	Label        lipgloss.Style
	Field        lipgloss.Style
	FocusedField lipgloss.Style
	Button       lipgloss.Style
	FocusedBtn   lipgloss.Style
	Result       lipgloss.Style
	Error        lipgloss.Style
	Faint        lipgloss.Style
	ToggleBadge  lipgloss.Style
}

var (
	light = newTheme(Light, Palette{
		Background: lipgloss.Color("#eff1f5"),
		Surface:    lipgloss.Color("#ccd0da"),
		Text:       lipgloss.Color("#333333"),
		Subtext:    lipgloss.Color("#6c6f85"),
		Accent:     lipgloss.Color("#8839ef"),
		Success:    lipgloss.Color("#40a02b"),
		Error:      lipgloss.Color("#d20f39"),
	})

	dark = newTheme(Dark, Palette{
		Background: lipgloss.Color("#111111"),
		Surface:    lipgloss.Color("#333333"),
		Text:       lipgloss.Color("#ffffff"),
		Subtext:    lipgloss.Color("#a6adc8"),
		Accent:     lipgloss.Color("#cba6f7"),
		Success:    lipgloss.Color("#a6e3a1"),
		Error:      lipgloss.Color("#f38ba8"),
	})
)

func newTheme(mode Mode, p Palette) Theme {
	field := lipgloss.NewStyle().
		Foreground(p.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(0, 1)

	button := lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Surface).
		Padding(0, 2)

	return Theme{
		Mode:    mode,
		Palette: p,

		App:          lipgloss.NewStyle().Foreground(p.Text).Background(p.Background).Padding(1, 2),
		Title:        lipgloss.NewStyle().Foreground(p.Background).Background(p.Accent).Bold(true).Padding(0, 1),
		Label:        lipgloss.NewStyle().Foreground(p.Subtext).Bold(true),
		Field:        field,
		FocusedField: field.BorderForeground(p.Accent),
		Button:       button,
		FocusedBtn:   button.Foreground(p.Background).Background(p.Accent).Bold(true),
		Result:       lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		Error:        lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Faint:        lipgloss.NewStyle().Foreground(p.Subtext).Faint(true),
		ToggleBadge:  lipgloss.NewStyle().Foreground(p.Background).Background(p.Text).Bold(true).Padding(0, 1),
	}
}

// For returns the theme of a mode, falling back to Light for anything unknown.
func For(m Mode) Theme {
	if m == Dark {
		return dark
	}
	return light
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t.Mode == Dark {
		return light
	}
	return dark
}

// Badge is the label of the toggle switch, e.g. "☀ DAY MODE".
func (t Theme) Badge(sun, moon string) string {
	if t.Mode == Dark {
		return strings.TrimSpace(moon + " NIGHT MODE")
	}
	return strings.TrimSpace(sun + " DAY MODE")
}
