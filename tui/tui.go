// Package tui provides the interactive conversion form.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/unitconv-cli/unitconv/theme"
	"github.com/unitconv-cli/unitconv/unit"
)

// Options override the configured initial state of the form.
type Options struct {
	Theme    mo.Option[theme.Mode]
	Category mo.Option[unit.Category]
}

// Run opens the form and blocks until the user quits.
func Run(options *Options) error {
	bubble := newBubble(options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
