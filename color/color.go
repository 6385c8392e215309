// Package color provides the ANSI palette used for plain CLI output.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
)

// High-intensity ANSI 16-color palette extension.
var (
	HiPurple = New("13")
)

// Category accents, one per measurement kind.
var (
	Length      = New("#74c7ec")
	Weight      = New("#fab387")
	Temperature = New("#f38ba8")
	Time        = New("#a6e3a1")
)
