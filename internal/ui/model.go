// Package ui provides ephemeral notifications shown at the bottom of the interactive form.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
)

// Lifetime is how long a notification stays visible.
const Lifetime = 3 * time.Second

// Notification is a message to display; send it as a tea.Msg.
type Notification string

// ClearNotificationMsg resets the notification once its lifetime has passed.
type ClearNotificationMsg struct {
	at time.Time
}

// Model holds the current notification.
type Model struct {
	clock        clockwork.Clock
	notification string
	notifiedAt   time.Time
}

// New creates a notifier driven by the given clock; nil selects the real clock.
func New(clock clockwork.Clock) *Model {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Model{clock: clock}
}

// Notify returns a command delivering msg to the notifier.
func Notify(msg string) tea.Cmd {
	return func() tea.Msg {
		return Notification(msg)
	}
}

func (m *Model) clearAfter(at time.Time) tea.Cmd {
	return func() tea.Msg {
		<-m.clock.After(Lifetime)
		return ClearNotificationMsg{at: at}
	}
}

// Update records notifications and clears them once they expire.
// A clear message from an older notification leaves a newer one in place.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Notification:
		m.notification = string(msg)
		m.notifiedAt = m.clock.Now()
		return m.clearAfter(m.notifiedAt)
	case ClearNotificationMsg:
		if msg.at.Equal(m.notifiedAt) {
			m.notification = ""
		}
	}
	return nil
}

// Current returns the visible notification, empty when none.
func (m *Model) Current() string {
	return m.notification
}

// View appends the notification to the last line of content.
func (m *Model) View(content string, render func(string) string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + render(m.notification)
	return strings.Join(lines, "\n")
}
