package tui

import (
	"strings"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.toggleTheme):
			return b, tea.Batch(cmd, b.toggleTheme())
		case bubblesKey.Matches(msg, b.keymap.saveTheme):
			return b, tea.Batch(cmd, b.saveTheme())
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case pickerState:
		stateCmd = b.updatePicker(msg)
	default:
		stateCmd = b.updateForm(msg)
	}

	return b, tea.Batch(cmd, stateCmd)
}

func (b *statefulBubble) updateForm(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		b.valueC, cmd = b.valueC.Update(msg)
		return cmd
	}

	return b.handleFormKey(keyMsg)
}

func (b *statefulBubble) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case bubblesKey.Matches(msg, b.keymap.next):
		b.setFocus(field((int(b.focus) + 1) % int(numFields)))
		return nil
	case bubblesKey.Matches(msg, b.keymap.prev):
		b.setFocus(field((int(b.focus) + int(numFields) - 1) % int(numFields)))
		return nil
	case bubblesKey.Matches(msg, b.keymap.confirm):
		if b.focus.isSelector() {
			return b.openPicker(b.focus)
		}
		b.convert()
		return nil
	}

	if b.focus.isSelector() {
		switch {
		case bubblesKey.Matches(msg, b.keymap.left):
			b.cycle(b.focus, -1)
		case bubblesKey.Matches(msg, b.keymap.right):
			b.cycle(b.focus, 1)
		}
	}

	if b.focus != valueField {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		case bubblesKey.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
		}
		return nil
	}

	if msg.Type == tea.KeyRunes && !isNumeric(msg.Runes) {
		return nil
	}

	before := b.valueC.Value()
	var cmd tea.Cmd
	b.valueC, cmd = b.valueC.Update(msg)
	if b.valueC.Value() != before {
		b.clearResult()
	}
	return cmd
}

func (b *statefulBubble) updatePicker(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			b.pick()
			return nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return nil
		}
	}

	var cmd tea.Cmd
	b.pickerC, cmd = b.pickerC.Update(msg)
	return cmd
}

// isNumeric reports whether runes may appear in a decimal number.
func isNumeric(runes []rune) bool {
	for _, r := range runes {
		if !strings.ContainsRune("0123456789.,-+eE", r) {
			return false
		}
	}
	return true
}
