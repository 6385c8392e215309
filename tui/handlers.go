package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/samber/mo"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/unitconv-cli/unitconv/config"
	"github.com/unitconv-cli/unitconv/icon"
	"github.com/unitconv-cli/unitconv/inline"
	"github.com/unitconv-cli/unitconv/internal/ui"
	"github.com/unitconv-cli/unitconv/key"
	"github.com/unitconv-cli/unitconv/log"
	"github.com/unitconv-cli/unitconv/unit"
	"github.com/unitconv-cli/unitconv/util"
)

func (b *statefulBubble) applyTheme() {
	t := b.theme

	b.valueC.TextStyle = t.Field.UnsetBorderStyle().UnsetPadding()
	b.valueC.PlaceholderStyle = t.Faint
	b.valueC.Cursor.Style = t.Label

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(t.Palette.Accent).
		BorderForeground(t.Palette.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle.Foreground(t.Palette.Subtext)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(t.Palette.Text)
	delegate.Styles.NormalDesc = delegate.Styles.NormalDesc.Foreground(t.Palette.Subtext)
	b.pickerC.SetDelegate(delegate)
	b.pickerC.Styles.Title = t.Title
}

func (b *statefulBubble) toggleTheme() tea.Cmd {
	b.theme = b.theme.Toggle()
	b.applyTheme()

	log.Debugf("theme toggled to %s", b.theme.Mode)
	return ui.Notify(b.theme.Badge(icon.Get(icon.Sun), icon.Get(icon.Moon)))
}

func (b *statefulBubble) saveTheme() tea.Cmd {
	viper.Set(key.ThemeMode, string(b.theme.Mode))
	if err := config.Persist(); err != nil {
		log.Error(err)
		return ui.Notify(fmt.Sprintf("%s %s", icon.Get(icon.Fail), err))
	}

	log.Infof("default theme set to %s", b.theme.Mode)
	return ui.Notify(fmt.Sprintf("%s %s theme saved", icon.Get(icon.Success), b.theme.Mode))
}

func (b *statefulBubble) options(f field) (names []string, current int) {
	switch f {
	case categoryField:
		return unit.CategoryNames(), int(b.category)
	case fromField:
		return b.units(), b.from
	case toField:
		return b.units(), b.to
	default:
		return nil, 0
	}
}

// cycle moves a selector delta options forward, wrapping around.
func (b *statefulBubble) cycle(f field, delta int) {
	names, current := b.options(f)
	next := util.Wrap(current, delta, len(names))
	b.selectOption(f, next)
}

func (b *statefulBubble) selectOption(f field, i int) {
	switch f {
	case categoryField:
		b.setCategory(unit.Categories()[i])
	case fromField:
		if i != b.from {
			b.from = i
			b.clearResult()
		}
	case toField:
		if i != b.to {
			b.to = i
			b.clearResult()
		}
	}
}

func (b *statefulBubble) openPicker(f field) tea.Cmd {
	names, current := b.options(f)
	items := lo.Map(names, func(name string, i int) list.Item {
		return &listItem{
			name:     name,
			category: b.category,
			current:  i == current,
		}
	})

	b.picking = f
	b.pickerC.Title = f.label()
	cmd := b.pickerC.SetItems(items)
	b.pickerC.Select(current)
	b.newState(pickerState)
	return cmd
}

func (b *statefulBubble) pick() {
	b.selectOption(b.picking, b.pickerC.Index())
	b.previousState()
}

// convert runs the conversion for the current field values.
func (b *statefulBubble) convert() {
	b.clearResult()

	value, err := inline.ParseValue(b.valueC.Value())
	if err != nil {
		b.inputErr = err
		log.Warn(err)
		return
	}

	result, err := unit.Do(b.category, value, b.fromUnit(), b.toUnit())
	if err != nil {
		b.inputErr = err
		log.Error(err)
		return
	}

	log.WithFields(logrus.Fields{
		"category": result.Category.String(),
		"from":     result.From,
		"to":       result.To,
	}).Debug(result.String())
	b.result = mo.Some(result)
}
