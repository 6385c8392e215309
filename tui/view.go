package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
	"github.com/unitconv-cli/unitconv/constant"
	"github.com/unitconv-cli/unitconv/icon"
	"github.com/unitconv-cli/unitconv/key"
	"github.com/unitconv-cli/unitconv/util"
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case pickerState:
		output = b.viewPicker()
	default:
		output = b.viewForm()
	}

	output = b.notifier.View(output, func(s string) string { return b.theme.ToggleBadge.Render(s) })

	app := b.theme.App
	if b.width > 0 {
		app = app.Width(b.width).Height(b.height)
	}
	return app.Render(output)
}

func (b *statefulBubble) viewForm() string {
	t := b.theme
	contentWidth := b.contentWidth()

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		t.Title.Render("Unit Converter"),
		" ",
		t.ToggleBadge.Render(t.Badge(icon.Get(icon.Sun), icon.Get(icon.Moon))),
	)

	selector := func(f field, value string) string {
		return b.viewField(f, fmt.Sprintf("‹ %s ›", value))
	}

	units := lipgloss.JoinHorizontal(
		lipgloss.Top,
		selector(fromField, b.fromUnit()),
		"  ",
		selector(toField, b.toUnit()),
	)

	button := t.Button
	if b.focus == convertField {
		button = t.FocusedBtn
	}

	lines := []string{
		header,
		t.Faint.Render("Convert between different units of measurement"),
		"",
		selector(categoryField, b.category.String()),
		b.viewField(valueField, b.valueC.View()),
		units,
		"",
		button.Render(icon.Get(icon.Convert) + " Convert"),
		"",
	}

	if result, ok := b.result.Get(); ok {
		lines = append(lines, t.Result.Render(wrap.String(result.String(), contentWidth)))
	} else if b.inputErr != nil {
		lines = append(lines, t.Error.Render(wrap.String(icon.Get(icon.Fail)+" "+b.inputErr.Error(), contentWidth)))
	} else {
		lines = append(lines, t.Faint.Render(util.Quantify(len(b.units()), "unit", "units") + " available"))
	}

	lines = append(lines, "", b.viewUsage())
	if viper.GetBool(key.TUIShowHelp) {
		lines = append(lines, "", b.helpC.View(b.keymap))
	}

	return strings.Join(lines, "\n")
}

func (b *statefulBubble) viewField(f field, content string) string {
	style := b.theme.Field
	if b.focus == f {
		style = b.theme.FocusedField
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		b.theme.Label.Render(f.label()),
		style.Width(b.fieldWidth()).Render(content),
	)
}

func (b *statefulBubble) viewUsage() string {
	lines := []string{b.theme.Label.Render("How to use:")}
	for i, step := range constant.Usage {
		lines = append(lines, b.theme.Faint.Render(wrap.String(fmt.Sprintf("%d. %s", i+1, step), b.contentWidth())))
	}

	return strings.Join(lines, "\n")
}

func (b *statefulBubble) viewPicker() string {
	return b.pickerC.View()
}

func (b *statefulBubble) contentWidth() int {
	if b.width == 0 {
		return 80
	}

	x, _ := b.theme.App.GetFrameSize()
	return util.Max(b.width-x, 20)
}

func (b *statefulBubble) fieldWidth() int {
	return util.Max(b.contentWidth()/2-4, 16)
}
