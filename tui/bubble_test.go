package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/unitconv-cli/unitconv/config"
	"github.com/unitconv-cli/unitconv/filesystem"
	"github.com/unitconv-cli/unitconv/key"
	"github.com/unitconv-cli/unitconv/theme"
	"github.com/unitconv-cli/unitconv/unit"
)

func init() {
	filesystem.SetMemMapFs()
}

func press(b *statefulBubble, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "ctrl+t":
			msg = tea.KeyMsg{Type: tea.KeyCtrlT}
		case "ctrl+s":
			msg = tea.KeyMsg{Type: tea.KeyCtrlS}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		b.Update(msg)
	}
}

func newTestBubble(options *Options) *statefulBubble {
	b := newBubbleWithClock(options, clockwork.NewFakeClock())
	b.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return b
}

func TestNewBubble(t *testing.T) {
	Convey("Given default options", t, func() {
		b := newTestBubble(nil)

		Convey("The form starts on the first category with the value 0", func() {
			So(b.state, ShouldEqual, formState)
			So(b.focus, ShouldEqual, categoryField)
			So(b.category, ShouldEqual, unit.Length)
			So(b.valueC.Value(), ShouldEqual, "0")
			So(b.fromUnit(), ShouldEqual, "Meter")
			So(b.toUnit(), ShouldEqual, "Kilometer")
			So(b.theme.Mode, ShouldEqual, theme.Light)
		})
	})

	Convey("Given explicit options", t, func() {
		b := newTestBubble(&Options{
			Theme:    mo.Some(theme.Dark),
			Category: mo.Some(unit.Time),
		})

		Convey("They override the configuration", func() {
			So(b.theme.Mode, ShouldEqual, theme.Dark)
			So(b.category, ShouldEqual, unit.Time)
			So(b.fromUnit(), ShouldEqual, "Second")
		})
	})

	Convey("Given a configured theme mode", t, func() {
		defer viper.Set(key.ThemeMode, string(theme.Light))

		Convey("Mixed case and padding are accepted", func() {
			viper.Set(key.ThemeMode, " Dark ")
			So(newTestBubble(nil).theme.Mode, ShouldEqual, theme.Dark)
		})

		Convey("An unknown mode falls back to light", func() {
			viper.Set(key.ThemeMode, "sepia")
			So(newTestBubble(nil).theme.Mode, ShouldEqual, theme.Light)
		})
	})
}

func TestFocus(t *testing.T) {
	Convey("Given a new form", t, func() {
		b := newTestBubble(nil)

		Convey("Tab walks through every field and wraps around", func() {
			press(b, "tab")
			So(b.focus, ShouldEqual, valueField)
			So(b.valueC.Focused(), ShouldBeTrue)
			press(b, "tab", "tab", "tab")
			So(b.focus, ShouldEqual, convertField)
			So(b.valueC.Focused(), ShouldBeFalse)
			press(b, "tab")
			So(b.focus, ShouldEqual, categoryField)
		})

		Convey("Shift+tab goes backwards", func() {
			press(b, "shift+tab")
			So(b.focus, ShouldEqual, convertField)
		})
	})
}

func TestConvert(t *testing.T) {
	Convey("Given a length conversion", t, func() {
		b := newTestBubble(nil)
		press(b, "tab", "backspace", "1", "2", "tab", "right", "tab", "tab", "enter")

		Convey("The result line is produced", func() {
			result, ok := b.result.Get()
			So(ok, ShouldBeTrue)
			So(result.String(), ShouldEqual, "12 Kilometer = 12.0000 Kilometer")
			So(b.View(), ShouldContainSubstring, "12 Kilometer = 12.0000 Kilometer")
		})

		Convey("Editing a field clears it", func() {
			press(b, "shift+tab", "right")
			So(b.result.IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given a temperature conversion", t, func() {
		b := newTestBubble(&Options{Category: mo.Some(unit.Temperature)})
		press(b, "tab", "backspace", "1", "0", "0", "tab", "tab", "tab", "enter")

		Convey("Celsius becomes Fahrenheit", func() {
			result, ok := b.result.Get()
			So(ok, ShouldBeTrue)
			So(result.String(), ShouldEqual, "100 Celsius = 212.0000 Fahrenheit")
		})
	})

	Convey("Given a value that is not a number", t, func() {
		b := newTestBubble(nil)
		press(b, "tab", "backspace", "1", "e", "tab", "tab", "tab", "enter")

		Convey("An inline error is shown instead of a result", func() {
			So(b.result.IsAbsent(), ShouldBeTrue)
			So(b.inputErr, ShouldNotBeNil)
			So(b.View(), ShouldContainSubstring, "not a number")
		})
	})

	Convey("Given letters typed in the value field", t, func() {
		b := newTestBubble(nil)
		press(b, "tab", "q", "x")

		Convey("They are ignored", func() {
			So(b.valueC.Value(), ShouldEqual, "0")
		})
	})
}

func TestSelectors(t *testing.T) {
	Convey("Given the category selector is focused", t, func() {
		b := newTestBubble(nil)

		Convey("Right moves to the next category and resets the units", func() {
			b.from, b.to = 3, 4
			press(b, "right")
			So(b.category, ShouldEqual, unit.Weight)
			So(b.fromUnit(), ShouldEqual, "Kilogram")
			So(b.toUnit(), ShouldEqual, "Gram")
		})

		Convey("Left wraps to the last category", func() {
			press(b, "left")
			So(b.category, ShouldEqual, unit.Time)
		})

		Convey("Enter opens a picker and enter again selects", func() {
			press(b, "enter")
			So(b.state, ShouldEqual, pickerState)
			So(b.pickerC.Index(), ShouldEqual, int(unit.Length))

			press(b, "down", "down", "enter")
			So(b.state, ShouldEqual, formState)
			So(b.category, ShouldEqual, unit.Temperature)
			So(b.fromUnit(), ShouldEqual, "Celsius")
			So(b.toUnit(), ShouldEqual, "Fahrenheit")
		})

		Convey("Esc leaves the picker without changes", func() {
			press(b, "enter", "down", "esc")
			So(b.state, ShouldEqual, formState)
			So(b.category, ShouldEqual, unit.Length)
		})
	})

	Convey("Given the to selector is focused", t, func() {
		b := newTestBubble(nil)
		press(b, "tab", "tab", "tab")

		Convey("The picker lists the units of the category", func() {
			press(b, "enter")
			So(len(b.pickerC.Items()), ShouldEqual, len(unit.Units(unit.Length)))
			So(b.pickerC.Index(), ShouldEqual, 1)
		})
	})
}

func TestTheme(t *testing.T) {
	Convey("Given the light theme", t, func() {
		So(config.Setup(), ShouldBeNil)
		b := newTestBubble(&Options{Theme: mo.Some(theme.Light)})

		Convey("ctrl+t switches to dark and back", func() {
			press(b, "ctrl+t")
			So(b.theme.Mode, ShouldEqual, theme.Dark)
			So(b.View(), ShouldContainSubstring, "NIGHT MODE")
			press(b, "ctrl+t")
			So(b.theme.Mode, ShouldEqual, theme.Light)
		})

		Convey("ctrl+s persists the current theme", func() {
			press(b, "ctrl+t", "ctrl+s")
			So(viper.GetString(key.ThemeMode), ShouldEqual, string(theme.Dark))
			viper.Set(key.ThemeMode, string(theme.Light))
		})
	})
}
