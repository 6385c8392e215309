package mini

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/unitconv-cli/unitconv/key"
)

// scripted answers prompts from a fixed queue and interrupts once it runs dry.
type scripted struct {
	answers []any
}

func (s *scripted) next() any {
	if len(s.answers) == 0 {
		return terminal.InterruptErr
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a
}

func (s *scripted) Select(_ string, options []string, _ string) (string, error) {
	switch a := s.next().(type) {
	case error:
		return "", a
	case string:
		for _, o := range options {
			if o == a {
				return a, nil
			}
		}
		return "", errors.New("not an option: " + a)
	}
	return "", errors.New("unexpected answer")
}

func (s *scripted) Input(_ string, _ string, validate func(string) error) (string, error) {
	switch a := s.next().(type) {
	case error:
		return "", a
	case string:
		if validate != nil {
			if err := validate(a); err != nil {
				return "", err
			}
		}
		return a, nil
	}
	return "", errors.New("unexpected answer")
}

func (s *scripted) Confirm(string, bool) (bool, error) {
	switch a := s.next().(type) {
	case error:
		return false, a
	case bool:
		return a, nil
	}
	return false, errors.New("unexpected answer")
}

func TestLoop(t *testing.T) {
	Convey("Given a scripted user", t, func() {
		viper.Set(key.IconsVariant, "plain")
		viper.Set(key.TUIDefaultCategory, "Temperature")
		var out bytes.Buffer

		Convey("A single conversion prints the result line", func() {
			m := newMini(&out, &scripted{answers: []any{"Temperature", "100", "Celsius", "Fahrenheit"}})
			So(m.category.String(), ShouldEqual, "Temperature")

			So(m.loop(true), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "100 Celsius = 212.0000 Fahrenheit")
		})

		Convey("The loop repeats until declined", func() {
			m := newMini(&out, &scripted{answers: []any{
				"Length", "1", "Kilometer", "Meter", true,
				"Time", "1", "Week", "Second", false,
			}})

			So(m.loop(false), ShouldBeNil)
			So(strings.Count(out.String(), "\n"), ShouldEqual, 2)
			So(out.String(), ShouldContainSubstring, "1 Week = 604800.0000 Second")
		})

		Convey("Invalid numbers are rejected by the validator", func() {
			m := newMini(&out, &scripted{answers: []any{"Length", "ten"}})
			So(m.loop(true), ShouldNotBeNil)
		})

		Convey("An interrupt stops the loop", func() {
			m := newMini(&out, &scripted{answers: []any{"Length"}})
			So(errors.Is(m.loop(true), terminal.InterruptErr), ShouldBeTrue)
		})
	})
}

func TestPrintUsage(t *testing.T) {
	Convey("The walkthrough lists every step in order", t, func() {
		var out bytes.Buffer
		printUsage(&out)

		So(out.String(), ShouldContainSubstring, "Unit Converter")
		So(out.String(), ShouldContainSubstring, "1. Select the category of conversion")
		So(out.String(), ShouldContainSubstring, "5. Press Convert")
	})
}
