// Package mini implements a line-based prompt flow for converting values without the full-screen form.
package mini

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/unitconv-cli/unitconv/constant"
	"github.com/unitconv-cli/unitconv/icon"
	"github.com/unitconv-cli/unitconv/inline"
	"github.com/unitconv-cli/unitconv/key"
	"github.com/unitconv-cli/unitconv/log"
	"github.com/unitconv-cli/unitconv/style"
	"github.com/unitconv-cli/unitconv/unit"
	"github.com/unitconv-cli/unitconv/util"
)

// Options configure the prompt flow.
type Options struct {
	Out  io.Writer
	Once bool
}

type mini struct {
	out      io.Writer
	prompter prompter

	category unit.Category
	value    string
}

// Run drives the prompt loop until the user declines another conversion or interrupts.
func Run(options *Options) error {
	out := options.Out
	if out == nil {
		out = os.Stdout
	}

	m := newMini(out, surveyPrompter{opts: []survey.AskOpt{survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = icon.Get(icon.Convert)
	})}})

	printUsage(out)

	err := m.loop(options.Once)
	if errors.Is(err, terminal.InterruptErr) {
		return nil
	}
	return err
}

// printUsage writes the walkthrough, wrapped to the terminal width.
func printUsage(out io.Writer) {
	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		width = 80
	}

	fmt.Fprintln(out, style.Title("Unit Converter"))
	for i, step := range constant.Usage {
		fmt.Fprintln(out, style.Faint(wrap.String(fmt.Sprintf("%d. %s", i+1, step), width)))
	}
	fmt.Fprintln(out)
}

func newMini(out io.Writer, p prompter) *mini {
	category, err := unit.ParseCategory(viper.GetString(key.TUIDefaultCategory))
	if err != nil {
		category = unit.Length
	}

	return &mini{
		out:      out,
		prompter: p,
		category: category,
		value:    "0",
	}
}

func (m *mini) loop(once bool) error {
	for {
		result, err := m.convertOnce()
		if err != nil {
			return err
		}

		fmt.Fprintf(m.out, "%s %s\n", icon.Get(icon.Success), style.Bold(result.String()))
		log.Infof("mini conversion: %s", result)

		if once {
			return nil
		}

		again, err := m.prompter.Confirm("Convert again?", true)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (m *mini) convertOnce() (unit.Result, error) {
	name, err := m.prompter.Select("Select Category", unit.CategoryNames(), m.category.String())
	if err != nil {
		return unit.Result{}, err
	}
	m.category = lo.Must(unit.ParseCategory(name))

	raw, err := m.prompter.Input("Enter Value", m.value, func(s string) error {
		_, err := inline.ParseValue(s)
		return err
	})
	if err != nil {
		return unit.Result{}, err
	}
	m.value = raw
	value := lo.Must(inline.ParseValue(raw))

	units := unit.Units(m.category)
	from, err := m.prompter.Select("From Unit", units, units[0])
	if err != nil {
		return unit.Result{}, err
	}

	to, err := m.prompter.Select("To Unit", units, units[0])
	if err != nil {
		return unit.Result{}, err
	}

	return unit.Do(m.category, value, from, to)
}
