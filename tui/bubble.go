package tui

import (
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/unitconv-cli/unitconv/internal/ui"
	"github.com/unitconv-cli/unitconv/key"
	"github.com/unitconv-cli/unitconv/theme"
	"github.com/unitconv-cli/unitconv/unit"
	"github.com/unitconv-cli/unitconv/util"
)

// statefulBubble is the whole form: field values, focus, picker and the active theme.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	// components
	valueC  textinput.Model
	pickerC list.Model
	helpC   help.Model

	theme    theme.Theme
	category unit.Category
	from, to int
	focus    field
	picking  field

	result   mo.Option[unit.Result]
	inputErr error

	width, height int
	notifier      *ui.Model
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	b.statesHistory.Push(b.state)
	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) setFocus(f field) {
	b.focus = f
	b.keymap.focus = f

	if f == valueField {
		b.valueC.Focus()
	} else {
		b.valueC.Blur()
	}
}

func (b *statefulBubble) units() []string {
	return unit.Units(b.category)
}

func (b *statefulBubble) fromUnit() string {
	return b.units()[b.from]
}

func (b *statefulBubble) toUnit() string {
	return b.units()[b.to]
}

// setCategory switches the category and resets both unit selectors.
func (b *statefulBubble) setCategory(c unit.Category) {
	if c == b.category {
		return
	}

	b.category = c
	b.from = 0
	b.to = lo.Min([]int{1, len(b.units()) - 1})
	b.clearResult()
}

func (b *statefulBubble) clearResult() {
	b.result = mo.None[unit.Result]()
	b.inputErr = nil
}

func (b *statefulBubble) resize(width, height int) {
	b.width = width
	b.height = height
	b.helpC.Width = width

	x, y := b.theme.App.GetFrameSize()
	b.pickerC.SetSize(width-x, height-y-2)
}

func newBubble(options *Options) *statefulBubble {
	return newBubbleWithClock(options, clockwork.NewRealClock())
}

func newBubbleWithClock(options *Options, clock clockwork.Clock) *statefulBubble {
	if options == nil {
		options = &Options{}
	}

	keymap := newStatefulKeymap()

	mode := options.Theme.OrElse(defaultTheme())
	category := options.Category.OrElse(defaultCategory())

	bubble := &statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		theme:         theme.For(mode),
		category:      category,
		to:            1,
		notifier:      ui.New(clock),
		result:        mo.None[unit.Result](),
	}

	bubble.valueC = textinput.New()
	bubble.valueC.Prompt = ""
	bubble.valueC.Placeholder = "0"
	bubble.valueC.SetValue("0")
	bubble.valueC.CharLimit = 32

	bubble.pickerC = list.New(nil, list.NewDefaultDelegate(), 0, 0)
	bubble.pickerC.KeyMap = keymap.forList()
	bubble.pickerC.SetShowStatusBar(false)
	bubble.pickerC.SetFilteringEnabled(false)
	bubble.pickerC.AdditionalShortHelpKeys = func() []bubblesKey.Binding {
		return []bubblesKey.Binding{keymap.confirm, keymap.back}
	}

	bubble.helpC = help.New()
	bubble.helpC.ShowAll = false

	bubble.setState(formState)
	bubble.setFocus(categoryField)
	bubble.applyTheme()

	return bubble
}

func defaultCategory() unit.Category {
	category, err := unit.ParseCategory(viper.GetString(key.TUIDefaultCategory))
	if err != nil {
		return unit.Length
	}

	return category
}

func defaultTheme() theme.Mode {
	mode, err := theme.ParseMode(viper.GetString(key.ThemeMode))
	if err != nil {
		return theme.Light
	}

	return mode
}
