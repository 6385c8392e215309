package tui

type state int

const (
	formState state = iota
	pickerState
)

// field is a focusable element of the form, in tab order.
type field int

const (
	categoryField field = iota
	valueField
	fromField
	toField
	convertField

	numFields
)

func (f field) isSelector() bool {
	return f == categoryField || f == fromField || f == toField
}

func (f field) label() string {
	switch f {
	case categoryField:
		return "Select Category"
	case valueField:
		return "Enter Value"
	case fromField:
		return "From Unit"
	case toField:
		return "To Unit"
	default:
		return "Convert"
	}
}
