package unit

import (
	"errors"
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

var (
	// ErrInvalidUnit is matched by every *InvalidUnitError.
	ErrInvalidUnit = errors.New("invalid unit")

	// ErrUnknownCategory is returned for a category outside the closed set.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrNotFinite is returned when the input or the converted value is NaN or infinite.
	ErrNotFinite = errors.New("value is not a finite number")
)

// InvalidUnitError reports a unit name that is not a member of its category.
type InvalidUnitError struct {
	Category Category
	Unit     string
	// Suggestion is the closest valid unit of the category, empty when the category has none.
	Suggestion string
}

func newInvalidUnitError(c Category, name string) *InvalidUnitError {
	return &InvalidUnitError{
		Category:   c,
		Unit:       name,
		Suggestion: closest(Units(c), name),
	}
}

func (e *InvalidUnitError) Error() string {
	msg := fmt.Sprintf("invalid unit %q for %s", e.Unit, e.Category)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(", did you mean %s?", e.Suggestion)
	}
	return msg
}

// Is makes errors.Is(err, ErrInvalidUnit) hold.
func (e *InvalidUnitError) Is(target error) bool {
	return target == ErrInvalidUnit
}

func closest(candidates []string, name string) string {
	if len(candidates) == 0 {
		return ""
	}
	return lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(strings.ToLower(name), strings.ToLower(a)) <
			levenshtein.Distance(strings.ToLower(name), strings.ToLower(b))
	})
}
