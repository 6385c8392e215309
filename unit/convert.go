package unit

import (
	"fmt"

	"github.com/samber/lo"
)

// Convert expresses value, measured in from, in the unit to.
// Both units must be canonical names of the category (see Resolve for free-form input).
func Convert(c Category, value float64, from, to string) (float64, error) {
	if !c.valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}

	if !Has(c, from) {
		return 0, newInvalidUnitError(c, from)
	}
	if !Has(c, to) {
		return 0, newInvalidUnitError(c, to)
	}

	if from == to {
		return value, nil
	}

	return systems[c].convert(value, from, to), nil
}

// Units returns the canonical unit names of a category in display order.
// Nil is returned for an unknown category.
func Units(c Category) []string {
	if !c.valid() {
		return nil
	}
	return lo.Map(systems[c].units(), func(d definition, _ int) string {
		return d.name
	})
}

// Has reports whether name is a canonical unit of the category.
func Has(c Category, name string) bool {
	if !c.valid() {
		return false
	}
	return lo.ContainsBy(systems[c].units(), func(d definition) bool {
		return d.name == name
	})
}

// Base returns the unit every scale factor of a linear category is relative to.
// Temperature has no base and reports false.
func Base(c Category) (string, bool) {
	if !c.valid() {
		return "", false
	}
	l, ok := systems[c].(*linear)
	if !ok {
		return "", false
	}
	d, found := lo.Find(l.defs, func(d definition) bool {
		return d.scale == 1
	})
	return d.name, found
}
