// Package unit implements the conversion engine: per-category unit tables, temperature rules and name resolution.
package unit

import (
	"fmt"
	"strings"
)

// Category identifies one of the closed set of measurement kinds.
type Category int

const (
	Length Category = iota
	Weight
	Temperature
	Time

	numCategories
)

var categoryNames = [numCategories]string{
	Length:      "Length",
	Weight:      "Weight",
	Temperature: "Temperature",
	Time:        "Time",
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Length, Weight, Temperature, Time}
}

// CategoryNames returns the display names of every category in display order.
func CategoryNames() []string {
	names := categoryNames
	return names[:]
}

func (c Category) valid() bool {
	return c >= 0 && c < numCategories
}

func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// MarshalText encodes the category as its display name.
func (c Category) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, ErrUnknownCategory
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name, case-insensitively.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory resolves a category by name, ignoring case and surrounding space.
func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	for i, n := range categoryNames {
		if strings.EqualFold(n, name) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}
