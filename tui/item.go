package tui

import (
	"fmt"

	"github.com/unitconv-cli/unitconv/icon"
	"github.com/unitconv-cli/unitconv/unit"
)

// listItem is an option of a picker list.
type listItem struct {
	name     string
	category unit.Category
	current  bool
}

func (t *listItem) Title() string {
	if t.current {
		return fmt.Sprintf("%s %s", t.name, icon.Get(icon.Success))
	}
	return t.name
}

func (t *listItem) Description() string {
	if cat, err := unit.ParseCategory(t.name); err == nil && cat.String() == t.name {
		return fmt.Sprintf("%d units", len(unit.Units(cat)))
	}
	if base, ok := unit.Base(t.category); ok && base == t.name {
		return "base unit"
	}
	return ""
}

func (t *listItem) FilterValue() string {
	return t.name
}
