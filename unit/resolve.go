package unit

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Resolve maps user input to a canonical unit name of the category.
// Matching ignores case and accepts plurals ("meters") and symbols ("km", "°C").
func Resolve(c Category, input string) (string, error) {
	if !c.valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}

	if name, ok := lookup(c, input); ok {
		return name, nil
	}
	return "", newInvalidUnitError(c, strings.TrimSpace(input))
}

func lookup(c Category, input string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return "", false
	}

	d, ok := lo.Find(systems[c].units(), func(d definition) bool {
		name := strings.ToLower(d.name)
		if needle == name || needle == name+"s" {
			return true
		}
		return lo.Contains(d.symbols, needle)
	})
	return d.name, ok
}

// Infer finds the category containing both units.
// Symbols shared across categories are ambiguous only when both inputs agree on more than one category.
func Infer(from, to string) (Category, error) {
	matches := lo.Filter(Categories(), func(c Category, _ int) bool {
		_, okFrom := lookup(c, from)
		_, okTo := lookup(c, to)
		return okFrom && okTo
	})

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return 0, fmt.Errorf("%w: no category contains both %q and %q", ErrInvalidUnit, from, to)
	default:
		return 0, fmt.Errorf("%q and %q match several categories, pass one explicitly", from, to)
	}
}

// Suggest returns the canonical unit names of a category fuzzily matching a prefix, for shell completion.
func Suggest(c Category, prefix string) []string {
	names := Units(c)
	if prefix == "" {
		return names
	}
	return lo.Filter(names, func(name string, _ int) bool {
		return fuzzy.MatchFold(prefix, name)
	})
}

// SuggestAny is Suggest across every category, used when no category is known yet.
func SuggestAny(prefix string) []string {
	return lo.FlatMap(Categories(), func(c Category, _ int) []string {
		return Suggest(c, prefix)
	})
}
