// Package inline implements the non-interactive, scriptable conversion mode.
package inline

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/mo"
	"github.com/unitconv-cli/unitconv/unit"
)

// Options describe a single conversion request coming from the command line.
type Options struct {
	Out      io.Writer
	Category mo.Option[unit.Category]
	Value    float64
	From     string
	To       string
	Json     bool
}

// thousandsComma matches a comma followed by exactly three digits, as in "1,000".
var thousandsComma = regexp.MustCompile(`,\d{3}([eE]|$)`)

// ParseValue reads a number the way the form's numeric input accepts it.
// Surrounding space is ignored and a single "," may stand for the decimal point.
// Grouping separators ("1,000", "1.000,5") are rejected as ambiguous, as are NaN and infinities.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	if strings.Contains(s, ",") {
		if strings.Count(s, ",")+strings.Count(s, ".") > 1 || thousandsComma.MatchString(s) {
			return 0, fmt.Errorf("invalid value %q: ambiguous separator, use a single . or , for decimals", s)
		}
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !unit.IsFinite(v) {
		return 0, fmt.Errorf("invalid value %q: not a number", s)
	}
	return v, nil
}
