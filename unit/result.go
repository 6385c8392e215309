package unit

import (
	"fmt"
	"math"
	"strconv"
)

// Precision is the fixed number of decimals results are displayed with.
const Precision = 4

// Result is a completed conversion request.
type Result struct {
	Category Category `json:"category"`
	Value    float64  `json:"value"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Result   float64  `json:"result"`
}

// Do converts and packages the request together with its outcome.
// Both the input and the result must be finite; a result overflowing float64 fails with ErrNotFinite.
func Do(c Category, value float64, from, to string) (Result, error) {
	if !IsFinite(value) {
		return Result{}, fmt.Errorf("%w: %v", ErrNotFinite, value)
	}

	out, err := Convert(c, value, from, to)
	if err != nil {
		return Result{}, err
	}

	if !IsFinite(out) {
		return Result{}, fmt.Errorf("%w: %s %s overflows in %s", ErrNotFinite, FormatValue(value), from, to)
	}

	return Result{
		Category: c,
		Value:    value,
		From:     from,
		To:       to,
		Result:   out,
	}, nil
}

// Formatted returns the converted value with the fixed display precision.
func (r Result) Formatted() string {
	return strconv.FormatFloat(r.Result, 'f', Precision, 64)
}

// String renders "{value} {from} = {result} {to}".
func (r Result) String() string {
	return fmt.Sprintf("%s %s = %s %s", FormatValue(r.Value), r.From, r.Formatted(), r.To)
}

// FormatValue prints an input value in its shortest exact decimal form.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
