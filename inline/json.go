package inline

import (
	"encoding/json"

	"github.com/unitconv-cli/unitconv/unit"
)

// Output is the JSON document printed by the convert command.
type Output struct {
	Category  string  `json:"category" jsonschema:"enum=Length,enum=Weight,enum=Temperature,enum=Time"`
	Value     float64 `json:"value"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted" jsonschema:"description=Result with four decimals"`
	Text      string  `json:"text" jsonschema:"description=Human readable line\\, e.g. 1 Kilometer = 1000.0000 Meter"`
}

func newOutput(r unit.Result) *Output {
	return &Output{
		Category:  r.Category.String(),
		Value:     r.Value,
		From:      r.From,
		To:        r.To,
		Result:    r.Result,
		Formatted: r.Formatted(),
		Text:      r.String(),
	}
}

func asJson(r unit.Result) ([]byte, error) {
	data, err := json.Marshal(newOutput(r))
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
