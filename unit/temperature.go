package unit

const (
	celsius    = "Celsius"
	fahrenheit = "Fahrenheit"
	kelvin     = "Kelvin"
)

// absoluteZeroOffset is the Kelvin value of 0 °C.
const absoluteZeroOffset = 273.15

type temperature struct {
	defs  []definition
	rules map[[2]string]func(float64) float64
}

// Temperature scales differ in zero point as well as step, so each directed pair is an affine rule.
var temperatureUnits = &temperature{
	defs: []definition{
		{celsius, 0, []string{"c", "°c", "degc", "centigrade"}},
		{fahrenheit, 0, []string{"f", "°f", "degf"}},
		{kelvin, 0, []string{"k"}},
	},
	rules: map[[2]string]func(float64) float64{
		{celsius, fahrenheit}: func(v float64) float64 { return v*9/5 + 32 },
		{celsius, kelvin}:     func(v float64) float64 { return v + absoluteZeroOffset },
		{fahrenheit, celsius}: func(v float64) float64 { return (v - 32) * 5 / 9 },
		{fahrenheit, kelvin}:  func(v float64) float64 { return (v-32)*5/9 + absoluteZeroOffset },
		{kelvin, celsius}:     func(v float64) float64 { return v - absoluteZeroOffset },
		{kelvin, fahrenheit}:  func(v float64) float64 { return (v-absoluteZeroOffset)*9/5 + 32 },
	},
}

func (t *temperature) units() []definition {
	return t.defs
}

// convert returns value unchanged for a pair without a rule, including from == to.
func (t *temperature) convert(value float64, from, to string) float64 {
	if rule, ok := t.rules[[2]string{from, to}]; ok {
		return rule(value)
	}
	return value
}
