package unit

// definition describes one unit of a category.
type definition struct {
	name    string
	scale   float64
	symbols []string
}

// system is the per-category conversion variant.
type system interface {
	units() []definition
	convert(value float64, from, to string) float64
}

// linear converts by normalising to the base unit (scale 1) and back.
type linear struct {
	defs  []definition
	scale map[string]float64
}

func newLinear(defs ...definition) *linear {
	l := &linear{defs: defs, scale: make(map[string]float64, len(defs))}
	for _, d := range defs {
		l.scale[d.name] = d.scale
	}
	return l
}

func (l *linear) units() []definition {
	return l.defs
}

func (l *linear) convert(value float64, from, to string) float64 {
	base := value * l.scale[from]
	return base / l.scale[to]
}

// Base unit: Meter.
var lengthUnits = newLinear(
	definition{"Meter", 1, []string{"m", "metre", "metres"}},
	definition{"Kilometer", 1000, []string{"km", "kilometre", "kilometres"}},
	definition{"Centimeter", 0.01, []string{"cm", "centimetre", "centimetres"}},
	definition{"Millimeter", 0.001, []string{"mm", "millimetre", "millimetres"}},
	definition{"Mile", 1609.34, []string{"mi"}},
	definition{"Yard", 0.9144, []string{"yd"}},
	definition{"Foot", 0.3048, []string{"ft", "feet"}},
	definition{"Inch", 0.0254, []string{"in", "inches"}},
)

// Base unit: Kilogram.
var weightUnits = newLinear(
	definition{"Kilogram", 1, []string{"kg", "kilo", "kilos"}},
	definition{"Gram", 0.001, []string{"g"}},
	definition{"Milligram", 0.000001, []string{"mg"}},
	definition{"Pound", 0.453592, []string{"lb", "lbs"}},
	definition{"Ounce", 0.0283495, []string{"oz"}},
)

// Base unit: Second.
var timeUnits = newLinear(
	definition{"Second", 1, []string{"s", "sec", "secs"}},
	definition{"Minute", 60, []string{"min", "mins"}},
	definition{"Hour", 3600, []string{"h", "hr", "hrs"}},
	definition{"Day", 86400, []string{"d"}},
	definition{"Week", 604800, []string{"wk", "w"}},
)

// systems is indexed by Category; its length pins one variant per category.
var systems = [numCategories]system{
	Length:      lengthUnits,
	Weight:      weightUnits,
	Temperature: temperatureUnits,
	Time:        timeUnits,
}
