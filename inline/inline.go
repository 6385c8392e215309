package inline

import (
	"fmt"
	"os"

	logrus "github.com/sirupsen/logrus"
	"github.com/unitconv-cli/unitconv/log"
	"github.com/unitconv-cli/unitconv/unit"
)

// Run resolves the request, converts and writes the outcome to options.Out.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	result, err := Convert(options)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"category": result.Category.String(),
		"from":     result.From,
		"to":       result.To,
	}).Debug("inline conversion")

	if options.Json {
		data, err := asJson(result)
		if err != nil {
			return err
		}
		_, err = options.Out.Write(data)
		return err
	}

	_, err = fmt.Fprintln(options.Out, result.String())
	return err
}

// Convert turns free-form unit input into canonical names and performs the conversion.
// The category is inferred from the units when not given.
func Convert(options *Options) (unit.Result, error) {
	category, ok := options.Category.Get()
	if !ok {
		inferred, err := unit.Infer(options.From, options.To)
		if err != nil {
			return unit.Result{}, err
		}
		category = inferred
	}

	from, err := unit.Resolve(category, options.From)
	if err != nil {
		return unit.Result{}, err
	}

	to, err := unit.Resolve(category, options.To)
	if err != nil {
		return unit.Result{}, err
	}

	return unit.Do(category, options.Value, from, to)
}
