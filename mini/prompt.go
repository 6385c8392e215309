package mini

import (
	"github.com/AlecAivazis/survey/v2"
)

// prompter asks the user for one answer at a time.
type prompter interface {
	Select(message string, options []string, def string) (string, error)
	Input(message, def string, validate func(string) error) (string, error)
	Confirm(message string, def bool) (bool, error)
}

type surveyPrompter struct {
	opts []survey.AskOpt
}

func (s surveyPrompter) Select(message string, options []string, def string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Select{
		Message: message,
		Options: options,
		Default: def,
	}, &answer, s.opts...)
	return answer, err
}

func (s surveyPrompter) Input(message, def string, validate func(string) error) (string, error) {
	var answer string
	opts := append([]survey.AskOpt{}, s.opts...)
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			str, _ := ans.(string)
			return validate(str)
		}))
	}

	err := survey.AskOne(&survey.Input{
		Message: message,
		Default: def,
	}, &answer, opts...)
	return answer, err
}

func (s surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{
		Message: message,
		Default: def,
	}, &answer, s.opts...)
	return answer, err
}
