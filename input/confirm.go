package input

import (
	"fmt"
	"strings"

	"github.com/simonhull/firebird-suite/warbler/validate"
)

// Confirm asks the user a yes/no question.
// Accepts y/ye/yes and n/no in any case; an empty answer returns defaultYes.
// Anything else is rejected and the question is asked again.
//
// Example:
//
//	ok, err := p.Confirm("Run go mod tidy?", true)
//	// Displays: Run go mod tidy? (yes/no) [yes]
func (p *Prompter) Confirm(message string, defaultYes bool) (bool, error) {
	def := "no"
	if defaultYes {
		def = "yes"
	}

	answer, err := p.Ask(Question{
		Message:     message,
		Default:     def,
		Hint:        fmt.Sprintf(" (yes/no) [%s]", def),
		Completions: []string{"yes", "no"},
		Rule:        validate.Custom(yesNo),
	})
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}

func yesNo(text string) validate.Result {
	switch strings.ToLower(text) {
	case "y", "ye", "yes":
		return validate.Accept("yes")
	case "n", "no":
		return validate.Accept("no")
	default:
		return validate.Reject(validate.UnknownToken, "Please answer yes or no.")
	}
}
