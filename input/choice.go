package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/simonhull/firebird-suite/warbler/validate"
)

// NoDefault passed to Choice means an empty answer is not accepted.
const NoDefault = -1

// DefaultChoiceError is used when Choice or Choices gets an empty error template.
const DefaultChoiceError = `Value "%s" is invalid.`

// Choice asks the user to pick one of options.
//
// The options are listed with their 0-based keys; the user may type either
// the option itself or its key. def is the key used when the answer is
// empty, or NoDefault. An answer naming no option is rejected with
// errTemplate, where %s is replaced by what the user typed.
//
// Example:
//
//	driver, err := p.Choice("Database", []string{"postgres", "sqlite"}, 0, "%s is not supported")
//	// Displays: Database [postgres]
//	//             [0] postgres
//	//             [1] sqlite
func (p *Prompter) Choice(message string, options []string, def int, errTemplate string) (string, error) {
	var defs []int
	if def != NoDefault {
		defs = []int{def}
	}

	rule, q, err := newChoice(message, options, defs, false, errTemplate)
	if err != nil {
		return "", err
	}

	answer, err := p.Ask(q)
	if err != nil {
		return "", err
	}
	selected, _ := rule.resolve(answer)
	return selected[0], nil
}

// Choices asks the user to pick several of options, separated by commas.
// An option containing a comma is a caller error. Selections are returned
// in the order typed; naming the same option twice is rejected. defs, if
// not empty, are the keys whose options are returned as-is when the answer
// is empty.
//
// Example:
//
//	features, err := p.Choices("Features", []string{"auth", "jobs", "realtime"}, []int{0, 1}, "")
//	// Displays: Features [auth, jobs]
func (p *Prompter) Choices(message string, options []string, defs []int, errTemplate string) ([]string, error) {
	rule, q, err := newChoice(message, options, defs, true, errTemplate)
	if err != nil {
		return nil, err
	}

	answer, err := p.Ask(q)
	if err != nil {
		return nil, err
	}
	selected, _ := rule.resolve(answer)
	return selected, nil
}

// choiceRule resolves answers against a fixed set of options.
type choiceRule struct {
	options     []string
	defaults    []string
	multiple    bool
	errTemplate string
}

func newChoice(message string, options []string, defs []int, multiple bool, errTemplate string) (choiceRule, Question, error) {
	if len(options) == 0 {
		return choiceRule{}, Question{}, errors.New("choice requires at least one option")
	}
	if errTemplate == "" {
		errTemplate = DefaultChoiceError
	}
	if multiple {
		for _, option := range options {
			if strings.Contains(option, ",") {
				return choiceRule{}, Question{}, fmt.Errorf("option %q contains a comma and cannot be selected", option)
			}
		}
	}

	defaults := make([]string, 0, len(defs))
	seen := make(map[int]bool, len(defs))
	for _, d := range defs {
		if d < 0 || d >= len(options) {
			return choiceRule{}, Question{}, fmt.Errorf("default choice %d out of range [0, %d)", d, len(options))
		}
		if seen[d] {
			return choiceRule{}, Question{}, fmt.Errorf("default choice %d given twice", d)
		}
		seen[d] = true
		defaults = append(defaults, options[d])
	}

	body := make([]string, len(options))
	for i, option := range options {
		body[i] = fmt.Sprintf("  [%d] %s", i, option)
	}

	rule := choiceRule{options: options, defaults: defaults, multiple: multiple, errTemplate: errTemplate}
	q := Question{
		Message:     message,
		Body:        body,
		Completions: options,
		Rule:        validate.Custom(rule.check),
	}
	// The defaults are resolved by index on an empty answer, so they are
	// shown as a hint rather than substituted as text.
	if len(defaults) > 0 {
		q.Hint = fmt.Sprintf(" [%s]", strings.Join(defaults, ", "))
	}
	return rule, q, nil
}

func (r choiceRule) check(text string) validate.Result {
	if _, failure := r.resolve(text); failure != nil {
		return validate.Result{Failure: failure}
	}
	return validate.Accept(text)
}

func (r choiceRule) resolve(text string) ([]string, *validate.Failure) {
	if text == "" && len(r.defaults) > 0 {
		return append([]string(nil), r.defaults...), nil
	}

	tokens := []string{text}
	if r.multiple {
		tokens = strings.Split(text, ",")
	}

	selected := make([]string, 0, len(tokens))
	seen := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		token = validate.Normalize(token)
		option, ok := r.lookup(token)
		if !ok {
			return nil, &validate.Failure{
				Kind:    validate.UnknownToken,
				Message: strings.ReplaceAll(r.errTemplate, "%s", token),
			}
		}
		if seen[option] {
			return nil, &validate.Failure{
				Kind:    validate.FormatError,
				Message: fmt.Sprintf(`Value "%s" was selected more than once.`, option),
			}
		}
		seen[option] = true
		selected = append(selected, option)
	}
	return selected, nil
}

// lookup matches an option by value first, then by key.
func (r choiceRule) lookup(token string) (string, bool) {
	for _, option := range r.options {
		if option == token {
			return option, true
		}
	}
	if !validate.Integer().Check(token).OK() {
		return "", false
	}
	key, err := strconv.Atoi(token)
	if err != nil || key >= len(r.options) {
		return "", false
	}
	return r.options[key], true
}
