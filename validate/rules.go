package validate

import (
	"fmt"
	"regexp"
	"strconv"
)

// Func checks a normalized answer and returns the accepted value or a failure.
type Func func(text string) Result

type ruleKind int

const (
	kindAlways ruleKind = iota
	kindRequired
	kindInteger
	kindFloat
	kindPattern
	kindCustom
)

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// Rule is a declarative constraint on an answer. Build one with Always,
// Required, Integer, Float, Pattern or Custom.
type Rule struct {
	kind    ruleKind
	pattern *regexp.Regexp
	check   Func
}

// Always accepts every answer.
func Always() Rule { return Rule{kind: kindAlways} }

// Required rejects empty answers.
func Required() Rule { return Rule{kind: kindRequired} }

// Integer accepts one or more decimal digits with no sign.
func Integer() Rule { return Rule{kind: kindInteger} }

// Float accepts anything strconv.ParseFloat can parse.
func Float() Rule { return Rule{kind: kindFloat} }

// Pattern compiles expr and returns a rule accepting answers that match it.
func Pattern(expr string) (Rule, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Rule{}, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	return Rule{kind: kindPattern, pattern: re}, nil
}

// MustPattern is like Pattern but panics if expr does not compile.
func MustPattern(expr string) Rule {
	rule, err := Pattern(expr)
	if err != nil {
		panic(err)
	}
	return rule
}

// Matching returns a rule for an already compiled expression. A nil re
// behaves like Always.
func Matching(re *regexp.Regexp) Rule {
	if re == nil {
		return Always()
	}
	return Rule{kind: kindPattern, pattern: re}
}

// Custom wraps a caller-supplied check. A nil fn behaves like Always.
func Custom(fn Func) Rule {
	if fn == nil {
		return Always()
	}
	return Rule{kind: kindCustom, check: fn}
}

// Check applies rule to text, which should already be normalized.
func Check(rule Rule, text string) Result {
	switch rule.kind {
	case kindAlways:
		return Accept(text)
	case kindRequired:
		if text == "" {
			return Reject(EmptyAnswer, "A value is required.")
		}
		return Accept(text)
	case kindInteger:
		if !digitsPattern.MatchString(text) {
			return Rejectf(FormatError, "%q is not a whole number.", text)
		}
		return Accept(text)
	case kindFloat:
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return Rejectf(FormatError, "%q is not a number.", text)
		}
		return Accept(text)
	case kindPattern:
		if !rule.pattern.MatchString(text) {
			return Rejectf(FormatError, "%q does not match the expected format %s.", text, rule.pattern)
		}
		return Accept(text)
	case kindCustom:
		return rule.check(text)
	default:
		panic(fmt.Sprintf("validate: unknown rule kind %d", rule.kind))
	}
}

// Check is shorthand for the package-level Check.
func (r Rule) Check(text string) Result {
	return Check(r, text)
}
