// Package validate checks answers typed at a prompt.
//
// # Overview
//
// A Rule describes what an answer must look like. Applying a rule to the
// normalized answer text yields a Result: either the accepted value or a
// Failure carrying a one-line message for the user.
//
//	rule := validate.Integer()
//	res := validate.Check(rule, validate.Normalize("  42 "))
//	if !res.OK() {
//	    fmt.Println(res.Failure) // shown to the user, then the question is asked again
//	}
//
// # Rules
//
// The set of rule kinds is closed:
//
//   - Always: any answer, including an empty one
//   - Required: a non-empty answer
//   - Integer: one or more decimal digits, nothing else
//   - Float: anything strconv.ParseFloat accepts
//   - Pattern: answers matching a regular expression
//   - Custom: a caller-supplied Func for one-off checks
//
// The zero Rule behaves like Always.
package validate
