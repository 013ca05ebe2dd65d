package validate

import (
	"fmt"
	"strings"
)

// Kind identifies which constraint an answer violated.
type Kind int

const (
	// EmptyAnswer means a value was required but nothing was typed.
	EmptyAnswer Kind = iota + 1
	// FormatError means the answer does not have the expected shape.
	FormatError
	// UnknownToken means the answer is not one of the accepted tokens.
	UnknownToken
	// OutOfRangeIndex means a numeric answer does not address an existing entry.
	OutOfRangeIndex
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case EmptyAnswer:
		return "empty answer"
	case FormatError:
		return "format error"
	case UnknownToken:
		return "unknown token"
	case OutOfRangeIndex:
		return "index out of range"
	default:
		return "unknown"
	}
}

// Failure describes a rejected answer. Message is shown to the user as-is.
type Failure struct {
	Kind    Kind
	Message string
}

// Error returns the user-facing message
func (f *Failure) Error() string {
	return f.Message
}

// Result is the outcome of checking one answer.
// Exactly one of Value (when Failure is nil) or Failure is meaningful.
type Result struct {
	Value   string
	Failure *Failure
}

// OK reports whether the answer was accepted.
func (r Result) OK() bool {
	return r.Failure == nil
}

// Accept returns a successful Result carrying value.
func Accept(value string) Result {
	return Result{Value: value}
}

// Reject returns a failed Result.
func Reject(kind Kind, message string) Result {
	return Result{Failure: &Failure{Kind: kind, Message: message}}
}

// Rejectf is Reject with a formatted message.
func Rejectf(kind Kind, format string, args ...any) Result {
	return Reject(kind, fmt.Sprintf(format, args...))
}

// Normalize trims surrounding whitespace from a raw answer.
// Callers never see a "missing" answer, only the empty string.
func Normalize(raw string) string {
	return strings.TrimSpace(raw)
}
