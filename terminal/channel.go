package terminal

import (
	"errors"
	"strings"
)

var (
	// ErrEchoUnsupported is returned when a hidden read is requested but the
	// channel cannot stop typed characters from being displayed.
	ErrEchoUnsupported = errors.New("terminal cannot suppress input echo")

	// ErrInterrupted is returned when the user interrupts a read (Ctrl+C).
	ErrInterrupted = errors.New("input interrupted")
)

// Style is the role a piece of text plays on a line.
type Style int

const (
	StylePlain Style = iota
	StyleQuestion
	StyleHint
	StyleMarker
	StyleError
	StyleTitle
)

// String returns the string representation of the style
func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleQuestion:
		return "question"
	case StyleHint:
		return "hint"
	case StyleMarker:
		return "marker"
	case StyleError:
		return "error"
	case StyleTitle:
		return "title"
	default:
		return "unknown"
	}
}

// Span is a run of text rendered in one style.
type Span struct {
	Style Style
	Text  string
}

// Styled is a convenience function for creating spans
func Styled(style Style, text string) Span {
	return Span{Style: style, Text: text}
}

// PlainText joins the text of spans without any styling.
func PlainText(spans ...Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Read describes one blocking line read.
type Read struct {
	// Marker is printed right before the cursor, e.g. "> ".
	Marker string

	// Echo controls whether typed characters are displayed.
	// When false the channel must hide input or fail with ErrEchoUnsupported.
	Echo bool

	// Completions are offered for tab completion where supported.
	// They are a hint only and never restrict what may be typed.
	Completions []string
}

// Channel is a line-based terminal connection.
// Implementations are not safe for concurrent use.
type Channel interface {
	// WriteLine writes spans followed by a newline.
	WriteLine(spans ...Span) error

	// ReadLine blocks until one line has been read and returns it without
	// the line terminator.
	ReadLine(r Read) (string, error)
}
