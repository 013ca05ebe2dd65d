package terminal

import (
	"fmt"
	"io"
	"strings"
)

// Script is a Channel that replays canned answers and records everything
// written to it. Use it to test code that prompts.
//
// Example:
//
//	script := terminal.NewScript("a", "first", "c")
//	items, err := input.New(script, nil).List("Hosts", "Host", nil)
//	// items == []string{"first"}, script.Lines holds the transcript
type Script struct {
	// Lines holds every written line as plain text.
	Lines []string

	// Reads holds every read request in order.
	Reads []Read

	// NoHide makes hidden reads fail with ErrEchoUnsupported.
	NoHide bool

	answers []string
}

// NewScript creates a script that answers reads with answers, in order.
func NewScript(answers ...string) *Script {
	return &Script{answers: answers}
}

// WriteLine records the plain text of spans.
func (s *Script) WriteLine(spans ...Span) error {
	s.Lines = append(s.Lines, PlainText(spans...))
	return nil
}

// ReadLine returns the next answer, or io.EOF once all answers are used.
func (s *Script) ReadLine(r Read) (string, error) {
	s.Reads = append(s.Reads, r)
	if !r.Echo && s.NoHide {
		return "", fmt.Errorf("%w: scripted channel", ErrEchoUnsupported)
	}
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

// Remaining returns the number of answers not read yet.
func (s *Script) Remaining() int {
	return len(s.answers)
}

// Output returns the recorded lines joined by newlines.
func (s *Script) Output() string {
	return strings.Join(s.Lines, "\n")
}

// Count returns how many recorded lines equal line exactly.
func (s *Script) Count(line string) int {
	n := 0
	for _, l := range s.Lines {
		if l == line {
			n++
		}
	}
	return n
}
