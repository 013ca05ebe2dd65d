package input

import (
	"errors"
	"fmt"

	"github.com/simonhull/firebird-suite/warbler/logger"
	"github.com/simonhull/firebird-suite/warbler/terminal"
	"github.com/simonhull/firebird-suite/warbler/validate"
)

const (
	// DefaultMaxAttempts is how many answers a question accepts before giving up.
	DefaultMaxAttempts = 10

	// DefaultMarker is printed before the cursor on every read.
	DefaultMarker = "> "
)

// ErrTooManyAttempts is returned when every attempt at a question was rejected.
var ErrTooManyAttempts = errors.New("too many invalid attempts")

// Options configures a Prompter
type Options struct {
	MaxAttempts int           // Defaults to DefaultMaxAttempts
	Marker      string        // Defaults to DefaultMarker
	Logger      logger.Logger // Defaults to logger.Default()
}

// Prompter asks questions over a terminal channel.
// A Prompter is not safe for concurrent use.
type Prompter struct {
	ch          terminal.Channel
	maxAttempts int
	marker      string
	log         logger.Logger
}

// Question describes a single prompt.
type Question struct {
	Message string

	// Default is returned when the answer is empty.
	Default string

	// Hint replaces the default hint shown after the message.
	Hint string

	// Body lines are printed under the message, e.g. the available options.
	Body []string

	// Completions are offered for tab completion. They do not restrict the answer.
	Completions []string

	// Rule checks the normalized answer. The zero Rule accepts anything.
	Rule validate.Rule

	// Hidden suppresses echo while the answer is typed.
	Hidden bool
}

// New creates a prompter with sensible defaults
func New(ch terminal.Channel, opts *Options) *Prompter {
	if opts == nil {
		opts = &Options{}
	}

	p := &Prompter{
		ch:          ch,
		maxAttempts: opts.MaxAttempts,
		marker:      opts.Marker,
		log:         opts.Logger,
	}
	if p.maxAttempts < 1 {
		p.maxAttempts = DefaultMaxAttempts
	}
	if p.marker == "" {
		p.marker = DefaultMarker
	}
	if p.log == nil {
		p.log = logger.Default()
	}
	return p
}

// Ask asks q until an answer passes its rule or the attempts run out.
//
// Example:
//
//	port, err := p.Ask(input.Question{
//	    Message: "Port",
//	    Default: "8080",
//	    Rule:    validate.Integer(),
//	})
//	// Displays: Port [8080]
//	//           > _
func (p *Prompter) Ask(q Question) (string, error) {
	var last *validate.Failure

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		if err := p.writeQuestion(q); err != nil {
			return "", err
		}

		raw, err := p.ch.ReadLine(terminal.Read{
			Marker:      p.marker,
			Echo:        !q.Hidden,
			Completions: q.Completions,
		})
		if err != nil {
			return "", fmt.Errorf("failed to read answer to %q: %w", q.Message, err)
		}

		answer := validate.Normalize(raw)
		if answer == "" {
			answer = q.Default
		}

		res := validate.Check(q.Rule, answer)
		if res.OK() {
			return res.Value, nil
		}

		last = res.Failure
		p.log.Debug("answer rejected",
			logger.F("question", q.Message),
			logger.F("attempt", attempt),
			logger.F("reason", last.Kind.String()),
		)
		if err := p.ch.WriteLine(terminal.Styled(terminal.StyleError, last.Message)); err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("%w: %q after %d attempts: %s", ErrTooManyAttempts, q.Message, p.maxAttempts, last.Message)
}

// Text asks for a line of text. The default is shown in the prompt and
// returned when the user just presses Enter.
//
// Example:
//
//	modulePath, err := p.Text("Module path", "github.com/username/myapp", nil, validate.Required())
//	// Displays: Module path [github.com/username/myapp]
func (p *Prompter) Text(message, defaultValue string, completions []string, rule validate.Rule) (string, error) {
	return p.Ask(Question{
		Message:     message,
		Default:     defaultValue,
		Completions: completions,
		Rule:        rule,
	})
}

// Hidden asks for a secret without echoing it. The default is never shown.
// If the channel cannot hide input, the error wraps terminal.ErrEchoUnsupported
// and nothing is read.
func (p *Prompter) Hidden(message, defaultValue string) (string, error) {
	return p.Ask(Question{
		Message: message,
		Default: defaultValue,
		Hidden:  true,
	})
}

func (p *Prompter) writeQuestion(q Question) error {
	hint := q.Hint
	if hint == "" && q.Default != "" && !q.Hidden {
		hint = fmt.Sprintf(" [%s]", q.Default)
	}

	if err := p.ch.WriteLine(
		terminal.Styled(terminal.StyleQuestion, q.Message),
		terminal.Styled(terminal.StyleHint, hint),
	); err != nil {
		return err
	}

	for _, line := range q.Body {
		if err := p.ch.WriteLine(terminal.Styled(terminal.StylePlain, line)); err != nil {
			return err
		}
	}
	return nil
}
