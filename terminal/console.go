package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// Options configures a Console
type Options struct {
	In      io.Reader // Defaults to os.Stdin
	Out     io.Writer // Defaults to os.Stderr
	Palette *Palette  // Defaults to DefaultPalette()
}

// Console is a Channel over a reader and a writer.
//
// When In is a terminal, reads go through a readline line editor, which
// provides tab completion and masked password entry. Otherwise lines are
// read with a buffered reader and hidden reads are refused.
type Console struct {
	in    io.Reader
	out   io.Writer
	theme Theme
	tty   *os.File

	reader    *bufio.Reader
	editor    *readline.Instance
	completer *completer
}

// NewConsole creates a console with sensible defaults
func NewConsole(opts *Options) *Console {
	if opts == nil {
		opts = &Options{}
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	palette := DefaultPalette()
	if opts.Palette != nil {
		palette = *opts.Palette
	}

	c := &Console{
		in:        in,
		out:       out,
		theme:     NewTheme(lipgloss.NewRenderer(out), palette),
		completer: &completer{},
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.tty = f
	}
	return c
}

// MaskRune is echoed for each key typed at a hidden prompt on a terminal.
const MaskRune = '*'

// Interactive reports whether the console reads from a terminal.
func (c *Console) Interactive() bool {
	return c.tty != nil
}

// WriteLine renders spans and writes them followed by a newline.
func (c *Console) WriteLine(spans ...Span) error {
	_, err := fmt.Fprintln(c.out, c.theme.Render(spans...))
	return err
}

// ReadLine reads one line of input.
func (c *Console) ReadLine(r Read) (string, error) {
	if c.tty != nil {
		return c.readEditor(r)
	}
	return c.readBuffered(r)
}

// Close releases the line editor, if one was started.
func (c *Console) Close() error {
	if c.editor == nil {
		return nil
	}
	err := c.editor.Close()
	c.editor = nil
	return err
}

func (c *Console) readEditor(r Read) (string, error) {
	if c.editor == nil {
		editor, err := readline.NewEx(&readline.Config{
			AutoComplete:           c.completer,
			Stdin:                  c.tty,
			Stdout:                 c.out,
			Stderr:                 c.out,
			DisableAutoSaveHistory: true,
			FuncIsTerminal:         func() bool { return true },
		})
		if err != nil {
			return "", fmt.Errorf("failed to start line editor: %w", err)
		}
		c.editor = editor
	}

	prompt := c.theme.Render(Styled(StyleMarker, r.Marker))

	if !r.Echo {
		secret, err := c.editor.ReadPasswordWithConfig(maskedConfig(c.editor.GenPasswordConfig(), prompt))
		if err != nil {
			return "", mapEditorError(err)
		}
		return string(secret), nil
	}

	c.completer.set(r.Completions)
	defer c.completer.set(nil)

	c.editor.SetPrompt(prompt)
	line, err := c.editor.Readline()
	if err != nil {
		return "", mapEditorError(err)
	}
	return line, nil
}

func (c *Console) readBuffered(r Read) (string, error) {
	if !r.Echo {
		return "", fmt.Errorf("%w: input is not a terminal", ErrEchoUnsupported)
	}

	if c.reader == nil {
		c.reader = bufio.NewReader(c.in)
	}

	if _, err := fmt.Fprint(c.out, c.theme.Render(Styled(StyleMarker, r.Marker))); err != nil {
		return "", err
	}

	line, err := c.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) {
		// Keep the transcript readable when input is piped
		fmt.Fprintln(c.out)
		if line == "" {
			return "", io.EOF
		}
	}

	line = strings.TrimRight(line, "\r\n")
	return applyErasures(line), nil
}

// applyErasures applies backspace and delete bytes that some terminals
// send through to a line-buffered reader.
// maskedConfig prepares a password read that echoes one MaskRune per key.
func maskedConfig(cfg *readline.Config, prompt string) *readline.Config {
	cfg.Prompt = prompt
	cfg.EnableMask = true
	cfg.MaskRune = MaskRune
	return cfg
}

func applyErasures(input string) string {
	if !strings.ContainsAny(input, "\b\x7f") {
		return input
	}
	normalized := make([]rune, 0, len(input))
	for _, r := range input {
		switch r {
		case '\b', '\x7f':
			if len(normalized) > 0 {
				normalized = normalized[:len(normalized)-1]
			}
		default:
			normalized = append(normalized, r)
		}
	}
	return string(normalized)
}

func mapEditorError(err error) error {
	if errors.Is(err, readline.ErrInterrupt) {
		return ErrInterrupted
	}
	return err
}

// completer offers the completions of the read in progress.
type completer struct {
	current readline.AutoCompleter
}

func (c *completer) set(words []string) {
	if len(words) == 0 {
		c.current = nil
		return
	}
	items := make([]readline.PrefixCompleterInterface, 0, len(words))
	for _, w := range words {
		items = append(items, readline.PcItem(w))
	}
	c.current = readline.NewPrefixCompleter(items...)
}

// Do implements readline.AutoCompleter
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	if c.current == nil {
		return nil, 0
	}
	return c.current.Do(line, pos)
}
