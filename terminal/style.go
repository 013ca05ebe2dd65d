package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the foreground color of each style. Colors are anything
// lipgloss.Color accepts ("6", "240", "#ff5f87"); an empty color leaves
// the text uncolored.
type Palette struct {
	Question string `mapstructure:"question" yaml:"question" toml:"question"`
	Hint     string `mapstructure:"hint" yaml:"hint" toml:"hint"`
	Marker   string `mapstructure:"marker" yaml:"marker" toml:"marker"`
	Error    string `mapstructure:"error" yaml:"error" toml:"error"`
	Title    string `mapstructure:"title" yaml:"title" toml:"title"`
}

// DefaultPalette returns the colors used across the Firebird Suite.
func DefaultPalette() Palette {
	return Palette{
		Question: "6",
		Hint:     "240",
		Marker:   "205",
		Error:    "1",
		Title:    "15",
	}
}

// Theme renders spans for one output.
type Theme struct {
	styles map[Style]lipgloss.Style
}

// NewTheme builds a theme for the given renderer. The renderer decides the
// color profile, so a theme bound to a pipe or file renders plain text.
func NewTheme(r *lipgloss.Renderer, p Palette) Theme {
	style := func(color string, bold bool) lipgloss.Style {
		s := r.NewStyle().Bold(bold)
		if color != "" {
			s = s.Foreground(lipgloss.Color(color))
		}
		return s
	}

	return Theme{
		styles: map[Style]lipgloss.Style{
			StylePlain:    r.NewStyle(),
			StyleQuestion: style(p.Question, true),
			StyleHint:     style(p.Hint, false),
			StyleMarker:   style(p.Marker, true),
			StyleError:    style(p.Error, true),
			StyleTitle:    style(p.Title, true),
		},
	}
}

// Render renders spans into a single string.
func (t Theme) Render(spans ...Span) string {
	var b strings.Builder
	for _, span := range spans {
		if span.Text == "" {
			continue
		}
		s, ok := t.styles[span.Style]
		if !ok {
			b.WriteString(span.Text)
			continue
		}
		b.WriteString(s.Render(span.Text))
	}
	return b.String()
}
