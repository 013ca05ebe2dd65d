package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var verboseMode bool

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Printer writes styled status lines to one writer.
type Printer struct {
	out io.Writer

	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	stepStyle    lipgloss.Style
}

// New creates a printer whose styles match what w can display.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		out:          w,
		successStyle: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		infoStyle:    r.NewStyle().Foreground(lipgloss.Color("6")),
		stepStyle:    r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Success prints a success message with 🔥 emoji and green color.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, p.successStyle.Render("🔥 "+msg))
}

// Error prints an error message with ❌ emoji and red color.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.out, p.errorStyle.Render("❌ "+msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.out, p.infoStyle.Render("ℹ️  "+msg))
}

// Step prints an indented step message in gray.
func (p *Printer) Step(msg string) {
	fmt.Fprintln(p.out, p.stepStyle.Render("   "+msg))
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
func (p *Printer) Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(p.out, p.stepStyle.Render("🔍 "+msg))
	}
}

var std = New(os.Stdout)

// Success prints a success message to stdout.
//
// Example:
//
//	output.Success("Saved 3 hosts")
func Success(msg string) { std.Success(msg) }

// Error prints an error message to stdout.
func Error(msg string) { std.Error(msg) }

// Info prints an informational message to stdout.
func Info(msg string) { std.Info(msg) }

// Step prints an indented step message to stdout.
func Step(msg string) { std.Step(msg) }

// Verbose prints a debug message to stdout if verbose mode is enabled.
func Verbose(msg string) { std.Verbose(msg) }
