// Package terminal is the line-based input/output channel prompts are asked over.
//
// # Overview
//
// A Channel writes styled lines and reads one line at a time. The input
// package only talks to a Channel, so the same prompts run against a real
// terminal (Console) or a scripted conversation in tests (Script).
//
//	console := terminal.NewConsole(nil) // stdin + stderr
//	defer console.Close()
//
//	console.WriteLine(
//	    terminal.Styled(terminal.StyleQuestion, "Module path"),
//	    terminal.Styled(terminal.StyleHint, " (github.com/username/myapp)"),
//	)
//	answer, err := console.ReadLine(terminal.Read{Marker: "> ", Echo: true})
//
// # Styling
//
// Lines are built from Spans, each tagged with a Style. The Console renders
// them through a lipgloss renderer bound to its writer, so colors appear on
// an interactive terminal and plain text everywhere else:
//   - Question: cyan bold
//   - Hint: gray
//   - Marker: pink
//   - Error: red bold
//   - Title: white bold
//
// # Hidden Input
//
// Reads with Echo set to false must not show what is typed. A Console that
// is not attached to a terminal cannot guarantee that and returns
// ErrEchoUnsupported instead of reading the secret in the clear.
package terminal
