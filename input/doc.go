// Package input asks the user questions over a line-based terminal channel.
//
// # Overview
//
// All tools in the Firebird Suite use this package when they need an answer
// from the user: a confirmation, a line of text, a secret, a pick from a
// list of options, or an editable list of values.
//
// # Usage
//
// Create a Prompter over a terminal.Channel and call the ask operations:
//
//	console := terminal.NewConsole(nil)
//	defer console.Close()
//	p := input.New(console, nil)
//
//	// Ask for text input with a default
//	modulePath, err := p.Text("Module path", "github.com/username/myapp", nil, validate.Required())
//
//	// Ask yes/no question
//	ok, err := p.Confirm("Continue?", true)
//
//	// Pick one option, or several
//	driver, err := p.Choice("Database", []string{"postgres", "sqlite", "none"}, 0, "")
//	features, err := p.Choices("Features", []string{"auth", "realtime", "jobs"}, nil, "")
//
//	// Let the user add, edit and delete entries
//	hosts, err := p.List("Allowed hosts", "Host", []string{"localhost"})
//
// # Validation
//
// Every answer is trimmed, replaced by the default when empty, then checked
// against the question's validate.Rule. A rejected answer prints the reason
// and asks again, up to Options.MaxAttempts times; after that the operation
// fails with ErrTooManyAttempts.
//
// # List Editing
//
// List shows the current entries numbered from 1 and reads one command:
//
//	Allowed hosts
//	  1. localhost
//	Item number, (a)dd or (c)ontinue
//	>
//
// "a" asks for a new entry, "c" finishes and returns the list, and an item
// number selects that entry for (e)dit, (d)elete or back to the (l)ist.
// Empty answers to the add and edit questions leave the list unchanged.
//
// # Testing
//
// Prompts are testable without a terminal by scripting the answers:
//
//	script := terminal.NewScript("", "Bob")
//	name, err := input.New(script, nil).Text("Name", "", nil, validate.Required())
//	// name == "Bob", script.Lines holds the transcript
package input
