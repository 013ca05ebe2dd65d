// Package output provides styled status lines for the warbler CLI.
//
// # Overview
//
// Prompts go through the input package; output is for everything a command
// reports around them: results, failures, next steps and debug notes.
//
// # Usage
//
//	output.Success("Saved 3 hosts")
//	output.Info("Next steps:")
//	output.Step("warbler list Hosts --from hosts.yml")
//	output.Error("config: max_attempts must be at least 1")
//
// Commands that keep stdout clean for results print to stderr instead:
//
//	out := output.New(os.Stderr)
//	out.Error("interactive prompt interrupted")
//
// # Verbose Mode
//
//	output.SetVerbose(true)
//	output.Verbose("This only prints in verbose mode")
//
// # Styling
//
// Styles are rendered for the writer they are printed to, so piping output
// into a file yields plain text:
//
//   - Success: 🔥 green bold
//   - Error: ❌ red bold
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
package output
