package commands

import (
	"fmt"

	"github.com/simonhull/firebird-suite/warbler/terminal"
	"github.com/simonhull/firebird-suite/warbler/validate"
	"github.com/spf13/cobra"
)

// AskCmd creates the 'ask' command
func AskCmd() *cobra.Command {
	var (
		defaultValue string
		required     bool
		integer      bool
		float        bool
		pattern      string
		completions  []string
	)

	cmd := &cobra.Command{
		Use:   "ask MESSAGE",
		Short: "Ask for a line of text",
		Long: `Asks for a line of text and prints the answer.
Invalid answers are explained and asked again.

Example:
  warbler ask "HTTP port" --default 8080 --integer
  warbler ask "Environment" --complete dev,staging,prod --required`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule := validate.Always()
			switch {
			case required:
				rule = validate.Required()
			case integer:
				rule = validate.Integer()
			case float:
				rule = validate.Float()
			case pattern != "":
				r, err := validate.Pattern(pattern)
				if err != nil {
					return err
				}
				rule = r
			}

			p, console, err := newPrompter(cmd)
			if err != nil {
				return err
			}
			defer console.Close()

			answer, err := p.Text(args[0], defaultValue, completions, rule)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}

	cmd.Flags().StringVar(&defaultValue, "default", "", "Answer used when the user just presses Enter")
	cmd.Flags().BoolVar(&required, "required", false, "Reject empty answers")
	cmd.Flags().BoolVar(&integer, "integer", false, "Accept whole numbers only")
	cmd.Flags().BoolVar(&float, "float", false, "Accept numbers only")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Accept answers matching this regular expression")
	cmd.Flags().StringSliceVar(&completions, "complete", nil, "Values offered for tab completion")
	cmd.MarkFlagsMutuallyExclusive("required", "integer", "float", "pattern")

	return cmd
}

// SecretCmd creates the 'secret' command
func SecretCmd() *cobra.Command {
	var defaultValue string

	cmd := &cobra.Command{
		Use:   "secret MESSAGE",
		Short: "Ask for a value without echoing it",
		Long: `Asks for a secret such as a password and prints it.
Requires an interactive terminal: typed characters are never shown.

Example:
  DB_PASSWORD=$(warbler secret "Database password")`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, console, err := newPrompter(cmd)
			if err != nil {
				return err
			}
			defer console.Close()

			if !console.Interactive() {
				return fmt.Errorf("secret must be typed at a terminal, stdin is not one: %w", terminal.ErrEchoUnsupported)
			}

			secret, err := p.Hidden(args[0], defaultValue)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}

	cmd.Flags().StringVar(&defaultValue, "default", "", "Value used when the user just presses Enter (never displayed)")

	return cmd
}
