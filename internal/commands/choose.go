package commands

import (
	"fmt"

	"github.com/simonhull/firebird-suite/warbler/input"
	"github.com/spf13/cobra"
)

// ChooseCmd creates the 'choose' command
func ChooseCmd() *cobra.Command {
	var (
		defaults    []int
		multiple    bool
		errTemplate string
	)

	cmd := &cobra.Command{
		Use:   "choose MESSAGE OPTION...",
		Short: "Pick one or more options",
		Long: `Lists the options with their keys and prints the selection, one per line.
The user may type an option or its key; with --multiple, several separated by commas.

Example:
  warbler choose "Database" postgres sqlite none --default 0
  warbler choose "Features" auth jobs realtime --multiple --error "%s is not a feature"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, options := args[0], args[1:]

			if !multiple && len(defaults) > 1 {
				return fmt.Errorf("--default accepts several keys only with --multiple")
			}

			p, console, err := newPrompter(cmd)
			if err != nil {
				return err
			}
			defer console.Close()

			if multiple {
				selected, err := p.Choices(message, options, defaults, errTemplate)
				if err != nil {
					return err
				}
				return printLines(cmd.OutOrStdout(), selected)
			}

			def := input.NoDefault
			if len(defaults) == 1 {
				def = defaults[0]
			}
			selected, err := p.Choice(message, options, def, errTemplate)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), []string{selected})
		},
	}

	cmd.Flags().IntSliceVar(&defaults, "default", nil, "Key(s) of the option(s) used when the user just presses Enter")
	cmd.Flags().BoolVar(&multiple, "multiple", false, "Allow several comma-separated options")
	cmd.Flags().StringVar(&errTemplate, "error", "", `Message for unknown options, %s is replaced by the answer (default "Value \"%s\" is invalid.")`)

	return cmd
}
