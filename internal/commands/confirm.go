package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ConfirmCmd creates the 'confirm' command
func ConfirmCmd() *cobra.Command {
	var defaultYes bool

	cmd := &cobra.Command{
		Use:   "confirm MESSAGE",
		Short: "Ask a yes/no question",
		Long: `Asks a yes/no question and prints "yes" or "no".
Exits with status 1 when the answer is no.

Example:
  warbler confirm "Run migrations?" --default`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, console, err := newPrompter(cmd)
			if err != nil {
				return err
			}
			defer console.Close()

			ok, err := p.Confirm(args[0], defaultYes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no")
				return ErrDeclined
			}
			fmt.Fprintln(cmd.OutOrStdout(), "yes")
			return nil
		},
	}

	cmd.Flags().BoolVar(&defaultYes, "default", false, "Answer yes when the user just presses Enter")

	return cmd
}
