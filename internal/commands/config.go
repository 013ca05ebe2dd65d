package commands

import (
	"fmt"
	"os"

	"github.com/simonhull/firebird-suite/warbler/config"
	"github.com/simonhull/firebird-suite/warbler/output"
	"github.com/spf13/cobra"
)

// ConfigCmd creates the 'config' command group
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the warbler config file",
	}

	cmd.AddCommand(configInitCmd())

	return cmd
}

func configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write a config file with the default settings",
		Long: `Writes the default settings to PATH (default: ./warbler.yml) so they can be edited.
A PATH ending in .toml is written as TOML.

Example:
  warbler config init
  warbler config init ~/.config/warbler/warbler.yml
  warbler config init warbler.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName
			if len(args) == 1 {
				path = args[0]
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			if err := config.Write(path, config.Default()); err != nil {
				return err
			}

			printer := output.New(cmd.OutOrStdout())
			printer.Success("Created " + path)
			printer.Step(fmt.Sprintf("Environment variables override it, e.g. %s_MAX_ATTEMPTS=3", config.EnvPrefix))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
