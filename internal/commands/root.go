package commands

import (
	"errors"
	"fmt"

	"github.com/simonhull/firebird-suite/warbler"
	"github.com/simonhull/firebird-suite/warbler/config"
	"github.com/simonhull/firebird-suite/warbler/input"
	"github.com/simonhull/firebird-suite/warbler/logger"
	"github.com/simonhull/firebird-suite/warbler/output"
	"github.com/simonhull/firebird-suite/warbler/terminal"
	"github.com/spf13/cobra"
)

// ErrDeclined is returned by confirm when the user answers no.
// main turns it into exit status 1 without printing anything.
var ErrDeclined = errors.New("declined")

// RootCmd creates and returns the root command for the warbler CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "warbler",
		Short: "Ask questions from shell scripts",
		Long: `Warbler asks the user a question on the terminal and prints the answer.

Prompts are written to stderr and answers to stdout, so scripts can capture them:
  name=$(warbler ask "Project name" --required)
  warbler confirm "Deploy to production?" || exit 1
  hosts=$(warbler list "Allowed hosts" --item-prompt Host)

Learn more: https://github.com/simonhull/firebird-suite`,
		Version:       warbler.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
			if verbose {
				logger.SetDefault(logger.NewLogger(logger.LevelDebug, cmd.ErrOrStderr()))
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().String("config", "", "Path to config file (default: ./warbler.yml)")

	return cmd
}

// All returns the root command with every subcommand registered.
func All() *cobra.Command {
	root := RootCmd()
	root.AddCommand(ConfirmCmd())
	root.AddCommand(AskCmd())
	root.AddCommand(SecretCmd())
	root.AddCommand(ChooseCmd())
	root.AddCommand(ListCmd())
	root.AddCommand(ConfigCmd())
	return root
}

// newPrompter builds a prompter over the command's stdin and stderr,
// configured from the --config file. The caller closes the console.
func newPrompter(cmd *cobra.Command) (*input.Prompter, *terminal.Console, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	output.New(cmd.ErrOrStderr()).Verbose(fmt.Sprintf("Loaded config (max attempts %d, marker %q)", cfg.MaxAttempts, cfg.Marker))

	console := terminal.NewConsole(&terminal.Options{
		In:      cmd.InOrStdin(),
		Out:     cmd.ErrOrStderr(),
		Palette: &cfg.Theme,
	})
	logger.Debug("console ready",
		logger.F("command", cmd.Name()),
		logger.F("interactive", console.Interactive()),
	)

	p := input.New(console, &input.Options{
		MaxAttempts: cfg.MaxAttempts,
		Marker:      cfg.Marker,
		Logger:      logger.Default(),
	})

	return p, console, nil
}
