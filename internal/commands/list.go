package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ListCmd creates the 'list' command
func ListCmd() *cobra.Command {
	var (
		itemPrompt string
		from       string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "list TITLE",
		Short: "Edit a list of values",
		Long: `Shows a list and lets the user add, edit and delete items until they continue.
The final list is printed one item per line, or as a YAML sequence with --format yaml.

Example:
  warbler list "Allowed hosts" --item-prompt Host
  warbler list "Tags" --from tags.yml --format yaml > tags.yml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "lines" && format != "yaml" {
				return fmt.Errorf("unknown format %q (expected lines or yaml)", format)
			}

			var initial []string
			if from != "" {
				values, err := readList(from)
				if err != nil {
					return err
				}
				initial = values
			}

			p, console, err := newPrompter(cmd)
			if err != nil {
				return err
			}
			defer console.Close()

			values, err := p.List(args[0], itemPrompt, initial)
			if err != nil {
				return err
			}

			if format == "yaml" {
				return writeYAMLList(cmd, values)
			}
			return printLines(cmd.OutOrStdout(), values)
		},
	}

	cmd.Flags().StringVar(&itemPrompt, "item-prompt", "Item", "Question asked when adding or editing an item")
	cmd.Flags().StringVar(&from, "from", "", "YAML file holding the initial list")
	cmd.Flags().StringVar(&format, "format", "lines", "Output format: lines or yaml")

	return cmd
}

// readList loads a YAML sequence of strings.
func readList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read list: %w", err)
	}

	var values []string
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse list %s: %w", path, err)
	}
	return values, nil
}

func writeYAMLList(cmd *cobra.Command, values []string) error {
	if values == nil {
		values = []string{}
	}
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal list: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
