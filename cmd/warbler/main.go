package main

import (
	"errors"
	"os"

	"github.com/simonhull/firebird-suite/warbler/internal/commands"
	"github.com/simonhull/firebird-suite/warbler/output"
)

func main() {
	rootCmd := commands.All()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, commands.ErrDeclined) {
			output.New(os.Stderr).Error(err.Error())
		}
		os.Exit(1)
	}
}
