package commands

import (
	"fmt"
	"io"
	"strings"
)

// printLines writes each value on its own line.
func printLines(w io.Writer, values []string) error {
	if len(values) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, strings.Join(values, "\n"))
	return err
}
