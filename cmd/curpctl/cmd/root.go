// Package cmd implements the curpctl command tree.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errInvalid signals that at least one analysed CURP was rejected. The
// verdict has already been printed, so it only drives the exit status.
var errInvalid = errors.New("one or more CURPs are invalid")

// NewRootCommand builds the curpctl command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "curpctl",
		Short: "Offline CURP validation",
		Long: `curpctl validates Mexican CURP identifiers without network access.

It checks the 18-character shape, decodes the embedded fields and
verifies that the birth date exists in the calendar.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAnalyzeCommand(), newEntitiesCommand(), newVersionCommand())
	return root
}

// Execute runs the root command.
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil && !errors.Is(err, errInvalid) {
		printError(root, err)
	}
	return err
}

func printError(c *cobra.Command, err error) {
	fmt.Fprintf(c.ErrOrStderr(), "error: %v\n", err)
}
