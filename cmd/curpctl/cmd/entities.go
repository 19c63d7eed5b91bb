package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"curpcheck/pkg/curp"
)

func newEntitiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "entities",
		Short: "List the birth entity codes",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(c.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, e := range curp.Entities() {
				fmt.Fprintf(tw, "%s\t%s\n", e.Code, e.Name)
			}
			return tw.Flush()
		},
	}
}
