package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	curphandler "curpcheck/internal/curp/handler"
	"curpcheck/pkg/curp"
)

func newAnalyzeCommand() *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "analyze CURP...",
		Short: "Validate and decode one or more CURPs",
		Example: `  curpctl analyze GOMJ800101HDFNNS09
  curpctl analyze --json gomj800101hdfnns09 XXXX991301MDFABC01`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			out := c.OutOrStdout()
			results := make([]curp.Result, 0, len(args))
			invalid := false
			for _, arg := range args {
				res := curp.Analyze(curp.Normalize(arg))
				if !res.Verdict.Valid() {
					invalid = true
				}
				results = append(results, res)
			}

			var err error
			if asJSON {
				err = writeJSON(out, results)
			} else {
				err = writeTables(out, results)
			}
			if err != nil {
				return err
			}
			if invalid {
				return errInvalid
			}
			return nil
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print the HTTP response shape instead of a table")
	return c
}

func writeJSON(w io.Writer, results []curp.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(results) == 1 {
		return enc.Encode(curphandler.FromResult(results[0]))
	}
	return enc.Encode(curphandler.FromResults(results))
}

func writeTables(w io.Writer, results []curp.Result) error {
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", res.Input)
		if len(res.Fields) > 0 {
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			for _, f := range res.Fields {
				fmt.Fprintf(tw, "  %s\t%s\n", f.Value, f.Label)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "%s\n", res.Verdict.Message)
	}
	return nil
}
