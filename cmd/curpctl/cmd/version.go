package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X curpcheck/cmd/curpctl/cmd.Version=...".
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(c *cobra.Command, _ []string) {
			out := c.OutOrStdout()
			fmt.Fprintf(out, "curpctl v%s\n", Version)
			fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
			fmt.Fprintf(out, "  Build Date: %s\n", BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
