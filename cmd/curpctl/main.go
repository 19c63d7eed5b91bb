package main

import (
	"os"

	"curpcheck/cmd/curpctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
