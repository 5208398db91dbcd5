// Package main is the entry point for the tfcost CLI.
package main

import (
	"os"

	"tfcost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
