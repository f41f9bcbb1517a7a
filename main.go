// Package main is the entrypoint for the ninja CLI.
// It delegates all command handling to the cmd package.
package main

import (
	"os"

	"github.com/s4cindia/ninja-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
