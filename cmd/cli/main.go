// Package main is the entry point for the chiller-payback CLI.
package main

import (
	"os"

	"chiller-payback/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
