// Package main is the entry point for the decomment CLI.
package main

import (
	"os"

	"github.com/jmylchreest/decomment/cmd/decomment/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
