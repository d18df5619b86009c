// Package main is the entry point for the maple CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/maple/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
