// Package main provides the entry point for the deepsearch CLI.
package main

import (
	"os"

	"github.com/deepsearch-ai/deepsearch/cmd/deepsearch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
