// Package main provides the entry point for the topsis CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rankworks/topsis/internal/cli"
	"github.com/rankworks/topsis/internal/logger"
)

func main() {
	logger.Init()

	if err := cli.Execute(); err != nil {
		// One-line message on stdout, no stack trace.
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
