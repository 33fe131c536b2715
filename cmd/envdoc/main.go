// Package main provides the envdoc documentation generator CLI.
package main

import (
	"os"

	"github.com/MarcinKonowalczyk/environ-get/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
