// Package cli provides the command-line interface for the envdoc tool.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute creates and runs the root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:   "envdoc",
		Short: "Environment variable documentation tools",
	}

	rootCmd.AddCommand(newGenerateCommand())

	return rootCmd.Execute()
}
