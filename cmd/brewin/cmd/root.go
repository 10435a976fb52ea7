package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"
)

var rootCmd = &cobra.Command{
	Use:     "brewin",
	Short:   "Brewin interpreter",
	Long:    `brewin runs programs for the Brewin teaching language: a small statically-named, dynamically typed imperative language with lazy function arguments and struct types.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
