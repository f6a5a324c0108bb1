// Package main provides the attrenum binary. It reads enum definitions from a
// YAML file and writes typed Go helpers for them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "attrenum"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Generate enumerated attribute helpers",
		Long: `attrenum generates helpers for attributes restricted to a closed set
of values: a choice constant, one predicate per choice, bun query scopes
and an ozzo-validation method.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(genCmd(&verbose))
	cmd.AddCommand(inspectCmd(&verbose))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}
