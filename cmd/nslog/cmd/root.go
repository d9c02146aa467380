// Package cmd implements the nslog command line tool.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the nslog command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nslog",
		Short: "Inspect namespace colours and try nslog output",
		Long: `nslog is a companion tool for the nslog logging package.

Commands:
  color      - show the colour a namespace renders in
  demo       - emit sample records with a given configuration
  stringify  - re-encode JSON from stdin with the cycle safe encoder`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newColorCmd(), newDemoCmd(), newStringifyCmd())
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		printError(root, err)
		return err
	}
	return nil
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "nslog: %v\n", err)
}
