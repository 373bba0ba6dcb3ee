package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for transcriptctl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcriptctl",
		Short: "Run the transcript parsers against local files",
		Long: `transcriptctl runs the wage-and-income, account transcript and tax
investigation parsers against local files, printing the parsed output as
JSON. Use it to debug extraction problems without the REST service or the
case portal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewParseCmd())
	cmd.AddCommand(NewReconcileCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
