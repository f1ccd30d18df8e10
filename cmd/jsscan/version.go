package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version can be overridden at build time via -ldflags.
var version = "0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the jsscan version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "jsscan %s\n", version)
		return nil
	},
}
