/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// The command tree is built by newRootCmd rather than held in a package
// variable, so each test run starts from fresh flag state.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "protect-mcp",
		Short: "MCP server for the UniFi Protect integration API",
		Long: `An MCP (Model Context Protocol) server exposing UniFi Protect cameras,
devices, live views and files as tools, with read-only mode, dry-run previews
and explicit confirmation for destructive actions.`,
		SilenceUsage: true,
		Run: func(c *cobra.Command, _ []string) {
			_ = c.Help()
		},
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			if output != "" && !slices.Contains(validOutputFormats, output) {
				return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
			}
			return nil
		},
	}

	bindFlags(root)
	root.AddCommand(
		newServeCmd(),
		newToolsCmd(),
		newConfigCmd(),
		newGuideCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command. Exit code 1 indicates error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
