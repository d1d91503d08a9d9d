/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// serve.go implements "protect-mcp serve". Unlike the other commands it
// blocks, handling MCP requests over stdio until stdin closes or the process
// is signalled.

package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jpl-au/protect-mcp/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio.

Read-only mode is the default. Set UNIFI_PROTECT_READ_ONLY=false to install
write and destructive tools as well:

  UNIFI_PROTECT_HOST=192.168.1.1 UNIFI_PROTECT_API_KEY=... protect-mcp serve`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(c *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcp.Serve(ctx, cfg)
}
