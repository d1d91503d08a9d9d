// Package mcp implements the Model Context Protocol server, exposing the
// UniFi Protect integration API to LLMs as a fixed set of tools.
//
// The operator chooses the trust mode at startup. Read-only mode (the
// default) installs only the tools that fetch state; read-write mode adds
// the write and destructive tools, each still guarded by dry-run previews
// or an explicit confirm: true.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jpl-au/protect-mcp/internal/catalog"
	"github.com/jpl-au/protect-mcp/internal/client"
	"github.com/jpl-au/protect-mcp/internal/config"
	"github.com/jpl-au/protect-mcp/internal/log"
	"github.com/jpl-au/protect-mcp/internal/version"
	"github.com/mark3labs/mcp-go/server"
)

// Name is the server name advertised to clients.
const Name = "unifi-protect"

// NewServer builds an MCP server with the catalog installed for cfg's mode
// and the guide resources registered. It returns the installed tool names.
func NewServer(cfg *config.Config, req catalog.Requester) (*server.MCPServer, []string, error) {
	s := server.NewMCPServer(
		Name,
		version.Short(),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithRecovery(),
	)

	names, err := Register(s, catalog.Default(), cfg.ReadOnly, req)
	if err != nil {
		return nil, nil, fmt.Errorf("register tools: %w", err)
	}
	registerResources(s)
	return s, names, nil
}

// Serve starts the MCP server over stdio and blocks until ctx is cancelled
// or stdin closes. stdout is reserved for JSON-RPC; logs go to stderr.
func Serve(ctx context.Context, cfg *config.Config) error {
	logger := log.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	if cfg.AuditEnabled() {
		if err := log.Open(cfg.Log.Audit); err != nil {
			slog.Warn("audit log unavailable", "path", cfg.Log.Audit, "error", err)
		} else {
			log.SetInstance(cfg.Host)
			defer log.Close()
		}
	}

	c := client.New(cfg)
	s, names, err := NewServer(cfg, c)
	if err != nil {
		slog.Error("failed to build server", "error", err)
		return err
	}

	mode := "read-write"
	if cfg.ReadOnly {
		mode = "read-only"
	}
	slog.Info("protect MCP server ready",
		"version", version.Short(),
		"transport", "stdio",
		"host", cfg.Host,
		"mode", mode,
		"tools", len(names),
	)

	stdio := server.NewStdioServer(s)
	err = stdio.Listen(ctx, os.Stdin, os.Stdout)
	if err == nil || errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}
