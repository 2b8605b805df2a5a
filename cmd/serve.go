package cmd

import (
	"fmt"
	"time"

	"github.com/mj1618/dockyard/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing dockyard tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the layout
operations as tools: show, list, open, close, dock, undock, focus, drag,
validate, render and do. The layout file is saved after every change unless
--no-save is set.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  dockyard serve --layout editor.xml
  dockyard serve --transport streamable-http --port 8080
  dockyard serve --cache-ttl 0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 500, "Render cache TTL in milliseconds (0 to disable)")
	serveCmd.Flags().Bool("no-save", false, "Keep changes in memory instead of saving the layout file")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")
	noSave, _ := cmd.Flags().GetBool("no-save")

	ws, err := openWorkspace(cmd)
	if err != nil {
		return fmt.Errorf("failed to open layout: %w", err)
	}

	cfg := server.Config{
		Transport: transport,
		Port:      port,
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
		AutoSave:  !noSave,
	}
	return server.New(ws, cfg, logger).Serve(cfg)
}
