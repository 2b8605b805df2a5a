// Package server exposes a workspace as Model Context Protocol tools.
package server

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/dockyard/internal/version"
	"github.com/mj1618/dockyard/internal/workspace"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
	// AutoSave writes the layout file after every successful mutation.
	AutoSave bool
}

// Server wraps the MCP server with the workspace it operates on. Tool calls
// are serialized on wsMu; the manager itself is not safe for concurrent use.
type Server struct {
	ws       *workspace.Workspace
	wsMu     sync.Mutex
	cache    *RenderCache
	autoSave bool
	log      *slog.Logger
	mcp      *mcpserver.MCPServer
}

// New creates and configures an MCP server with all dockyard tools.
func New(ws *workspace.Workspace, cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		ws:       ws,
		cache:    NewRenderCache(cfg.CacheTTL),
		autoSave: cfg.AutoSave && ws.Path != "",
		log:      logger,
	}
	s.mcp = mcpserver.NewMCPServer("dockyard", version.Version)
	s.registerTools()
	return s
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcpserver.MCPServer {
	return s.mcp
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	s.log.Info("mcp server starting", "transport", cfg.Transport, "layout", s.ws.Path)
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	// show
	s.mcp.AddTool(
		mcp.NewTool("show",
			mcp.WithDescription("Show the docking tree: split modes, ratios, tab groups and active tabs, plus the floating windows"),
			mcp.WithBoolean("flat", mcp.Description("Return a flat node list with paths instead of the nested tree")),
		),
		s.handleShow,
	)

	// list
	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List registered windows with their state, tree path, slot and bounds"),
			mcp.WithBoolean("docked", mcp.Description("Only docked windows")),
			mcp.WithBoolean("floating", mcp.Description("Only floating windows")),
		),
		s.handleList,
	)

	// open
	s.mcp.AddTool(
		mcp.NewTool("open",
			mcp.WithDescription("Open a window. It starts floating unless dock or target is given."),
			mcp.WithString("title", mcp.Description("Window title"), mcp.Required()),
			mcp.WithBoolean("dock", mcp.Description("Dock the window against the whole tree")),
			mcp.WithString("target", mcp.Description("Dock relative to this docked window")),
			mcp.WithString("dir", mcp.Description("Direction: center, left, right, top, bottom (default: center)")),
		),
		s.handleOpen,
	)

	// close
	s.mcp.AddTool(
		mcp.NewTool("close",
			mcp.WithDescription("Close a window and drop it from the registry"),
			mcp.WithString("title", mcp.Description("Window title"), mcp.Required()),
		),
		s.handleClose,
	)

	// dock
	s.mcp.AddTool(
		mcp.NewTool("dock",
			mcp.WithDescription("Dock a window relative to a docked target window, or against the whole tree when no target is given"),
			mcp.WithString("title", mcp.Description("Window to dock"), mcp.Required()),
			mcp.WithString("target", mcp.Description("Docked window to dock against")),
			mcp.WithString("dir", mcp.Description("Direction: center, left, right, top, bottom (default: center)")),
		),
		s.handleDock,
	)

	// undock
	s.mcp.AddTool(
		mcp.NewTool("undock",
			mcp.WithDescription("Make a docked window floating and collapse the emptied split"),
			mcp.WithString("title", mcp.Description("Window title"), mcp.Required()),
		),
		s.handleUndock,
	)

	// focus
	s.mcp.AddTool(
		mcp.NewTool("focus",
			mcp.WithDescription("Make a docked window the active tab of its group"),
			mcp.WithString("title", mcp.Description("Window title"), mcp.Required()),
		),
		s.handleFocus,
	)

	// drag
	s.mcp.AddTool(
		mcp.NewTool("drag",
			mcp.WithDescription("Drag a window and release it at a canvas point. Releasing over a drop button docks it there; otherwise it floats."),
			mcp.WithString("title", mcp.Description("Window title"), mcp.Required()),
			mcp.WithString("to", mcp.Description("Release point as x,y")),
			mcp.WithNumber("x", mcp.Description("Release X coordinate")),
			mcp.WithNumber("y", mcp.Description("Release Y coordinate")),
		),
		s.handleDrag,
	)

	// validate
	s.mcp.AddTool(
		mcp.NewTool("validate",
			mcp.WithDescription("Check the docking tree invariants and report violations"),
		),
		s.handleValidate,
	)

	// render
	s.mcp.AddTool(
		mcp.NewTool("render",
			mcp.WithDescription("Render the current layout to a PNG image"),
			mcp.WithBoolean("sidebar", mcp.Description("List floating windows in a sidebar (default: true)")),
		),
		s.handleRender,
	)

	// do (batch)
	s.mcp.AddTool(
		mcp.NewTool("do",
			mcp.WithDescription("Execute multiple layout steps in a batch. Each step is an object with one key: open, close, dock, undock, drag, split, focus, resize, render, save, load, validate"),
			mcp.WithArray("steps", mcp.Description("Array of step objects, e.g. {\"dock\": {\"title\": \"Console\", \"target\": \"Scene\", \"dir\": \"bottom\"}}"), mcp.Required()),
			mcp.WithBoolean("stop-on-error", mcp.Description("Stop on first error (default: true)")),
		),
		s.handleDo,
	)
}
