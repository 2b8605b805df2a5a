package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/dockyard/internal/workspace"
	"gopkg.in/yaml.v3"
)

// toText serializes a tool result to YAML for the MCP response.
func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	return string(b)
}

// persist saves the layout after a mutation when autosave is on. The caller
// must hold wsMu.
func (s *Server) persist() error {
	s.cache.InvalidateAll()
	if !s.autoSave {
		return nil
	}
	return s.ws.Save()
}

// writeActionHandler wraps a workspace step: locks the workspace, executes,
// invalidates the render cache and saves.
func (s *Server) writeActionHandler(request mcp.CallToolRequest, action string) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.wsMu.Lock()
	defer s.wsMu.Unlock()

	result, err := s.ws.Execute(action, params)
	if err != nil {
		result.OK = false
		result.Error = err.Error()
		return mcp.NewToolResultError(toText(result)), nil
	}
	result.OK = true

	if err := s.persist(); err != nil {
		result.Error = err.Error()
		return mcp.NewToolResultError(toText(result)), nil
	}
	s.log.Debug("tool executed", "tool", action, "window", result.Window)
	return mcp.NewToolResultText(toText(result)), nil
}

func (s *Server) handleShow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	flat := workspace.BoolParam(request.GetArguments(), "flat", false)

	s.wsMu.Lock()
	defer s.wsMu.Unlock()

	if flat {
		return mcp.NewToolResultText(toText(s.ws.ShowFlat())), nil
	}
	return mcp.NewToolResultText(toText(s.ws.Show())), nil
}

func (s *Server) handleList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	docked := workspace.BoolParam(params, "docked", false)
	floating := workspace.BoolParam(params, "floating", false)
	if docked && floating {
		return mcp.NewToolResultError("docked and floating are mutually exclusive"), nil
	}

	s.wsMu.Lock()
	defer s.wsMu.Unlock()

	return mcp.NewToolResultText(toText(s.ws.List(docked, floating))), nil
}

func (s *Server) handleOpen(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.writeActionHandler(request, "open")
}

func (s *Server) handleClose(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.writeActionHandler(request, "close")
}

func (s *Server) handleDock(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.writeActionHandler(request, "dock")
}

func (s *Server) handleUndock(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.writeActionHandler(request, "undock")
}

func (s *Server) handleFocus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.writeActionHandler(request, "focus")
}

func (s *Server) handleDrag(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.writeActionHandler(request, "drag")
}

func (s *Server) handleValidate(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.wsMu.Lock()
	defer s.wsMu.Unlock()

	res := s.ws.Validate()
	if !res.OK {
		return mcp.NewToolResultError(toText(res)), nil
	}
	return mcp.NewToolResultText(toText(res)), nil
}

func (s *Server) handleRender(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sidebar := workspace.BoolParam(request.GetArguments(), "sidebar", true)

	s.wsMu.Lock()
	defer s.wsMu.Unlock()

	data, err := s.cache.Render(sidebar, func() ([]byte, error) {
		var buf bytes.Buffer
		if err := s.ws.RenderPNG(&buf, sidebar); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.ImageContent{
				Type:     "image",
				Data:     base64.StdEncoding.EncodeToString(data),
				MIMEType: "image/png",
			},
		},
	}, nil
}

func (s *Server) handleDo(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	stopOnError := workspace.BoolParam(params, "stop-on-error", true)

	stepsRaw, ok := params["steps"]
	if !ok {
		return mcp.NewToolResultError("steps parameter is required"), nil
	}
	arr, ok := stepsRaw.([]interface{})
	if !ok {
		return mcp.NewToolResultError("steps must be an array"), nil
	}

	steps := make([]map[string]map[string]interface{}, 0, len(arr))
	for i, item := range arr {
		m, ok := item.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("step %d: each step must be an object", i+1)), nil
		}
		step := make(map[string]map[string]interface{}, len(m))
		for action, raw := range m {
			switch p := raw.(type) {
			case nil:
				step[action] = nil
			case map[string]interface{}:
				step[action] = p
			default:
				return mcp.NewToolResultError(fmt.Sprintf("step %d: parameters of %q must be an object", i+1, action)), nil
			}
		}
		steps = append(steps, step)
	}

	s.wsMu.Lock()
	defer s.wsMu.Unlock()

	res := s.ws.Run(steps, stopOnError)
	if res.Completed > 0 {
		if err := s.persist(); err != nil {
			res.OK = false
			res.Error = err.Error()
		}
	}
	return mcp.NewToolResultText(toText(res)), nil
}
