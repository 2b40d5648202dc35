// Package mcpserver exposes toolkit children as Model Context Protocol tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hamzaessahbaoui/agent-tools/toolkit"
)

// New builds an MCP server with one tool per toolkit child, named after the
// child. Results are always text content; tool failures are never reported
// with IsError because the text already describes them.
func New(tk *toolkit.Toolkit, version string, logger *slog.Logger) (*mcp.Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    tk.GetToolkitName(),
		Version: version,
	}, nil)

	seen := make(map[string]string)
	for _, e := range tk.Children() {
		name := e.Child.GetName()
		if owner, dup := seen[name]; dup {
			return nil, fmt.Errorf("tool %q registered by both %q and %q", name, owner, e.Parent.GetName())
		}
		seen[name] = e.Parent.GetName()

		schema, err := convertSchema(e.Child.GetInputSchema())
		if err != nil {
			return nil, fmt.Errorf("converting input schema of %q: %w", name, err)
		}
		server.AddTool(&mcp.Tool{
			Name:        name,
			Description: e.Child.GetDescription(),
			InputSchema: schema,
		}, handler(e.Child, logger))
		logger.Debug("mcp tool registered", "tool", name, "parent", e.Parent.GetName())
	}
	return server, nil
}

// Serve runs the server over stdin/stdout until ctx is done or the client
// disconnects.
func Serve(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

func handler(child toolkit.Child, logger *slog.Logger) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args json.RawMessage
		if req.Params != nil {
			args = req.Params.Arguments
		}
		logger.DebugContext(ctx, "mcp tool call", "tool", child.GetName())
		result, err := child.Handle(ctx, args)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: render(result, err)}},
		}, nil
	}
}

// render turns whatever a child produced into text.
func render(result interface{}, err error) string {
	if err != nil {
		return toolkit.Text("", err)
	}
	if s, ok := result.(string); ok {
		return s
	}
	b, mErr := json.Marshal(result)
	if mErr != nil {
		return toolkit.Text("", toolkit.Fail(toolkit.KindUnexpected, "An unexpected error occurred: %v", mErr))
	}
	return string(b)
}

// convertSchema re-decodes a reflected invopop schema into the schema type
// the MCP SDK expects.
func convertSchema(in interface{}) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	var out jsonschema.Schema
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	out.Schema = ""
	out.ID = ""
	if out.Type == "" {
		out.Type = "object"
	}
	return &out, nil
}
