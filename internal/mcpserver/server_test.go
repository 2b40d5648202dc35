package mcpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamzaessahbaoui/agent-tools/toolkit"
)

type echoArgs struct {
	Text string `json:"text" jsonschema:"required,description=Text to echo."`
}

func (a *echoArgs) Validate() error {
	if a.Text == "" {
		return toolkit.Fail(toolkit.KindInvalidInput, "text must not be empty")
	}
	return nil
}

func testToolkit() *toolkit.Toolkit {
	echo := toolkit.NewTextChild[echoArgs]("echo", "Echoes text.", func(ctx context.Context, args echoArgs) string {
		return "echo: " + args.Text
	})
	broken := toolkit.NewChild[echoArgs]("broken", "Always fails.", func(ctx context.Context, args echoArgs) (interface{}, error) {
		return nil, errors.New("boom")
	})
	structured := toolkit.NewChild[echoArgs]("structured", "Returns a struct.", func(ctx context.Context, args echoArgs) (interface{}, error) {
		return map[string]string{"text": args.Text}, nil
	})
	return toolkit.New("test_tools",
		toolkit.NewParent("util", "Utilities", echo, structured),
		toolkit.NewParent("faulty", "Faulty tools", broken),
	)
}

func connect(t *testing.T, tk *toolkit.Toolkit) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server, err := New(tk, "test", nil)
	require.NoError(t, err)

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	_, err = server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func callText(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) string {
	t.Helper()
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	assert.False(t, res.IsError)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestServer_ListsEveryChild(t *testing.T) {
	session := connect(t, testToolkit())

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"echo", "broken", "structured"}, names)
}

func TestServer_CallsReturnText(t *testing.T) {
	session := connect(t, testToolkit())

	assert.Equal(t, "echo: hi", callText(t, session, "echo", map[string]any{"text": "hi"}))
	assert.Equal(t, "text must not be empty", callText(t, session, "echo", map[string]any{}))
	assert.Equal(t, "broken: boom", callText(t, session, "broken", map[string]any{"text": "x"}))
	assert.JSONEq(t, `{"text":"x"}`, callText(t, session, "structured", map[string]any{"text": "x"}))
}

func TestNew_RejectsDuplicateToolNames(t *testing.T) {
	child := toolkit.NewTextChild[echoArgs]("echo", "Echoes text.", func(ctx context.Context, args echoArgs) string { return args.Text })
	tk := toolkit.New("dup", toolkit.NewParent("a", "A", child), toolkit.NewParent("b", "B", child))

	_, err := New(tk, "test", nil)

	assert.Error(t, err)
}

func TestConvertSchema(t *testing.T) {
	schema, err := convertSchema(toolkit.GenerateSchema[echoArgs]())

	require.NoError(t, err)
	assert.Equal(t, "object", schema.Type)
	assert.Contains(t, schema.Properties, "text")
	assert.Equal(t, []string{"text"}, schema.Required)
}
