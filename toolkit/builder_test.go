package toolkit_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamzaessahbaoui/agent-tools/toolkit"
)

type greetArgs struct {
	Name  string `json:"name" jsonschema:"required,description=Who to greet."`
	Times int    `json:"times,omitempty" jsonschema:"description=Repetitions.,default=1"`
}

func (a *greetArgs) ApplyDefaults() {
	if a.Times == 0 {
		a.Times = 1
	}
}

func (a *greetArgs) Validate() error {
	if a.Name == "" {
		return toolkit.Fail(toolkit.KindInvalidInput, "Invalid name: must not be empty")
	}
	if a.Times < 0 {
		return fmt.Errorf("times must be positive, got %d", a.Times)
	}
	return nil
}

func greetChild(t *testing.T, name string, shouldErr bool) toolkit.Child {
	t.Helper()
	return toolkit.NewChild[greetArgs](name, "desc_"+name, func(ctx context.Context, args greetArgs) (interface{}, error) {
		if shouldErr {
			return nil, fmt.Errorf("child_err_%s", name)
		}
		return fmt.Sprintf("hello %s x%d", args.Name, args.Times), nil
	})
}

func TestNewChild_Metadata(t *testing.T) {
	child := greetChild(t, "greet", false)

	assert.Equal(t, "greet", child.GetName())
	assert.Equal(t, "desc_greet", child.GetDescription())
	raw, err := json.Marshal(child.GetInputSchema())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"required":["name"]`)
	assert.Contains(t, string(raw), `"default":1`)
}

func TestNewChild_Handle(t *testing.T) {
	tests := []struct {
		name     string
		child    toolkit.Child
		args     string
		want     interface{}
		wantCode string
	}{
		{name: "defaults applied", child: greetChild(t, "g", false), args: `{"name":"ada"}`, want: "hello ada x1"},
		{name: "explicit values", child: greetChild(t, "g", false), args: `{"name":"ada","times":3}`, want: "hello ada x3"},
		{name: "malformed json", child: greetChild(t, "g", false), args: `{"bad`, wantCode: "invalid_arguments"},
		{name: "wrong field type", child: greetChild(t, "g", false), args: `{"name":7}`, wantCode: "invalid_arguments"},
		{name: "tool validation keeps its kind", child: greetChild(t, "g", false), args: `{}`, wantCode: "invalid_input"},
		{name: "plain validation error", child: greetChild(t, "g", false), args: `{"name":"ada","times":-2}`, wantCode: "invalid_arguments"},
		{name: "handler error", child: greetChild(t, "g", true), args: `{"name":"ada"}`, wantCode: "handler_execution_error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.child.Handle(context.Background(), json.RawMessage(tc.args))
			if tc.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.want, result)
				return
			}
			var tkErr toolkit.ToolKitError
			require.True(t, errors.As(err, &tkErr), "expected ToolKitError, got %T", err)
			assert.Equal(t, tc.wantCode, tkErr.Code)
			assert.Nil(t, result)
		})
	}
}

func TestNewTextChild_AlwaysReturnsText(t *testing.T) {
	calls := 0
	child := toolkit.NewTextChild[greetArgs]("greet_text", "desc", func(ctx context.Context, args greetArgs) string {
		calls++
		return "hi " + args.Name
	})

	result, err := child.Handle(context.Background(), json.RawMessage(`{"name":"bob"}`))
	require.NoError(t, err)
	assert.Equal(t, "hi bob", result)

	result, err = child.Handle(context.Background(), json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "Invalid name: must not be empty", result)

	result, err = child.Handle(context.Background(), json.RawMessage(`not json`))
	require.NoError(t, err)
	assert.Contains(t, result, "Invalid tool arguments")

	assert.Equal(t, 1, calls, "handler must not run when arguments are rejected")
}

func TestNewParent_HandleChildren(t *testing.T) {
	parent := toolkit.NewParent("p", "desc", greetChild(t, "ok", false), greetChild(t, "fails", true), nil)

	assert.Equal(t, "p", parent.GetName())
	assert.Len(t, parent.GetChildren(), 2)

	resp := parent.HandleChildren(context.Background(), []toolkit.ToolKitChild{
		{Name: "fails", Args: json.RawMessage(`{"name":"x"}`)},
		{Name: "missing", Args: json.RawMessage(`{}`)},
		{Name: "ok", Args: json.RawMessage(`{"name":"y"}`)},
	})

	require.Len(t, resp.ChildsResponses, 3)
	assert.Equal(t, "handler_execution_error", resp.ChildsResponses[0].Response.(toolkit.ToolKitError).Code)
	assert.Equal(t, "child_not_found", resp.ChildsResponses[1].Response.(toolkit.ToolKitError).Code)
	assert.Equal(t, "hello y x1", resp.ChildsResponses[2].Response)
}
