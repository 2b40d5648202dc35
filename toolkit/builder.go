package toolkit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// HandlerFunc is the typed body of a child tool.
type HandlerFunc[T any] func(ctx context.Context, args T) (interface{}, error)

// TextHandlerFunc is the body of a tool whose every outcome is a string.
type TextHandlerFunc[T any] func(ctx context.Context, args T) string

type child[T any] struct {
	name        string
	description string
	schema      interface{}
	handler     HandlerFunc[T]
}

// NewChild builds a Child whose arguments decode into T. The input schema is
// reflected from T once, at construction.
func NewChild[T any](name, description string, handler HandlerFunc[T]) Child {
	return &child[T]{
		name:        name,
		description: description,
		schema:      GenerateSchema[T](),
		handler:     handler,
	}
}

// NewTextChild builds a Child for tools that report failures as text. Argument
// errors are rendered as strings too, so Handle never returns an error.
func NewTextChild[T any](name, description string, handler TextHandlerFunc[T]) Child {
	c := &child[T]{
		name:        name,
		description: description,
		schema:      GenerateSchema[T](),
	}
	c.handler = func(ctx context.Context, args T) (interface{}, error) {
		return handler(ctx, args), nil
	}
	return &textChild[T]{child: c}
}

func (c *child[T]) GetName() string             { return c.name }
func (c *child[T]) GetDescription() string      { return c.description }
func (c *child[T]) GetInputSchema() interface{} { return c.schema }

func (c *child[T]) Handle(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	args, err := decodeArgs[T](raw)
	if err != nil {
		return nil, err
	}
	result, err := c.handler(ctx, args)
	if err != nil {
		var tkErr ToolKitError
		if errors.As(err, &tkErr) {
			return nil, tkErr
		}
		return nil, NewError(string(KindHandlerError), fmt.Sprintf("%s: %v", c.name, err))
	}
	return result, nil
}

type textChild[T any] struct {
	*child[T]
}

func (c *textChild[T]) Handle(ctx context.Context, raw json.RawMessage) (interface{}, error) {
	args, err := decodeArgs[T](raw)
	if err != nil {
		slog.WarnContext(ctx, "rejected tool arguments", "tool", c.name, "err", err)
		return Text("", err), nil
	}
	return c.handler(ctx, args)
}

// decodeArgs unmarshals raw into T, then applies defaults and validation when
// T supports them.
func decodeArgs[T any](raw json.RawMessage) (T, error) {
	var args T
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &args); err != nil {
			return args, NewError(string(KindInvalidArguments), fmt.Sprintf("Invalid tool arguments: %v", err))
		}
	}
	if d, ok := any(&args).(Defaulter); ok {
		d.ApplyDefaults()
	}
	if v, ok := any(&args).(Validator); ok {
		if err := v.Validate(); err != nil {
			var tkErr ToolKitError
			if errors.As(err, &tkErr) {
				return args, tkErr
			}
			return args, NewError(string(KindInvalidArguments), err.Error())
		}
	}
	return args, nil
}

type parent struct {
	name        string
	description string
	children    map[string]Child
}

// NewParent groups children under a name. Nil children are skipped; a
// duplicate name replaces the earlier child.
func NewParent(name, description string, children ...Child) Parent {
	m := make(map[string]Child, len(children))
	for _, c := range children {
		if c == nil {
			continue
		}
		if _, exists := m[c.GetName()]; exists {
			slog.Warn("duplicate child name, overwriting", "parent", name, "child", c.GetName())
		}
		m[c.GetName()] = c
	}
	return &parent{name: name, description: description, children: m}
}

func (p *parent) GetName() string               { return p.name }
func (p *parent) GetDescription() string        { return p.description }
func (p *parent) GetChildren() map[string]Child { return p.children }

func (p *parent) HandleChildren(ctx context.Context, childRequests []ToolKitChild) ParentResponse {
	resp := ParentResponse{Name: p.name}
	for _, req := range childRequests {
		c, ok := p.children[req.Name]
		if !ok {
			resp.AddResponse(ChildResponse{
				Name:     req.Name,
				Response: NewError(string(KindChildNotFound), fmt.Sprintf("Child tool '%s' not found in parent '%s'", req.Name, p.name)),
			})
			continue
		}
		result, err := c.Handle(ctx, req.Args)
		if err != nil {
			resp.AddResponse(ChildResponse{Name: req.Name, Response: err})
			continue
		}
		resp.AddResponse(ChildResponse{Name: req.Name, Response: result})
	}
	return resp
}
