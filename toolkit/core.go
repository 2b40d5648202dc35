// Package toolkit provides a hierarchical tool orchestration framework for AI-powered applications.
// It lets a host declare tools with typed arguments, publish their schemas to a model,
// and execute the model's requests with every failure turned into a response value.
//
// Core concepts:
//   - Toolkit: the top-level container that manages multiple Parent tools
//   - Parent: a namespace of related Child tools
//   - Child: an individual tool with typed args and a single call entry point
//
// This file defines the interfaces that Parent, Child and argument types satisfy.
package toolkit

import (
	"context"
	"encoding/json"
)

// Parent represents a category of related tools (Children).
type Parent interface {
	// GetName returns the unique name of the parent within a toolkit.
	GetName() string

	// GetDescription provides a human-readable description of the parent's purpose.
	GetDescription() string

	// GetChildren returns the child tools keyed by name.
	GetChildren() map[string]Child

	// HandleChildren runs the requested children in order. A failing child
	// produces an error response in its slot and does not stop the others.
	HandleChildren(ctx context.Context, childRequests []ToolKitChild) ParentResponse
}

// Child represents an individual tool.
type Child interface {
	// GetName returns the unique name of the child tool within its parent.
	GetName() string

	// GetDescription provides a human-readable description of what the tool does.
	GetDescription() string

	// GetInputSchema returns the JSON schema of the tool arguments.
	GetInputSchema() interface{}

	// Handle decodes args into the tool's argument type and executes it.
	Handle(ctx context.Context, args json.RawMessage) (interface{}, error)
}

// Defaulter is implemented by argument types that fill in omitted optional
// fields after decoding.
type Defaulter interface {
	ApplyDefaults()
}

// Validator is implemented by argument types that check their own shape
// before the tool body runs.
type Validator interface {
	Validate() error
}
