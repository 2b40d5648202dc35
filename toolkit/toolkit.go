package toolkit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Toolkit is the top-level registry of Parent tools. It generates the
// description and schema a model needs and routes requests to parents.
type Toolkit struct {
	parents map[string]Parent
	name    string
}

// Entry pairs a child with the parent it is registered under.
type Entry struct {
	Parent Parent
	Child  Child
}

// New creates a Toolkit. Nil parents are skipped; a duplicate parent name
// replaces the earlier one.
//
// Example:
//
//	web := toolkit.NewParent("web", "Web access", searchChild)
//	tk := toolkit.New("agent_tools", web)
func New(name string, parents ...Parent) *Toolkit {
	parentMap := make(map[string]Parent, len(parents))
	for _, p := range parents {
		if p == nil {
			slog.Warn("nil parent provided to toolkit.New, skipping", "toolkit", name)
			continue
		}
		if _, exists := parentMap[p.GetName()]; exists {
			slog.Warn("duplicate parent name, overwriting", "toolkit", name, "parent", p.GetName())
		}
		parentMap[p.GetName()] = p
	}

	return &Toolkit{
		parents: parentMap,
		name:    name,
	}
}

// GetToolkitName returns the configured name of the toolkit instance.
func (t *Toolkit) GetToolkitName() string {
	return t.name
}

// GetToolkitSchema returns the request schema for the given provider.
// Only "anthropic" is known; other providers get the same schema.
func (t *Toolkit) GetToolkitSchema(provider string) interface{} {
	switch provider {
	case "anthropic":
		return GetToolKitSchemaForAnthropic()
	default:
		slog.Warn("unsupported schema provider, defaulting to anthropic", "provider", provider)
		return GetToolKitSchemaForAnthropic()
	}
}

// Children lists every registered child sorted by parent then child name.
func (t *Toolkit) Children() []Entry {
	var entries []Entry
	for _, p := range t.sortedParents() {
		for _, c := range sortedChildren(p) {
			entries = append(entries, Entry{Parent: p, Child: c})
		}
	}
	return entries
}

// GetToolkitDescription renders the toolkit as an XML-like listing of
// parents, children and input schemas for a model prompt. Output order is
// stable.
func (t *Toolkit) GetToolkitDescription() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("In this environment, you have access to the following <toolkit name=\"%s\">:\n", t.name))
	sb.WriteString("A <toolkit> is a collection of <parents>, a <parent> is a collection of <childs>.\n")
	sb.WriteString("Below is the list of available <parents> and their <childs>:\n")

	for _, parent := range t.sortedParents() {
		sb.WriteString(fmt.Sprintf("<parent name=\"%s\" description=\"%s\">\n", parent.GetName(), parent.GetDescription()))
		for _, child := range sortedChildren(parent) {
			schemaStr := "schema_error"
			schemaBytes, err := json.Marshal(child.GetInputSchema())
			if err == nil {
				schemaStr = string(schemaBytes)
			} else {
				slog.Error("marshaling child schema", "parent", parent.GetName(), "child", child.GetName(), "err", err)
			}
			sb.WriteString(fmt.Sprintf("<child name=\"%s\" description=\"%s\"><input_schema>%s</input_schema></child>\n", child.GetName(), child.GetDescription(), schemaStr))
		}
		sb.WriteString("</parent>\n")
	}
	sb.WriteString("**NOTE**: A child tool cannot be invoked directly, it must be addressed through its parent.\n")
	sb.WriteString("</toolkit>")

	return sb.String()
}

// --- Processing Methods ---

// HandleToolKit parses a raw ToolKit request and runs it. Unknown parents and
// failing children produce error entries in the response; only a malformed
// request or one without parents returns an error.
func (t *Toolkit) HandleToolKit(ctx context.Context, input json.RawMessage) (ToolKitResponse, error) {
	var request ToolKit
	if err := json.Unmarshal(input, &request); err != nil {
		err = fmt.Errorf("error unmarshaling toolkit JSON input: %w", err)
		slog.ErrorContext(ctx, "parsing toolkit input", "err", err)
		return ToolKitResponse{
			Name: "toolkit_request_parse_error",
			Responses: []ParentResponse{
				{
					Name: "_parse_error",
					ChildsResponses: []ChildResponse{
						{Name: "_input_error", Response: NewError(string(KindInvalidInputJSON), err.Error())},
					},
				},
			},
		}, err
	}

	response := ToolKitResponse{Name: t.name}
	if len(request.ToolKitParents) == 0 {
		return response, NewError(string(KindNoParents), "No toolkit parents specified in the request")
	}

	for _, parentReq := range request.ToolKitParents {
		parent, ok := t.parents[parentReq.Name]
		if !ok {
			slog.WarnContext(ctx, "requested parent not found", "parent", parentReq.Name)
			response.AddResponse(ParentResponse{
				Name: parentReq.Name,
				ChildsResponses: []ChildResponse{
					{Name: "_parent_error", Response: NewError(string(KindParentNotFound), fmt.Sprintf("Parent toolkit '%s' not registered", parentReq.Name))},
				},
			})
			continue
		}
		response.AddResponse(parent.HandleChildren(ctx, parentReq.ToolKitChilds))
	}

	return response, nil
}

// Call runs a single child directly, bypassing the request envelope.
func (t *Toolkit) Call(ctx context.Context, parentName, childName string, args json.RawMessage) (interface{}, error) {
	parent, ok := t.parents[parentName]
	if !ok {
		return nil, NewError(string(KindParentNotFound), fmt.Sprintf("Parent toolkit '%s' not registered", parentName))
	}
	child, ok := parent.GetChildren()[childName]
	if !ok {
		return nil, NewError(string(KindChildNotFound), fmt.Sprintf("Child tool '%s' not found in parent '%s'", childName, parentName))
	}
	return child.Handle(ctx, args)
}

func (t *Toolkit) sortedParents() []Parent {
	parents := make([]Parent, 0, len(t.parents))
	for _, p := range t.parents {
		parents = append(parents, p)
	}
	sort.Slice(parents, func(i, j int) bool { return parents[i].GetName() < parents[j].GetName() })
	return parents
}

func sortedChildren(p Parent) []Child {
	children := make([]Child, 0, len(p.GetChildren()))
	for _, c := range p.GetChildren() {
		children = append(children, c)
	}
	sort.Slice(children, func(i, j int) bool { return children[i].GetName() < children[j].GetName() })
	return children
}
