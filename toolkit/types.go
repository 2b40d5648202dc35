// Package toolkit provides a hierarchical tool orchestration framework for AI-powered applications.
// This file defines the request/response envelopes, the error type shared by all tools,
// and schema generation.
package toolkit

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
)

// --- Core Toolkit Request/Response Structures ---

// ToolKit is the top-level request an AI model sends to invoke tools.
// Several parents and children can be addressed in one request.
type ToolKit struct {
	Name           string          `json:"name" jsonschema:"required,description=The name of the toolkit."`
	ToolKitParents []ToolKitParent `json:"parents" jsonschema:"required,description=The parent toolkits to execute within the toolkit."`
}

// ToolKitParent addresses one parent and the children to run under it.
type ToolKitParent struct {
	Name          string         `json:"name" jsonschema:"required,description=The name of the parent toolkit to execute."`
	ToolKitChilds []ToolKitChild `json:"childs" jsonschema:"required,description=The child tools to execute within this parent."`
}

// ToolKitChild names a child tool and carries its raw arguments. Decoding is
// left to the child so each tool owns its argument type.
type ToolKitChild struct {
	Name string          `json:"name" jsonschema:"required,description=The name of the child tool to execute."`
	Args json.RawMessage `json:"args" jsonschema:"required,description=The arguments for the child tool, as a JSON object."`
}

// ToolKitResponse mirrors the request hierarchy with one response per executed child.
type ToolKitResponse struct {
	Name      string           `json:"name"`
	Responses []ParentResponse `json:"responses,omitempty"`
}

// ParentResponse holds the child responses of one parent in request order.
type ParentResponse struct {
	Name            string          `json:"name"`
	ChildsResponses []ChildResponse `json:"childsResponses,omitempty"`
}

// ChildResponse is either the value a child returned or a ToolKitError.
type ChildResponse struct {
	Name     string      `json:"name"`
	Response interface{} `json:"response,omitempty"`
}

// AddResponse appends a ParentResponse.
func (tr *ToolKitResponse) AddResponse(pr ParentResponse) {
	tr.Responses = append(tr.Responses, pr)
}

// AddResponse appends a ChildResponse.
func (pr *ParentResponse) AddResponse(cr ChildResponse) {
	pr.ChildsResponses = append(pr.ChildsResponses, cr)
}

// --- Error Handling ---

// ErrorKind classifies why a tool call failed. It is carried in ToolKitError.Code.
type ErrorKind string

const (
	// Tool failure categories.
	KindConfigMissing ErrorKind = "configuration_missing"
	KindInvalidInput  ErrorKind = "invalid_input"
	KindConnectivity  ErrorKind = "connectivity_failure"
	KindOperation     ErrorKind = "operation_failure"
	KindMalformed     ErrorKind = "malformed_response"
	KindUnexpected    ErrorKind = "unexpected"

	// Framework failure categories.
	KindInvalidArguments ErrorKind = "invalid_arguments"
	KindHandlerError     ErrorKind = "handler_execution_error"
	KindChildNotFound    ErrorKind = "child_not_found"
	KindParentNotFound   ErrorKind = "parent_not_found"
	KindNoParents        ErrorKind = "no_toolkit_parents"
	KindInvalidInputJSON ErrorKind = "invalid_input_json"
)

// ToolKitError is the failure half of a tool result: a machine-readable code
// plus a message meant to be shown to the model as-is.
type ToolKitError struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}

// Error implements the error interface.
func (e ToolKitError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Kind returns the error code as an ErrorKind.
func (e ToolKitError) Kind() ErrorKind {
	return ErrorKind(e.Code)
}

// NewError creates a ToolKitError with the given code and message.
func NewError(code, message string) error {
	return ToolKitError{
		Code:    code,
		Message: message,
	}
}

// Fail creates a ToolKitError of the given kind with a formatted message.
func Fail(kind ErrorKind, format string, args ...any) error {
	return NewError(string(kind), fmt.Sprintf(format, args...))
}

// KindOf reports the ErrorKind of err. Errors that are not ToolKitErrors
// are classified as KindUnexpected; a nil error has no kind.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var tkErr ToolKitError
	if errors.As(err, &tkErr) {
		return tkErr.Kind()
	}
	return KindUnexpected
}

// --- Schema Generation Helper ---

// GenerateSchema reflects a JSON schema for T. `jsonschema` struct tags drive
// required fields, descriptions, enums and defaults.
//
// Example usage:
//
//	type MyArgs struct {
//	    Name string `json:"name" jsonschema:"required,description=The user's name"`
//	    Age  int    `json:"age" jsonschema:"description=The user's age in years"`
//	}
//	schema := GenerateSchema[MyArgs]()
func GenerateSchema[T any]() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	return reflector.Reflect(&v)
}

// GetToolKitSchemaForAnthropic returns the schema of the top-level ToolKit
// request in the shape Anthropic's tool registration expects.
func GetToolKitSchemaForAnthropic() interface{} {
	return GenerateSchema[ToolKit]()
}
