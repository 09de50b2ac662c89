// Package tool exposes the web_search and use_gemini MCP tools. Tool handlers
// validate arguments, resolve the model for the role, invoke the generation
// service and shape the JSON result. Classified failures are reported as
// tool-level errors with a structured payload so callers can tell
// re-authentication apart from upstream faults.
package tool

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/viant/gemini-mcp/gemini"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// Generator issues one generation request against the upstream API.
type Generator interface {
	Generate(ctx context.Context, model, prompt string, withSearch bool) (*gemini.Output, error)
}

// TextOutput is the plain generation result shape.
type TextOutput struct {
	Text string `json:"text"`
}

// Error kinds reported in tool-level error payloads.
const (
	errKindValidation     = "validation"
	errKindAuthentication = "authentication"
	errKindUpstream       = "upstream"
)

// jsonResult serializes output as both text content and structured content.
func jsonResult(output interface{}) (*schema.CallToolResult, *jsonrpc.Error) {
	data, err := json.Marshal(output)
	if err != nil {
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}
	structured := map[string]interface{}{}
	if err := json.Unmarshal(data, &structured); err != nil {
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}
	return &schema.CallToolResult{
		StructuredContent: structured,
		Content: []schema.CallToolResultContentElem{
			{Type: "text", Text: string(data)},
		},
	}, nil
}

// validationResult reports a rejected argument as a tool-level error; the
// request never reaches the upstream API.
func validationResult(argument, message string) *schema.CallToolResult {
	return errorResult(errKindValidation, message, map[string]interface{}{"argument": argument})
}

// classifiedResult reports a classified invocation failure as a tool-level
// error.
func classifiedResult(err error) *schema.CallToolResult {
	var authErr *gemini.AuthError
	if errors.As(err, &authErr) {
		return errorResult(errKindAuthentication, authErr.Message, nil)
	}
	var upstreamErr *gemini.UpstreamError
	if errors.As(err, &upstreamErr) {
		details := map[string]interface{}{}
		if upstreamErr.Code != 0 {
			details["code"] = upstreamErr.Code
			details["status"] = upstreamErr.Status
		}
		return errorResult(errKindUpstream, upstreamErr.Message, details)
	}
	return errorResult(errKindUpstream, err.Error(), nil)
}

func errorResult(kind, message string, details map[string]interface{}) *schema.CallToolResult {
	payload := map[string]interface{}{
		"kind":    kind,
		"message": message,
	}
	for key, value := range details {
		payload[key] = value
	}
	isError := true
	return &schema.CallToolResult{
		IsError:           &isError,
		StructuredContent: map[string]interface{}{"error": payload},
		Content: []schema.CallToolResultContentElem{
			{Type: "text", Text: message},
		},
	}
}
