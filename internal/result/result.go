// Package result builds the envelopes returned by every Protect tool.
//
// All tool handlers answer with a *mcp.CallToolResult, never a Go error:
// failures are reported to the client as error-flagged text so the model can
// read the reason and react, rather than the call failing at the protocol
// level.
package result

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ErrorPrefix starts the text of every error envelope.
const ErrorPrefix = "Error: "

// Preview is the dry-run response. Field order is part of the output.
type Preview struct {
	DryRun bool   `json:"dryRun"`
	Action string `json:"action"`
	Path   string `json:"path"`
	Body   any    `json:"body,omitempty"`
}

// MarshalJSON pretty-prints v with two-space indentation.
func MarshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// Success serialises v as pretty-printed JSON in a text envelope.
//
// Remote payloads arrive as json.RawMessage so their key order survives the
// round trip; Go values marshal in struct field order.
func Success(v any) *mcp.CallToolResult {
	data, err := MarshalJSON(v)
	if err != nil {
		return Error(fmt.Errorf("encode response: %w", err))
	}
	return mcp.NewToolResultText(string(data))
}

// Image wraps binary image data as base64 image content.
func Image(data []byte, mimeType string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewImageContent(base64.StdEncoding.EncodeToString(data), mimeType),
		},
	}
}

// Error returns an error-flagged envelope whose text is "Error: " followed by
// the message of v. Errors contribute Error(); anything else is formatted
// with fmt.Sprint. A nil value still yields an envelope.
func Error(v any) *mcp.CallToolResult {
	var msg string
	switch e := v.(type) {
	case error:
		msg = e.Error()
	case nil:
		msg = "unknown error"
	default:
		msg = fmt.Sprint(e)
	}
	return mcp.NewToolResultError(ErrorPrefix + msg)
}

// DryRun describes the request an operation would make without making it.
// body is omitted from the preview when nil.
func DryRun(method, path string, body any) *mcp.CallToolResult {
	return Success(Preview{DryRun: true, Action: method, Path: path, Body: body})
}

// Text returns the concatenated text content of r. Non-text content is
// skipped. Used by logging and tests to inspect envelopes.
func Text(r *mcp.CallToolResult) string {
	if r == nil {
		return ""
	}
	var s string
	for _, c := range r.Content {
		if tc, ok := mcp.AsTextContent(c); ok {
			s += tc.Text
		}
	}
	return s
}
