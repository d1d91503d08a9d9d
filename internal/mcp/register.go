// register.go installs catalog operations as MCP tools.
//
// The mode filter lives here: in read-only mode only ReadOnly operations
// are installed, so write and destructive tools are not merely refused but
// absent from the tool list a client sees.

package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/jpl-au/protect-mcp/internal/catalog"
	"github.com/jpl-au/protect-mcp/internal/safety"
	"github.com/jpl-au/protect-mcp/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolAdder receives tool registrations. *server.MCPServer satisfies it.
type ToolAdder interface {
	AddTool(tool mcp.Tool, handler server.ToolHandlerFunc)
}

var _ ToolAdder = (*server.MCPServer)(nil)

// Installed returns the operations that would be installed in the given
// mode, in catalog order.
func Installed(ops []*catalog.Operation, readOnly bool) []*catalog.Operation {
	var out []*catalog.Operation
	for _, op := range ops {
		if !readOnly || op.Class == safety.ReadOnly {
			out = append(out, op)
		}
	}
	return out
}

// Register checks the catalog and installs the operations allowed by the
// mode into s, each bound to req. It returns the installed tool names in
// order. Nothing is installed if the catalog fails its checks.
func Register(s ToolAdder, ops []*catalog.Operation, readOnly bool, req catalog.Requester) ([]string, error) {
	if err := catalog.Check(ops); err != nil {
		return nil, err
	}

	type entry struct {
		tool    mcp.Tool
		handler server.ToolHandlerFunc
	}
	var entries []entry
	for _, op := range Installed(ops, readOnly) {
		tool := BuildTool(op)
		schema, err := compile(tool)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{tool: tool, handler: handle(op, schema, req)})
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		s.AddTool(e.tool, e.handler)
		names = append(names, e.tool.Name)
	}
	return names, nil
}

// BuildTool derives the advertised MCP tool from op: description, title,
// safety annotations and input schema.
func BuildTool(op *catalog.Operation) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(op.Description),
		mcp.WithTitleAnnotation(op.Title),
	}
	opts = append(opts, op.Class.Annotations()...)
	for _, p := range op.Params {
		opts = append(opts, property(p))
	}
	return mcp.NewTool(op.Name, opts...)
}

func property(p catalog.Param) mcp.ToolOption {
	var popts []mcp.PropertyOption
	if p.Description != "" {
		popts = append(popts, mcp.Description(p.Description))
	}
	if p.Required {
		popts = append(popts, mcp.Required())
	}
	if p.Default != "" {
		popts = append(popts, mcp.DefaultString(p.Default))
	}
	if p.Literal != nil {
		popts = append(popts, constant(p.Literal))
	}

	switch p.Type {
	case catalog.Integer:
		popts = append(popts, integer())
		return mcp.WithNumber(p.Name, popts...)
	case catalog.Boolean:
		return mcp.WithBoolean(p.Name, popts...)
	case catalog.Object:
		return mcp.WithObject(p.Name, popts...)
	default:
		return mcp.WithString(p.Name, popts...)
	}
}

// integer narrows a number property to JSON Schema "integer".
func integer() mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["type"] = "integer"
	}
}

// constant restricts a property to a single value.
func constant(v any) mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["const"] = v
	}
}

// compile turns the schema advertised for tool into the validator used by
// its handler.
func compile(tool mcp.Tool) (*validate.Schema, error) {
	raw, err := json.Marshal(tool.InputSchema)
	if err != nil {
		return nil, fmt.Errorf("encode schema for %s: %w", tool.Name, err)
	}
	return validate.Compile(tool.Name, raw)
}
