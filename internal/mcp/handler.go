// handler.go wraps catalog operations as mcp-go tool handlers.
//
// Every invocation is validated against the tool's own schema, run through
// Operation.Invoke, and recorded twice: one slog line on stderr and one row
// in the audit log, correlated by a request id. Handlers never return a Go
// error; failures reach the client as error envelopes.

package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jpl-au/protect-mcp/internal/catalog"
	"github.com/jpl-au/protect-mcp/internal/log"
	"github.com/jpl-au/protect-mcp/internal/result"
	"github.com/jpl-au/protect-mcp/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func handle(op *catalog.Operation, schema *validate.Schema, req catalog.Requester) server.ToolHandlerFunc {
	return func(ctx context.Context, call mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		id := uuid.NewString()
		args := arguments(call)

		var (
			res *mcp.CallToolResult
			tr  catalog.Trace
		)
		if err := schema.Args(args); err != nil {
			tr.Err = err
			res = result.Error(err)
		} else {
			res, tr = op.Invoke(ctx, req, args)
		}

		record(ctx, op, id, tr, time.Since(start))
		return res, nil
	}
}

// arguments returns the call's argument object. Anything other than a JSON
// object is treated as no arguments and left for schema validation to reject
// where parameters are required.
func arguments(call mcp.CallToolRequest) map[string]any {
	args, ok := call.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	return args
}

func record(ctx context.Context, op *catalog.Operation, id string, tr catalog.Trace, d time.Duration) {
	attrs := []slog.Attr{
		slog.String("tool", op.Name),
		slog.String("class", op.Class.String()),
		slog.String("method", op.Method),
		slog.String("path", tr.Path),
		slog.Bool("dry_run", tr.DryRun),
		slog.Duration("duration", d),
		slog.String("request_id", id),
	}
	level := slog.LevelInfo
	if tr.Err != nil {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", tr.Err.Error()))
	}
	slog.LogAttrs(ctx, level, "tool call", attrs...)

	log.Event("mcp:"+op.Name, op.Class.String()).
		RequestID(id).
		Method(op.Method).
		Path(tr.Path).
		DryRun(tr.DryRun).
		Denied(tr.Denied).
		Detail("duration_ms", d.Milliseconds()).
		Detail("called", tr.Called).
		Write(tr.Err)
}
