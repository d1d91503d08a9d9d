// invoke.go implements the handler contract shared by every operation:
// guard, dry-run short-circuit, one outbound call, envelope.

package catalog

import (
	"context"

	"github.com/jpl-au/protect-mcp/internal/result"
	"github.com/jpl-au/protect-mcp/internal/safety"
	"github.com/jpl-au/protect-mcp/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
)

// Trace records what an invocation did, for logging.
type Trace struct {
	Path   string // resolved path, empty if resolution failed
	DryRun bool   // a preview was returned
	Denied bool   // the confirmation guard refused the call
	Called bool   // the requester was invoked
	Err    error  // failure reported in the envelope, if any
}

// uploadPreview stands in for a binary body in dry-run output.
type uploadPreview struct {
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}

// Invoke runs op with already-validated args. It never returns a nil result
// and never panics on missing arguments; every failure is an error envelope.
//
// The outbound call is detached from ctx cancellation: a client that goes
// away mid-call does not abort a request the console may already be acting
// on. Timeouts belong to the requester.
func (op *Operation) Invoke(ctx context.Context, r Requester, args map[string]any) (*mcp.CallToolResult, Trace) {
	var tr Trace
	fail := func(err error) (*mcp.CallToolResult, Trace) {
		tr.Err = err
		return result.Error(err), tr
	}

	if op.HasParam(ParamConfirm) {
		if denied := safety.RequireConfirmation(args[ParamConfirm], op.Action); denied != nil {
			tr.Denied = true
			tr.Err = ErrNotConfirmed
			return denied, tr
		}
	}

	path, err := Resolve(op.Path, args)
	if err != nil {
		return fail(err)
	}
	tr.Path = path

	var body any
	if op.Body != "" {
		body = args[op.Body]
	}

	var upload []byte
	contentType := ""
	if op.Kind == KindUpload {
		upload, err = validate.Base64(stringArg(args, ParamBase64Data))
		if err != nil {
			return fail(err)
		}
		contentType = stringArg(args, ParamContentType)
		if contentType == "" {
			p, _ := op.Param(ParamContentType)
			contentType = p.Default
		}
		body = uploadPreview{ContentType: contentType, Size: len(upload)}
	}

	if op.HasParam(ParamDryRun) && boolArg(args, ParamDryRun) {
		tr.DryRun = true
		return result.DryRun(op.Method, path, body), tr
	}

	ctx = context.WithoutCancel(ctx)
	tr.Called = true

	switch op.Kind {
	case KindImage:
		bin, err := r.GetBinary(ctx, path)
		if err != nil {
			return fail(err)
		}
		return result.Image(bin.Data, bin.MIMEType), tr
	case KindUpload:
		data, err := r.PostBinary(ctx, path, upload, contentType)
		if err != nil {
			return fail(err)
		}
		return op.success(args, data), tr
	default:
		data, err := r.Do(ctx, op.Method, path, body)
		if err != nil {
			return fail(err)
		}
		return op.success(args, data), tr
	}
}

func (op *Operation) success(args map[string]any, data any) *mcp.CallToolResult {
	if op.Reply != nil {
		return result.Success(op.Reply(args))
	}
	return result.Success(data)
}

func stringArg(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

func boolArg(args map[string]any, name string) bool {
	b, _ := args[name].(bool)
	return b
}
