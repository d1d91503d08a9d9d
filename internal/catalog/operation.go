// Package catalog is the declarative table of every Protect operation exposed
// as an MCP tool.
//
// Each Operation records its name, HTTP verb, path template, parameters and
// safety class. The MCP layer derives the advertised schema and annotations
// from the same record that drives the guard behaviour in Invoke, so the two
// cannot disagree.
//
// Operation names and parameter names are a stable external contract. Do not
// rename them.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/jpl-au/protect-mcp/internal/client"
	"github.com/jpl-au/protect-mcp/internal/safety"
)

var (
	// ErrInvalidOperation is returned by Check for an operation that breaks
	// a catalog invariant.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrMissingParam is returned when a path placeholder has no value.
	ErrMissingParam = errors.New("missing parameter")
	// ErrOutOfRange is returned for an integral path value that does not
	// fit in an int64.
	ErrOutOfRange = errors.New("value out of range")
	// ErrNotConfirmed is recorded when the confirmation guard refuses a call.
	ErrNotConfirmed = errors.New("confirmation required")
)

// Parameter names shared across operations.
const (
	ParamID          = "id"
	ParamSettings    = "settings"
	ParamSlot        = "slot"
	ParamDryRun      = "dryRun"
	ParamConfirm     = "confirm"
	ParamFileType    = "fileType"
	ParamBase64Data  = "base64Data"
	ParamContentType = "contentType"
)

// Family groups operations by the resource they act on.
type Family string

const (
	FamilySystem   Family = "system"
	FamilyCamera   Family = "camera"
	FamilyDevice   Family = "device"
	FamilyLiveView Family = "liveview"
	FamilyFile     Family = "file"
)

// Families lists every family in catalog order.
var Families = []Family{FamilySystem, FamilyCamera, FamilyDevice, FamilyLiveView, FamilyFile}

// ParamType is the JSON type of a parameter.
type ParamType int

const (
	String ParamType = iota
	Integer
	Boolean
	Object
)

func (t ParamType) String() string {
	switch t {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Param describes one input parameter.
type Param struct {
	Name        string
	Type        ParamType
	Required    bool
	Description string
	// Literal, when set, is the only value the parameter accepts.
	Literal any
	// Default is advertised to clients and applied by the handler.
	Default string
}

// Kind selects how an operation talks to the API.
type Kind int

const (
	// KindJSON sends an optional JSON body and formats the JSON/text reply.
	KindJSON Kind = iota
	// KindImage fetches binary data and returns it as image content.
	KindImage
	// KindUpload decodes base64 input and posts it as a raw body.
	KindUpload
)

// Operation is one exposed tool.
type Operation struct {
	Name        string
	Title       string
	Description string
	Family      Family
	Method      string
	Path        string
	Class       safety.Class
	Params      []Param
	Kind        Kind

	// Body names the parameter sent as the JSON request body, if any.
	Body string
	// Action completes "you must set confirm to true to ..." for
	// operations that declare a confirm parameter.
	Action string
	// Reply, when set, replaces the remote payload in the success envelope.
	Reply func(args map[string]any) any
}

// Requester is the network collaborator operations call.
type Requester interface {
	Do(ctx context.Context, method, path string, body any) (any, error)
	GetBinary(ctx context.Context, path string) (*client.Binary, error)
	PostBinary(ctx context.Context, path string, data []byte, contentType string) (any, error)
}

// Param returns the named parameter.
func (op *Operation) Param(name string) (Param, bool) {
	for _, p := range op.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// HasParam reports whether op declares the named parameter.
func (op *Operation) HasParam(name string) bool {
	_, ok := op.Param(name)
	return ok
}

// Guard names the guard parameters op declares, e.g. "confirm", "dryRun",
// "confirm+dryRun", or "" for none.
func (op *Operation) Guard() string {
	var g []string
	if op.HasParam(ParamConfirm) {
		g = append(g, ParamConfirm)
	}
	if op.HasParam(ParamDryRun) {
		g = append(g, ParamDryRun)
	}
	return strings.Join(g, "+")
}

// Resolve substitutes {name} placeholders in template from args. Values are
// path-escaped so an identifier cannot introduce extra path segments.
func Resolve(template string, args map[string]any) (string, error) {
	var b strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("%w: unterminated placeholder in %s", ErrInvalidOperation, template)
		}
		name := rest[open+1 : open+end]
		v, err := segment(args[name])
		if err != nil {
			return "", fmt.Errorf("%w: %s", err, name)
		}
		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(v))
		rest = rest[open+end+1:]
	}
}

// segment renders a path value. JSON numbers decode as float64; integral
// values print without a fraction.
func segment(v any) (string, error) {
	switch t := v.(type) {
	case string:
		if t == "" {
			return "", ErrMissingParam
		}
		return t, nil
	case float64:
		if t != math.Trunc(t) {
			return "", ErrMissingParam
		}
		if t < math.MinInt64 || t >= math.MaxInt64 {
			return "", ErrOutOfRange
		}
		return strconv.FormatInt(int64(t), 10), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	default:
		return "", ErrMissingParam
	}
}

// placeholders returns the {name} placeholders of template in order.
func placeholders(template string) []string {
	var names []string
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			return names
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return names
		}
		names = append(names, rest[open+1:open+end])
		rest = rest[open+end+1:]
	}
}

// Check verifies the invariants the safety policy depends on. Registration
// refuses a catalog that fails it.
func Check(ops []*Operation) error {
	var errs []error
	seen := make(map[string]bool, len(ops))
	for _, op := range ops {
		if seen[op.Name] {
			errs = append(errs, fmt.Errorf("%w: duplicate name %s", ErrInvalidOperation, op.Name))
		}
		seen[op.Name] = true
		errs = append(errs, op.check()...)
	}
	return errors.Join(errs...)
}

func (op *Operation) check() []error {
	var errs []error
	fail := func(format string, a ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalidOperation, op.Name, fmt.Sprintf(format, a...)))
	}

	switch op.Method {
	case "GET", "POST", "PATCH", "DELETE":
	default:
		fail("unsupported method %q", op.Method)
	}

	for _, name := range placeholders(op.Path) {
		p, ok := op.Param(name)
		if !ok || !p.Required || (p.Type != String && p.Type != Integer) {
			fail("placeholder {%s} is not bound to a required string or integer parameter", name)
		}
	}

	confirm, hasConfirm := op.Param(ParamConfirm)
	dryRun, hasDryRun := op.Param(ParamDryRun)

	switch op.Class {
	case safety.ReadOnly:
		if hasConfirm || hasDryRun {
			fail("read-only operation declares a guard parameter")
		}
		if op.Method != "GET" {
			fail("read-only operation uses %s", op.Method)
		}
	case safety.Write, safety.Destructive:
		if !hasConfirm && !hasDryRun {
			fail("%s operation declares neither confirm nor dryRun", op.Class)
		}
	default:
		fail("unknown class %d", int(op.Class))
	}

	if op.Class == safety.Destructive && op.Family == FamilyDevice {
		fail("device operations cannot be destructive")
	}
	if hasConfirm {
		if confirm.Type != Boolean || !confirm.Required || confirm.Literal != true {
			fail("confirm must be a required boolean constrained to true")
		}
		if op.Action == "" {
			fail("confirm declared without an action description")
		}
	}
	if hasDryRun && (dryRun.Type != Boolean || dryRun.Required) {
		fail("dryRun must be an optional boolean")
	}
	if op.Body != "" && !op.HasParam(op.Body) {
		fail("body parameter %s is not declared", op.Body)
	}
	return errs
}
