// Package safety classifies Protect operations and provides the guards each
// class must carry before it is allowed to reach the network.
//
// Every operation belongs to exactly one Class. The class decides the MCP
// annotation hints advertised to clients, whether the operation can be
// installed in read-only mode, and which guards (confirmation, dry-run) the
// operation is expected to expose.
//
//	Class        readOnlyHint  destructiveHint  Guard
//	ReadOnly     true          false            none
//	Write        false         false            dry-run preview
//	Destructive  false         true             confirm: true and/or dry-run
package safety

import (
	"errors"
	"fmt"

	"github.com/jpl-au/protect-mcp/internal/result"
	"github.com/mark3labs/mcp-go/mcp"
)

// ErrUnknownClass is returned by Parse for an unrecognised class name.
var ErrUnknownClass = errors.New("unknown safety class")

// Class is the safety classification of an operation.
type Class int

const (
	// ReadOnly operations only fetch state and are installed in every mode.
	ReadOnly Class = iota
	// Write operations change remote state in a recoverable way.
	Write
	// Destructive operations are irreversible or fire external side effects.
	Destructive
)

// Classes lists every class in declaration order.
var Classes = []Class{ReadOnly, Write, Destructive}

// Hints is the pair of MCP annotation hints carried by a class.
type Hints struct {
	ReadOnly    bool
	Destructive bool
}

// Hints returns the annotation hints for c.
func (c Class) Hints() Hints {
	switch c {
	case ReadOnly:
		return Hints{ReadOnly: true, Destructive: false}
	case Destructive:
		return Hints{ReadOnly: false, Destructive: true}
	default:
		return Hints{ReadOnly: false, Destructive: false}
	}
}

// RequiresConfirmation reports whether operations of this class may demand
// an explicit confirm: true before executing.
func (c Class) RequiresConfirmation() bool {
	return c == Destructive
}

// SupportsDryRun reports whether operations of this class honour dryRun.
func (c Class) SupportsDryRun() bool {
	return c == Write || c == Destructive
}

// String returns the lower-case class name used in CLI output and logs.
func (c Class) String() string {
	switch c {
	case ReadOnly:
		return "read-only"
	case Write:
		return "write"
	case Destructive:
		return "destructive"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Parse converts a class name back into a Class.
func Parse(s string) (Class, error) {
	for _, c := range Classes {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: read-only, write, destructive)", ErrUnknownClass, s)
}

// Annotations returns the mcp-go tool options describing c.
//
// Every Protect operation talks to an external system, so openWorldHint is
// always set. Reads are idempotent; writes are not assumed to be.
func (c Class) Annotations() []mcp.ToolOption {
	h := c.Hints()
	return []mcp.ToolOption{
		mcp.WithReadOnlyHintAnnotation(h.ReadOnly),
		mcp.WithDestructiveHintAnnotation(h.Destructive),
		mcp.WithIdempotentHintAnnotation(c == ReadOnly),
		mcp.WithOpenWorldHintAnnotation(true),
	}
}

// RequireConfirmation returns an error result unless confirm is exactly the
// boolean true. A nil return means the caller may proceed; a non-nil return
// must be handed back to the client without performing the operation.
//
// The check is strict on type: "true", 1 and other truthy values are refused.
func RequireConfirmation(confirm any, action string) *mcp.CallToolResult {
	if v, ok := confirm.(bool); ok && v {
		return nil
	}
	return result.Error(fmt.Errorf("you must set confirm to true to %s", action))
}
