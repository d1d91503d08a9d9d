// Package log provides the audit trail for protect-mcp tool invocations.
// Entries are stored in a SQLite database (by default
// ~/.protect-mcp/log/audit.db) and record every call the MCP server handles,
// including calls refused by validation or the confirmation guard.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("mcp:protect_get_camera", "read-only").
//		RequestID(id).
//		Method("GET").
//		Path("/cameras/abc").
//		Write(err)
//
//	log.Event("mcp:protect_update_light", "write").
//		RequestID(id).
//		DryRun(true).
//		Detail("duration_ms", 3).
//		Write(nil)
//
// The source follows the format "mcp:{tool}" for tool calls and
// "cli:{command}" for CLI commands. The action is the safety class of the
// operation.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.RWMutex
)

// Entry represents a single audit record.
type Entry struct {
	Source    string // e.g. "mcp:protect_get_info"
	Action    string // safety class: read-only, write, destructive
	RequestID string // correlates with the stderr log line
	Method    string // HTTP method of the operation
	Path      string // resolved API path, empty if resolution failed

	DryRun bool // a preview was returned instead of calling the API
	Denied bool // the confirmation guard refused the call

	// Timing, unix milliseconds
	Start int64
	End   int64

	Success bool           // whether the invocation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional invocation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder.
//
// The source identifies where the invocation originated, "mcp:{tool}" for
// tool calls. The action is the operation's safety class.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().UnixMilli(),
		},
	}
}

// RequestID sets the per-invocation identifier.
func (b *Builder) RequestID(id string) *Builder {
	b.entry.RequestID = id
	return b
}

// Method sets the HTTP method the operation uses.
func (b *Builder) Method(method string) *Builder {
	b.entry.Method = method
	return b
}

// Path sets the resolved API path.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// DryRun marks the entry as a preview that made no remote call.
func (b *Builder) DryRun(v bool) *Builder {
	b.entry.DryRun = v
	return b
}

// Denied marks the entry as refused by the confirmation guard.
func (b *Builder) Denied(v bool) *Builder {
	b.entry.Denied = v
	return b
}

// Detail adds a key-value pair to the entry's detail map.
// Can be called multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the entry, deriving success/failure from err.
//
//	res, tr := op.Invoke(ctx, client, args)
//	log.Event("mcp:"+op.Name, op.Class.String()).Path(tr.Path).Write(tr.Err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().UnixMilli()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger at path; an empty path uses the
// default location. Safe to call multiple times: later calls are no-ops
// until Close.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	if path == "" {
		path = dbPathFunc()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db, path: path}
	return nil
}

// SetInstance records which console subsequent entries refer to. The host
// is stored hashed.
func SetInstance(host string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.instance = hash(host)
	}
}

// Log writes an entry. Safe to call if the logger is not initialised (no-op).
// The read lock is held for the insert so Close waits for in-flight writes.
func Log(e Entry) {
	mu.RLock()
	defer mu.RUnlock()

	if global == nil {
		return
	}
	global.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
