// log_storage.go implements the SQLite side of the audit log.
//
// Kept apart from log.go so the builder stays free of SQL. The console host
// is stored as a BLAKE2b hash: entries from several consoles can be told
// apart without the database naming them.
//
// Write failures are reported on stderr and otherwise ignored. An invocation
// that succeeded against the console is not turned into a failure because
// its audit row could not be written.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jpl-au/protect-mcp/internal/config"
	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Logger writes audit entries to a SQLite database.
type Logger struct {
	db       *sql.DB
	path     string
	instance string
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	_, err := l.db.Exec(`
		INSERT INTO audit (start, end, instance, source, action, request_id, method, path,
		                   dry_run, denied, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, l.instance, e.Source, e.Action,
		nilIfEmpty(e.RequestID), nilIfEmpty(e.Method), nilIfEmpty(e.Path),
		boolInt(e.DryRun), boolInt(e.Denied), boolInt(e.Success),
		nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "protect-mcp: audit log write failed: %v\n", err)
	}
}

// dbPathFunc returns the default database path.
// Tests can override this to use a temp directory.
var dbPathFunc = config.DefaultAuditPath

// DBPath returns the path of the open database, or the default path when
// the logger is closed.
func DBPath() string {
	mu.RLock()
	defer mu.RUnlock()
	if global != nil {
		return global.path
	}
	return dbPathFunc()
}

// hash derives a short stable identifier for a console host.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the audit table if it doesn't exist.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS audit (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			start       INTEGER NOT NULL,
			end         INTEGER NOT NULL,
			instance    TEXT NOT NULL,
			source      TEXT NOT NULL,
			action      TEXT NOT NULL,
			request_id  TEXT,
			method      TEXT,
			path        TEXT,
			dry_run     INTEGER NOT NULL,
			denied      INTEGER NOT NULL,
			success     INTEGER NOT NULL,
			error       TEXT,
			detail      TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_audit_start ON audit(start);
		CREATE INDEX IF NOT EXISTS idx_audit_source ON audit(source);
		CREATE INDEX IF NOT EXISTS idx_audit_request ON audit(request_id);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings so they are stored as NULL.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
