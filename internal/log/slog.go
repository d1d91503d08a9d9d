// slog.go builds the process logger. stdout carries MCP JSON-RPC, so
// operational logs always go to the writer given here, normally stderr.

package log

import (
	"io"
	"log/slog"
)

// NewLogger returns a slog logger writing to w in format ("text" or
// "json") at level ("debug", "info", "warn", "error"). Unknown values fall
// back to text and info.
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
