package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/jpl-au/protect-mcp/internal/config"
	"github.com/stretchr/testify/assert"
)

// testEnv runs the command tree in-process with a clean environment.
type testEnv struct {
	t *testing.T
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	for _, k := range []string{
		config.EnvHost, config.EnvAPIKey, config.EnvVerifySSL, config.EnvReadOnly,
		config.EnvTimeout, config.EnvLogLevel, config.EnvLogFormat, config.EnvAuditLog, config.EnvConfig,
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return &testEnv{t: t}
}

// run executes protect-mcp with the given args and returns stdout.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("protect-mcp %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes protect-mcp and returns stdout and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// notContains checks that output does not contain s.
func (e *testEnv) notContains(output, s string) {
	e.t.Helper()
	assert.NotContains(e.t, output, s)
}
