package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every UNIFI_PROTECT_* variable for the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvHost, EnvAPIKey, EnvVerifySSL, EnvReadOnly, EnvTimeout, EnvLogLevel, EnvLogFormat, EnvAuditLog, EnvConfig} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHost, "192.168.1.1")
	t.Setenv(EnvAPIKey, "key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.1", cfg.Host)
	assert.Equal(t, "key", cfg.APIKey)
	assert.True(t, cfg.VerifySSL)
	assert.True(t, cfg.ReadOnly)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, DefaultAuditPath(), cfg.Log.Audit)
	assert.True(t, cfg.AuditEnabled())
	assert.Empty(t, cfg.Path())
}

func TestLoadRequired(t *testing.T) {
	t.Run("missing host", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvAPIKey, "key")

		_, err := Load("")
		assert.ErrorIs(t, err, ErrMissingHost)
		assert.NotErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("missing api key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvHost, "host")

		_, err := Load("")
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("both missing reported together", func(t *testing.T) {
		clearEnv(t)

		_, err := Load("")
		assert.ErrorIs(t, err, ErrMissingHost)
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})
}

func TestBooleanParsing(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"false", false},
		{"true", true},
		{"FALSE", true},
		{"0", true},
		{"no", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvHost, "h")
			t.Setenv(EnvAPIKey, "k")
			t.Setenv(EnvReadOnly, tt.value)
			t.Setenv(EnvVerifySSL, tt.value)

			cfg, err := Load("")
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.ReadOnly)
			assert.Equal(t, tt.want, cfg.VerifySSL)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("file values with env expansion", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PROTECT_TEST_KEY", "from-env")
		p := writeFile(t, `
host: protect.local
api_key: ${PROTECT_TEST_KEY}
verify_ssl: false
read_only: false
timeout: 10s
log:
  level: debug
  format: json
  audit: off
`)

		cfg, err := Load(p)
		require.NoError(t, err)
		assert.Equal(t, "protect.local", cfg.Host)
		assert.Equal(t, "from-env", cfg.APIKey)
		assert.False(t, cfg.VerifySSL)
		assert.False(t, cfg.ReadOnly)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.False(t, cfg.AuditEnabled())
		assert.Equal(t, p, cfg.Path())
	})

	t.Run("environment overrides file", func(t *testing.T) {
		clearEnv(t)
		p := writeFile(t, "host: file-host\napi_key: file-key\nread_only: false\n")
		t.Setenv(EnvHost, "env-host")
		t.Setenv(EnvReadOnly, "true")

		cfg, err := Load(p)
		require.NoError(t, err)
		assert.Equal(t, "env-host", cfg.Host)
		assert.Equal(t, "file-key", cfg.APIKey)
		assert.True(t, cfg.ReadOnly)
	})

	t.Run("path from environment", func(t *testing.T) {
		clearEnv(t)
		p := writeFile(t, "host: h\napi_key: k\n")
		t.Setenv(EnvConfig, p)

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, p, cfg.Path())
	})

	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(writeFile(t, "host: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("bad timeout in file", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(writeFile(t, "host: h\napi_key: k\ntimeout: soon\n"))
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := defaults()
		c.Host = "h"
		c.APIKey = "k"
		return c
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero timeout", func(c *Config) { c.Timeout = 0 }},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidValue)
		})
	}

	assert.NoError(t, valid().Validate())
}

func TestEnvTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHost, "h")
	t.Setenv(EnvAPIKey, "k")

	t.Setenv(EnvTimeout, "5s")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Timeout)

	t.Setenv(EnvTimeout, "fast")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestGetAndRedacted(t *testing.T) {
	cfg := defaults()
	cfg.Host = "protect.local"
	cfg.APIKey = "abcdef123456"

	v, err := cfg.Get("api_key")
	require.NoError(t, err)
	assert.Equal(t, "****3456", v)

	v, err = cfg.Get("read_only")
	require.NoError(t, err)
	assert.Equal(t, "true", v)

	_, err = cfg.Get("nope")
	assert.ErrorIs(t, err, ErrInvalidValue)

	r := cfg.Redacted()
	assert.Len(t, r, len(ValidKeys()))
	assert.Equal(t, "protect.local", r["host"])
	assert.NotContains(t, r["api_key"], "abcdef")

	assert.Equal(t, "****", mask("abc"))
}
