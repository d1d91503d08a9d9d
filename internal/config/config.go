// Package config loads protect-mcp settings.
//
// Settings come from, lowest precedence first: built-in defaults, an optional
// YAML file (--config or UNIFI_PROTECT_CONFIG), and UNIFI_PROTECT_*
// environment variables. ${VAR} references inside the file are expanded from
// the environment so secrets can stay out of it.
//
// Host and API key are required. Booleans that gate safety (verify_ssl,
// read_only) default to true and are only turned off by the exact string
// "false", so a typo keeps the safe setting.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingHost is returned when no console host is configured.
	ErrMissingHost = errors.New("UNIFI_PROTECT_HOST is required")
	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("UNIFI_PROTECT_API_KEY is required")
	// ErrInvalidValue is returned when a configured value cannot be used.
	ErrInvalidValue = errors.New("invalid config value")
)

// Environment variable names.
const (
	EnvHost      = "UNIFI_PROTECT_HOST"
	EnvAPIKey    = "UNIFI_PROTECT_API_KEY"
	EnvVerifySSL = "UNIFI_PROTECT_VERIFY_SSL"
	EnvReadOnly  = "UNIFI_PROTECT_READ_ONLY"
	EnvTimeout   = "UNIFI_PROTECT_TIMEOUT"
	EnvLogLevel  = "UNIFI_PROTECT_LOG_LEVEL"
	EnvLogFormat = "UNIFI_PROTECT_LOG_FORMAT"
	EnvAuditLog  = "UNIFI_PROTECT_AUDIT_LOG"
	EnvConfig    = "UNIFI_PROTECT_CONFIG"
)

// Defaults applied when a value is not configured.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	// AuditOff disables the audit log when used as the audit path.
	AuditOff = "off"
)

// Config is the resolved runtime configuration.
type Config struct {
	Host      string
	APIKey    string
	VerifySSL bool
	ReadOnly  bool
	Timeout   time.Duration
	Log       Log

	// path is the file this config was loaded from, empty if none.
	path string
}

// Log holds logging settings.
type Log struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	Audit  string // audit database path, or "off"
}

// file mirrors the YAML layout. Pointers distinguish "not set" from zero.
type file struct {
	Host      string  `yaml:"host"`
	APIKey    string  `yaml:"api_key"`
	VerifySSL *bool   `yaml:"verify_ssl"`
	ReadOnly  *bool   `yaml:"read_only"`
	Timeout   string  `yaml:"timeout"`
	Log       fileLog `yaml:"log"`
}

type fileLog struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Audit  string `yaml:"audit"`
}

// Path returns the file the configuration was read from, if any.
func (c *Config) Path() string {
	return c.path
}

// Load resolves the configuration. path may be empty, in which case
// UNIFI_PROTECT_CONFIG is consulted; if that is empty too only the
// environment is used.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		VerifySSL: true,
		ReadOnly:  true,
		Timeout:   DefaultTimeout,
		Log: Log{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			Audit:  DefaultAuditPath(),
		},
	}
}

// envVarPattern matches ${VAR_NAME} references in the config file.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

func expandEnv(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(m string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(m)[1])
	})
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal([]byte(expandEnv(string(data))), &f); err != nil {
		return fmt.Errorf("malformed config file %s: %w", path, err)
	}

	c.path = path
	if f.Host != "" {
		c.Host = f.Host
	}
	if f.APIKey != "" {
		c.APIKey = f.APIKey
	}
	if f.VerifySSL != nil {
		c.VerifySSL = *f.VerifySSL
	}
	if f.ReadOnly != nil {
		c.ReadOnly = *f.ReadOnly
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("%w: timeout %q in %s: %w", ErrInvalidValue, f.Timeout, path, err)
		}
		c.Timeout = d
	}
	if f.Log.Level != "" {
		c.Log.Level = f.Log.Level
	}
	if f.Log.Format != "" {
		c.Log.Format = f.Log.Format
	}
	if f.Log.Audit != "" {
		c.Log.Audit = f.Log.Audit
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v, ok := os.LookupEnv(EnvVerifySSL); ok {
		c.VerifySSL = v != "false"
	}
	if v, ok := os.LookupEnv(EnvReadOnly); ok {
		c.ReadOnly = v != "false"
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidValue, EnvTimeout, v, err)
		}
		c.Timeout = d
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvAuditLog); v != "" {
		c.Log.Audit = v
	}
	return nil
}

// Validate checks required values and bounds. Missing host and API key are
// both reported when both are absent.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Host) == "" {
		errs = append(errs, ErrMissingHost)
	}
	if strings.TrimSpace(c.APIKey) == "" {
		errs = append(errs, ErrMissingAPIKey)
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidValue, c.Timeout))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: log level must be debug, info, warn or error, got %q", ErrInvalidValue, c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: log format must be text or json, got %q", ErrInvalidValue, c.Log.Format))
	}
	return errors.Join(errs...)
}

// AuditEnabled reports whether invocations should be written to the audit log.
func (c *Config) AuditEnabled() bool {
	return c.Log.Audit != "" && c.Log.Audit != AuditOff
}

// DefaultAuditPath returns ~/.protect-mcp/log/audit.db, falling back to a
// relative path when the home directory cannot be determined.
func DefaultAuditPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".protect-mcp", "log", "audit.db")
	}
	return filepath.Join(home, ".protect-mcp", "log", "audit.db")
}
