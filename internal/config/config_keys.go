// config_keys.go provides key-value access to the resolved configuration.
//
// Separated from config.go so loading stays focused on precedence rules,
// while this file serves the CLI's "config" command, which shows settings by
// dotted key.

package config

import (
	"fmt"
	"strconv"
)

// ValidKeys returns every displayable configuration key in display order.
func ValidKeys() []string {
	return []string{
		"host", "api_key", "verify_ssl", "read_only", "timeout",
		"log.level", "log.format", "log.audit",
	}
}

// Get returns a single value as a string. The API key is masked.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "host":
		return c.Host, nil
	case "api_key":
		return mask(c.APIKey), nil
	case "verify_ssl":
		return strconv.FormatBool(c.VerifySSL), nil
	case "read_only":
		return strconv.FormatBool(c.ReadOnly), nil
	case "timeout":
		return c.Timeout.String(), nil
	case "log.level":
		return c.Log.Level, nil
	case "log.format":
		return c.Log.Format, nil
	case "log.audit":
		return c.Log.Audit, nil
	default:
		return "", fmt.Errorf("%w: unknown key %s", ErrInvalidValue, key)
	}
}

// Redacted returns all values keyed by ValidKeys, with the API key masked.
func (c *Config) Redacted() map[string]string {
	m := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		v, _ := c.Get(k)
		m[k] = v
	}
	return m
}

// mask keeps the last four characters of a secret.
func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}
