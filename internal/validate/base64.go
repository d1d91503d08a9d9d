// base64.go decodes binary payloads supplied as base64 strings.

package validate

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Base64 decodes standard base64, tolerating surrounding whitespace and
// missing padding. Clients frequently wrap or trim long payloads.
func Base64(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	if data, err := base64.StdEncoding.DecodeString(s); err == nil {
		return data, nil
	}
	data, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}
	return data, nil
}
