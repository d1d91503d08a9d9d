// errors.go defines sentinel errors for validation failures.

package validate

import "errors"

var (
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrInvalidSchema    = errors.New("invalid schema")
	ErrInvalidBase64    = errors.New("invalid base64 data")
)
