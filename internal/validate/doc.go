// Package validate checks tool arguments before they reach business logic.
//
// Each tool advertises a JSON Schema for its input. The same schema is
// compiled here and enforced on every invocation, so what a client is told
// and what the server accepts cannot drift apart. Malformed arguments never
// reach the network.
//
// # Error Handling
//
// All validation errors wrap one of the sentinel errors defined in errors.go
// (ErrInvalidArguments, ErrInvalidSchema, ErrInvalidBase64). Use errors.Is()
// for type-safe error checking:
//
//	if errors.Is(err, validate.ErrInvalidArguments) {
//	    // report to the client, do not call the API
//	}
package validate
