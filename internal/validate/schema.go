// schema.go compiles tool input schemas and validates arguments against them.

package validate

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema is a compiled tool input schema.
type Schema struct {
	name     string
	compiled *jsonschema.Schema
}

// Compile compiles the JSON Schema document raw for the tool called name.
func Compile(name string, raw []byte) (*Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	url := fmt.Sprintf("protect-mcp://tools/%s.schema.json", name)
	if err := c.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSchema, name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSchema, name, err)
	}
	return &Schema{name: name, compiled: compiled}, nil
}

// Args validates decoded JSON arguments. A nil map is treated as {} so
// that tools without required parameters accept an empty call.
func (s *Schema) Args(args map[string]any) error {
	var v any = args
	if args == nil {
		v = map[string]any{}
	}
	err := s.compiled.Validate(v)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		return fmt.Errorf("%w for %s: %s", ErrInvalidArguments, s.name, strings.Join(reasons(ve), "; "))
	}
	return fmt.Errorf("%w for %s: %w", ErrInvalidArguments, s.name, err)
}

// reasons flattens a validation error tree into "location: message" lines,
// one per failing leaf, sorted for stable output.
func reasons(ve *jsonschema.ValidationError) []string {
	var out []string
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "(root)"
			}
			out = append(out, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	sort.Strings(out)
	return out
}
