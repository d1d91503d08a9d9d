package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ptzSchema has the shape of an advertised PTZ tool schema.
const ptzSchema = `{
  "type": "object",
  "properties": {
    "id": {"type": "string", "description": "Camera ID"},
    "slot": {"type": "integer", "description": "Patrol slot number"},
    "dryRun": {"type": "boolean"}
  },
  "required": ["id", "slot"]
}`

const confirmSchema = `{
  "type": "object",
  "properties": {
    "id": {"type": "string"},
    "confirm": {"type": "boolean", "const": true}
  },
  "required": ["id", "confirm"]
}`

const settingsSchema = `{
  "type": "object",
  "properties": {
    "id": {"type": "string"},
    "settings": {"type": "object"},
    "dryRun": {"type": "boolean"}
  },
  "required": ["id", "settings"]
}`

const emptySchema = `{"type": "object", "properties": {}}`

func mustCompile(t *testing.T, name, raw string) *Schema {
	t.Helper()
	s, err := Compile(name, []byte(raw))
	require.NoError(t, err)
	return s
}

func TestCompile(t *testing.T) {
	_, err := Compile("broken", []byte(`{"$ref": "#/$defs/missing"}`))
	assert.ErrorIs(t, err, ErrInvalidSchema)

	_, err = Compile("not-json", []byte(`{`))
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestArgs(t *testing.T) {
	ptz := mustCompile(t, "protect_start_ptz_patrol", ptzSchema)
	confirm := mustCompile(t, "protect_disable_mic", confirmSchema)
	settings := mustCompile(t, "protect_update_camera", settingsSchema)
	empty := mustCompile(t, "protect_get_info", emptySchema)

	tests := []struct {
		name    string
		schema  *Schema
		args    map[string]any
		wantErr bool
		mention string
	}{
		{name: "integral slot", schema: ptz, args: map[string]any{"id": "abc", "slot": float64(2)}},
		{name: "fractional slot", schema: ptz, args: map[string]any{"id": "abc", "slot": 2.5}, wantErr: true, mention: "slot"},
		{name: "string slot", schema: ptz, args: map[string]any{"id": "abc", "slot": "2"}, wantErr: true, mention: "slot"},
		{name: "missing slot", schema: ptz, args: map[string]any{"id": "abc"}, wantErr: true, mention: "slot"},
		{name: "dryRun bool", schema: ptz, args: map[string]any{"id": "abc", "slot": float64(1), "dryRun": true}},
		{name: "dryRun string", schema: ptz, args: map[string]any{"id": "abc", "slot": float64(1), "dryRun": "true"}, wantErr: true, mention: "dryRun"},
		{name: "id number", schema: ptz, args: map[string]any{"id": float64(7), "slot": float64(1)}, wantErr: true, mention: "id"},

		{name: "confirm true", schema: confirm, args: map[string]any{"id": "abc", "confirm": true}},
		{name: "confirm false", schema: confirm, args: map[string]any{"id": "abc", "confirm": false}, wantErr: true, mention: "confirm"},
		{name: "confirm string", schema: confirm, args: map[string]any{"id": "abc", "confirm": "true"}, wantErr: true, mention: "confirm"},
		{name: "confirm one", schema: confirm, args: map[string]any{"id": "abc", "confirm": float64(1)}, wantErr: true, mention: "confirm"},
		{name: "confirm missing", schema: confirm, args: map[string]any{"id": "abc"}, wantErr: true, mention: "confirm"},

		{name: "settings object", schema: settings, args: map[string]any{"id": "abc", "settings": map[string]any{"name": "Front"}}},
		{name: "settings empty object", schema: settings, args: map[string]any{"id": "abc", "settings": map[string]any{}}},
		{name: "settings string", schema: settings, args: map[string]any{"id": "abc", "settings": `{"name":"Front"}`}, wantErr: true, mention: "settings"},
		{name: "settings array", schema: settings, args: map[string]any{"id": "abc", "settings": []any{"a"}}, wantErr: true, mention: "settings"},

		{name: "no params nil args", schema: empty, args: nil},
		{name: "no params extra args", schema: empty, args: map[string]any{"unused": true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Args(tt.args)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArguments)
			assert.Contains(t, err.Error(), tt.mention)
			assert.Contains(t, err.Error(), tt.schema.name)
		})
	}
}

func TestBase64(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "padded", in: "aGVsbG8=", want: "hello"},
		{name: "unpadded", in: "aGVsbG8", want: "hello"},
		{name: "wrapped", in: "aGVs\nbG8=\n", want: "hello"},
		{name: "empty", in: "", want: ""},
		{name: "invalid", in: "not base64!", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Base64(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBase64)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
