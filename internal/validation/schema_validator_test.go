package validation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"id": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func newTestValidator() SchemaValidator {
	return NewSchemaValidator(fstest.MapFS{
		"schemas/material.schema.json": &fstest.MapFile{Data: []byte(testSchema)},
	})
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid document", data: `{"name": "IRON_SWORD", "id": 267}`},
		{name: "optional field omitted", data: `{"name": "STONE"}`},
		{name: "missing required field", data: `{"id": 1}`, wantError: true, errorMsg: "required"},
		{name: "negative id", data: `{"name": "STONE", "id": -1}`, wantError: true, errorMsg: "minimum"},
		{name: "wrong type", data: `{"name": 12}`, wantError: true, errorMsg: "/name"},
		{name: "malformed JSON", data: `{"name":`, wantError: true, errorMsg: "failed to parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "schemas/material.schema.json")
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	v := newTestValidator()

	err := v.ValidateBytes([]byte(`{}`), "schemas/missing.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := newTestValidator()

	require.NoError(t, v.ValidateBytes([]byte(`{"name": "A"}`), "schemas/material.schema.json"))
	require.NoError(t, v.ValidateBytes([]byte(`{"name": "B"}`), "schemas/material.schema.json"))

	impl := v.(*validator)
	assert.Len(t, impl.schemas, 1)
}
