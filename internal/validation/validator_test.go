package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

var toolSchema = []byte(`{
	"type": "object",
	"properties": {
		"tone": {"type": "string", "enum": ["formal", "casual"]},
		"input_text": {"type": "string"},
		"outputFormat": {"type": "string", "enum": ["Markdown", "RichText", "PlainText"]},
		"waitForCompletion": {"type": "boolean"}
	},
	"required": ["tone", "input_text", "outputFormat"]
}`)

func TestValidateAccepts(t *testing.T) {
	v := NewInputValidator()

	err := v.Validate(map[string]any{
		"tone":         "formal",
		"input_text":   "hello",
		"outputFormat": "Markdown",
	}, toolSchema)
	assert.NoError(t, err)
}

func TestValidateMissingRequired(t *testing.T) {
	v := NewInputValidator()

	err := v.Validate(map[string]any{"tone": "formal"}, toolSchema)
	require.Error(t, err)
	assert.True(t, cma.IsCode(err, cma.ErrCodeValidation))
}

func TestValidateEnumViolation(t *testing.T) {
	v := NewInputValidator()

	err := v.Validate(map[string]any{
		"tone":         "aggressive",
		"input_text":   "hello",
		"outputFormat": "Markdown",
	}, toolSchema)
	require.Error(t, err)

	var cerr *cma.CMAError
	require.ErrorAs(t, err, &cerr)
	assert.NotEmpty(t, cerr.Details["violations"])
}

func TestValidateWrongType(t *testing.T) {
	v := NewInputValidator()

	err := v.Validate(map[string]any{
		"tone":              "formal",
		"input_text":        "hello",
		"outputFormat":      "Markdown",
		"waitForCompletion": "yes",
	}, toolSchema)
	assert.Error(t, err)
}

func TestValidateEmptySchemaSkips(t *testing.T) {
	v := NewInputValidator()
	assert.NoError(t, v.Validate(map[string]any{"anything": 1}, nil))
}

func TestValidateInvalidSchema(t *testing.T) {
	v := NewInputValidator()

	err := v.Validate(map[string]any{}, []byte(`{"type": 42}`))
	require.Error(t, err)
	assert.True(t, cma.IsCode(err, cma.ErrCodeValidation))
}

func TestValidateCachesAndResets(t *testing.T) {
	v := NewInputValidator()

	require.NoError(t, v.Validate(map[string]any{
		"tone":         "formal",
		"input_text":   "hi",
		"outputFormat": "Markdown",
	}, toolSchema))
	assert.Len(t, v.cache, 1)

	// Same schema text reuses the compilation.
	require.NoError(t, v.Validate(map[string]any{
		"tone":         "casual",
		"input_text":   "hi",
		"outputFormat": "PlainText",
	}, toolSchema))
	assert.Len(t, v.cache, 1)

	v.Reset()
	assert.Empty(t, v.cache)

	// Validation keeps working after a reset.
	require.NoError(t, v.Validate(map[string]any{
		"tone":         "formal",
		"input_text":   "hi",
		"outputFormat": "Markdown",
	}, toolSchema))
}
