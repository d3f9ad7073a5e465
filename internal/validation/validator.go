package validation

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

// InputValidator validates tool-call arguments against generated input
// schemas using JSON Schema Draft 2020-12. Compiled schemas are cached
// by schema text; the cache is dropped when the catalog reloads so a
// regenerated schema never validates against a stale compilation.
// Safe for concurrent use.
type InputValidator struct {
	mu    sync.RWMutex
	cache map[string]*jsonschema.Schema
	seq   int
}

// NewInputValidator creates an empty InputValidator.
func NewInputValidator() *InputValidator {
	return &InputValidator{cache: make(map[string]*jsonschema.Schema)}
}

// Validate checks args against the given JSON Schema document.
// An empty schema means no validation.
func (v *InputValidator) Validate(args map[string]any, schemaJSON []byte) error {
	if len(schemaJSON) == 0 {
		return nil
	}

	compiled, err := v.getOrCompile(schemaJSON)
	if err != nil {
		return cma.NewError(cma.ErrCodeValidation, "invalid input schema").WithCause(err)
	}

	// Round-trip through JSON so numbers become json.Number, which the
	// jsonschema library requires.
	doc, err := toJSONValue(args)
	if err != nil {
		return cma.NewError(cma.ErrCodeValidation, "failed to serialize arguments").WithCause(err)
	}

	if err := compiled.Validate(doc); err != nil {
		return toCMAError(err)
	}
	return nil
}

// Reset drops every cached compiled schema.
func (v *InputValidator) Reset() {
	v.mu.Lock()
	v.cache = make(map[string]*jsonschema.Schema)
	v.mu.Unlock()
}

// getOrCompile returns a cached compiled schema or compiles and caches a new one.
func (v *InputValidator) getOrCompile(schemaBytes []byte) (*jsonschema.Schema, error) {
	key := string(schemaBytes)

	v.mu.RLock()
	if cached, ok := v.cache[key]; ok {
		v.mu.RUnlock()
		return cached, nil
	}
	v.mu.RUnlock()

	v.mu.Lock()
	defer v.mu.Unlock()

	// Double-check after acquiring write lock.
	if cached, ok := v.cache[key]; ok {
		return cached, nil
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(key))
	if err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	// Each dynamic schema gets a unique URL to avoid collisions in the compiler.
	v.seq++
	url := fmt.Sprintf("mcp://input-schema/%d", v.seq)

	c := jsonschema.NewCompiler()
	c.AssertFormat()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}

	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	v.cache[key] = compiled
	return compiled, nil
}

// toJSONValue round-trips a Go value through JSON encoding/decoding.
func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(strings.NewReader(string(b)))
}

// toCMAError converts a jsonschema.ValidationError into a structured
// error with clear, actionable messages for agent consumption.
func toCMAError(err error) *cma.CMAError {
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return cma.NewError(cma.ErrCodeValidation, err.Error())
	}

	violations := collectViolations(verr)
	if len(violations) == 0 {
		return cma.NewError(cma.ErrCodeValidation, verr.Error())
	}
	if len(violations) == 1 {
		return cma.NewError(cma.ErrCodeValidation, violations[0]).
			WithDetails(map[string]any{"violations": violations})
	}
	return cma.NewErrorf(cma.ErrCodeValidation, "validation failed with %d errors", len(violations)).
		WithDetails(map[string]any{"violations": violations})
}

// collectViolations walks a ValidationError tree and collects leaf
// messages with their instance locations.
func collectViolations(verr *jsonschema.ValidationError) []string {
	if len(verr.Causes) == 0 {
		loc := "/"
		if len(verr.InstanceLocation) > 0 {
			loc = "/" + strings.Join(verr.InstanceLocation, "/")
		}
		return []string{fmt.Sprintf("%s: %s", loc, verr.Error())}
	}

	var violations []string
	for _, cause := range verr.Causes {
		violations = append(violations, collectViolations(cause)...)
	}
	return violations
}
