package query

import (
	"context"
	"sync"

	"github.com/itchyny/gojq"

	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

// Projector applies jq expressions to JSON documents so agents can
// trim large collection responses before they enter the conversation.
// Thread-safe: compiled *Code objects are cached and reused.
type Projector struct {
	mu    sync.RWMutex
	cache map[string]*gojq.Code
}

// NewProjector creates a new Projector.
func NewProjector() *Projector {
	return &Projector{cache: make(map[string]*gojq.Code)}
}

// Project compiles (or retrieves from cache) a jq expression and runs
// it against doc. A single output is returned directly; multiple
// outputs are collected into a slice.
func (p *Projector) Project(ctx context.Context, expression string, doc any) (any, error) {
	if expression == "" {
		return nil, cma.NewError(cma.ErrCodeValidation, "empty jq expression")
	}

	code, err := p.getOrCompile(expression)
	if err != nil {
		return nil, err
	}

	iter := code.RunWithContext(ctx, doc)

	var results []any
	for {
		val, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := val.(error); isErr {
			return nil, cma.NewErrorf(cma.ErrCodeValidation,
				"jq evaluation failed for %q: %s", expression, err.Error()).
				WithCause(err).
				WithDetails(map[string]any{"expression": expression})
		}
		results = append(results, val)
	}

	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}

// getOrCompile returns a cached compiled code or compiles and caches a new one.
func (p *Projector) getOrCompile(expression string) (*gojq.Code, error) {
	p.mu.RLock()
	if code, ok := p.cache[expression]; ok {
		p.mu.RUnlock()
		return code, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring write lock.
	if code, ok := p.cache[expression]; ok {
		return code, nil
	}

	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, cma.NewErrorf(cma.ErrCodeValidation,
			"jq parse error in %q: %s", expression, err.Error()).
			WithCause(err).
			WithDetails(map[string]any{"expression": expression})
	}

	code, err := gojq.Compile(query,
		// Sandbox: empty env blocks $ENV and env access.
		gojq.WithEnvironLoader(func() []string { return nil }),
	)
	if err != nil {
		return nil, cma.NewErrorf(cma.ErrCodeValidation,
			"jq compile error in %q: %s", expression, err.Error()).
			WithCause(err).
			WithDetails(map[string]any{"expression": expression})
	}

	p.cache[expression] = code
	return code, nil
}
