package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

func collection() map[string]any {
	return map[string]any{
		"total": 2,
		"items": []any{
			map[string]any{"sys": map[string]any{"id": "e1"}, "fields": map[string]any{"title": "One"}},
			map[string]any{"sys": map[string]any{"id": "e2"}, "fields": map[string]any{"title": "Two"}},
		},
	}
}

func TestProjectSingleOutput(t *testing.T) {
	p := NewProjector()

	out, err := p.Project(context.Background(), ".total", collection())
	require.NoError(t, err)
	assert.Equal(t, 2, out)
}

func TestProjectMultipleOutputsCollected(t *testing.T) {
	p := NewProjector()

	out, err := p.Project(context.Background(), ".items[].sys.id", collection())
	require.NoError(t, err)
	assert.Equal(t, []any{"e1", "e2"}, out)
}

func TestProjectNoOutput(t *testing.T) {
	p := NewProjector()

	out, err := p.Project(context.Background(), ".items[] | select(.sys.id == \"nope\")", collection())
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProjectParseError(t *testing.T) {
	p := NewProjector()

	_, err := p.Project(context.Background(), ".items[", collection())
	require.Error(t, err)
	assert.True(t, cma.IsCode(err, cma.ErrCodeValidation))
}

func TestProjectEmptyExpression(t *testing.T) {
	p := NewProjector()

	_, err := p.Project(context.Background(), "", collection())
	assert.Error(t, err)
}

func TestProjectRuntimeError(t *testing.T) {
	p := NewProjector()

	_, err := p.Project(context.Background(), ".total + \"x\"", collection())
	require.Error(t, err)
	assert.True(t, cma.IsCode(err, cma.ErrCodeValidation))
}

func TestProjectEnvIsSandboxed(t *testing.T) {
	t.Setenv("SECRET_TOKEN", "hunter2")
	p := NewProjector()

	out, err := p.Project(context.Background(), "$ENV.SECRET_TOKEN", collection())
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProjectCachesCompiledExpressions(t *testing.T) {
	p := NewProjector()

	_, err := p.Project(context.Background(), ".total", collection())
	require.NoError(t, err)
	_, err = p.Project(context.Background(), ".total", collection())
	require.NoError(t, err)

	assert.Len(t, p.cache, 1)
}
