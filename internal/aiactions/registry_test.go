package aiactions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

func newTestRegistry(t *testing.T, actions ...cma.AIAction) *Registry {
	t.Helper()
	r := NewRegistry(ToolOptions{SpaceID: "space1", EnvironmentID: "master"}, nil)
	r.Reload(actions)
	return r
}

func TestRegistryReload(t *testing.T) {
	r := newTestRegistry(t, *testAction())

	assert.Equal(t, 1, r.Len())

	a, ok := r.Get("action1")
	require.True(t, ok)
	assert.Equal(t, "Translate entry", a.Name)

	assert.Equal(t, []string{"ai_action_action1"}, r.ToolNames())

	tool, ok := r.ToolFor("action1")
	require.True(t, ok)
	assert.Equal(t, "ai_action_action1", tool.Name)
}

func TestRegistryReloadReplacesCatalog(t *testing.T) {
	r := newTestRegistry(t, *testAction())

	replacement := cma.AIAction{
		Sys:  cma.Sys{ID: "action2"},
		Name: "Summarize",
		Instruction: cma.Instruction{
			Variables: []cma.Variable{{ID: "v1", Type: cma.VariableText, Name: "Input"}},
		},
	}
	r.Reload([]cma.AIAction{replacement})

	assert.Equal(t, 1, r.Len())
	_, ok := r.Get("action1")
	assert.False(t, ok)
	_, ok = r.Get("action2")
	assert.True(t, ok)
	assert.Equal(t, []string{"ai_action_action2"}, r.ToolNames())
}

func TestRegistrySkipsActionsWithoutID(t *testing.T) {
	r := newTestRegistry(t,
		cma.AIAction{Name: "broken"},
		*testAction(),
	)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryClear(t *testing.T) {
	r := newTestRegistry(t, *testAction())
	r.Clear()

	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.ToolNames())
	assert.Empty(t, r.All())

	// With no tables the translator passes input through unchanged.
	out := r.Translate("action1", map[string]any{"brand_guidelines": "x"})
	assert.Equal(t, map[string]any{"brand_guidelines": "x"}, out)
}

func TestTranslate(t *testing.T) {
	r := newTestRegistry(t, *testAction())

	input := map[string]any{
		"brand_guidelines":    "be formal",
		"media_asset_id":      "asset1",
		"media_asset_id_path": "fields.file.en-US",
		"outputFormat":        "PlainText",
		"waitForCompletion":   false,
	}
	out := r.Translate("action1", input)

	assert.Equal(t, map[string]any{
		"var1":              "be formal",
		"87abcde":           "asset1",
		"87abcde_path":      "fields.file.en-US",
		"outputFormat":      "PlainText",
		"waitForCompletion": false,
	}, out)

	// Input is never mutated.
	assert.Equal(t, "be formal", input["brand_guidelines"])
	assert.NotContains(t, input, "var1")
}

func TestTranslateUnmappedKeysPassThrough(t *testing.T) {
	r := newTestRegistry(t, *testAction())

	out := r.Translate("action1", map[string]any{
		"brand_guidelines": "x",
		"mystery":          42,
	})
	assert.Equal(t, "x", out["var1"])
	assert.Equal(t, 42, out["mystery"])
}

func TestTranslateUnknownActionPassesThrough(t *testing.T) {
	r := newTestRegistry(t, *testAction())

	input := map[string]any{"anything": "goes", "outputFormat": "Markdown"}
	out := r.Translate("missing", input)
	assert.Equal(t, input, out)
}
