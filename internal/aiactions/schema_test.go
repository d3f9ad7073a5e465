package aiactions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

func testAction() *cma.AIAction {
	return &cma.AIAction{
		Sys:         cma.Sys{ID: "action1", Status: "published"},
		Name:        "Translate entry",
		Description: "Translates a field into another locale",
		Instruction: cma.Instruction{
			Template: "Translate {{var1}} using {{var2}}",
			Variables: []cma.Variable{
				{ID: "var1", Type: cma.VariableText, Name: "Brand Guidelines"},
				{ID: "87abcde", Type: cma.VariableMediaReference},
			},
		},
		Configuration: cma.ActionConfiguration{ModelType: "gpt-4", ModelTemperature: 0.3},
	}
}

func TestToolNameRoundTrip(t *testing.T) {
	assert.Equal(t, "ai_action_abc123", ToolName("abc123"))

	id, ok := ActionIDFromTool("ai_action_abc123")
	require.True(t, ok)
	assert.Equal(t, "abc123", id)

	_, ok = ActionIDFromTool("search_entries")
	assert.False(t, ok)

	// The bare prefix carries no ID.
	_, ok = ActionIDFromTool("ai_action_")
	assert.False(t, ok)
}

func TestBuildToolProperties(t *testing.T) {
	action := testAction()
	tool, nameToVar, pathToVar := buildTool(action, ToolOptions{SpaceID: "space1", EnvironmentID: "master"})

	assert.Equal(t, "ai_action_action1", tool.Name)
	assert.Contains(t, tool.Description, "Translate entry")
	assert.Contains(t, tool.Description, "Translates a field into another locale")
	assert.Contains(t, tool.Description, "gpt-4")

	props := tool.InputSchema.Properties
	// Exactly: two variables, one path companion, outputFormat,
	// waitForCompletion. Routing params are fixed by config.
	assert.Len(t, props, 5)
	assert.Contains(t, props, "brand_guidelines")
	assert.Contains(t, props, "media_asset_id")
	assert.Contains(t, props, "media_asset_id_path")
	assert.Contains(t, props, "outputFormat")
	assert.Contains(t, props, "waitForCompletion")
	assert.NotContains(t, props, "spaceId")
	assert.NotContains(t, props, "environmentId")

	// Every variable plus outputFormat is required; the path companion
	// and waitForCompletion are not.
	assert.ElementsMatch(t, []string{"brand_guidelines", "media_asset_id", "outputFormat"}, tool.InputSchema.Required)

	assert.Equal(t, map[string]string{
		"brand_guidelines": "var1",
		"media_asset_id":   "87abcde",
	}, nameToVar)
	assert.Equal(t, map[string]string{
		"media_asset_id_path": "87abcde_path",
	}, pathToVar)

	// Regeneration is deterministic.
	again, _, _ := buildTool(action, ToolOptions{SpaceID: "space1", EnvironmentID: "master"})
	assert.ElementsMatch(t, tool.InputSchema.Required, again.InputSchema.Required)
}

func TestBuildToolExposesRoutingWhenUnconfigured(t *testing.T) {
	action := testAction()
	tool, _, _ := buildTool(action, ToolOptions{})

	props := tool.InputSchema.Properties
	assert.Contains(t, props, "spaceId")
	assert.Contains(t, props, "environmentId")
	assert.Contains(t, tool.InputSchema.Required, "spaceId")
	assert.Contains(t, tool.InputSchema.Required, "environmentId")
}

func TestBuildToolOutputFormatEnum(t *testing.T) {
	action := testAction()
	tool, _, _ := buildTool(action, ToolOptions{SpaceID: "s", EnvironmentID: "e"})

	prop, ok := tool.InputSchema.Properties["outputFormat"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Markdown", prop["default"])
	assert.ElementsMatch(t, []string{"Markdown", "RichText", "PlainText"}, prop["enum"])

	wait, ok := tool.InputSchema.Properties["waitForCompletion"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, wait["default"])
}

func TestBuildToolOptionsListEnum(t *testing.T) {
	action := &cma.AIAction{
		Sys:  cma.Sys{ID: "a2"},
		Name: "Set tone",
		Instruction: cma.Instruction{
			Variables: []cma.Variable{
				{
					ID:            "v1",
					Type:          cma.VariableStringOptionsList,
					Name:          "Tone",
					Configuration: &cma.VariableConfiguration{Values: []string{"formal", "casual"}},
				},
			},
		},
	}
	tool, _, _ := buildTool(action, ToolOptions{SpaceID: "s", EnvironmentID: "e"})

	prop, ok := tool.InputSchema.Properties["tone"].(map[string]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"formal", "casual"}, prop["enum"])
}

func TestResolveNamesCollisions(t *testing.T) {
	action := &cma.AIAction{
		Sys: cma.Sys{ID: "a3"},
		Instruction: cma.Instruction{
			Variables: []cma.Variable{
				{ID: "v1", Type: cma.VariableText, Name: "Tone"},
				{ID: "v2", Type: cma.VariableText, Name: "tone"},
				{ID: "v3", Type: cma.VariableText, Name: "TONE"},
			},
		},
	}

	named := resolveNames(action)
	require.Len(t, named, 3)
	assert.Equal(t, "tone", named[0].Friendly)
	assert.Equal(t, "tone_2", named[1].Friendly)
	assert.Equal(t, "tone_3", named[2].Friendly)
}
