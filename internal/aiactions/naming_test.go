package aiactions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

func TestFriendlyNameFromDeclaredName(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		want     string
	}{
		{"simple", "Tone", "tone"},
		{"spaces", "Brand Guidelines", "brand_guidelines"},
		{"mixed case", "TargetAudience Notes", "targetaudience_notes"},
		{"punctuation dropped", "Author's notes!", "authors_notes"},
		{"hyphens and underscores", "draft--title__v2", "draft_title_v2"},
		{"leading and trailing junk", "  --Title--  ", "title"},
		{"digits kept", "Summary 2024", "summary_2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := cma.Variable{ID: "var1", Type: cma.VariableText, Name: tt.declared}
			assert.Equal(t, tt.want, FriendlyName(v))
		})
	}
}

func TestFriendlyNameTypeFallbacks(t *testing.T) {
	tests := []struct {
		typ  cma.VariableType
		want string
	}{
		{cma.VariableStandardInput, "input_text"},
		{cma.VariableMediaReference, "media_asset_id"},
		{cma.VariableReference, "entry_reference_id"},
		{cma.VariableLocale, "target_locale"},
		{cma.VariableFreeFormInput, "free_text_input"},
		{cma.VariableSmartContext, "context_info"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			v := cma.Variable{ID: "87abcdef", Type: tt.typ}
			assert.Equal(t, tt.want, FriendlyName(v))
		})
	}
}

func TestFriendlyNameLastResort(t *testing.T) {
	// Unnamed with a type outside the fallback table: type + ID prefix.
	v := cma.Variable{ID: "87abcdef", Type: cma.VariableText}
	assert.Equal(t, "text_87abc", FriendlyName(v))

	// Short IDs are used whole.
	v = cma.Variable{ID: "ab", Type: cma.VariableText}
	assert.Equal(t, "text_ab", FriendlyName(v))

	// A name that normalizes to nothing falls through to the fallback.
	v = cma.Variable{ID: "87abcdef", Type: cma.VariableStandardInput, Name: "!!!"}
	assert.Equal(t, "input_text", FriendlyName(v))
}

func TestUniqueNameSuffixing(t *testing.T) {
	taken := map[string]struct{}{}

	first := uniqueName("tone", taken)
	assert.Equal(t, "tone", first)
	taken[first] = struct{}{}

	second := uniqueName("tone", taken)
	assert.Equal(t, "tone_2", second)
	taken[second] = struct{}{}

	third := uniqueName("tone", taken)
	assert.Equal(t, "tone_3", third)
}
