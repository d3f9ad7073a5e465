package aiactions

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

// typeFallbacks maps variable types without a declared name to a
// canonical parameter name.
var typeFallbacks = map[cma.VariableType]string{
	cma.VariableStandardInput:  "input_text",
	cma.VariableMediaReference: "media_asset_id",
	cma.VariableReference:      "entry_reference_id",
	cma.VariableLocale:         "target_locale",
	cma.VariableFreeFormInput:  "free_text_input",
	cma.VariableSmartContext:   "context_info",
}

// FriendlyName derives the externally visible parameter name for a
// variable. Pure function: declared name normalized to snake_case,
// else a type-based fallback, else "<type>_<first 5 chars of id>".
func FriendlyName(v cma.Variable) string {
	if name := normalizeName(v.Name); name != "" {
		return name
	}
	if fallback, ok := typeFallbacks[v.Type]; ok {
		return fallback
	}
	return strings.ToLower(string(v.Type)) + "_" + prefix(v.ID, 5)
}

// normalizeName lowercases, strips punctuation, and collapses
// whitespace runs and duplicate underscores into single underscores.
func normalizeName(name string) string {
	var b strings.Builder
	lastUnderscore := true // suppress leading underscores
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case unicode.IsSpace(r) || r == '_' || r == '-':
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
		// Everything else is punctuation: dropped.
	}
	return strings.TrimRight(b.String(), "_")
}

// uniqueName resolves collisions within one action's variable set by
// appending a numeric suffix in declaration order.
func uniqueName(base string, taken map[string]struct{}) string {
	name := base
	for i := 2; ; i++ {
		if _, exists := taken[name]; !exists {
			return name
		}
		name = fmt.Sprintf("%s_%d", base, i)
	}
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
