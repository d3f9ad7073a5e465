package aiactions

import (
	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

// BuildInvocation converts translated input (keyed by variable ID) into
// the wire payload for the invoke endpoint. Variables are emitted in
// declaration order. Every declared variable is required; a missing one
// is a validation error naming both identifiers.
func BuildInvocation(action *cma.AIAction, translated map[string]any) (*cma.InvocationRequest, error) {
	vars := action.Instruction.Variables
	out := make([]cma.InvocationVariable, 0, len(vars))

	for _, v := range vars {
		raw, ok := translated[v.ID]
		if !ok {
			return nil, cma.NewErrorf(cma.ErrCodeValidation,
				"missing required variable %q (parameter %q)", v.ID, FriendlyName(v)).
				WithDetails(map[string]any{
					"variable_id": v.ID,
					"parameter":   FriendlyName(v),
				})
		}

		value := raw
		if v.Type.Reference() {
			ref := cma.ReferenceValue{
				EntityType: v.Type.EntityType(),
				EntityID:   stringValue(raw),
			}
			if path, ok := translated[v.ID+PathSuffix]; ok {
				ref.EntityPath = stringValue(path)
			}
			value = ref
		}
		out = append(out, cma.InvocationVariable{ID: v.ID, Value: value})
	}

	format := cma.FormatMarkdown
	if raw, ok := translated["outputFormat"]; ok {
		if s := stringValue(raw); s != "" {
			format = cma.OutputFormat(s)
		}
	}

	return &cma.InvocationRequest{OutputFormat: format, Variables: out}, nil
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
