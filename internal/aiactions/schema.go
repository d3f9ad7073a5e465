package aiactions

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

// ToolPrefix prefixes every dynamically generated tool name, so tool
// identity is 1:1 with action ID.
const ToolPrefix = "ai_action_"

// PathSuffix marks the companion parameter that selects which field of
// a referenced entity to read.
const PathSuffix = "_path"

const guidancePreamble = "This tool runs a preconfigured AI Action from the content platform. " +
	"When a request matches what this action does, invoke it instead of generating the content yourself."

const resultCaveat = "The result is returned to you only; it is not applied to any entry field automatically."

// ToolOptions carries deployment-level defaults. A space or environment
// fixed here is omitted from generated schemas and injected at
// invocation time.
type ToolOptions struct {
	SpaceID       string
	EnvironmentID string
}

// ToolName returns the tool name for an action ID.
func ToolName(actionID string) string {
	return ToolPrefix + actionID
}

// ActionIDFromTool recovers the action ID from a dynamic tool name.
func ActionIDFromTool(toolName string) (string, bool) {
	id, ok := strings.CutPrefix(toolName, ToolPrefix)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// namedVariable pairs a variable with its collision-resolved friendly name.
type namedVariable struct {
	cma.Variable
	Friendly string
}

// resolveNames computes the friendly name of every variable in
// declaration order, suffixing duplicates so each variable stays
// addressable.
func resolveNames(action *cma.AIAction) []namedVariable {
	vars := action.Instruction.Variables
	out := make([]namedVariable, 0, len(vars))
	taken := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		name := uniqueName(FriendlyName(v), taken)
		taken[name] = struct{}{}
		out = append(out, namedVariable{Variable: v, Friendly: name})
	}
	return out
}

// buildTool generates the callable tool descriptor for one action and
// returns it together with the friendly-name and path-name mapping
// tables for that action.
func buildTool(action *cma.AIAction, opts ToolOptions) (mcp.Tool, map[string]string, map[string]string) {
	named := resolveNames(action)

	nameToVar := make(map[string]string, len(named))
	pathToVar := make(map[string]string)

	toolOpts := []mcp.ToolOption{
		mcp.WithDescription(toolDescription(action, named)),
	}

	for _, nv := range named {
		nameToVar[nv.Friendly] = nv.ID

		propOpts := []mcp.PropertyOption{
			mcp.Required(),
			mcp.Description(variableDescription(nv)),
		}
		if nv.Type == cma.VariableStringOptionsList && nv.Configuration != nil && len(nv.Configuration.Values) > 0 {
			propOpts = append(propOpts, mcp.Enum(nv.Configuration.Values...))
		}
		toolOpts = append(toolOpts, mcp.WithString(nv.Friendly, propOpts...))

		if nv.Type == cma.VariableReference || nv.Type == cma.VariableMediaReference {
			pathName := nv.Friendly + PathSuffix
			pathToVar[pathName] = nv.ID + PathSuffix
			toolOpts = append(toolOpts, mcp.WithString(pathName,
				mcp.Description(fmt.Sprintf(
					"Field path inside the referenced entity to read as input for %q (e.g. \"fields.title.en-US\").",
					nv.Friendly)),
			))
		}
	}

	toolOpts = append(toolOpts,
		mcp.WithString("outputFormat",
			mcp.Required(),
			mcp.Enum(cma.OutputFormats()...),
			mcp.DefaultString(string(cma.FormatMarkdown)),
			mcp.Description("Format of the generated content."),
		),
		mcp.WithBoolean("waitForCompletion",
			mcp.DefaultBool(true),
			mcp.Description("Wait for the invocation to finish instead of returning its initial state."),
		),
	)

	// Expose routing parameters only when deployment config leaves
	// them open.
	if opts.SpaceID == "" {
		toolOpts = append(toolOpts, mcp.WithString("spaceId",
			mcp.Required(), mcp.Description("Space to invoke the action in.")))
	}
	if opts.EnvironmentID == "" {
		toolOpts = append(toolOpts, mcp.WithString("environmentId",
			mcp.Required(), mcp.Description("Environment to invoke the action in.")))
	}

	return mcp.NewTool(ToolName(action.ID()), toolOpts...), nameToVar, pathToVar
}

// toolDescription composes the agent-facing tool description.
func toolDescription(action *cma.AIAction, named []namedVariable) string {
	var b strings.Builder
	b.WriteString(guidancePreamble)
	b.WriteString("\n\nAI Action: ")
	b.WriteString(action.Name)
	if action.Description != "" {
		b.WriteString(" - ")
		b.WriteString(action.Description)
	}

	hasRefs := false
	for _, nv := range named {
		if nv.Type == cma.VariableReference || nv.Type == cma.VariableMediaReference {
			hasRefs = true
			break
		}
	}
	if hasRefs {
		b.WriteString("\n\nReference parameters take the ID of an entity in the space; the matching \"<name>")
		b.WriteString(PathSuffix)
		b.WriteString("\" parameter selects which field of that entity to read.")
	}

	fmt.Fprintf(&b, "\n\nModel: %s (temperature %g). %s",
		action.Configuration.ModelType, action.Configuration.ModelTemperature, resultCaveat)
	return b.String()
}

// variableDescription synthesizes the property description for one
// variable, embedding its declared type and usage hints.
func variableDescription(nv namedVariable) string {
	var b strings.Builder
	if nv.Description != "" {
		b.WriteString(nv.Description)
	} else if nv.Name != "" {
		b.WriteString(nv.Name)
	} else {
		b.WriteString("Value for this variable")
	}
	fmt.Fprintf(&b, " (type: %s).", nv.Type)

	switch nv.Type {
	case cma.VariableStringOptionsList:
		if nv.Configuration != nil && len(nv.Configuration.Values) > 0 {
			fmt.Fprintf(&b, " Allowed values: %s.", strings.Join(nv.Configuration.Values, ", "))
		}
	case cma.VariableReference:
		b.WriteString(" Provide the ID of an entry from the space.")
	case cma.VariableMediaReference:
		b.WriteString(" Provide the ID of an asset from the space.")
	case cma.VariableResourceLink:
		b.WriteString(" Provide the ID of the linked resource.")
	}
	return b.String()
}
