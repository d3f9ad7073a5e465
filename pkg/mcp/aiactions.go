package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ivo-toby/contentful-mcp-sub000/internal/aiactions"
	"github.com/ivo-toby/contentful-mcp-sub000/internal/logging"
)

func listAIActionsTool() mcp.Tool {
	return mcp.NewTool("list_ai_actions",
		mcp.WithDescription("List the AI Actions configured in a space. Each published action is also exposed as its own ai_action_* tool"),
		mcp.WithString("status", mcp.Description("Filter by status"), mcp.Enum("all", "published")),
		mcp.WithString("select", mcp.Description("Optional jq expression applied to the result")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func getAIActionTool() mcp.Tool {
	return mcp.NewTool("get_ai_action",
		mcp.WithDescription("Retrieve one AI Action including its instruction template and variables"),
		mcp.WithString("aiActionId", mcp.Required(), mcp.Description("ID of the AI Action")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func invokeAIActionTool() mcp.Tool {
	return mcp.NewTool("invoke_ai_action",
		mcp.WithDescription("Invoke an AI Action by ID with raw variables. Prefer the generated ai_action_* tool for the action, which has named parameters"),
		mcp.WithString("aiActionId", mcp.Required(), mcp.Description("ID of the AI Action to invoke")),
		mcp.WithObject("variables", mcp.Description("Variable values keyed by variable ID")),
		mcp.WithString("outputFormat",
			mcp.Enum("Markdown", "RichText", "PlainText"),
			mcp.DefaultString("Markdown"),
			mcp.Description("Format of the generated content"),
		),
		mcp.WithBoolean("waitForCompletion",
			mcp.DefaultBool(true),
			mcp.Description("Wait for the invocation to finish instead of returning its initial state"),
		),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

// --- Static handlers ---

func (s *ContentfulServer) handleListAIActions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spaceID, environmentID, err := s.resolveSpaceEnv(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ctx = s.requestContext(ctx, spaceID, environmentID)

	status := req.GetString("status", "all")
	if status == "all" {
		status = ""
	}

	col, listErr := s.api.ListAIActions(ctx, spaceID, environmentID, status)
	if listErr != nil {
		return errorResult("AI Action listing failed", listErr), nil
	}

	out, projErr := s.project(ctx, req, col)
	if projErr != nil {
		return errorResult("projection failed", projErr), nil
	}
	return marshalResult(out)
}

func (s *ContentfulServer) handleGetAIAction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	actionID, err := req.RequireString("aiActionId")
	if err != nil {
		return mcp.NewToolResultError("aiActionId is required"), nil
	}
	spaceID, environmentID, err := s.resolveSpaceEnv(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ctx = logging.WithActionID(s.requestContext(ctx, spaceID, environmentID), actionID)

	action, getErr := s.api.GetAIAction(ctx, spaceID, environmentID, actionID)
	if getErr != nil {
		return errorResult("AI Action lookup failed", getErr), nil
	}
	return marshalResult(action)
}

// handleInvokeAIAction is the raw escape hatch: variables are keyed by
// variable ID and sent as-is, with no friendly-name translation.
func (s *ContentfulServer) handleInvokeAIAction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	actionID, err := req.RequireString("aiActionId")
	if err != nil {
		return mcp.NewToolResultError("aiActionId is required"), nil
	}
	spaceID, environmentID, err := s.resolveSpaceEnv(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ctx = logging.WithActionID(s.requestContext(ctx, spaceID, environmentID), actionID)

	action, getErr := s.api.GetAIAction(ctx, spaceID, environmentID, actionID)
	if getErr != nil {
		return errorResult("AI Action lookup failed", getErr), nil
	}

	variables := mcp.ParseStringMap(req, "variables", nil)
	translated := make(map[string]any, len(variables)+1)
	for k, v := range variables {
		translated[k] = v
	}
	translated["outputFormat"] = req.GetString("outputFormat", "Markdown")

	invReq, buildErr := aiactions.BuildInvocation(action, translated)
	if buildErr != nil {
		return errorResult("invocation build failed", buildErr), nil
	}

	wait := req.GetBool("waitForCompletion", true)
	inv, invErr := s.invoker.Invoke(ctx, spaceID, environmentID, actionID, invReq, wait)
	if invErr != nil {
		return errorResult("AI Action invocation failed", invErr), nil
	}
	return marshalResult(inv)
}

// --- Dynamic tools ---

// handleDynamicAIAction serves every generated ai_action_* tool: it
// recovers the action from the tool name, validates the friendly-named
// arguments against the generated schema, translates them to variable
// IDs and runs the invocation.
func (s *ContentfulServer) handleDynamicAIAction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	actionID, ok := aiactions.ActionIDFromTool(req.Params.Name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("not an AI Action tool: %s", req.Params.Name)), nil
	}

	action, found := s.registry.Get(actionID)
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("AI Action %s is no longer available; the catalog may have changed", actionID)), nil
	}

	spaceID, environmentID, err := s.resolveSpaceEnv(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ctx = logging.WithActionID(s.requestContext(ctx, spaceID, environmentID), actionID)

	args := req.GetArguments()

	if tool, hasTool := s.registry.ToolFor(actionID); hasTool {
		schemaJSON, mErr := json.Marshal(tool.InputSchema)
		if mErr == nil {
			if vErr := s.validator.Validate(args, schemaJSON); vErr != nil {
				return errorResult("invalid arguments", vErr), nil
			}
		}
	}

	translated := s.registry.Translate(actionID, args)

	invReq, buildErr := aiactions.BuildInvocation(action, translated)
	if buildErr != nil {
		return errorResult("invocation build failed", buildErr), nil
	}

	wait := req.GetBool("waitForCompletion", true)
	inv, invErr := s.invoker.Invoke(ctx, spaceID, environmentID, actionID, invReq, wait)
	if invErr != nil {
		return errorResult("AI Action invocation failed", invErr), nil
	}
	return marshalResult(inv)
}

// ReloadAIActionTools fetches the published AI Actions and replaces the
// dynamic tool set: the catalog and mapping tables swap atomically,
// stale tools are removed and new ones registered. Satisfies
// refresher.Reloader.
func (s *ContentfulServer) ReloadAIActionTools(ctx context.Context) error {
	if s.spaceID == "" || s.environmentID == "" {
		s.logger.DebugContext(ctx, "no default space/environment configured, skipping AI Action tool generation")
		return nil
	}
	ctx = s.requestContext(ctx, s.spaceID, s.environmentID)

	col, err := s.api.ListAIActions(ctx, s.spaceID, s.environmentID, "published")
	if err != nil {
		return fmt.Errorf("list AI Actions: %w", err)
	}

	before := s.registry.ToolNames()
	s.registry.Reload(col.Items)
	s.validator.Reset()
	after := s.registry.ToolNames()

	current := make(map[string]struct{}, len(after))
	for _, name := range after {
		current[name] = struct{}{}
	}
	var stale []string
	for _, name := range before {
		if _, keep := current[name]; !keep {
			stale = append(stale, name)
		}
	}
	if len(stale) > 0 {
		s.mcpServer.DeleteTools(stale...)
	}

	tools := s.registry.Tools()
	serverTools := make([]server.ServerTool, 0, len(tools))
	for _, tool := range tools {
		serverTools = append(serverTools, server.ServerTool{Tool: tool, Handler: s.handleDynamicAIAction})
	}
	if len(serverTools) > 0 {
		s.mcpServer.AddTools(serverTools...)
	}

	s.logger.InfoContext(ctx, "AI Action tools reloaded",
		"tools", len(serverTools),
		"removed", len(stale),
	)
	return nil
}
