package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func listSpacesTool() mcp.Tool {
	return mcp.NewTool("list_spaces",
		mcp.WithDescription("List all spaces the management token can access"),
		mcp.WithString("select", mcp.Description("Optional jq expression applied to the result")),
	)
}

func getSpaceTool() mcp.Tool {
	return mcp.NewTool("get_space",
		mcp.WithDescription("Retrieve details of a single space"),
		mcp.WithString("spaceId", mcp.Required(), mcp.Description("ID of the space")),
	)
}

func listEnvironmentsTool() mcp.Tool {
	return mcp.NewTool("list_environments",
		mcp.WithDescription("List the environments of a space"),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
	)
}

func createEnvironmentTool() mcp.Tool {
	return mcp.NewTool("create_environment",
		mcp.WithDescription("Create a new environment in a space"),
		mcp.WithString("environmentId", mcp.Required(), mcp.Description("ID for the new environment")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Display name for the new environment")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
	)
}

func deleteEnvironmentTool() mcp.Tool {
	return mcp.NewTool("delete_environment",
		mcp.WithDescription("Delete an environment from a space. This cannot be undone"),
		mcp.WithString("environmentId", mcp.Required(), mcp.Description("ID of the environment to delete")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
	)
}

// --- Handlers ---

func (s *ContentfulServer) handleListSpaces(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx = s.requestContext(ctx, "", "")

	col, listErr := s.api.ListSpaces(ctx)
	if listErr != nil {
		return errorResult("space listing failed", listErr), nil
	}

	out, projErr := s.project(ctx, req, col)
	if projErr != nil {
		return errorResult("projection failed", projErr), nil
	}
	return marshalResult(out)
}

func (s *ContentfulServer) handleGetSpace(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spaceID, err := req.RequireString("spaceId")
	if err != nil {
		return mcp.NewToolResultError("spaceId is required"), nil
	}
	ctx = s.requestContext(ctx, spaceID, "")

	space, getErr := s.api.GetSpace(ctx, spaceID)
	if getErr != nil {
		return errorResult("space lookup failed", getErr), nil
	}
	return marshalResult(space)
}

func (s *ContentfulServer) handleListEnvironments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spaceID := req.GetString("spaceId", s.spaceID)
	if spaceID == "" {
		return mcp.NewToolResultError("spaceId is required (no default space configured)"), nil
	}
	ctx = s.requestContext(ctx, spaceID, "")

	col, listErr := s.api.ListEnvironments(ctx, spaceID)
	if listErr != nil {
		return errorResult("environment listing failed", listErr), nil
	}
	return marshalResult(col)
}

func (s *ContentfulServer) handleCreateEnvironment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	environmentID, err := req.RequireString("environmentId")
	if err != nil {
		return mcp.NewToolResultError("environmentId is required"), nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}
	spaceID := req.GetString("spaceId", s.spaceID)
	if spaceID == "" {
		return mcp.NewToolResultError("spaceId is required (no default space configured)"), nil
	}
	ctx = s.requestContext(ctx, spaceID, environmentID)

	env, createErr := s.api.CreateEnvironment(ctx, spaceID, environmentID, name)
	if createErr != nil {
		return errorResult("environment creation failed", createErr), nil
	}
	return marshalResult(env)
}

func (s *ContentfulServer) handleDeleteEnvironment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	environmentID, err := req.RequireString("environmentId")
	if err != nil {
		return mcp.NewToolResultError("environmentId is required"), nil
	}
	spaceID := req.GetString("spaceId", s.spaceID)
	if spaceID == "" {
		return mcp.NewToolResultError("spaceId is required (no default space configured)"), nil
	}
	ctx = s.requestContext(ctx, spaceID, environmentID)

	if delErr := s.api.DeleteEnvironment(ctx, spaceID, environmentID); delErr != nil {
		return errorResult("environment deletion failed", delErr), nil
	}
	return marshalResult(map[string]any{"deleted": true, "environmentId": environmentID})
}
