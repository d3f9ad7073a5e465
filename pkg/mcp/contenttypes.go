package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func listContentTypesTool() mcp.Tool {
	return mcp.NewTool("list_content_types",
		mcp.WithDescription("List the content types of an environment"),
		mcp.WithString("select", mcp.Description("Optional jq expression applied to the result")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func getContentTypeTool() mcp.Tool {
	return mcp.NewTool("get_content_type",
		mcp.WithDescription("Retrieve a content type definition including its fields"),
		mcp.WithString("contentTypeId", mcp.Required(), mcp.Description("ID of the content type")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func publishContentTypeTool() mcp.Tool {
	return mcp.NewTool("publish_content_type",
		mcp.WithDescription("Publish a content type so entries can be created from it"),
		mcp.WithString("contentTypeId", mcp.Required(), mcp.Description("ID of the content type to publish")),
		mcp.WithNumber("version", mcp.Required(), mcp.Description("Current version of the content type")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

// --- Handlers ---

func (s *ContentfulServer) handleListContentTypes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spaceID, environmentID, err := s.resolveSpaceEnv(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ctx = s.requestContext(ctx, spaceID, environmentID)

	col, listErr := s.api.ListContentTypes(ctx, spaceID, environmentID)
	if listErr != nil {
		return errorResult("content type listing failed", listErr), nil
	}

	out, projErr := s.project(ctx, req, col)
	if projErr != nil {
		return errorResult("projection failed", projErr), nil
	}
	return marshalResult(out)
}

func (s *ContentfulServer) handleGetContentType(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contentTypeID, err := req.RequireString("contentTypeId")
	if err != nil {
		return mcp.NewToolResultError("contentTypeId is required"), nil
	}
	spaceID, environmentID, err := s.resolveSpaceEnv(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ctx = s.requestContext(ctx, spaceID, environmentID)

	ct, getErr := s.api.GetContentType(ctx, spaceID, environmentID, contentTypeID)
	if getErr != nil {
		return errorResult("content type lookup failed", getErr), nil
	}
	return marshalResult(ct)
}

func (s *ContentfulServer) handlePublishContentType(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contentTypeID, err := req.RequireString("contentTypeId")
	if err != nil {
		return mcp.NewToolResultError("contentTypeId is required"), nil
	}
	version, err := req.RequireInt("version")
	if err != nil {
		return mcp.NewToolResultError("version is required"), nil
	}
	spaceID, environmentID, err := s.resolveSpaceEnv(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ctx = s.requestContext(ctx, spaceID, environmentID)

	ct, pubErr := s.api.PublishContentType(ctx, spaceID, environmentID, contentTypeID, version)
	if pubErr != nil {
		return errorResult("content type publish failed", pubErr), nil
	}
	return marshalResult(ct)
}
