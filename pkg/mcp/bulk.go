package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ivo-toby/contentful-mcp-sub000/internal/contentful"
)

func bulkPublishTool() mcp.Tool {
	return mcp.NewTool("bulk_publish",
		mcp.WithDescription("Publish multiple entries and assets in a single bulk action. Returns the bulk action; poll it with get_bulk_action"),
		mcp.WithArray("entryIds", mcp.Description("IDs of the entries to publish"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("assetIds", mcp.Description("IDs of the assets to publish"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func bulkUnpublishTool() mcp.Tool {
	return mcp.NewTool("bulk_unpublish",
		mcp.WithDescription("Unpublish multiple entries and assets in a single bulk action"),
		mcp.WithArray("entryIds", mcp.Description("IDs of the entries to unpublish"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("assetIds", mcp.Description("IDs of the assets to unpublish"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func bulkValidateTool() mcp.Tool {
	return mcp.NewTool("bulk_validate",
		mcp.WithDescription("Validate multiple entries without publishing them"),
		mcp.WithArray("entryIds", mcp.Description("IDs of the entries to validate"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func getBulkActionTool() mcp.Tool {
	return mcp.NewTool("get_bulk_action",
		mcp.WithDescription("Check the status of a bulk action"),
		mcp.WithString("bulkActionId", mcp.Required(), mcp.Description("ID of the bulk action")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

// --- Handlers ---

func (s *ContentfulServer) handleBulkPublish(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.runBulk(ctx, req, "publish", s.api.CreateBulkPublish)
}

func (s *ContentfulServer) handleBulkUnpublish(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.runBulk(ctx, req, "unpublish", s.api.CreateBulkUnpublish)
}

func (s *ContentfulServer) handleBulkValidate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.runBulk(ctx, req, "validate", s.api.CreateBulkValidate)
}

type bulkFn func(ctx context.Context, spaceID, environmentID string, entryIDs, assetIDs []string) (*contentful.BulkAction, error)

func (s *ContentfulServer) runBulk(ctx context.Context, req mcp.CallToolRequest, action string, fn bulkFn) (*mcp.CallToolResult, error) {
	entryIDs := extractStringSlice(req, "entryIds")
	assetIDs := extractStringSlice(req, "assetIds")
	if len(entryIDs) == 0 && len(assetIDs) == 0 {
		return mcp.NewToolResultError("at least one of entryIds or assetIds is required"), nil
	}
	spaceID, environmentID, err := s.resolveSpaceEnv(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ctx = s.requestContext(ctx, spaceID, environmentID)

	ba, bulkErr := fn(ctx, spaceID, environmentID, entryIDs, assetIDs)
	if bulkErr != nil {
		return errorResult(fmt.Sprintf("bulk %s failed", action), bulkErr), nil
	}
	return marshalResult(ba)
}

func (s *ContentfulServer) handleGetBulkAction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bulkActionID, err := req.RequireString("bulkActionId")
	if err != nil {
		return mcp.NewToolResultError("bulkActionId is required"), nil
	}
	spaceID, environmentID, err := s.resolveSpaceEnv(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ctx = s.requestContext(ctx, spaceID, environmentID)

	ba, getErr := s.api.GetBulkAction(ctx, spaceID, environmentID, bulkActionID)
	if getErr != nil {
		return errorResult("bulk action lookup failed", getErr), nil
	}
	return marshalResult(ba)
}

// extractStringSlice reads an array argument, keeping only string elements.
func extractStringSlice(req mcp.CallToolRequest, key string) []string {
	raw, ok := req.GetArguments()[key]
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
