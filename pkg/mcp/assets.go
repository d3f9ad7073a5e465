package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ivo-toby/contentful-mcp-sub000/internal/contentful"
)

func listAssetsTool() mcp.Tool {
	return mcp.NewTool("list_assets",
		mcp.WithDescription("List assets in a space with pagination"),
		mcp.WithNumber("limit", mcp.Description("Maximum number of assets to return (default 10, max 100)")),
		mcp.WithNumber("skip", mcp.Description("Number of assets to skip for pagination")),
		mcp.WithString("select", mcp.Description("Optional jq expression applied to the result, e.g. '.items[].sys.id'")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func getAssetTool() mcp.Tool {
	return mcp.NewTool("get_asset",
		mcp.WithDescription("Retrieve a single asset by ID"),
		mcp.WithString("assetId", mcp.Required(), mcp.Description("ID of the asset")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func updateAssetTool() mcp.Tool {
	return mcp.NewTool("update_asset",
		mcp.WithDescription("Update an asset's metadata. Requires the asset's current version"),
		mcp.WithString("assetId", mcp.Required(), mcp.Description("ID of the asset to update")),
		mcp.WithObject("fields", mcp.Required(), mcp.Description("Asset fields keyed by field ID, then locale")),
		mcp.WithNumber("version", mcp.Required(), mcp.Description("Current version of the asset (from sys.version)")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func deleteAssetTool() mcp.Tool {
	return mcp.NewTool("delete_asset",
		mcp.WithDescription("Delete an asset. The asset must be unpublished first"),
		mcp.WithString("assetId", mcp.Required(), mcp.Description("ID of the asset to delete")),
		mcp.WithNumber("version", mcp.Required(), mcp.Description("Current version of the asset")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func publishAssetTool() mcp.Tool {
	return mcp.NewTool("publish_asset",
		mcp.WithDescription("Publish an asset so it becomes visible through the delivery API"),
		mcp.WithString("assetId", mcp.Required(), mcp.Description("ID of the asset to publish")),
		mcp.WithNumber("version", mcp.Required(), mcp.Description("Current version of the asset")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func unpublishAssetTool() mcp.Tool {
	return mcp.NewTool("unpublish_asset",
		mcp.WithDescription("Unpublish an asset, removing it from the delivery API"),
		mcp.WithString("assetId", mcp.Required(), mcp.Description("ID of the asset to unpublish")),
		mcp.WithNumber("version", mcp.Required(), mcp.Description("Current version of the asset")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

// --- Handlers ---

func (s *ContentfulServer) handleListAssets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spaceID, environmentID, err := s.resolveSpaceEnv(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ctx = s.requestContext(ctx, spaceID, environmentID)

	q := contentful.ListQuery{
		Limit: req.GetInt("limit", 10),
		Skip:  req.GetInt("skip", 0),
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	col, listErr := s.api.ListAssets(ctx, spaceID, environmentID, q)
	if listErr != nil {
		return errorResult("asset listing failed", listErr), nil
	}

	out, projErr := s.project(ctx, req, col)
	if projErr != nil {
		return errorResult("projection failed", projErr), nil
	}
	return marshalResult(out)
}

func (s *ContentfulServer) handleGetAsset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assetID, err := req.RequireString("assetId")
	if err != nil {
		return mcp.NewToolResultError("assetId is required"), nil
	}
	spaceID, environmentID, err := s.resolveSpaceEnv(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ctx = s.requestContext(ctx, spaceID, environmentID)

	asset, getErr := s.api.GetAsset(ctx, spaceID, environmentID, assetID)
	if getErr != nil {
		return errorResult("asset lookup failed", getErr), nil
	}
	return marshalResult(asset)
}

func (s *ContentfulServer) handleUpdateAsset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assetID, err := req.RequireString("assetId")
	if err != nil {
		return mcp.NewToolResultError("assetId is required"), nil
	}
	fields := mcp.ParseStringMap(req, "fields", nil)
	if fields == nil {
		return mcp.NewToolResultError("fields is required"), nil
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

	asset, updateErr := s.api.UpdateAsset(ctx, spaceID, environmentID, assetID, version, fields)
	if updateErr != nil {
		return errorResult("asset update failed", updateErr), nil
	}
	return marshalResult(asset)
}

func (s *ContentfulServer) handleDeleteAsset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assetID, err := req.RequireString("assetId")
	if err != nil {
		return mcp.NewToolResultError("assetId is required"), nil
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

	if delErr := s.api.DeleteAsset(ctx, spaceID, environmentID, assetID, version); delErr != nil {
		return errorResult("asset deletion failed", delErr), nil
	}
	return marshalResult(map[string]any{"deleted": true, "assetId": assetID})
}

func (s *ContentfulServer) handlePublishAsset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assetID, err := req.RequireString("assetId")
	if err != nil {
		return mcp.NewToolResultError("assetId is required"), nil
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

	asset, pubErr := s.api.PublishAsset(ctx, spaceID, environmentID, assetID, version)
	if pubErr != nil {
		return errorResult("asset publish failed", pubErr), nil
	}
	return marshalResult(asset)
}

func (s *ContentfulServer) handleUnpublishAsset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assetID, err := req.RequireString("assetId")
	if err != nil {
		return mcp.NewToolResultError("assetId is required"), nil
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

	asset, unpubErr := s.api.UnpublishAsset(ctx, spaceID, environmentID, assetID, version)
	if unpubErr != nil {
		return errorResult("asset unpublish failed", unpubErr), nil
	}
	return marshalResult(asset)
}
