package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ivo-toby/contentful-mcp-sub000/internal/contentful"
)

func searchEntriesTool() mcp.Tool {
	return mcp.NewTool("search_entries",
		mcp.WithDescription("Search entries in a space. Supports full-text query and content type filtering; results are paginated"),
		mcp.WithString("contentType", mcp.Description("Restrict results to entries of this content type ID")),
		mcp.WithString("query", mcp.Description("Full-text search term")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of entries to return (default 10, max 100)")),
		mcp.WithNumber("skip", mcp.Description("Number of entries to skip for pagination")),
		mcp.WithString("select", mcp.Description("Optional jq expression applied to the result, e.g. '.items[].sys.id'")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func getEntryTool() mcp.Tool {
	return mcp.NewTool("get_entry",
		mcp.WithDescription("Retrieve a single entry by ID"),
		mcp.WithString("entryId", mcp.Required(), mcp.Description("ID of the entry")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func createEntryTool() mcp.Tool {
	return mcp.NewTool("create_entry",
		mcp.WithDescription("Create a new entry. Field values must be keyed by locale, e.g. {\"title\": {\"en-US\": \"Hello\"}}"),
		mcp.WithString("contentType", mcp.Required(), mcp.Description("Content type ID for the new entry")),
		mcp.WithObject("fields", mcp.Required(), mcp.Description("Entry fields keyed by field ID, then locale")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func updateEntryTool() mcp.Tool {
	return mcp.NewTool("update_entry",
		mcp.WithDescription("Update an existing entry. Requires the entry's current version for optimistic locking"),
		mcp.WithString("entryId", mcp.Required(), mcp.Description("ID of the entry to update")),
		mcp.WithObject("fields", mcp.Required(), mcp.Description("Entry fields keyed by field ID, then locale")),
		mcp.WithNumber("version", mcp.Required(), mcp.Description("Current version of the entry (from sys.version)")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func deleteEntryTool() mcp.Tool {
	return mcp.NewTool("delete_entry",
		mcp.WithDescription("Delete an entry. The entry must be unpublished first"),
		mcp.WithString("entryId", mcp.Required(), mcp.Description("ID of the entry to delete")),
		mcp.WithNumber("version", mcp.Required(), mcp.Description("Current version of the entry")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func publishEntryTool() mcp.Tool {
	return mcp.NewTool("publish_entry",
		mcp.WithDescription("Publish an entry so it becomes visible through the delivery API"),
		mcp.WithString("entryId", mcp.Required(), mcp.Description("ID of the entry to publish")),
		mcp.WithNumber("version", mcp.Required(), mcp.Description("Current version of the entry")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func unpublishEntryTool() mcp.Tool {
	return mcp.NewTool("unpublish_entry",
		mcp.WithDescription("Unpublish an entry, removing it from the delivery API"),
		mcp.WithString("entryId", mcp.Required(), mcp.Description("ID of the entry to unpublish")),
		mcp.WithNumber("version", mcp.Required(), mcp.Description("Current version of the entry")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

// --- Handlers ---

func (s *ContentfulServer) handleSearchEntries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spaceID, environmentID, err := s.resolveSpaceEnv(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ctx = s.requestContext(ctx, spaceID, environmentID)

	q := contentful.EntryQuery{
		ContentType: req.GetString("contentType", ""),
		Query:       req.GetString("query", ""),
		Limit:       req.GetInt("limit", 10),
		Skip:        req.GetInt("skip", 0),
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	col, searchErr := s.api.SearchEntries(ctx, spaceID, environmentID, q)
	if searchErr != nil {
		return errorResult("entry search failed", searchErr), nil
	}

	out, projErr := s.project(ctx, req, col)
	if projErr != nil {
		return errorResult("projection failed", projErr), nil
	}
	return marshalResult(out)
}

func (s *ContentfulServer) handleGetEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := req.RequireString("entryId")
	if err != nil {
		return mcp.NewToolResultError("entryId is required"), nil
	}
	spaceID, environmentID, err := s.resolveSpaceEnv(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ctx = s.requestContext(ctx, spaceID, environmentID)

	entry, getErr := s.api.GetEntry(ctx, spaceID, environmentID, entryID)
	if getErr != nil {
		return errorResult("entry lookup failed", getErr), nil
	}
	return marshalResult(entry)
}

func (s *ContentfulServer) handleCreateEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contentType, err := req.RequireString("contentType")
	if err != nil {
		return mcp.NewToolResultError("contentType is required"), nil
	}
	fields := mcp.ParseStringMap(req, "fields", nil)
	if fields == nil {
		return mcp.NewToolResultError("fields is required"), nil
	}
	spaceID, environmentID, err := s.resolveSpaceEnv(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ctx = s.requestContext(ctx, spaceID, environmentID)

	entry, createErr := s.api.CreateEntry(ctx, spaceID, environmentID, contentType, fields)
	if createErr != nil {
		return errorResult("entry creation failed", createErr), nil
	}
	return marshalResult(entry)
}

func (s *ContentfulServer) handleUpdateEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := req.RequireString("entryId")
	if err != nil {
		return mcp.NewToolResultError("entryId is required"), nil
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

	entry, updateErr := s.api.UpdateEntry(ctx, spaceID, environmentID, entryID, version, fields)
	if updateErr != nil {
		return errorResult("entry update failed", updateErr), nil
	}
	return marshalResult(entry)
}

func (s *ContentfulServer) handleDeleteEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := req.RequireString("entryId")
	if err != nil {
		return mcp.NewToolResultError("entryId is required"), nil
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

	if delErr := s.api.DeleteEntry(ctx, spaceID, environmentID, entryID, version); delErr != nil {
		return errorResult("entry deletion failed", delErr), nil
	}
	return marshalResult(map[string]any{"deleted": true, "entryId": entryID})
}

func (s *ContentfulServer) handlePublishEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := req.RequireString("entryId")
	if err != nil {
		return mcp.NewToolResultError("entryId is required"), nil
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

	entry, pubErr := s.api.PublishEntry(ctx, spaceID, environmentID, entryID, version)
	if pubErr != nil {
		return errorResult("entry publish failed", pubErr), nil
	}
	return marshalResult(entry)
}

func (s *ContentfulServer) handleUnpublishEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := req.RequireString("entryId")
	if err != nil {
		return mcp.NewToolResultError("entryId is required"), nil
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

	entry, unpubErr := s.api.UnpublishEntry(ctx, spaceID, environmentID, entryID, version)
	if unpubErr != nil {
		return errorResult("entry unpublish failed", unpubErr), nil
	}
	return marshalResult(entry)
}
