package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func listCommentsTool() mcp.Tool {
	return mcp.NewTool("list_comments",
		mcp.WithDescription("List the comments on an entry"),
		mcp.WithString("entryId", mcp.Required(), mcp.Description("ID of the entry")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func createCommentTool() mcp.Tool {
	return mcp.NewTool("create_comment",
		mcp.WithDescription("Add a comment to an entry"),
		mcp.WithString("entryId", mcp.Required(), mcp.Description("ID of the entry")),
		mcp.WithString("body", mcp.Required(), mcp.Description("Comment text")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

func deleteCommentTool() mcp.Tool {
	return mcp.NewTool("delete_comment",
		mcp.WithDescription("Delete a comment from an entry"),
		mcp.WithString("entryId", mcp.Required(), mcp.Description("ID of the entry")),
		mcp.WithString("commentId", mcp.Required(), mcp.Description("ID of the comment to delete")),
		mcp.WithNumber("version", mcp.Required(), mcp.Description("Current version of the comment")),
		mcp.WithString("spaceId", mcp.Description("Space ID (defaults to the configured space)")),
		mcp.WithString("environmentId", mcp.Description("Environment ID (defaults to the configured environment)")),
	)
}

// --- Handlers ---

func (s *ContentfulServer) handleListComments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := req.RequireString("entryId")
	if err != nil {
		return mcp.NewToolResultError("entryId is required"), nil
	}
	spaceID, environmentID, err := s.resolveSpaceEnv(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ctx = s.requestContext(ctx, spaceID, environmentID)

	col, listErr := s.api.ListComments(ctx, spaceID, environmentID, entryID)
	if listErr != nil {
		return errorResult("comment listing failed", listErr), nil
	}
	return marshalResult(col)
}

func (s *ContentfulServer) handleCreateComment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := req.RequireString("entryId")
	if err != nil {
		return mcp.NewToolResultError("entryId is required"), nil
	}
	body, err := req.RequireString("body")
	if err != nil {
		return mcp.NewToolResultError("body is required"), nil
	}
	spaceID, environmentID, err := s.resolveSpaceEnv(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ctx = s.requestContext(ctx, spaceID, environmentID)

	comment, createErr := s.api.CreateComment(ctx, spaceID, environmentID, entryID, body)
	if createErr != nil {
		return errorResult("comment creation failed", createErr), nil
	}
	return marshalResult(comment)
}

func (s *ContentfulServer) handleDeleteComment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := req.RequireString("entryId")
	if err != nil {
		return mcp.NewToolResultError("entryId is required"), nil
	}
	commentID, err := req.RequireString("commentId")
	if err != nil {
		return mcp.NewToolResultError("commentId is required"), nil
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

	if delErr := s.api.DeleteComment(ctx, spaceID, environmentID, entryID, commentID, version); delErr != nil {
		return errorResult("comment deletion failed", delErr), nil
	}
	return marshalResult(map[string]any{"deleted": true, "commentId": commentID})
}
