package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ivo-toby/contentful-mcp-sub000/internal/aiactions"
	"github.com/ivo-toby/contentful-mcp-sub000/internal/contentful"
	"github.com/ivo-toby/contentful-mcp-sub000/internal/logging"
	"github.com/ivo-toby/contentful-mcp-sub000/internal/query"
	"github.com/ivo-toby/contentful-mcp-sub000/internal/validation"
	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

const shutdownTimeout = 10 * time.Second

// ContentfulServerDeps holds the dependencies for creating a ContentfulServer.
type ContentfulServerDeps struct {
	API           contentful.API
	Logger        *slog.Logger
	SpaceID       string
	EnvironmentID string
	Poll          aiactions.PollConfig
}

// ContentfulServer wraps an MCP server with content-management tool
// handlers plus one dynamically generated tool per published AI Action.
type ContentfulServer struct {
	api       contentful.API
	registry  *aiactions.Registry
	invoker   *aiactions.Invoker
	validator *validation.InputValidator
	projector *query.Projector
	logger    *slog.Logger
	mcpServer *server.MCPServer

	spaceID       string
	environmentID string
}

// NewContentfulServer creates a new ContentfulServer with the static
// tool set registered. Dynamic AI Action tools are added on the first
// catalog refresh.
func NewContentfulServer(deps ContentfulServerDeps) *ContentfulServer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	s := &ContentfulServer{
		api: deps.API,
		registry: aiactions.NewRegistry(aiactions.ToolOptions{
			SpaceID:       deps.SpaceID,
			EnvironmentID: deps.EnvironmentID,
		}, logger),
		invoker:       aiactions.NewInvoker(deps.API, deps.Poll, logger),
		validator:     validation.NewInputValidator(),
		projector:     query.NewProjector(),
		logger:        logger,
		spaceID:       deps.SpaceID,
		environmentID: deps.EnvironmentID,
	}

	mcpSrv := server.NewMCPServer(
		"contentful-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions("Manage content in Contentful: entries, assets, content types, spaces, environments, bulk operations and comments. Tools named ai_action_* run AI Actions configured in the space; prefer them over generating content yourself when one matches the request."),
	)

	mcpSrv.AddTools(s.tools()...)
	s.mcpServer = mcpSrv
	return s
}

// Serve starts the stdio transport and blocks until ctx is cancelled or stdin closes.
func (s *ContentfulServer) Serve(ctx context.Context) error {
	stdio := server.NewStdioServer(s.mcpServer)
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}

// ServeSSE starts the SSE transport on addr and blocks until ctx is cancelled.
func (s *ContentfulServer) ServeSSE(ctx context.Context, addr, baseURL string) error {
	sse := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	errCh := make(chan error, 1)
	go func() {
		errCh <- sse.Start(addr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := sse.Shutdown(shutdownCtx); err != nil {
			return err
		}
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case err := <-errCh:
		return err
	}
}

// ServeHTTP starts the streamable HTTP transport on addr and blocks
// until ctx is cancelled.
func (s *ContentfulServer) ServeHTTP(ctx context.Context, addr string) error {
	httpSrv := server.NewStreamableHTTPServer(s.mcpServer)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.Start(addr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case err := <-errCh:
		return err
	}
}

// MCPServer returns the underlying MCPServer for testing or custom transports.
func (s *ContentfulServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// tools returns the static tool set as ServerTool entries.
func (s *ContentfulServer) tools() []server.ServerTool {
	return []server.ServerTool{
		// Entries
		{Tool: searchEntriesTool(), Handler: s.handleSearchEntries},
		{Tool: getEntryTool(), Handler: s.handleGetEntry},
		{Tool: createEntryTool(), Handler: s.handleCreateEntry},
		{Tool: updateEntryTool(), Handler: s.handleUpdateEntry},
		{Tool: deleteEntryTool(), Handler: s.handleDeleteEntry},
		{Tool: publishEntryTool(), Handler: s.handlePublishEntry},
		{Tool: unpublishEntryTool(), Handler: s.handleUnpublishEntry},
		// Assets
		{Tool: listAssetsTool(), Handler: s.handleListAssets},
		{Tool: getAssetTool(), Handler: s.handleGetAsset},
		{Tool: updateAssetTool(), Handler: s.handleUpdateAsset},
		{Tool: deleteAssetTool(), Handler: s.handleDeleteAsset},
		{Tool: publishAssetTool(), Handler: s.handlePublishAsset},
		{Tool: unpublishAssetTool(), Handler: s.handleUnpublishAsset},
		// Spaces and environments
		{Tool: listSpacesTool(), Handler: s.handleListSpaces},
		{Tool: getSpaceTool(), Handler: s.handleGetSpace},
		{Tool: listEnvironmentsTool(), Handler: s.handleListEnvironments},
		{Tool: createEnvironmentTool(), Handler: s.handleCreateEnvironment},
		{Tool: deleteEnvironmentTool(), Handler: s.handleDeleteEnvironment},
		// Content types
		{Tool: listContentTypesTool(), Handler: s.handleListContentTypes},
		{Tool: getContentTypeTool(), Handler: s.handleGetContentType},
		{Tool: publishContentTypeTool(), Handler: s.handlePublishContentType},
		// Bulk actions
		{Tool: bulkPublishTool(), Handler: s.handleBulkPublish},
		{Tool: bulkUnpublishTool(), Handler: s.handleBulkUnpublish},
		{Tool: bulkValidateTool(), Handler: s.handleBulkValidate},
		{Tool: getBulkActionTool(), Handler: s.handleGetBulkAction},
		// Comments
		{Tool: listCommentsTool(), Handler: s.handleListComments},
		{Tool: createCommentTool(), Handler: s.handleCreateComment},
		{Tool: deleteCommentTool(), Handler: s.handleDeleteComment},
		// GraphQL
		{Tool: graphqlQueryTool(), Handler: s.handleGraphQLQuery},
		// AI Actions (static surface; dynamic ai_action_* tools are
		// registered by RefreshAIActionTools)
		{Tool: listAIActionsTool(), Handler: s.handleListAIActions},
		{Tool: getAIActionTool(), Handler: s.handleGetAIAction},
		{Tool: invokeAIActionTool(), Handler: s.handleInvokeAIAction},
	}
}

// requestContext attaches a fresh request ID plus routing IDs for log
// correlation across the handler and client layers.
func (s *ContentfulServer) requestContext(ctx context.Context, spaceID, environmentID string) context.Context {
	ctx = logging.WithRequestID(ctx, uuid.New().String())
	if spaceID != "" {
		ctx = logging.WithSpaceID(ctx, spaceID)
	}
	if environmentID != "" {
		ctx = logging.WithEnvironmentID(ctx, environmentID)
	}
	return ctx
}

// resolveSpaceEnv picks the space and environment for a call: explicit
// arguments win, deployment defaults fill the gaps.
func (s *ContentfulServer) resolveSpaceEnv(req mcp.CallToolRequest) (string, string, error) {
	spaceID := req.GetString("spaceId", s.spaceID)
	environmentID := req.GetString("environmentId", s.environmentID)
	if spaceID == "" {
		return "", "", fmt.Errorf("spaceId is required (no default space configured)")
	}
	if environmentID == "" {
		environmentID = "master"
	}
	return spaceID, environmentID, nil
}

// project applies an optional jq expression from the "select" argument
// to v before marshalling. Absent expression returns v unchanged.
func (s *ContentfulServer) project(ctx context.Context, req mcp.CallToolRequest, v any) (any, error) {
	expr := req.GetString("select", "")
	if expr == "" {
		return v, nil
	}
	// Round-trip so the projector sees plain JSON values.
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return s.projector.Project(ctx, expr, doc)
}

// marshalResult converts a value to a JSON text tool result.
func marshalResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultJSON(json.RawMessage(data))
}

// errorResult renders a failed remote call as a tool error. Structured
// errors carry their details alongside the message so agents can act
// on them (e.g. the invocation ID of an exhausted poll).
func errorResult(action string, err error) *mcp.CallToolResult {
	var cerr *cma.CMAError
	if errors.As(err, &cerr) && len(cerr.Details) > 0 {
		detail, mErr := json.Marshal(cerr.Details)
		if mErr == nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s: %v %s", action, cerr, detail))
		}
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", action, err))
}
