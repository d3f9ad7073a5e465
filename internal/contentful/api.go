package contentful

import (
	"context"

	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

// API is the surface of the remote client the tool layer consumes.
// Satisfied by *Client; tests substitute mocks.
type API interface {
	// AI actions
	ListAIActions(ctx context.Context, spaceID, environmentID, status string) (*Collection[cma.AIAction], error)
	GetAIAction(ctx context.Context, spaceID, environmentID, actionID string) (*cma.AIAction, error)
	InvokeAIAction(ctx context.Context, spaceID, environmentID, actionID string, req *cma.InvocationRequest) (*cma.Invocation, error)
	GetAIActionInvocation(ctx context.Context, spaceID, environmentID, actionID, invocationID string) (*cma.Invocation, error)

	// Entries
	SearchEntries(ctx context.Context, spaceID, environmentID string, q EntryQuery) (*Collection[Entry], error)
	GetEntry(ctx context.Context, spaceID, environmentID, entryID string) (*Entry, error)
	CreateEntry(ctx context.Context, spaceID, environmentID, contentTypeID string, fields map[string]any) (*Entry, error)
	UpdateEntry(ctx context.Context, spaceID, environmentID, entryID string, version int, fields map[string]any) (*Entry, error)
	DeleteEntry(ctx context.Context, spaceID, environmentID, entryID string, version int) error
	PublishEntry(ctx context.Context, spaceID, environmentID, entryID string, version int) (*Entry, error)
	UnpublishEntry(ctx context.Context, spaceID, environmentID, entryID string, version int) (*Entry, error)

	// Assets
	ListAssets(ctx context.Context, spaceID, environmentID string, q ListQuery) (*Collection[Asset], error)
	GetAsset(ctx context.Context, spaceID, environmentID, assetID string) (*Asset, error)
	UpdateAsset(ctx context.Context, spaceID, environmentID, assetID string, version int, fields map[string]any) (*Asset, error)
	DeleteAsset(ctx context.Context, spaceID, environmentID, assetID string, version int) error
	PublishAsset(ctx context.Context, spaceID, environmentID, assetID string, version int) (*Asset, error)
	UnpublishAsset(ctx context.Context, spaceID, environmentID, assetID string, version int) (*Asset, error)

	// Spaces and environments
	ListSpaces(ctx context.Context) (*Collection[Space], error)
	GetSpace(ctx context.Context, spaceID string) (*Space, error)
	ListEnvironments(ctx context.Context, spaceID string) (*Collection[Environment], error)
	CreateEnvironment(ctx context.Context, spaceID, environmentID, name string) (*Environment, error)
	DeleteEnvironment(ctx context.Context, spaceID, environmentID string) error

	// Content types
	ListContentTypes(ctx context.Context, spaceID, environmentID string) (*Collection[ContentType], error)
	GetContentType(ctx context.Context, spaceID, environmentID, contentTypeID string) (*ContentType, error)
	PublishContentType(ctx context.Context, spaceID, environmentID, contentTypeID string, version int) (*ContentType, error)

	// Bulk actions
	CreateBulkPublish(ctx context.Context, spaceID, environmentID string, entryIDs, assetIDs []string) (*BulkAction, error)
	CreateBulkUnpublish(ctx context.Context, spaceID, environmentID string, entryIDs, assetIDs []string) (*BulkAction, error)
	CreateBulkValidate(ctx context.Context, spaceID, environmentID string, entryIDs, assetIDs []string) (*BulkAction, error)
	GetBulkAction(ctx context.Context, spaceID, environmentID, bulkActionID string) (*BulkAction, error)

	// Comments
	ListComments(ctx context.Context, spaceID, environmentID, entryID string) (*Collection[Comment], error)
	CreateComment(ctx context.Context, spaceID, environmentID, entryID, body string) (*Comment, error)
	DeleteComment(ctx context.Context, spaceID, environmentID, entryID, commentID string, version int) error

	// GraphQL
	GraphQL(ctx context.Context, spaceID, environmentID string, req GraphQLRequest) (*GraphQLResponse, error)
}

var _ API = (*Client)(nil)
