package contentful

import (
	"context"
	"fmt"
	"net/http"
)

// bulkEntities builds the link payload for a bulk action over entries
// and assets.
func bulkEntities(entryIDs, assetIDs []string) map[string]any {
	items := make([]map[string]any, 0, len(entryIDs)+len(assetIDs))
	for _, id := range entryIDs {
		items = append(items, map[string]any{
			"sys": map[string]any{"type": "Link", "linkType": "Entry", "id": id},
		})
	}
	for _, id := range assetIDs {
		items = append(items, map[string]any{
			"sys": map[string]any{"type": "Link", "linkType": "Asset", "id": id},
		})
	}
	return map[string]any{"entities": map[string]any{"items": items}}
}

// CreateBulkPublish starts a bulk publish over the given entries and assets.
func (c *Client) CreateBulkPublish(ctx context.Context, spaceID, environmentID string, entryIDs, assetIDs []string) (*BulkAction, error) {
	return c.createBulkAction(ctx, spaceID, environmentID, "publish", entryIDs, assetIDs)
}

// CreateBulkUnpublish starts a bulk unpublish over the given entries and assets.
func (c *Client) CreateBulkUnpublish(ctx context.Context, spaceID, environmentID string, entryIDs, assetIDs []string) (*BulkAction, error) {
	return c.createBulkAction(ctx, spaceID, environmentID, "unpublish", entryIDs, assetIDs)
}

// CreateBulkValidate starts a bulk validation over the given entries and assets.
func (c *Client) CreateBulkValidate(ctx context.Context, spaceID, environmentID string, entryIDs, assetIDs []string) (*BulkAction, error) {
	return c.createBulkAction(ctx, spaceID, environmentID, "validate", entryIDs, assetIDs)
}

func (c *Client) createBulkAction(ctx context.Context, spaceID, environmentID, action string, entryIDs, assetIDs []string) (*BulkAction, error) {
	var out BulkAction
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("%s/bulk_actions/%s", envPath(spaceID, environmentID), action), requestOpts{
		body:   bulkEntities(entryIDs, assetIDs),
		result: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBulkAction fetches the current state of a bulk action.
func (c *Client) GetBulkAction(ctx context.Context, spaceID, environmentID, bulkActionID string) (*BulkAction, error) {
	var out BulkAction
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/bulk_actions/actions/%s", envPath(spaceID, environmentID), bulkActionID), requestOpts{
		result: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
