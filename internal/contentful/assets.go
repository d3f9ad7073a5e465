package contentful

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// ListAssets lists assets in an environment.
func (c *Client) ListAssets(ctx context.Context, spaceID, environmentID string, q ListQuery) (*Collection[Asset], error) {
	query := map[string]string{}
	if q.Limit > 0 {
		query["limit"] = strconv.Itoa(q.Limit)
	}
	if q.Skip > 0 {
		query["skip"] = strconv.Itoa(q.Skip)
	}

	var out Collection[Asset]
	err := c.do(ctx, http.MethodGet, envPath(spaceID, environmentID)+"/assets", requestOpts{
		result: &out,
		query:  query,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAsset fetches one asset by ID.
func (c *Client) GetAsset(ctx context.Context, spaceID, environmentID, assetID string) (*Asset, error) {
	var out Asset
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/assets/%s", envPath(spaceID, environmentID), assetID), requestOpts{
		result: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAsset replaces an asset's fields at the given version.
func (c *Client) UpdateAsset(ctx context.Context, spaceID, environmentID, assetID string, version int, fields map[string]any) (*Asset, error) {
	var out Asset
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/assets/%s", envPath(spaceID, environmentID), assetID), requestOpts{
		body:    map[string]any{"fields": fields},
		result:  &out,
		headers: versionOpt(version),
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAsset deletes an asset.
func (c *Client) DeleteAsset(ctx context.Context, spaceID, environmentID, assetID string, version int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/assets/%s", envPath(spaceID, environmentID), assetID), requestOpts{
		headers: versionOpt(version),
	})
}

// PublishAsset publishes an asset at the given version.
func (c *Client) PublishAsset(ctx context.Context, spaceID, environmentID, assetID string, version int) (*Asset, error) {
	var out Asset
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/assets/%s/published", envPath(spaceID, environmentID), assetID), requestOpts{
		result:  &out,
		headers: versionOpt(version),
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UnpublishAsset removes an asset from the published set.
func (c *Client) UnpublishAsset(ctx context.Context, spaceID, environmentID, assetID string, version int) (*Asset, error) {
	var out Asset
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/assets/%s/published", envPath(spaceID, environmentID), assetID), requestOpts{
		result:  &out,
		headers: versionOpt(version),
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
