package contentful

import (
	"context"
	"fmt"
	"net/http"
)

// ListContentTypes lists the content types of an environment.
func (c *Client) ListContentTypes(ctx context.Context, spaceID, environmentID string) (*Collection[ContentType], error) {
	var out Collection[ContentType]
	err := c.do(ctx, http.MethodGet, envPath(spaceID, environmentID)+"/content_types", requestOpts{result: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetContentType fetches one content type by ID.
func (c *Client) GetContentType(ctx context.Context, spaceID, environmentID, contentTypeID string) (*ContentType, error) {
	var out ContentType
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/content_types/%s", envPath(spaceID, environmentID), contentTypeID), requestOpts{
		result: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PublishContentType activates a content type at the given version.
func (c *Client) PublishContentType(ctx context.Context, spaceID, environmentID, contentTypeID string, version int) (*ContentType, error) {
	var out ContentType
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/content_types/%s/published", envPath(spaceID, environmentID), contentTypeID), requestOpts{
		result:  &out,
		headers: versionOpt(version),
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
