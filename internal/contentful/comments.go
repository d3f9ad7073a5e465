package contentful

import (
	"context"
	"fmt"
	"net/http"
)

// ListComments lists the comments on an entry.
func (c *Client) ListComments(ctx context.Context, spaceID, environmentID, entryID string) (*Collection[Comment], error) {
	var out Collection[Comment]
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/entries/%s/comments", envPath(spaceID, environmentID), entryID), requestOpts{
		result: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateComment adds a comment to an entry.
func (c *Client) CreateComment(ctx context.Context, spaceID, environmentID, entryID, body string) (*Comment, error) {
	var out Comment
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("%s/entries/%s/comments", envPath(spaceID, environmentID), entryID), requestOpts{
		body:   map[string]any{"body": body},
		result: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment removes a comment from an entry.
func (c *Client) DeleteComment(ctx context.Context, spaceID, environmentID, entryID, commentID string, version int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/entries/%s/comments/%s", envPath(spaceID, environmentID), entryID, commentID), requestOpts{
		headers: versionOpt(version),
	})
}
