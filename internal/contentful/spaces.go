package contentful

import (
	"context"
	"fmt"
	"net/http"
)

// ListSpaces lists the spaces the token can access.
func (c *Client) ListSpaces(ctx context.Context) (*Collection[Space], error) {
	var out Collection[Space]
	err := c.do(ctx, http.MethodGet, "/spaces", requestOpts{result: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSpace fetches one space by ID.
func (c *Client) GetSpace(ctx context.Context, spaceID string) (*Space, error) {
	var out Space
	err := c.do(ctx, http.MethodGet, "/spaces/"+spaceID, requestOpts{result: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEnvironments lists the environments of a space.
func (c *Client) ListEnvironments(ctx context.Context, spaceID string) (*Collection[Environment], error) {
	var out Collection[Environment]
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/spaces/%s/environments", spaceID), requestOpts{result: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateEnvironment creates a new environment in a space.
func (c *Client) CreateEnvironment(ctx context.Context, spaceID, environmentID, name string) (*Environment, error) {
	var out Environment
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/spaces/%s/environments/%s", spaceID, environmentID), requestOpts{
		body:   map[string]any{"name": name},
		result: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEnvironment deletes an environment from a space.
func (c *Client) DeleteEnvironment(ctx context.Context, spaceID, environmentID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/spaces/%s/environments/%s", spaceID, environmentID), requestOpts{})
}
