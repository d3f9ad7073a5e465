package contentful

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

// GraphQL runs a query against the GraphQL content endpoint for one
// environment. Resolver errors are returned in the response body, not
// as a Go error; only transport and HTTP-level failures error out.
func (c *Client) GraphQL(ctx context.Context, spaceID, environmentID string, req GraphQLRequest) (*GraphQLResponse, error) {
	var out GraphQLResponse
	resp, err := c.graphql.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(fmt.Sprintf("/content/v1/spaces/%s/environments/%s", spaceID, environmentID))
	if err != nil {
		return nil, cma.NewError(cma.ErrCodeRemote, "graphql request failed").WithCause(err)
	}
	if resp.StatusCode() >= 400 {
		code := cma.ErrCodeRemote
		if resp.StatusCode() == http.StatusNotFound {
			code = cma.ErrCodeNotFound
		}
		return nil, cma.NewErrorf(code, "graphql endpoint returned %d", resp.StatusCode()).
			WithDetails(map[string]any{"status": resp.StatusCode()})
	}
	return &out, nil
}
