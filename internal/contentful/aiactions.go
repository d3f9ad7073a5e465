package contentful

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

// ListAIActions returns the action definitions in an environment,
// optionally filtered by publication status ("published", "draft").
func (c *Client) ListAIActions(ctx context.Context, spaceID, environmentID, status string) (*Collection[cma.AIAction], error) {
	var out Collection[cma.AIAction]
	query := map[string]string{}
	if status != "" {
		query["status"] = status
	}
	err := c.do(ctx, http.MethodGet, envPath(spaceID, environmentID)+"/ai/actions", requestOpts{
		result: &out,
		query:  query,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAIAction fetches one action definition by ID.
func (c *Client) GetAIAction(ctx context.Context, spaceID, environmentID, actionID string) (*cma.AIAction, error) {
	var out cma.AIAction
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/ai/actions/%s", envPath(spaceID, environmentID), actionID), requestOpts{
		result: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// InvokeAIAction starts an invocation and returns its initial state,
// which may or may not already be terminal.
func (c *Client) InvokeAIAction(ctx context.Context, spaceID, environmentID, actionID string, req *cma.InvocationRequest) (*cma.Invocation, error) {
	var out cma.Invocation
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("%s/ai/actions/%s/invoke", envPath(spaceID, environmentID), actionID), requestOpts{
		body:   req,
		result: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAIActionInvocation fetches the current state of an invocation.
func (c *Client) GetAIActionInvocation(ctx context.Context, spaceID, environmentID, actionID, invocationID string) (*cma.Invocation, error) {
	var out cma.Invocation
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/ai/actions/%s/invocations/%s", envPath(spaceID, environmentID), actionID, invocationID), requestOpts{
		result: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
