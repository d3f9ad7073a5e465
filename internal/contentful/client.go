package contentful

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

const (
	// DefaultHost is the production Content Management API host.
	DefaultHost = "api.contentful.com"
	// DefaultGraphQLHost is the production GraphQL content host.
	DefaultGraphQLHost = "graphql.contentful.com"

	contentTypeHeader   = "application/vnd.contentful.management.v1+json"
	versionHeader       = "X-Contentful-Version"
	entityContentHeader = "X-Contentful-Content-Type"

	defaultTimeout = 30 * time.Second
)

// Config configures the remote API client.
type Config struct {
	Token       string
	Host        string
	GraphQLHost string
	Timeout     time.Duration
	Debug       bool
}

// Client talks to the remote Content Management API. It owns
// authentication and transient-error retries; callers see structured
// CMAErrors for anything the remote rejects.
type Client struct {
	rest    *resty.Client
	graphql *resty.Client
	logger  *slog.Logger
}

// NewClient creates a Client from config. The token is required.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.Token == "" {
		return nil, cma.NewError(cma.ErrCodeValidation, "management access token is required")
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.GraphQLHost == "" {
		cfg.GraphQLHost = DefaultGraphQLHost
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	rest := resty.New().
		SetBaseURL("https://" + cfg.Host).
		SetAuthToken(cfg.Token).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", contentTypeHeader).
		SetRetryCount(3).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second)
	rest.AddRetryCondition(retryCondition)
	rest.SetDebug(cfg.Debug)

	graphql := resty.New().
		SetBaseURL("https://" + cfg.GraphQLHost).
		SetAuthToken(cfg.Token).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{rest: rest, graphql: graphql, logger: logger}, nil
}

// SetBaseURL overrides both endpoints with an explicit URL. Test hook.
func (c *Client) SetBaseURL(u string) {
	c.rest.SetBaseURL(u)
	c.graphql.SetBaseURL(u)
}

// retryCondition retries network errors and transient server statuses.
func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code >= 500 || code == http.StatusTooManyRequests
}

// apiError mirrors the remote error envelope.
type apiError struct {
	Sys struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	} `json:"sys"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

type requestOpts struct {
	body    any
	result  any
	query   map[string]string
	headers map[string]string
}

// do performs one request and maps failures to structured errors.
func (c *Client) do(ctx context.Context, method, path string, opts requestOpts) error {
	req := c.rest.R().SetContext(ctx).SetError(&apiError{})
	if opts.body != nil {
		req.SetBody(opts.body)
	}
	if opts.result != nil {
		req.SetResult(opts.result)
	}
	for k, v := range opts.query {
		req.SetQueryParam(k, v)
	}
	for k, v := range opts.headers {
		req.SetHeader(k, v)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return cma.NewErrorf(cma.ErrCodeRemote, "%s %s: request failed", method, path).WithCause(err)
	}

	c.logger.DebugContext(ctx, "cma request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode()),
	)

	return responseError(resp, method, path)
}

// responseError converts a non-2xx response into a CMAError, using the
// remote-provided message when available.
func responseError(resp *resty.Response, method, path string) error {
	status := resp.StatusCode()
	if status < 400 {
		return nil
	}

	msg := fmt.Sprintf("%s %s returned %d", method, path, status)
	details := map[string]any{"status": status}
	if ae, ok := resp.Error().(*apiError); ok && ae != nil && ae.Message != "" {
		msg = ae.Message
		if ae.Sys.ID != "" {
			details["error_id"] = ae.Sys.ID
		}
		if ae.RequestID != "" {
			details["request_id"] = ae.RequestID
		}
	}

	code := cma.ErrCodeRemote
	switch status {
	case http.StatusNotFound:
		code = cma.ErrCodeNotFound
	case http.StatusConflict:
		code = cma.ErrCodeConflict
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		code = cma.ErrCodeValidation
	}
	return cma.NewError(code, msg).WithDetails(details)
}

// envPath builds the environment-scoped path prefix.
func envPath(spaceID, environmentID string) string {
	return fmt.Sprintf("/spaces/%s/environments/%s", spaceID, environmentID)
}

func versionOpt(version int) map[string]string {
	return map[string]string{versionHeader: fmt.Sprintf("%d", version)}
}
