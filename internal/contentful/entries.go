package contentful

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// SearchEntries queries entries in an environment.
func (c *Client) SearchEntries(ctx context.Context, spaceID, environmentID string, q EntryQuery) (*Collection[Entry], error) {
	query := map[string]string{}
	if q.ContentType != "" {
		query["content_type"] = q.ContentType
	}
	if q.Query != "" {
		query["query"] = q.Query
	}
	if q.Limit > 0 {
		query["limit"] = strconv.Itoa(q.Limit)
	}
	if q.Skip > 0 {
		query["skip"] = strconv.Itoa(q.Skip)
	}

	var out Collection[Entry]
	err := c.do(ctx, http.MethodGet, envPath(spaceID, environmentID)+"/entries", requestOpts{
		result: &out,
		query:  query,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEntry fetches one entry by ID.
func (c *Client) GetEntry(ctx context.Context, spaceID, environmentID, entryID string) (*Entry, error) {
	var out Entry
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/entries/%s", envPath(spaceID, environmentID), entryID), requestOpts{
		result: &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateEntry creates a new entry of the given content type.
func (c *Client) CreateEntry(ctx context.Context, spaceID, environmentID, contentTypeID string, fields map[string]any) (*Entry, error) {
	var out Entry
	err := c.do(ctx, http.MethodPost, envPath(spaceID, environmentID)+"/entries", requestOpts{
		body:    map[string]any{"fields": fields},
		result:  &out,
		headers: map[string]string{entityContentHeader: contentTypeID},
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEntry replaces an entry's fields at the given version.
func (c *Client) UpdateEntry(ctx context.Context, spaceID, environmentID, entryID string, version int, fields map[string]any) (*Entry, error) {
	var out Entry
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/entries/%s", envPath(spaceID, environmentID), entryID), requestOpts{
		body:    map[string]any{"fields": fields},
		result:  &out,
		headers: versionOpt(version),
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEntry deletes an entry.
func (c *Client) DeleteEntry(ctx context.Context, spaceID, environmentID, entryID string, version int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/entries/%s", envPath(spaceID, environmentID), entryID), requestOpts{
		headers: versionOpt(version),
	})
}

// PublishEntry publishes an entry at the given version.
func (c *Client) PublishEntry(ctx context.Context, spaceID, environmentID, entryID string, version int) (*Entry, error) {
	var out Entry
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/entries/%s/published", envPath(spaceID, environmentID), entryID), requestOpts{
		result:  &out,
		headers: versionOpt(version),
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UnpublishEntry removes an entry from the published set.
func (c *Client) UnpublishEntry(ctx context.Context, spaceID, environmentID, entryID string, version int) (*Entry, error) {
	var out Entry
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/entries/%s/published", envPath(spaceID, environmentID), entryID), requestOpts{
		result:  &out,
		headers: versionOpt(version),
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
