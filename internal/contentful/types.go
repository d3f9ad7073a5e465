package contentful

import "github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"

// Collection is the standard list envelope returned by the remote API.
type Collection[T any] struct {
	Total int `json:"total"`
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
	Items []T `json:"items"`
}

// Entry is a content entry. Fields are localized maps keyed by field ID.
type Entry struct {
	Sys    cma.Sys        `json:"sys"`
	Fields map[string]any `json:"fields"`
}

// Asset is a media asset.
type Asset struct {
	Sys    cma.Sys        `json:"sys"`
	Fields map[string]any `json:"fields"`
}

// Space is a top-level content space.
type Space struct {
	Sys  cma.Sys `json:"sys"`
	Name string  `json:"name"`
}

// Environment is one environment within a space.
type Environment struct {
	Sys  cma.Sys `json:"sys"`
	Name string  `json:"name"`
}

// ContentTypeField describes one field of a content type.
type ContentTypeField struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Required  bool   `json:"required,omitempty"`
	Localized bool   `json:"localized,omitempty"`
}

// ContentType describes the shape of entries of one type.
type ContentType struct {
	Sys          cma.Sys            `json:"sys"`
	Name         string             `json:"name"`
	Description  string             `json:"description,omitempty"`
	DisplayField string             `json:"displayField,omitempty"`
	Fields       []ContentTypeField `json:"fields"`
}

// BulkActionItem references one entity included in a bulk action.
type BulkActionItem struct {
	Sys struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		LinkType string `json:"linkType"`
	} `json:"sys"`
}

// BulkAction is a server-side batch operation over entries and assets.
type BulkAction struct {
	Sys struct {
		ID     string `json:"id"`
		Type   string `json:"type,omitempty"`
		Status string `json:"status"`
	} `json:"sys"`
	Action  string `json:"action,omitempty"`
	Payload any    `json:"payload,omitempty"`
	Error   any    `json:"error,omitempty"`
}

// Comment is a collaboration comment attached to an entry.
type Comment struct {
	Sys  cma.Sys `json:"sys"`
	Body string  `json:"body"`
}

// EntryQuery narrows an entry search.
type EntryQuery struct {
	ContentType string
	Query       string
	Limit       int
	Skip        int
}

// ListQuery narrows a plain collection listing.
type ListQuery struct {
	Limit int
	Skip  int
}

// GraphQLRequest is a query against the GraphQL content endpoint.
type GraphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// GraphQLResponse carries data and any resolver errors verbatim.
type GraphQLResponse struct {
	Data   any   `json:"data,omitempty"`
	Errors []any `json:"errors,omitempty"`
}
