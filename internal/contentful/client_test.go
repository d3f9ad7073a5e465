package contentful

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

// newTestClient starts a stub API server and points a client at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The real API serves JSON; without this header the JSON body
		// is sniffed as text/plain and never unmarshaled.
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{Token: "test-token"}, nil)
	require.NoError(t, err)
	c.SetBaseURL(srv.URL)
	return c
}

func TestNewClientRequiresToken(t *testing.T) {
	_, err := NewClient(Config{}, nil)
	require.Error(t, err)
	assert.True(t, cma.IsCode(err, cma.ErrCodeValidation))
}

func TestListAIActions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spaces/space1/environments/master/ai/actions", r.URL.Path)
		assert.Equal(t, "published", r.URL.Query().Get("status"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"total": 1,
			"items": []map[string]any{
				{"sys": map[string]any{"id": "action1"}, "name": "Translate"},
			},
		})
	})

	col, err := c.ListAIActions(context.Background(), "space1", "master", "published")
	require.NoError(t, err)
	require.Len(t, col.Items, 1)
	assert.Equal(t, "action1", col.Items[0].ID())
	assert.Equal(t, "Translate", col.Items[0].Name)
}

func TestInvokeAIAction(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/spaces/space1/environments/master/ai/actions/action1/invoke", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Markdown", body["outputFormat"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"sys": map[string]any{"id": "inv1", "status": "IN_PROGRESS"},
		})
	})

	inv, err := c.InvokeAIAction(context.Background(), "space1", "master", "action1", &cma.InvocationRequest{
		OutputFormat: cma.FormatMarkdown,
		Variables:    []cma.InvocationVariable{{ID: "v1", Value: "hello"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "inv1", inv.Sys.ID)
	assert.Equal(t, cma.StatusInProgress, inv.Sys.Status)
}

func TestGetEntryNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sys":       map[string]any{"id": "NotFound", "type": "Error"},
			"message":   "The resource could not be found.",
			"requestId": "req-abc",
		})
	})

	_, err := c.GetEntry(context.Background(), "space1", "master", "missing")
	require.Error(t, err)
	assert.True(t, cma.IsCode(err, cma.ErrCodeNotFound))

	var cerr *cma.CMAError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "The resource could not be found.", cerr.Message)
	assert.Equal(t, "req-abc", cerr.Details["request_id"])
}

func TestUpdateEntrySendsVersionHeader(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "3", r.Header.Get("X-Contentful-Version"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sys": map[string]any{"id": "entry1", "version": 4},
		})
	})

	entry, err := c.UpdateEntry(context.Background(), "space1", "master", "entry1", 3, map[string]any{
		"title": map[string]any{"en-US": "Updated"},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, entry.Sys.Version)
}

func TestCreateEntrySendsContentTypeHeader(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "blogPost", r.Header.Get("X-Contentful-Content-Type"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sys": map[string]any{"id": "entry1", "version": 1},
		})
	})

	entry, err := c.CreateEntry(context.Background(), "space1", "master", "blogPost", map[string]any{
		"title": map[string]any{"en-US": "New"},
	})
	require.NoError(t, err)
	assert.Equal(t, "entry1", entry.Sys.ID)
}

func TestVersionConflict(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sys":     map[string]any{"id": "VersionMismatch", "type": "Error"},
			"message": "Version mismatch",
		})
	})

	_, err := c.PublishEntry(context.Background(), "space1", "master", "entry1", 2)
	require.Error(t, err)
	assert.True(t, cma.IsCode(err, cma.ErrCodeConflict))
}

func TestValidationError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sys":     map[string]any{"id": "InvalidEntry", "type": "Error"},
			"message": "Validation error",
		})
	})

	_, err := c.CreateEntry(context.Background(), "space1", "master", "blogPost", map[string]any{})
	require.Error(t, err)
	assert.True(t, cma.IsCode(err, cma.ErrCodeValidation))
}

func TestCreateBulkPublishPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spaces/space1/environments/master/bulk_actions/publish", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		entities := body["entities"].(map[string]any)
		items := entities["items"].([]any)
		require.Len(t, items, 2)

		first := items[0].(map[string]any)["sys"].(map[string]any)
		assert.Equal(t, "Link", first["type"])
		assert.Equal(t, "Entry", first["linkType"])
		assert.Equal(t, "e1", first["id"])

		second := items[1].(map[string]any)["sys"].(map[string]any)
		assert.Equal(t, "Asset", second["linkType"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"sys": map[string]any{"id": "bulk1", "status": "created"},
		})
	})

	ba, err := c.CreateBulkPublish(context.Background(), "space1", "master", []string{"e1"}, []string{"a1"})
	require.NoError(t, err)
	assert.Equal(t, "bulk1", ba.Sys.ID)
}

func TestGraphQLResolverErrorsStayInBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/content/v1/spaces/space1/environments/master", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":   map[string]any{"entryCollection": nil},
			"errors": []map[string]any{{"message": "Cannot query field"}},
		})
	})

	resp, err := c.GraphQL(context.Background(), "space1", "master", GraphQLRequest{Query: "{ entryCollection { total } }"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Errors)
}
