package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextAccessors(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, RequestID(ctx))
	assert.Empty(t, SpaceID(ctx))
	assert.Empty(t, EnvironmentID(ctx))
	assert.Empty(t, ActionID(ctx))

	ctx = WithRequestID(ctx, "req1")
	ctx = WithSpaceID(ctx, "space1")
	ctx = WithEnvironmentID(ctx, "master")
	ctx = WithActionID(ctx, "action1")

	assert.Equal(t, "req1", RequestID(ctx))
	assert.Equal(t, "space1", SpaceID(ctx))
	assert.Equal(t, "master", EnvironmentID(ctx))
	assert.Equal(t, "action1", ActionID(ctx))
}

func TestCorrelationHandlerInjectsIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCorrelationHandler(slog.NewJSONHandler(&buf, nil)))

	ctx := WithActionID(WithSpaceID(WithRequestID(context.Background(), "req1"), "space1"), "action1")
	logger.InfoContext(ctx, "invoking")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "invoking", record["msg"])
	assert.Equal(t, "req1", record["request_id"])
	assert.Equal(t, "space1", record["space_id"])
	assert.Equal(t, "action1", record["action_id"])
	assert.NotContains(t, record, "environment_id")
}

func TestCorrelationHandlerPlainContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCorrelationHandler(slog.NewJSONHandler(&buf, nil)))

	logger.Info("plain")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.NotContains(t, record, "request_id")
}

func TestCorrelationHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCorrelationHandler(slog.NewJSONHandler(&buf, nil))).With("component", "client")

	logger.InfoContext(WithRequestID(context.Background(), "req1"), "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "client", record["component"])
	assert.Equal(t, "req1", record["request_id"])
}
