package logging

import (
	"context"
	"log/slog"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	spaceIDKey
	environmentIDKey
	actionIDKey
)

// WithRequestID returns a context with the tool-call request ID set.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithSpaceID returns a context with the space ID set.
func WithSpaceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, spaceIDKey, id)
}

// WithEnvironmentID returns a context with the environment ID set.
func WithEnvironmentID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, environmentIDKey, id)
}

// WithActionID returns a context with the AI Action ID set.
func WithActionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, actionIDKey, id)
}

// RequestID extracts the request ID from the context, or "" if absent.
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

// SpaceID extracts the space ID from the context, or "" if absent.
func SpaceID(ctx context.Context) string {
	v, _ := ctx.Value(spaceIDKey).(string)
	return v
}

// EnvironmentID extracts the environment ID from the context, or "" if absent.
func EnvironmentID(ctx context.Context) string {
	v, _ := ctx.Value(environmentIDKey).(string)
	return v
}

// ActionID extracts the AI Action ID from the context, or "" if absent.
func ActionID(ctx context.Context) string {
	v, _ := ctx.Value(actionIDKey).(string)
	return v
}

// CorrelationHandler wraps an slog.Handler, automatically injecting
// correlation IDs from the context into every log record.
// Use with slog.New(NewCorrelationHandler(inner)) so callers can use
// logger.InfoContext(ctx, ...) and IDs appear automatically.
type CorrelationHandler struct {
	inner slog.Handler
}

// NewCorrelationHandler wraps the given handler with automatic correlation ID injection.
func NewCorrelationHandler(inner slog.Handler) *CorrelationHandler {
	return &CorrelationHandler{inner: inner}
}

func (h *CorrelationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *CorrelationHandler) Handle(ctx context.Context, r slog.Record) error {
	if v := RequestID(ctx); v != "" {
		r.AddAttrs(slog.String("request_id", v))
	}
	if v := SpaceID(ctx); v != "" {
		r.AddAttrs(slog.String("space_id", v))
	}
	if v := EnvironmentID(ctx); v != "" {
		r.AddAttrs(slog.String("environment_id", v))
	}
	if v := ActionID(ctx); v != "" {
		r.AddAttrs(slog.String("action_id", v))
	}
	return h.inner.Handle(ctx, r)
}

func (h *CorrelationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CorrelationHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *CorrelationHandler) WithGroup(name string) slog.Handler {
	return &CorrelationHandler{inner: h.inner.WithGroup(name)}
}
