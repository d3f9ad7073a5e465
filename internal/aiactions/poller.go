package aiactions

import (
	"context"
	"log/slog"
	"time"

	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

// InvocationAPI is the remote surface the orchestrator needs.
// Satisfied by the content API client.
type InvocationAPI interface {
	InvokeAIAction(ctx context.Context, spaceID, environmentID, actionID string, req *cma.InvocationRequest) (*cma.Invocation, error)
	GetAIActionInvocation(ctx context.Context, spaceID, environmentID, actionID, invocationID string) (*cma.Invocation, error)
}

// PollConfig bounds the completion poll loop. The budget is
// attempt-count based, not wall-clock based.
type PollConfig struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Factor       float64
	MaxAttempts  int
}

// DefaultPollConfig returns the standard backoff schedule:
// 1s initial delay growing by 1.5x up to 5s, 10 attempts.
func DefaultPollConfig() PollConfig {
	return PollConfig{
		InitialDelay: time.Second,
		MaxDelay:     5 * time.Second,
		Factor:       1.5,
		MaxAttempts:  10,
	}
}

// Invoker issues AI Action invocations and polls non-terminal ones to
// completion with bounded exponential backoff.
type Invoker struct {
	api    InvocationAPI
	cfg    PollConfig
	logger *slog.Logger

	// sleep is swapped in tests to record delays without waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewInvoker creates an Invoker.
func NewInvoker(api InvocationAPI, cfg PollConfig, logger *slog.Logger) *Invoker {
	if cfg.InitialDelay <= 0 {
		cfg = DefaultPollConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Invoker{api: api, cfg: cfg, logger: logger, sleep: sleepContext}
}

// Invoke issues the invoke call. If wait is false, or the immediate
// result is already terminal, it is returned as-is; otherwise the
// invocation is polled until terminal or the attempt budget runs out.
func (iv *Invoker) Invoke(ctx context.Context, spaceID, environmentID string, actionID string, req *cma.InvocationRequest, wait bool) (*cma.Invocation, error) {
	inv, err := iv.api.InvokeAIAction(ctx, spaceID, environmentID, actionID, req)
	if err != nil {
		return nil, err
	}
	if !wait || inv.Sys.Status.Terminal() {
		return inv, nil
	}
	return iv.poll(ctx, spaceID, environmentID, actionID, inv.Sys.ID)
}

// poll fetches the invocation until a terminal status is observed.
// Each poll call that fails propagates immediately; there is no
// retry-on-transient-error policy at this layer.
func (iv *Invoker) poll(ctx context.Context, spaceID, environmentID, actionID, invocationID string) (*cma.Invocation, error) {
	delay := iv.cfg.InitialDelay

	for attempt := 1; attempt <= iv.cfg.MaxAttempts; attempt++ {
		inv, err := iv.api.GetAIActionInvocation(ctx, spaceID, environmentID, actionID, invocationID)
		if err != nil {
			return nil, err
		}
		if inv.Sys.Status.Terminal() {
			return inv, nil
		}

		iv.logger.DebugContext(ctx, "invocation still pending",
			slog.String("action_id", actionID),
			slog.String("invocation_id", invocationID),
			slog.String("status", string(inv.Sys.Status)),
			slog.Int("attempt", attempt),
		)

		if attempt == iv.cfg.MaxAttempts {
			break
		}
		if err := iv.sleep(ctx, delay); err != nil {
			return nil, err
		}
		delay = time.Duration(float64(delay) * iv.cfg.Factor)
		if delay > iv.cfg.MaxDelay {
			delay = iv.cfg.MaxDelay
		}
	}

	// Distinct from an IN_PROGRESS partial result: callers can re-poll
	// later with the invocation ID carried in the details.
	return nil, cma.NewErrorf(cma.ErrCodePollExhausted,
		"invocation %s did not reach a terminal status after %d polling attempts",
		invocationID, iv.cfg.MaxAttempts).
		WithDetails(map[string]any{
			"invocation_id": invocationID,
			"action_id":     actionID,
			"attempts":      iv.cfg.MaxAttempts,
		})
}

// sleepContext waits for d or until the context is cancelled, so an
// external shutdown aborts a poll loop before its budget is spent.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
