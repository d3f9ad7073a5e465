package aiactions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivo-toby/contentful-mcp-sub000/pkg/cma"
)

// scriptedAPI returns a fixed sequence of invocation statuses.
type scriptedAPI struct {
	invokeStatus cma.InvocationStatus
	pollStatuses []cma.InvocationStatus

	invokeCalls int
	pollCalls   int
}

func (s *scriptedAPI) InvokeAIAction(_ context.Context, _, _, actionID string, _ *cma.InvocationRequest) (*cma.Invocation, error) {
	s.invokeCalls++
	return &cma.Invocation{Sys: cma.InvocationSys{ID: "inv1", Status: s.invokeStatus}}, nil
}

func (s *scriptedAPI) GetAIActionInvocation(_ context.Context, _, _, _, invocationID string) (*cma.Invocation, error) {
	status := s.pollStatuses[s.pollCalls]
	s.pollCalls++
	return &cma.Invocation{Sys: cma.InvocationSys{ID: invocationID, Status: status}}, nil
}

// newRecordingInvoker wires an Invoker whose sleep records requested
// delays instead of waiting.
func newRecordingInvoker(api InvocationAPI, cfg PollConfig) (*Invoker, *[]time.Duration) {
	iv := NewInvoker(api, cfg, nil)
	delays := &[]time.Duration{}
	iv.sleep = func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
	return iv, delays
}

func TestInvokeReturnsImmediatelyWhenTerminal(t *testing.T) {
	api := &scriptedAPI{invokeStatus: cma.StatusCompleted}
	iv, delays := newRecordingInvoker(api, DefaultPollConfig())

	inv, err := iv.Invoke(context.Background(), "s", "e", "a1", &cma.InvocationRequest{}, true)
	require.NoError(t, err)

	assert.Equal(t, cma.StatusCompleted, inv.Sys.Status)
	assert.Equal(t, 0, api.pollCalls)
	assert.Empty(t, *delays)
}

func TestInvokeNoWaitSkipsPolling(t *testing.T) {
	api := &scriptedAPI{invokeStatus: cma.StatusInProgress}
	iv, _ := newRecordingInvoker(api, DefaultPollConfig())

	inv, err := iv.Invoke(context.Background(), "s", "e", "a1", &cma.InvocationRequest{}, false)
	require.NoError(t, err)

	assert.Equal(t, cma.StatusInProgress, inv.Sys.Status)
	assert.Equal(t, 0, api.pollCalls)
}

func TestInvokePollsUntilCompleted(t *testing.T) {
	api := &scriptedAPI{
		invokeStatus: cma.StatusScheduled,
		pollStatuses: []cma.InvocationStatus{
			cma.StatusInProgress,
			cma.StatusInProgress,
			cma.StatusCompleted,
		},
	}
	iv, delays := newRecordingInvoker(api, DefaultPollConfig())

	inv, err := iv.Invoke(context.Background(), "s", "e", "a1", &cma.InvocationRequest{}, true)
	require.NoError(t, err)

	assert.Equal(t, cma.StatusCompleted, inv.Sys.Status)
	assert.Equal(t, 3, api.pollCalls)
	// Backoff grows by 1.5x between fetches: 1s, then 1.5s.
	assert.Equal(t, []time.Duration{1 * time.Second, 1500 * time.Millisecond}, *delays)
}

func TestInvokeBackoffIsCapped(t *testing.T) {
	statuses := make([]cma.InvocationStatus, 9)
	for i := range statuses {
		statuses[i] = cma.StatusInProgress
	}
	statuses = append(statuses, cma.StatusCompleted)

	api := &scriptedAPI{invokeStatus: cma.StatusScheduled, pollStatuses: statuses}
	iv, delays := newRecordingInvoker(api, DefaultPollConfig())

	_, err := iv.Invoke(context.Background(), "s", "e", "a1", &cma.InvocationRequest{}, true)
	require.NoError(t, err)

	// 1s, 1.5s, 2.25s, 3.375s, then pinned at the 5s ceiling.
	require.Len(t, *delays, 9)
	assert.Equal(t, 1*time.Second, (*delays)[0])
	assert.Equal(t, 1500*time.Millisecond, (*delays)[1])
	assert.Equal(t, 2250*time.Millisecond, (*delays)[2])
	assert.Equal(t, 3375*time.Millisecond, (*delays)[3])
	for _, d := range (*delays)[4:] {
		assert.Equal(t, 5*time.Second, d)
	}
}

func TestInvokeExhaustsAttemptBudget(t *testing.T) {
	api := &scriptedAPI{
		invokeStatus: cma.StatusScheduled,
		pollStatuses: []cma.InvocationStatus{
			cma.StatusInProgress,
			cma.StatusInProgress,
			cma.StatusInProgress,
		},
	}
	cfg := DefaultPollConfig()
	cfg.MaxAttempts = 3
	iv, delays := newRecordingInvoker(api, cfg)

	_, err := iv.Invoke(context.Background(), "s", "e", "a1", &cma.InvocationRequest{}, true)
	require.Error(t, err)

	assert.True(t, cma.IsCode(err, cma.ErrCodePollExhausted))
	// Exactly MaxAttempts fetches, with no sleep after the last one.
	assert.Equal(t, 3, api.pollCalls)
	assert.Len(t, *delays, 2)

	var cerr *cma.CMAError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "inv1", cerr.Details["invocation_id"])
	assert.Equal(t, 3, cerr.Details["attempts"])
}

func TestInvokeFailedStatusIsTerminal(t *testing.T) {
	api := &scriptedAPI{
		invokeStatus: cma.StatusScheduled,
		pollStatuses: []cma.InvocationStatus{cma.StatusFailed},
	}
	iv, _ := newRecordingInvoker(api, DefaultPollConfig())

	inv, err := iv.Invoke(context.Background(), "s", "e", "a1", &cma.InvocationRequest{}, true)
	require.NoError(t, err)
	assert.Equal(t, cma.StatusFailed, inv.Sys.Status)
}

func TestInvokeCancelledContextAbortsPolling(t *testing.T) {
	api := &scriptedAPI{
		invokeStatus: cma.StatusScheduled,
		pollStatuses: []cma.InvocationStatus{cma.StatusInProgress, cma.StatusInProgress},
	}
	iv := NewInvoker(api, DefaultPollConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	iv.sleep = func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	}

	_, err := iv.Invoke(ctx, "s", "e", "a1", &cma.InvocationRequest{}, true)
	require.ErrorIs(t, err, context.Canceled)
}
