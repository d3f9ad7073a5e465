package refresher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Reloader is the interface the refresher drives. Satisfied by the MCP
// server (avoids an import cycle with the tool layer).
type Reloader interface {
	ReloadAIActionTools(ctx context.Context) error
}

// DefaultSchedule refreshes the AI Action catalog every 5 minutes.
const DefaultSchedule = "*/5 * * * *"

// Refresher periodically reloads the AI Action catalog so dynamic
// tools track the remotely published action set.
type Refresher struct {
	reloader Reloader
	schedule cron.Schedule
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	inflightMu sync.Mutex
	inflight   bool

	// now is swapped in tests.
	now func() time.Time
}

// New creates a Refresher from a standard 5-field cron expression.
func New(reloader Reloader, cronExpr string, logger *slog.Logger) (*Refresher, error) {
	if cronExpr == "" {
		cronExpr = DefaultSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(cronExpr)
	if err != nil {
		return nil, fmt.Errorf("parse refresh schedule %q: %w", cronExpr, err)
	}
	return &Refresher{
		reloader: reloader,
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Start launches the background refresh loop. An initial refresh runs
// immediately so tools are available before the first scheduled tick.
func (r *Refresher) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.done != nil {
		r.mu.Unlock()
		return fmt.Errorf("refresher already started")
	}
	loopCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	r.mu.Unlock()

	go r.loop(loopCtx)
	r.logger.Info("catalog refresher started")
	return nil
}

func (r *Refresher) loop(ctx context.Context) {
	defer close(r.done)

	r.tick(ctx)

	for {
		next := r.schedule.Next(r.now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			r.tick(ctx)
		}
	}
}

// tick runs one refresh, skipping if a previous one is still in flight.
func (r *Refresher) tick(ctx context.Context) {
	if !r.tryAcquire() {
		return
	}
	defer r.release()

	if err := r.reloader.ReloadAIActionTools(ctx); err != nil {
		r.logger.Error("catalog refresh failed", slog.String("error", err.Error()))
		return
	}
	r.logger.Debug("catalog refreshed")
}

func (r *Refresher) tryAcquire() bool {
	r.inflightMu.Lock()
	defer r.inflightMu.Unlock()
	if r.inflight {
		return false
	}
	r.inflight = true
	return true
}

func (r *Refresher) release() {
	r.inflightMu.Lock()
	r.inflight = false
	r.inflightMu.Unlock()
}

// NextRun returns the next refresh time after from.
func (r *Refresher) NextRun(from time.Time) time.Time {
	return r.schedule.Next(from)
}

// Stop gracefully shuts down the refresher.
func (r *Refresher) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel == nil {
		return nil
	}

	r.cancel()
	<-r.done
	r.cancel = nil
	r.done = nil

	r.logger.Info("catalog refresher stopped")
	return nil
}
