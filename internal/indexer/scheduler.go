package indexer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Scheduler reruns Rebuild on a fixed interval. A failed rebuild is retried
// with exponential backoff before the scheduler returns to its regular
// cadence; the active generation keeps serving throughout.
type Scheduler struct {
	builder  *Builder
	interval time.Duration
	logger   *slog.Logger
}

// NewScheduler creates a Scheduler. A nil logger falls back to slog.Default.
func NewScheduler(builder *Builder, interval time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{builder: builder, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled, triggering a rebuild every interval.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.rebuildWithRetry(ctx)
		}
	}
}

func (s *Scheduler) rebuildWithRetry(ctx context.Context) {
	operation := func() error {
		_, err := s.builder.Rebuild(ctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return backoff.Permanent(err)
		}
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 5 * time.Second
	b.MaxElapsedTime = s.interval / 2

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		s.logger.Error("scheduled rebuild gave up until next interval", "error", err)
	}
}
