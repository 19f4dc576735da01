// Package runner applies the whole-run retry policy around a crawl. Retrying
// the full run re-derives the schedule and re-fetches everything; storage
// writes are idempotent overwrites keyed by game id and date, so redundant
// re-processing of already-stored games is wasted work, not a correctness
// problem.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"nhl-stats-crawler/internal/logging"
	"nhl-stats-crawler/internal/notify"
)

const (
	defaultMaxAttempts = 5
	defaultWait        = 5 * time.Minute
)

// Config tunes the retry policy. Zero values fall back to defaults.
type Config struct {
	MaxAttempts int
	// Wait is the fixed delay between attempts.
	Wait time.Duration
}

// Runner invokes a run function until it succeeds or the attempt budget is
// exhausted, then escalates through the notifier.
type Runner struct {
	logger      *slog.Logger
	notifier    notify.Notifier
	maxAttempts int
	wait        time.Duration
}

// New constructs a Runner. A nil notifier is replaced with a no-op.
func New(logger *slog.Logger, notifier notify.Notifier, cfg Config) *Runner {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.Wait <= 0 {
		cfg.Wait = defaultWait
	}
	return &Runner{
		logger:      logger,
		notifier:    notifier,
		maxAttempts: cfg.MaxAttempts,
		wait:        cfg.Wait,
	}
}

// Run executes run up to MaxAttempts times with a fixed wait between
// attempts. Every failure is treated as transient. When the budget is
// exhausted the notifier is told once and the last error is returned; the
// caller is expected to exit non-zero.
func (r *Runner) Run(ctx context.Context, run func(context.Context) error) error {
	attempt := 0
	operation := func() error {
		attempt++
		err := run(ctx)
		if err != nil {
			logging.Warn(r.logger, "crawl attempt failed",
				slog.Int(logging.FieldAttempt, attempt),
				slog.Int("max_attempts", r.maxAttempts),
				"error", err,
			)
		}
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(r.wait), uint64(r.maxAttempts-1)),
		ctx,
	)

	err := backoff.Retry(operation, policy)
	if err == nil {
		return nil
	}

	// A shutdown-driven abort is not an exhausted budget; skip the page.
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return err
	}

	msg := fmt.Sprintf("nhl-stats-crawler: all %d crawl attempts failed, last error: %v", r.maxAttempts, err)
	logging.Error(r.logger, "all crawl attempts failed, notifying", err,
		slog.Int("max_attempts", r.maxAttempts),
	)
	if notifyErr := r.notifier.NotifyFatal(ctx, msg); notifyErr != nil {
		logging.Error(r.logger, "fatal notification failed", notifyErr)
	}
	return err
}
