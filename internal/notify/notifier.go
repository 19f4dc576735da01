// Package notify carries terminal-failure notifications out of the process.
package notify

import "context"

// Notifier reports an unrecoverable crawl failure. Called once per process,
// after the retry budget is exhausted.
type Notifier interface {
	NotifyFatal(ctx context.Context, message string) error
}

// Noop discards notifications; used when no webhook is configured.
type Noop struct{}

func (Noop) NotifyFatal(ctx context.Context, message string) error {
	_ = ctx
	_ = message
	return nil
}
