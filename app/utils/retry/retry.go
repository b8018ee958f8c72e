// Package retry provides a small parameterized retry policy for absorbing
// transient remote-store failures.
package retry

import (
	"context"
	"time"
)

// Policy describes how an operation is retried: total attempt count, a fixed
// delay between attempts, and an optional predicate limiting which errors are
// worth retrying.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	// Values below 1 behave like 1.
	MaxAttempts int

	// Delay is the fixed pause between consecutive attempts.
	Delay time.Duration

	// Retriable decides whether a failure should be retried. A nil predicate
	// retries every error.
	Retriable func(error) bool
}

// Do runs op until it succeeds, the policy is exhausted, or the context is
// cancelled during a delay. It returns the last error observed; there is no
// delay after the final attempt.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if p.Retriable != nil && !p.Retriable(lastErr) {
			return lastErr
		}
		if attempt == attempts {
			break
		}
		if err := sleep(ctx, p.Delay); err != nil {
			return lastErr
		}
	}
	return lastErr
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
