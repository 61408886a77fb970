package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	defaultRetryAttempts = 3
	defaultRetryBackoff  = 100 * time.Millisecond
)

// withRetry runs fn up to attempts times with exponential backoff while
// classifier reports the returned error as [Retryable]. A cancelled ctx ends
// the loop with ctx.Err().
func withRetry(ctx context.Context, classifier ErrorClassificator, attempts int, backoff time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	b := retry.WithMaxRetries(uint64(attempts-1), retry.NewExponential(backoff))

	return retry.Do(ctx, b, func(context.Context) error {
		err := fn()
		if err != nil && classifier.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}
