package connection

import (
	"context"
	"errors"
	"fmt"
)

// ErrAttemptsExhausted is returned by Retry when every attempt failed.
var ErrAttemptsExhausted = errors.New("all attempts failed")

// Retry calls fn up to attempts times, waiting on b between failures.
// attempts below 1 means a single attempt. The last error is wrapped
// together with ErrAttemptsExhausted. Context cancellation stops the
// loop immediately.
func Retry[T any](ctx context.Context, attempts int, b *Backoff, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := range attempts {
		if i > 0 {
			if err := b.Wait(ctx); err != nil {
				return zero, err
			}
		}

		v, err := fn(ctx)
		if err == nil {
			b.Reset()
			return v, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
	}

	return zero, fmt.Errorf("%w after %d attempt(s): %w", ErrAttemptsExhausted, attempts, lastErr)
}
