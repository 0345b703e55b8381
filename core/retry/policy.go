package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrExhausted is returned when no attempt produced an accepted result.
var ErrExhausted = errors.New("retry attempts exhausted")

// Policy describes a bounded retry: how many attempts, how long each may take,
// and which results count as success.
type Policy[T any] struct {
	// Attempts is the total number of tries (values below 1 mean one try).
	Attempts int
	// Timeout bounds every single attempt. Zero disables the per-attempt deadline.
	Timeout time.Duration
	// Delay is waited between attempts. Zero retries immediately.
	Delay time.Duration
	// Accept validates a result returned without error. A non-nil error
	// rejects the result and consumes the attempt.
	Accept func(T) error
	// OnFailure observes every failed attempt (1-based).
	OnFailure func(attempt int, err error)
}

// Do runs op until a result is accepted, the attempts run out, or ctx ends.
// On failure the zero value is returned with an error wrapping ErrExhausted
// and the last attempt's error, or ctx.Err() when the context ended first.
func (p Policy[T]) Do(ctx context.Context, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := p.run(ctx, op)
		if err == nil && p.Accept != nil {
			err = p.Accept(result)
		}
		if err == nil {
			return result, nil
		}

		lastErr = err
		if p.OnFailure != nil {
			p.OnFailure(attempt, err)
		}

		if attempt < attempts && p.Delay > 0 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(p.Delay):
			}
		}
	}

	return zero, fmt.Errorf("%w after %d attempts: %w", ErrExhausted, attempts, lastErr)
}

func (p Policy[T]) run(ctx context.Context, op func(ctx context.Context) (T, error)) (T, error) {
	if p.Timeout <= 0 {
		return op(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()
	return op(attemptCtx)
}
