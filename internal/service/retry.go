package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/cx-tal-miterani/airport-checkin-system/internal/checkin"
)

// RetryPolicy controls the retry loop wrapped around every kiosk operation.
// Backoff starts at BaseBackoff, doubles after each failed attempt, and each
// sleep adds uniform jitter in [0, MaxJitter).
type RetryPolicy struct {
	MaxAttempts int
	BaseBackoff time.Duration
	MaxJitter   time.Duration
}

// DefaultRetryPolicy matches the kiosk defaults: 5 attempts, 12ms base,
// up to 10ms of jitter.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 5,
		BaseBackoff: 12 * time.Millisecond,
		MaxJitter:   10 * time.Millisecond,
	}
}

// withRetry runs op until it succeeds, a non-retryable error surfaces, or
// MaxAttempts is exhausted, sleeping the backoff schedule between attempts.
// Terminal outcomes (checkin.ErrNoSeatAvailable, checkin.ErrFlightNotFound,
// ErrValidation, context cancellation) are never retried: repeating them
// cannot change the answer.
func withRetry[T any](ctx context.Context, policy RetryPolicy, op func() (T, error)) (T, error) {
	var zero T
	backoff := policy.BaseBackoff
	for attempt := 1; ; attempt++ {
		v, err := op()
		if err == nil {
			return v, nil
		}
		if !retryable(err) || attempt >= policy.MaxAttempts {
			return zero, err
		}
		d := backoff
		if policy.MaxJitter > 0 {
			d += time.Duration(rand.Int63n(int64(policy.MaxJitter)))
		}
		if err := sleep(ctx, d); err != nil {
			return zero, err
		}
		backoff *= 2
	}
}

func retryable(err error) bool {
	switch {
	case errors.Is(err, checkin.ErrNoSeatAvailable),
		errors.Is(err, checkin.ErrFlightNotFound),
		errors.Is(err, ErrValidation),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	return true
}
