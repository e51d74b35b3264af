package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound signals a definitive miss inside a retried backend
	// operation: it aborts [RetryWithBackoff] immediately, and Get methods
	// translate it back into a plain miss.
	ErrNotFound = errors.New("not found")

	// ErrNetwork is returned when a cache backend (Redis, MongoDB) cannot
	// be reached. Callers treat it as a degraded-mode signal, not a
	// computation failure.
	ErrNetwork = errors.New("network error")
)

const (
	retryAttempts  = 3
	retryBaseDelay = time.Second
)

// RetryableError marks an error as transient so [RetryWithBackoff] will
// try the operation again.
type RetryableError struct{ Err error }

// Retryable wraps err as a RetryableError. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err carries a RetryableError anywhere in
// its chain.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff runs fn up to three times, doubling the delay between
// attempts. Errors not marked with [Retryable] abort immediately, as does
// context cancellation during a backoff wait.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	var lastErr error
	delay := retryBaseDelay

	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return err
		}
		lastErr = err

		if attempt == retryAttempts {
			return lastErr
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
}
