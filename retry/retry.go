// Package retry provides bounded retries with exponential backoff and jitter
// for calls to external managed services.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"net/http"
	"time"
)

const (
	DefaultMaxRetries = 3
	DefaultBaseWait   = 1 * time.Second
)

// RecoverableError marks an error as transient so Do will retry it.
type RecoverableError struct {
	err error
}

func (e *RecoverableError) Error() string { return e.err.Error() }

func (e *RecoverableError) Unwrap() error { return e.err }

// NewRecoverableError wraps an error to indicate the operation may be retried.
func NewRecoverableError(err error) *RecoverableError {
	return &RecoverableError{err: err}
}

// IsRecoverable returns true if the error is marked as recoverable.
func IsRecoverable(err error) bool {
	if err == nil {
		return false
	}
	var recoverable *RecoverableError
	return errors.As(err, &recoverable)
}

// Option configures a call to Do.
type Option func(*config)

type config struct {
	maxRetries int
	baseWait   time.Duration
}

// WithMaxRetries sets the maximum number of attempts.
func WithMaxRetries(n int) Option {
	return func(c *config) { c.maxRetries = n }
}

// WithBaseWait sets the wait before the first retry. Subsequent waits grow
// exponentially with a small random jitter.
func WithBaseWait(d time.Duration) Option {
	return func(c *config) { c.baseWait = d }
}

// Do runs f until it succeeds, returns a non-recoverable error, or the retry
// budget is exhausted. The unwrapped error from the last attempt is returned.
func Do(ctx context.Context, f func() error, opts ...Option) error {
	c := &config{maxRetries: DefaultMaxRetries, baseWait: DefaultBaseWait}
	for _, opt := range opts {
		opt(c)
	}
	// f always runs at least once, whatever the configured budget.
	if c.maxRetries < 1 {
		c.maxRetries = 1
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(float64(c.baseWait) * math.Pow(2, float64(attempt-1)))
			jitter := time.Duration(rand.Float64() * float64(backoff) * 0.1)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}
		err := f()
		if err == nil {
			return nil
		}
		if !IsRecoverable(err) {
			return err
		}
		lastErr = err
	}
	var recoverable *RecoverableError
	if errors.As(lastErr, &recoverable) {
		return recoverable.Unwrap()
	}
	return lastErr
}

// ShouldRetry reports whether an HTTP status code warrants a retry.
func ShouldRetry(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusInternalServerError ||
		statusCode == http.StatusServiceUnavailable ||
		statusCode == http.StatusGatewayTimeout
}
