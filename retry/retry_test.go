package retry

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecoverableError(t *testing.T) {
	err := NewRecoverableError(errors.New("test error"))
	assert.True(t, IsRecoverable(err))
	assert.False(t, IsRecoverable(errors.New("test error")))
	assert.False(t, IsRecoverable(nil))
}

func TestRetryExhaustsBudget(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		return NewRecoverableError(errors.New("test error"))
	}, WithMaxRetries(3), WithBaseWait(time.Millisecond*20))
	assert.Error(t, err)
	assert.Equal(t, "test error", err.Error())
	assert.Equal(t, 3, count)
}

func TestRetryStopsOnPermanentError(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		return errors.New("permanent")
	}, WithMaxRetries(5), WithBaseWait(time.Millisecond))
	assert.Error(t, err)
	assert.Equal(t, 1, count)
}

func TestRetryEventualSuccess(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		if count < 3 {
			return NewRecoverableError(errors.New("not yet"))
		}
		return nil
	}, WithMaxRetries(5), WithBaseWait(time.Millisecond))
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestZeroRetryBudgetStillRunsOnce(t *testing.T) {
	ctx := context.Background()
	count := 0
	err := Do(ctx, func() error {
		count++
		return NewRecoverableError(errors.New("transient"))
	}, WithMaxRetries(0), WithBaseWait(time.Millisecond))
	assert.Error(t, err)
	assert.Equal(t, "transient", err.Error())
	assert.Equal(t, 1, count)

	count = 0
	err = Do(ctx, func() error {
		count++
		return nil
	}, WithMaxRetries(-1))
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRetryRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Do(ctx, func() error {
		return NewRecoverableError(errors.New("again"))
	}, WithMaxRetries(3), WithBaseWait(time.Second))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShouldRetry(t *testing.T) {
	assert.True(t, ShouldRetry(http.StatusTooManyRequests))
	assert.True(t, ShouldRetry(http.StatusServiceUnavailable))
	assert.True(t, ShouldRetry(http.StatusGatewayTimeout))
	assert.True(t, ShouldRetry(http.StatusInternalServerError))
	assert.False(t, ShouldRetry(http.StatusBadRequest))
	assert.False(t, ShouldRetry(http.StatusOK))
}
