package jira

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWith(status int, headers map[string]string) *http.Response {
	resp := &http.Response{StatusCode: status, Header: http.Header{}}
	for k, v := range headers {
		resp.Header.Set(k, v)
	}
	return resp
}

func TestNewRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(0)

	assert.Equal(t, -1, rl.Remaining())
	assert.InDelta(t, DefaultRequestsPerSecond, float64(rl.bucket.Limit()), 0.001)
}

func TestRateLimiter_UpdateFromResponse(t *testing.T) {
	t.Run("iso reset", func(t *testing.T) {
		rl := NewRateLimiter(10)

		rl.UpdateFromResponse(responseWith(http.StatusOK, map[string]string{
			HeaderRateRemaining: "42",
			HeaderRateLimit:     "100",
			HeaderRateReset:     "2030-01-02T03:04:05Z",
		}))

		assert.Equal(t, 42, rl.Remaining())
		assert.Equal(t, time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC), rl.ResetTime().UTC())
	})

	t.Run("unix reset", func(t *testing.T) {
		rl := NewRateLimiter(10)

		rl.UpdateFromResponse(responseWith(http.StatusOK, map[string]string{
			HeaderRateReset: "1900000000",
		}))

		assert.Equal(t, time.Unix(1900000000, 0), rl.ResetTime())
	})

	t.Run("garbage headers ignored", func(t *testing.T) {
		rl := NewRateLimiter(10)

		rl.UpdateFromResponse(responseWith(http.StatusOK, map[string]string{
			HeaderRateRemaining: "lots",
			HeaderRateReset:     "soon",
		}))

		assert.Equal(t, -1, rl.Remaining())
		assert.True(t, rl.ResetTime().IsZero())
	})

	t.Run("nil response", func(t *testing.T) {
		rl := NewRateLimiter(10)
		rl.UpdateFromResponse(nil)
		assert.NoError(t, rl.CheckRateLimit(nil))
	})
}

func TestRateLimiter_CheckRateLimit(t *testing.T) {
	rl := NewRateLimiter(10)

	assert.NoError(t, rl.CheckRateLimit(responseWith(http.StatusOK, nil)))

	before := time.Now()
	err := rl.CheckRateLimit(responseWith(http.StatusTooManyRequests, map[string]string{
		HeaderRetryAfter: strconv.Itoa(30),
	}))

	var rateErr *RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.WithinDuration(t, before.Add(30*time.Second), rateErr.ResetAt, 2*time.Second)
	assert.Equal(t, 0, rl.Remaining())
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestRateLimiter_WaitHonoursExhaustedQuota(t *testing.T) {
	rl := NewRateLimiter(1000)
	rl.UpdateFromResponse(responseWith(http.StatusOK, map[string]string{
		HeaderRateRemaining: "0",
		HeaderRateReset:     strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10),
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := rl.Wait(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRateLimiter_WaitPassesWithQuota(t *testing.T) {
	rl := NewRateLimiter(1000)
	rl.UpdateFromResponse(responseWith(http.StatusOK, map[string]string{
		HeaderRateRemaining: "5",
	}))

	assert.NoError(t, rl.Wait(context.Background()))
}

func TestRateLimitError_Error(t *testing.T) {
	assert.Equal(t, "jira: rate limit exceeded", (&RateLimitError{}).Error())
	reset := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "jira: rate limit exceeded, retry after 2030-01-01T00:00:00Z", (&RateLimitError{ResetAt: reset}).Error())
}
