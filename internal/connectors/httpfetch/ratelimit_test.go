package httpfetch

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter_Unthrottled(t *testing.T) {
	rl := NewRateLimiter(0, 0)

	for i := 0; i < 100; i++ {
		assert.True(t, rl.Allow())
	}
}

func TestRateLimiter_Burst(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)

	assert.True(t, rl.Allow())
	assert.True(t, rl.Allow())
	assert.False(t, rl.Allow())
}

func TestRateLimiter_RecordThrottle(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		header    string
		throttled bool
		minWait   time.Duration
	}{
		{"ok response", http.StatusOK, "", false, 0},
		{"not found", http.StatusNotFound, "", false, 0},
		{"429 with retry-after", http.StatusTooManyRequests, "5", true, 4 * time.Second},
		{"503 default backoff", http.StatusServiceUnavailable, "", true, 50 * time.Second},
		{"429 bad header", http.StatusTooManyRequests, "soon", true, 50 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewRateLimiter(0, 1)
			resp := &http.Response{StatusCode: tt.status, Header: http.Header{}}
			if tt.header != "" {
				resp.Header.Set(HeaderRetryAfter, tt.header)
			}

			assert.Equal(t, tt.throttled, rl.RecordThrottle(resp))
			if tt.throttled {
				assert.True(t, time.Until(rl.RetryAt()) > tt.minWait)
			} else {
				assert.True(t, rl.RetryAt().IsZero())
			}
		})
	}
}

func TestRateLimiter_RecordThrottle_Nil(t *testing.T) {
	rl := NewRateLimiter(0, 1)
	assert.False(t, rl.RecordThrottle(nil))
}

func TestRateLimiter_Wait_RespectsContextDuringBackoff(t *testing.T) {
	rl := NewRateLimiter(0, 1)
	resp := &http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}}
	resp.Header.Set(HeaderRetryAfter, "60")
	rl.RecordThrottle(resp)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := rl.Wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
