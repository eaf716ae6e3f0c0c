package facades

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   time.Duration
	}{
		{name: "missing", header: "", want: time.Minute},
		{name: "seconds", header: "30", want: 30 * time.Second},
		{name: "garbage", header: "soon", want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.header != "" {
				h.Set("Retry-After", tt.header)
			}
			assert.Equal(t, tt.want, ParseRetryAfter(h))
		})
	}
}

func TestParseRetryAfter_HTTPDate(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", time.Now().Add(2*time.Minute).UTC().Format(http.TimeFormat))

	got := ParseRetryAfter(h)
	assert.InDelta(t, (2 * time.Minute).Seconds(), got.Seconds(), 2)
}

func TestRateLimiter_BlockFor(t *testing.T) {
	rl := NewRateLimiter(0, 1)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	_, blocked := rl.Blocked()
	assert.False(t, blocked)

	rl.BlockFor(10 * time.Second)
	rl.BlockFor(time.Second) // shorter block does not shorten the first

	remaining, blocked := rl.Blocked()
	assert.True(t, blocked)
	assert.Equal(t, 10*time.Second, remaining)

	now = now.Add(11 * time.Second)
	_, blocked = rl.Blocked()
	assert.False(t, blocked)
}

func TestRateLimiter_Wait(t *testing.T) {
	assert.NoError(t, NewRateLimiter(1000, 1).Wait(context.Background()))

	slow := NewRateLimiter(0.001, 1)
	assert.NoError(t, slow.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, slow.Wait(ctx), "burst is spent, the next token is far away")
}
