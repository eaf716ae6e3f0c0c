package facades

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter throttles calls to one upstream and stops them entirely while
// the upstream has asked us to back off.
type RateLimiter struct {
	limiter *rate.Limiter

	mu           sync.Mutex
	blockedUntil time.Time
	now          func() time.Time
}

// NewRateLimiter allows perSecond requests with the given burst.
// A non-positive perSecond means no throttling.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(limit, burst),
		now:     time.Now,
	}
}

// Wait blocks until a request may be sent.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.limiter.Wait(ctx)
}

// BlockFor rejects requests for the given duration.
func (rl *RateLimiter) BlockFor(d time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	until := rl.now().Add(d)
	if until.After(rl.blockedUntil) {
		rl.blockedUntil = until
	}
}

// Blocked reports the remaining back-off, if any.
func (rl *RateLimiter) Blocked() (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	remaining := rl.blockedUntil.Sub(rl.now())
	return remaining, remaining > 0
}

// ParseRetryAfter reads a Retry-After header given in seconds or as an HTTP date.
func ParseRetryAfter(headers http.Header) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return time.Minute
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}

	return time.Minute
}
