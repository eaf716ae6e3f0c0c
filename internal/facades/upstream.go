package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sony/gobreaker"
)

const maxBodySize = 4 << 20

// HTTPClient is the subset of *http.Client used by the facades.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ErrUpstreamUnavailable means the upstream could not be reached or its
// circuit breaker is open.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// UpstreamError is a non-2xx answer from an upstream.
type UpstreamError struct {
	Service    string
	StatusCode int
	// Message is the "message" or "error" field of the body, when present.
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s responded with %d: %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s responded with %d", e.Service, e.StatusCode)
}

// upstream sends JSON requests to one REST service through a rate limiter
// and a circuit breaker.
type upstream struct {
	name    string
	baseURL string
	client  HTTPClient
	limiter *RateLimiter
	breaker *gobreaker.CircuitBreaker
	// secret is removed from logged paths
	secret string
}

func newUpstream(name, baseURL string, client HTTPClient, limiter *RateLimiter) *upstream {
	if limiter == nil {
		limiter = NewRateLimiter(0, 1)
	}
	return &upstream{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		limiter: limiter,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			IsSuccessful: func(err error) bool {
				var upErr *UpstreamError
				if errors.As(err, &upErr) {
					return upErr.StatusCode < http.StatusInternalServerError
				}
				return err == nil
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Log.Warnw("circuit breaker state changed", "service", name, "from", from.String(), "to", to.String())
			},
		}),
	}
}

// do sends the request and returns the body of a 2xx answer.
func (u *upstream) do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	if wait, blocked := u.limiter.Blocked(); blocked {
		return nil, &UpstreamError{Service: u.name, StatusCode: http.StatusTooManyRequests, Message: fmt.Sprintf("retry in %s", wait.Round(time.Second))}
	}
	if err := u.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := u.breaker.Execute(func() (interface{}, error) {
		return u.send(ctx, method, path, query, payload)
	})

	logger.Log.Debugw("upstream request",
		"service", u.name,
		"method", method,
		"path", u.redact(path),
		"duration", time.Since(start),
		"error", u.redactErr(err),
	)

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%s: %w", u.name, ErrUpstreamUnavailable)
	}
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

func (u *upstream) send(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	target := u.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", u.name, ErrUpstreamUnavailable, u.redact(err.Error()))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", u.name, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		u.limiter.BlockFor(ParseRetryAfter(resp.Header))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{Service: u.name, StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}
	return data, nil
}

func (u *upstream) redact(s string) string {
	if u.secret == "" {
		return s
	}
	return strings.ReplaceAll(s, u.secret, "***")
}

func (u *upstream) redactErr(err error) any {
	if err == nil {
		return nil
	}
	return u.redact(err.Error())
}

// errorMessage extracts a human readable message from an error body.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
