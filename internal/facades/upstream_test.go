package facades

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingClient struct{}

func (failingClient) Do(req *http.Request) (*http.Response, error) {
	return nil, errors.New("dial tcp " + req.URL.String() + ": connection refused")
}

func TestUpstream_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/things", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"a":1}`, string(body))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	up := newUpstream("test", srv.URL+"/", srv.Client(), nil)
	body, err := up.do(context.Background(), http.MethodPost, "/things", nil, map[string]int{"a": 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestUpstream_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"amount too low"}`))
	}))
	defer srv.Close()

	_, err := newUpstream("test", srv.URL, srv.Client(), nil).do(context.Background(), http.MethodGet, "/", nil, nil)

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusBadRequest, upErr.StatusCode)
	assert.Equal(t, "amount too low", upErr.Message)
	assert.Contains(t, upErr.Error(), "test responded with 400")
}

func TestUpstream_RateLimitedBlocksFurtherCalls(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Retry-After", "60")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	up := newUpstream("test", srv.URL, srv.Client(), nil)
	ctx := context.Background()

	for range 3 {
		_, err := up.do(ctx, http.MethodGet, "/", nil, nil)
		var upErr *UpstreamError
		require.ErrorAs(t, err, &upErr)
		assert.Equal(t, http.StatusTooManyRequests, upErr.StatusCode)
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestUpstream_TransportErrorIsRedacted(t *testing.T) {
	up := newUpstream("test", "http://127.0.0.1:1", failingClient{}, nil)
	up.secret = "s3cr3t"

	_, err := up.do(context.Background(), http.MethodGet, "/key/s3cr3t", nil, nil)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.NotContains(t, err.Error(), "s3cr3t")
}

func TestUpstream_BreakerOpensOnServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	up := newUpstream("test", srv.URL, srv.Client(), nil)
	ctx := context.Background()

	for range 5 {
		_, err := up.do(ctx, http.MethodGet, "/", nil, nil)
		var upErr *UpstreamError
		require.ErrorAs(t, err, &upErr)
	}

	_, err := up.do(ctx, http.MethodGet, "/", nil, nil)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.Equal(t, int32(5), hits.Load())
}

func TestUpstream_ClientErrorsDoNotTripBreaker(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	up := newUpstream("test", srv.URL, srv.Client(), nil)
	for range 8 {
		_, err := up.do(context.Background(), http.MethodGet, "/", nil, nil)
		var upErr *UpstreamError
		require.ErrorAs(t, err, &upErr)
	}
	assert.Equal(t, int32(8), hits.Load())
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "a", errorMessage([]byte(`{"message":"a","error":"b"}`)))
	assert.Equal(t, "b", errorMessage([]byte(`{"error":"b"}`)))
	assert.Equal(t, "", errorMessage([]byte(`<html>`)))
}
