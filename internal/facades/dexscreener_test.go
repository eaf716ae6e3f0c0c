package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDexScreenerHTTPFacade_TokenPairs(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantPairs int
	}{
		{name: "pairs", body: `[{"priceUsd":"0.001","marketCap":1000,"baseToken":{"name":"WW","symbol":"WW"}},{"priceUsd":"0.002"}]`, wantPairs: 2},
		{name: "empty array", body: `[]`, wantPairs: 0},
		{name: "object body", body: `{"pairs":null}`, wantPairs: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/tokens/v1/solana/CA123", r.URL.Path)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			pairs, err := NewDexScreenerHTTPFacade(srv.URL, srv.Client(), nil).TokenPairs(context.Background(), "solana", "CA123")
			require.NoError(t, err)
			assert.Len(t, pairs, tt.wantPairs)
		})
	}
}

func TestDexScreenerHTTPFacade_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewDexScreenerHTTPFacade(srv.URL, srv.Client(), nil).TokenPairs(context.Background(), "solana", "CA123")
	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusServiceUnavailable, upErr.StatusCode)
}
