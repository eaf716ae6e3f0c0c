package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		trust      bool
		want       string
	}{
		{
			name:    "first forwarded entry wins",
			headers: map[string]string{"X-Forwarded-For": " 203.0.113.7 , 10.0.0.1", "X-Real-IP": "198.51.100.1"},
			trust:   true,
			want:    "203.0.113.7",
		},
		{
			name:    "real ip before cloudflare",
			headers: map[string]string{"X-Real-IP": "198.51.100.1", "CF-Connecting-IP": "192.0.2.5"},
			trust:   true,
			want:    "198.51.100.1",
		},
		{
			name:    "cloudflare header",
			headers: map[string]string{"CF-Connecting-IP": "192.0.2.5"},
			trust:   true,
			want:    "192.0.2.5",
		},
		{
			name:       "no headers falls back to loopback",
			remoteAddr: "192.0.2.99:5555",
			trust:      true,
			want:       DefaultClientIP,
		},
		{
			name:       "untrusted ignores headers",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7"},
			remoteAddr: "192.0.2.99:5555",
			trust:      false,
			want:       "192.0.2.99",
		},
		{
			name:       "untrusted ipv6 socket",
			remoteAddr: "[2001:db8::1]:443",
			trust:      false,
			want:       "2001:db8::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIP(r, tt.trust))
		})
	}
}

func TestClientIPMiddleware(t *testing.T) {
	var got string
	h := ClientIPMiddleware(true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ClientIPFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "203.0.113.7", got)
	assert.Equal(t, DefaultClientIP, ClientIPFromContext(context.Background()))
	assert.Equal(t, "10.1.1.1", ClientIPFromContext(WithClientIP(context.Background(), "10.1.1.1")))
}
