package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMiddleware(t *testing.T) {
	session := &models.Session{UserID: 1, Username: "whale"}

	tests := []struct {
		name        string
		mockSetup   func(tok *MockTokener, res *MockSessionResolver)
		wantSession *models.Session
		wantCookie  string
	}{
		{
			name: "no cookie",
			mockSetup: func(tok *MockTokener, res *MockSessionResolver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any(), SessionCookieName).
					Return("", errors.New("cookie not found"))
			},
		},
		{
			name: "unresolvable cookie",
			mockSetup: func(tok *MockTokener, res *MockSessionResolver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any(), SessionCookieName).Return("bad", nil)
				res.EXPECT().Resolve(gomock.Any(), "bad").Return(nil, errors.New("session not found"))
			},
		},
		{
			name: "live session",
			mockSetup: func(tok *MockTokener, res *MockSessionResolver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any(), SessionCookieName).Return("good", nil)
				res.EXPECT().Resolve(gomock.Any(), "good").Return(session, nil)
			},
			wantSession: session,
			wantCookie:  "good",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tok := NewMockTokener(ctrl)
			res := NewMockSessionResolver(ctrl)
			tt.mockSetup(tok, res)

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				assert.Equal(t, tt.wantSession, SessionFromContext(r.Context()))
				assert.Equal(t, tt.wantCookie, SessionCookieFromContext(r.Context()))
			})

			rr := httptest.NewRecorder()
			SessionMiddleware(tok, res)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.True(t, called, "the middleware never rejects")
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestRequireSession(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := RequireSession(next)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Not authenticated"}`, rr.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithSession(context.Background(), &models.Session{UserID: 1}, "c"))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestCookieConfig(t *testing.T) {
	cfg := CookieConfig{MaxAge: 30 * 24 * time.Hour, Secure: true}

	rr := httptest.NewRecorder()
	cfg.Set(rr, "signed")
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, SessionCookieName, c.Name)
	assert.Equal(t, "signed", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 2592000, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	rr = httptest.NewRecorder()
	cfg.Clear(rr)
	cookies = rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}
