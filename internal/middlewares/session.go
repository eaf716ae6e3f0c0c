package middlewares

//go:generate mockgen -source=session.go -destination=session_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "ww_session"

// Tokener extracts the session cookie value from a request
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request, cookieName string) (string, error)
}

// SessionResolver turns a cookie value into a live session
type SessionResolver interface {
	Resolve(ctx context.Context, cookie string) (*models.Session, error)
}

type sessionKey struct{}

type sessionState struct {
	session *models.Session
	cookie  string
}

// WithSession returns a copy of ctx carrying session and its cookie value.
func WithSession(ctx context.Context, session *models.Session, cookie string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionState{session: session, cookie: cookie})
}

// SessionFromContext returns the session resolved by SessionMiddleware, or nil.
func SessionFromContext(ctx context.Context) *models.Session {
	st, _ := ctx.Value(sessionKey{}).(sessionState)
	return st.session
}

// SessionCookieFromContext returns the raw cookie value of the resolved session, or "".
func SessionCookieFromContext(ctx context.Context) string {
	st, _ := ctx.Value(sessionKey{}).(sessionState)
	return st.cookie
}

// SessionMiddleware resolves the session cookie, if any, into the request
// context. It never rejects a request.
func SessionMiddleware(tokener Tokener, resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			cookie, err := tokener.GetTokenFromRequest(ctx, r, SessionCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			session, err := resolver.Resolve(ctx, cookie)
			if err != nil {
				logger.Log.Debugw("session not resolved", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, session, cookie)))
		})
	}
}

// RequireSession rejects requests without a resolved session with 401.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromContext(r.Context()) == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Not authenticated"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CookieConfig describes the session cookie attributes.
type CookieConfig struct {
	MaxAge time.Duration
	Secure bool
}

// Set writes the session cookie.
func (c CookieConfig) Set(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.MaxAge / time.Second),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie.
func (c CookieConfig) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
