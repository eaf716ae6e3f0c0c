package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/whitewhale-bridge/internal/middlewares"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
)

func newRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

func withSession(r *http.Request, userID int64) *http.Request {
	ctx := middlewares.WithSession(r.Context(), &models.Session{UserID: userID, Username: "ahab"}, "signed")
	return r.WithContext(ctx)
}

func withIP(r *http.Request, ip string) *http.Request {
	return r.WithContext(middlewares.WithClientIP(r.Context(), ip))
}

func serve(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	return rr
}

// decimalEq matches decimals by value, not representation.
type decimalEq struct{ want decimal.Decimal }

func (m decimalEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string { return "equals " + m.want.String() }
