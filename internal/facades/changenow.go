package facades

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
)

// ErrAPIKeyNotConfigured is returned by every ChangeNOW call when no key is set.
var ErrAPIKeyNotConfigured = errors.New("API key not configured")

// ChangeNowHTTPFacade talks to the ChangeNOW v1 REST API.
// Responses are returned as raw JSON to be forwarded to the client.
type ChangeNowHTTPFacade struct {
	up     *upstream
	apiKey string
}

func NewChangeNowHTTPFacade(baseURL, apiKey string, client HTTPClient, limiter *RateLimiter) *ChangeNowHTTPFacade {
	up := newUpstream("changenow", baseURL, client, limiter)
	up.secret = apiKey
	return &ChangeNowHTTPFacade{up: up, apiKey: apiKey}
}

func (f *ChangeNowHTTPFacade) checkKey() error {
	if f.apiKey == "" {
		return ErrAPIKeyNotConfigured
	}
	return nil
}

// Currencies lists active floating-rate currencies.
func (f *ChangeNowHTTPFacade) Currencies(ctx context.Context) ([]byte, error) {
	if err := f.checkKey(); err != nil {
		return nil, err
	}
	q := url.Values{"active": {"true"}, "fixedRate": {"false"}}
	return f.up.do(ctx, http.MethodGet, "/currencies", q, nil)
}

// MinAmount returns the minimum exchangeable amount for a pair.
func (f *ChangeNowHTTPFacade) MinAmount(ctx context.Context, from, to string) ([]byte, error) {
	if err := f.checkKey(); err != nil {
		return nil, err
	}
	path := "/min-amount/" + url.PathEscape(from+"_"+to)
	return f.up.do(ctx, http.MethodGet, path, url.Values{"api_key": {f.apiKey}}, nil)
}

// ExchangeAmount estimates the amount received for amount of from.
func (f *ChangeNowHTTPFacade) ExchangeAmount(ctx context.Context, amount, from, to string) ([]byte, error) {
	if err := f.checkKey(); err != nil {
		return nil, err
	}
	path := "/exchange-amount/" + url.PathEscape(amount) + "/" + url.PathEscape(from+"_"+to)
	return f.up.do(ctx, http.MethodGet, path, url.Values{"api_key": {f.apiKey}}, nil)
}

// CreateTransaction starts a swap.
func (f *ChangeNowHTTPFacade) CreateTransaction(ctx context.Context, tx models.ChangeNowTransaction) ([]byte, error) {
	if err := f.checkKey(); err != nil {
		return nil, err
	}
	return f.up.do(ctx, http.MethodPost, "/transactions/"+url.PathEscape(f.apiKey), nil, tx)
}

// TransactionStatus returns the current state of a swap.
func (f *ChangeNowHTTPFacade) TransactionStatus(ctx context.Context, id string) ([]byte, error) {
	if err := f.checkKey(); err != nil {
		return nil, err
	}
	path := "/transactions/" + url.PathEscape(id) + "/" + url.PathEscape(f.apiKey)
	return f.up.do(ctx, http.MethodGet, path, nil, nil)
}
