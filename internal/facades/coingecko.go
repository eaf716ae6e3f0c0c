package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// CoinGeckoHTTPFacade reads spot prices from the CoinGecko v3 API.
type CoinGeckoHTTPFacade struct {
	up *upstream
}

func NewCoinGeckoHTTPFacade(baseURL string, client HTTPClient, limiter *RateLimiter) *CoinGeckoHTTPFacade {
	return &CoinGeckoHTTPFacade{up: newUpstream("coingecko", baseURL, client, limiter)}
}

// SimplePrice returns prices keyed by coin id, then by quote currency.
func (f *CoinGeckoHTTPFacade) SimplePrice(ctx context.Context, ids []string, vsCurrency string) (map[string]map[string]float64, error) {
	q := url.Values{"ids": {strings.Join(ids, ",")}, "vs_currencies": {vsCurrency}}

	body, err := f.up.do(ctx, http.MethodGet, "/simple/price", q, nil)
	if err != nil {
		return nil, err
	}

	prices := map[string]map[string]float64{}
	if err := json.Unmarshal(body, &prices); err != nil {
		return nil, fmt.Errorf("coingecko: decode prices: %w", err)
	}
	return prices, nil
}
