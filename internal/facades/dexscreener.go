package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
)

// DexScreenerHTTPFacade reads token pair data from DexScreener.
type DexScreenerHTTPFacade struct {
	up *upstream
}

func NewDexScreenerHTTPFacade(baseURL string, client HTTPClient, limiter *RateLimiter) *DexScreenerHTTPFacade {
	return &DexScreenerHTTPFacade{up: newUpstream("dexscreener", baseURL, client, limiter)}
}

// TokenPairs returns the pairs of a token, most liquid first. A body that is
// not an array yields no pairs.
func (f *DexScreenerHTTPFacade) TokenPairs(ctx context.Context, chain, address string) ([]models.DexPair, error) {
	path := "/tokens/v1/" + url.PathEscape(chain) + "/" + url.PathEscape(address)

	body, err := f.up.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var pairs []models.DexPair
	if err := json.Unmarshal(body, &pairs); err != nil {
		return nil, nil
	}
	return pairs, nil
}
