package facades

import (
	"context"
	"net/http"
	"net/url"
)

// LeaderboardHTTPFacade proxies the external scoring service.
type LeaderboardHTTPFacade struct {
	up *upstream
}

func NewLeaderboardHTTPFacade(baseURL string, client HTTPClient, limiter *RateLimiter) *LeaderboardHTTPFacade {
	return &LeaderboardHTTPFacade{up: newUpstream("leaderboard", baseURL, client, limiter)}
}

// Leaderboard returns the full ranking of a season.
func (f *LeaderboardHTTPFacade) Leaderboard(ctx context.Context, season string) ([]byte, error) {
	return f.up.do(ctx, http.MethodGet, "/"+url.PathEscape(season)+"/leaderboard", nil, nil)
}

// Score returns the standing of one wallet in a season.
func (f *LeaderboardHTTPFacade) Score(ctx context.Context, season, wallet string) ([]byte, error) {
	return f.up.do(ctx, http.MethodGet, "/"+url.PathEscape(season)+"/score/"+url.PathEscape(wallet), nil, nil)
}
