package services

//go:generate mockgen -source=leaderboard.go -destination=leaderboard_mock.go -package=services

import (
	"context"
	"time"
)

// DefaultSeason is used when the caller names no season.
const DefaultSeason = "season_two"

const leaderboardCacheTTL = 60 * time.Second

// LeaderboardClient is the external scoring service.
type LeaderboardClient interface {
	Leaderboard(ctx context.Context, season string) ([]byte, error)
	Score(ctx context.Context, season, wallet string) ([]byte, error)
}

// LeaderboardService proxies season rankings.
type LeaderboardService struct {
	client LeaderboardClient
	cache  ResponseCache
}

// NewLeaderboardService creates a new LeaderboardService. cache may be nil.
func NewLeaderboardService(client LeaderboardClient, cache ResponseCache) *LeaderboardService {
	return &LeaderboardService{client: client, cache: cache}
}

// Get returns the season ranking, or one wallet's score when wallet is set.
func (s *LeaderboardService) Get(ctx context.Context, season, wallet string) ([]byte, error) {
	if season == "" {
		season = DefaultSeason
	}
	if wallet != "" {
		return cached(ctx, s.cache, "leaderboard:"+season+":score:"+wallet, leaderboardCacheTTL, func(ctx context.Context) ([]byte, error) {
			return s.client.Score(ctx, season, wallet)
		})
	}
	return cached(ctx, s.cache, "leaderboard:"+season, leaderboardCacheTTL, func(ctx context.Context) ([]byte, error) {
		return s.client.Leaderboard(ctx, season)
	})
}
