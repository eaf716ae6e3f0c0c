package services

//go:generate mockgen -source=cache.go -destination=cache_mock.go -package=services

import (
	"context"
	"time"

	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
)

// ResponseCache stores serialized upstream answers.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, error)                         // Returns an error on a miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error // Stores value for ttl
}

// cached returns the cached value for key or computes it with fetch and
// stores it. A nil cache or a failing cache never fails the call.
func cached(ctx context.Context, cache ResponseCache, key string, ttl time.Duration, fetch func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	if cache != nil {
		if data, err := cache.Get(ctx, key); err == nil {
			return data, nil
		}
	}

	data, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		if err := cache.Set(ctx, key, data, ttl); err != nil {
			logger.Log.Errorw("failed to cache upstream response", "key", key, "error", err)
		}
	}
	return data, nil
}
