package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
)

// ResponseCacheRepository caches upstream responses in redis
type ResponseCacheRepository struct {
	client *redis.Client
}

func NewResponseCacheRepository(client *redis.Client) *ResponseCacheRepository {
	return &ResponseCacheRepository{client: client}
}

func cacheKey(key string) string {
	return "upstream:" + key
}

// Get returns ErrCacheMiss when the key is absent or expired.
func (r *ResponseCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, cacheKey(key)).Bytes()

	logger.Log.Debugw("cache get", "key", key, "size", len(val), "error", err)

	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return val, err
}

func (r *ResponseCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, cacheKey(key), value, ttl).Err()

	logger.Log.Debugw("cache set", "key", key, "ttl", ttl, "error", err)

	return err
}

// ResponseMemoryCacheRepository is the in-process fallback when redis is not configured.
type ResponseMemoryCacheRepository struct {
	cache *expiringLRU
}

func NewResponseMemoryCacheRepository(maxEntries int) (*ResponseMemoryCacheRepository, error) {
	cache, err := newExpiringLRU(maxEntries)
	if err != nil {
		return nil, err
	}
	return &ResponseMemoryCacheRepository{cache: cache}, nil
}

// Get returns ErrCacheMiss when the key is absent or expired.
func (r *ResponseMemoryCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := r.cache.get(key)
	if !ok {
		return nil, ErrCacheMiss
	}
	return v.([]byte), nil
}

func (r *ResponseMemoryCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	r.cache.add(key, value, ttl)
	return nil
}
