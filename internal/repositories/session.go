package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/whitewhale-bridge/internal/logger"
	"github.com/sbilibin2017/whitewhale-bridge/internal/models"
)

// SessionMemoryRepository keeps sessions in a bounded in-process LRU.
// Sessions are lost on restart and are not shared between instances.
type SessionMemoryRepository struct {
	cache *expiringLRU
}

func NewSessionMemoryRepository(maxEntries int) (*SessionMemoryRepository, error) {
	cache, err := newExpiringLRU(maxEntries)
	if err != nil {
		return nil, err
	}
	return &SessionMemoryRepository{cache: cache}, nil
}

// Get returns nil without error for unknown or expired tokens.
func (r *SessionMemoryRepository) Get(ctx context.Context, token string) (*models.Session, error) {
	v, ok := r.cache.get(token)
	if !ok {
		return nil, nil
	}
	s := v.(models.Session)
	return &s, nil
}

func (r *SessionMemoryRepository) Set(ctx context.Context, token string, session models.Session, ttl time.Duration) error {
	r.cache.add(token, session, ttl)
	return nil
}

func (r *SessionMemoryRepository) Delete(ctx context.Context, token string) error {
	r.cache.remove(token)
	return nil
}

// SessionRedisRepository keeps sessions in redis under session:<token>.
type SessionRedisRepository struct {
	client *redis.Client
}

func NewSessionRedisRepository(client *redis.Client) *SessionRedisRepository {
	return &SessionRedisRepository{client: client}
}

func sessionKey(token string) string {
	return "session:" + token
}

// Get returns nil without error for unknown or expired tokens.
func (r *SessionRedisRepository) Get(ctx context.Context, token string) (*models.Session, error) {
	key := sessionKey(token)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("session get failed", "error", err)
		return nil, err
	}

	var s models.Session
	if err := json.Unmarshal(val, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRedisRepository) Set(ctx context.Context, token string, session models.Session, ttl time.Duration) error {
	val, err := json.Marshal(session)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, sessionKey(token), val, ttl).Err()
	logger.Log.Debugw("session set", "user_id", session.UserID, "ttl", ttl, "error", err)
	return err
}

func (r *SessionRedisRepository) Delete(ctx context.Context, token string) error {
	err := r.client.Del(ctx, sessionKey(token)).Err()
	logger.Log.Debugw("session delete", "error", err)
	return err
}
