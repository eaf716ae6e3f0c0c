package repositories

import (
	"time"

	lru "github.com/hashicorp/golang-lru"
)

type lruEntry struct {
	value     any
	expiresAt time.Time
}

// expiringLRU is a bounded LRU whose entries expire. Expiry is checked on read.
type expiringLRU struct {
	cache *lru.Cache
	now   func() time.Time
}

func newExpiringLRU(size int) (*expiringLRU, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &expiringLRU{cache: cache, now: time.Now}, nil
}

func (c *expiringLRU) add(key string, value any, ttl time.Duration) {
	c.cache.Add(key, lruEntry{value: value, expiresAt: c.now().Add(ttl)})
}

func (c *expiringLRU) get(key string) (any, bool) {
	raw, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	entry := raw.(lruEntry)
	if !c.now().Before(entry.expiresAt) {
		c.cache.Remove(key)
		return nil, false
	}
	return entry.value, true
}

func (c *expiringLRU) remove(key string) {
	c.cache.Remove(key)
}
