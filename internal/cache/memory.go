package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// Memory is an in-process Cacher backed by go-cache. A singleflight
// group collapses concurrent misses on the same key into one fetch.
type Memory struct {
	cache *gocache.Cache
	group singleflight.Group
}

// NewMemory returns a Memory cacher. cleanupInterval controls how often
// expired entries are evicted.
func NewMemory(cleanupInterval time.Duration) *Memory {
	return &Memory{cache: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

// GetOrFetch implements Cacher.
func (c *Memory) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch FetchFunc) (string, error) {
	if val, found := c.cache.Get(key); found {
		return val.(string), nil
	}
	val, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Re-check after winning the flight; a concurrent caller may
		// have populated the entry already.
		if cached, found := c.cache.Get(key); found {
			return cached, nil
		}
		fetched, err := fetch(ctx)
		if err != nil {
			return "", err
		}
		c.cache.Set(key, fetched, ttl)
		return fetched, nil
	})
	if err != nil {
		return "", err
	}
	return val.(string), nil
}

// Delete implements Cacher.
func (c *Memory) Delete(ctx context.Context, key string) error {
	c.cache.Delete(key)
	return nil
}
