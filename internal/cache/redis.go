package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Redis is a Cacher backed by a shared Redis instance, so several server
// processes reuse one cached flight listing. Misses are collapsed per
// process with singleflight; cross-process duplication of a fetch is
// harmless for this workload and not worth a distributed lock.
type Redis struct {
	client *redis.Client
	group  singleflight.Group
}

// NewRedis returns a Redis cacher using the given client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// GetOrFetch implements Cacher.
func (c *Redis) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch FetchFunc) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == nil {
		return val, nil
	}
	if !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("redis get: %w", err)
	}
	res, err, _ := c.group.Do(key, func() (interface{}, error) {
		fetched, err := fetch(ctx)
		if err != nil {
			return "", err
		}
		if err := c.client.Set(ctx, key, fetched, ttl).Err(); err != nil {
			return "", fmt.Errorf("redis set: %w", err)
		}
		return fetched, nil
	})
	if err != nil {
		return "", err
	}
	return res.(string), nil
}

// Delete implements Cacher.
func (c *Redis) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
