// Package cache provides a read-through cache for formatted protocol
// responses. The flight listing is the only cached payload: flights are
// immutable once provisioned, so a short TTL never serves a stale
// booking state.
package cache

import (
	"context"
	"time"
)

// FetchFunc produces the value on a cache miss.
type FetchFunc func(ctx context.Context) (string, error)

// Cacher is a read-through string cache. GetOrFetch returns the cached
// value for key, or invokes fetch, stores the result for ttl and returns
// it. A fetch error is returned without populating the cache.
// Implementations must be safe for concurrent use and should collapse
// concurrent misses on the same key into a single fetch.
type Cacher interface {
	GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch FetchFunc) (string, error)
	Delete(ctx context.Context, key string) error
}
