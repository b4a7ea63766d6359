package chart

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/couchcryptid/wildfire-watch/internal/observability"
)

// Cache keeps rendered charts, and the random series they draw, for a short
// TTL so repeated page loads see the same data and skip re-rendering.
type Cache struct {
	c       *cache.Cache
	metrics *observability.Metrics

	memoMu sync.Mutex
}

// NewCache creates a Cache whose entries expire after ttl.
func NewCache(ttl time.Duration, metrics *observability.Metrics) *Cache {
	return &Cache{
		c:       cache.New(ttl, 2*ttl),
		metrics: metrics,
	}
}

// GetOrRender returns the cached bytes for key, calling render on a miss.
// Render errors are not cached.
func (c *Cache) GetOrRender(key string, render func() ([]byte, error)) ([]byte, error) {
	if v, ok := c.c.Get(key); ok {
		c.metrics.ChartCache.WithLabelValues("hit").Inc()
		return v.([]byte), nil
	}
	c.metrics.ChartCache.WithLabelValues("miss").Inc()

	b, err := render()
	if err != nil {
		return nil, err
	}
	c.c.Set(key, b, cache.DefaultExpiration)
	return b, nil
}

// Delete drops the given keys.
func (c *Cache) Delete(keys ...string) {
	for _, k := range keys {
		c.c.Delete(k)
	}
}

// Memo returns the value stored under key, calling gen on a miss. Concurrent
// misses for the same cache generate once.
func Memo[T any](c *Cache, key string, gen func() T) T {
	c.memoMu.Lock()
	defer c.memoMu.Unlock()
	if v, ok := c.c.Get(key); ok {
		if t, ok := v.(T); ok {
			return t
		}
	}
	v := gen()
	c.c.Set(key, v, cache.DefaultExpiration)
	return v
}
