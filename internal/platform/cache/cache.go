// Package cache provides a string-keyed, TTL-bounded LRU cache with
// single-flight computation: concurrent requests for the same missing key
// run the compute function once and share its result.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Stats are cumulative hit/miss counters.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// HitRate is hits over total lookups, 0 when the cache is untouched.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Cache is a generic LRU cache with optional expiry. A zero TTL disables
// expiry so entries live until evicted by capacity.
type Cache[V any] struct {
	lru    *expirable.LRU[string, V]
	group  singleflight.Group
	hits   atomic.Uint64
	misses atomic.Uint64
	logger *slog.Logger
}

// New creates a cache holding up to size entries with the given TTL.
func New[V any](size int, ttl time.Duration, logger *slog.Logger) *Cache[V] {
	return &Cache[V]{
		lru:    expirable.NewLRU[string, V](size, nil, ttl),
		logger: logger,
	}
}

// Get returns the cached value for key, counting the lookup.
func (c *Cache[V]) Get(key string) (V, bool) {
	v, ok := c.lru.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Set stores a value under key.
func (c *Cache[V]) Set(key string, value V) {
	c.lru.Add(key, value)
}

// GetOrCompute returns the cached value for key, or runs compute to produce
// it. Concurrent callers for the same missing key share one compute call.
// Errors are returned to every waiting caller and never cached.
func (c *Cache[V]) GetOrCompute(ctx context.Context, key string, compute func(ctx context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		// A concurrent caller may have stored the value between the miss
		// and this flight winning the key.
		if v, ok := c.lru.Get(key); ok {
			return v, nil
		}
		v, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		c.lru.Add(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return result.(V), nil
}

// Stats returns the cumulative counters.
func (c *Cache[V]) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// Len returns the number of live entries.
func (c *Cache[V]) Len() int {
	return c.lru.Len()
}

// Purge drops every entry. Counters are kept.
func (c *Cache[V]) Purge() {
	c.lru.Purge()
	if c.logger != nil {
		c.logger.Debug("cache purged")
	}
}

// Key joins parts into a stable cache key.
func Key(parts ...any) string {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = fmt.Sprint(p)
	}
	return strings.Join(strs, ":")
}
