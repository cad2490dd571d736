// Package cache implements the polled query cache behind the QueryCache
// port. There is no push channel anywhere in the system: a registered
// query's poll interval is the only bound on how stale another session's
// writes can look, and invalidation after a local transition is what keeps
// the acting session consistent immediately.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"baco/internal/ports/output"
)

var _ output.QueryCache = (*Cache)(nil)

// Fetcher loads the authoritative value for one query key.
type Fetcher func(ctx context.Context) (any, error)

type entry struct {
	fetcher   Fetcher
	interval  time.Duration
	value     any
	fetchedAt time.Time
	stale     bool
}

// Cache holds registered queries keyed by string. Reads refetch when the
// entry is stale, never fetched, or older than its poll interval.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Register binds a query key to its fetcher and poll interval. Registering
// an existing key replaces the fetcher and drops the cached value.
func (c *Cache) Register(key string, interval time.Duration, fetch Fetcher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &entry{fetcher: fetch, interval: interval, stale: true}
}

// Has reports whether key is registered.
func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Get returns the cached value for key, refetching first when it is stale or
// its poll interval has elapsed.
func (c *Cache) Get(ctx context.Context, key string) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		return nil, fmt.Errorf("query %q is not registered", key)
	}
	if !e.stale && c.now().Sub(e.fetchedAt) < e.interval {
		value := e.value
		c.mu.Unlock()
		return value, nil
	}
	c.mu.Unlock()

	// Fetch outside the lock; a concurrent Get for the same key may fetch
	// twice, which is harmless (last write wins, both values authoritative).
	value, err := e.fetcher(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	e.value = value
	e.fetchedAt = c.now()
	e.stale = false
	c.mu.Unlock()
	return value, nil
}

// Invalidate marks the given keys stale. Unknown keys are ignored, keeping
// invalidation idempotent and commutative under concurrent transitions.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		if e, ok := c.entries[key]; ok {
			e.stale = true
		}
	}
}

// GetAs is a typed convenience wrapper around Get.
func GetAs[T any](ctx context.Context, c *Cache, key string) (T, error) {
	var zero T
	v, err := c.Get(ctx, key)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("query %q holds %T", key, v)
	}
	return typed, nil
}
