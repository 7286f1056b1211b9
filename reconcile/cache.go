package reconcile

import (
	"time"

	lru "github.com/hashicorp/golang-lru"
)

type cacheEntry struct {
	result   *Result
	cachedAt time.Time
}

// ResultCache keeps recently computed reconciliation results per date range.
// Entries older than the TTL are still returned, flagged stale, so the
// caller decides between serving and recomputing.
type ResultCache struct {
	cache *lru.Cache
	ttl   time.Duration
	now   func() time.Time
}

func NewResultCache(cfg *Config) (*ResultCache, error) {
	cache, err := lru.New(cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	return &ResultCache{
		cache: cache,
		ttl:   cfg.CacheTTL,
		now:   time.Now,
	}, nil
}

func (c *ResultCache) Get(key string) (result *Result, stale bool, ok bool) {
	raw, ok := c.cache.Get(key)
	if !ok {
		return nil, false, false
	}

	entry := raw.(cacheEntry)
	return entry.result, c.now().Sub(entry.cachedAt) > c.ttl, true
}

func (c *ResultCache) Put(key string, result *Result) {
	c.cache.Add(key, cacheEntry{
		result:   result,
		cachedAt: c.now(),
	})
}

func (c *ResultCache) Invalidate(key string) {
	c.cache.Remove(key)
}

// Clear drops everything. Link writes call this because any cached window
// may contain the affected appointment.
func (c *ResultCache) Clear() {
	c.cache.Purge()
}
