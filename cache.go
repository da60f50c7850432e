package chrono

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	defaultCacheExpiration = 5 * time.Minute
	cacheCleanupInterval   = time.Hour
)

type CacheStats struct {
	Hits   atomic.Int64
	Misses atomic.Int64
}

func (c *CacheStats) Hit() {
	c.Hits.Add(1)
}
func (c *CacheStats) Miss() {
	c.Misses.Add(1)
}
func (c *CacheStats) Reset() {
	c.Hits.Store(0)
	c.Misses.Store(0)
}

// HitRatio returns hits / (hits + misses), or 0 before any lookup.
func (c *CacheStats) HitRatio() float64 {
	hits, misses := c.Hits.Load(), c.Misses.Load()
	if hits+misses == 0 {
		return 0
	}
	return float64(hits) / float64(hits+misses)
}

func (c *CacheStats) String() string {
	return fmt.Sprintf("CacheStats(Hits: %d, Misses: %d)", c.Hits.Load(), c.Misses.Load())
}

// entryCache holds decoded entries by storage key, so that reloading a
// schedule does not fetch and decode entries it has seen recently.
type entryCache struct {
	cache *cache.Cache
	stats CacheStats
}

func newEntryCache(expiration time.Duration) *entryCache {
	return &entryCache{cache: cache.New(expiration, cacheCleanupInterval)}
}

func (c *entryCache) get(key string) (Entry, bool) {
	if v, ok := c.cache.Get(key); ok {
		c.stats.Hit()
		return v.(Entry), true
	}
	c.stats.Miss()
	return Entry{}, false
}

func (c *entryCache) put(key string, e Entry) {
	c.cache.Set(key, e, cache.DefaultExpiration)
}

func (c *entryCache) drop(key string) {
	c.cache.Delete(key)
}

func (c *entryCache) clear() {
	c.cache.Flush()
	c.stats.Reset()
}
