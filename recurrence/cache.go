package recurrence

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"sync"
	"time"
)

// cacheEntry represents one memoized expansion.
type cacheEntry struct {
	result     []Occurrence
	expiresAt  time.Time
	accessedAt time.Time
}

// expansionCache memoizes expansion results. Because expansion is pure, a
// cached value is byte-for-byte the value the computation would produce.
type expansionCache struct {
	entries         map[string]*cacheEntry
	mutex           sync.RWMutex
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
}

// CacheConfig holds configuration for the expansion cache.
type CacheConfig struct {
	TTL             time.Duration // How long entries stay valid
	MaxEntries      int           // Maximum number of entries before cleanup
	CleanupInterval time.Duration // How often to run cleanup
}

// DefaultCacheConfig provides sensible defaults for expansion caching.
var DefaultCacheConfig = CacheConfig{
	TTL:             15 * time.Minute,
	MaxEntries:      1000,
	CleanupInterval: 5 * time.Minute,
}

func newExpansionCache(config CacheConfig) *expansionCache {
	if config.TTL <= 0 {
		config.TTL = DefaultCacheConfig.TTL
	}
	if config.MaxEntries <= 0 {
		config.MaxEntries = DefaultCacheConfig.MaxEntries
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = DefaultCacheConfig.CleanupInterval
	}

	cache := &expansionCache{
		entries:         make(map[string]*cacheEntry),
		ttl:             config.TTL,
		maxEntries:      config.MaxEntries,
		cleanupInterval: config.CleanupInterval,
		stopCleanup:     make(chan struct{}),
	}
	go cache.cleanupLoop()
	return cache
}

// cacheKey hashes every input that influences an expansion.
func cacheKey(anchor time.Time, rule ScheduleRule, limit int, until time.Time) string {
	hasher := sha256.New()

	hasher.Write([]byte(anchor.Format(time.RFC3339Nano)))
	hasher.Write([]byte(rule.Frequency))
	fmt.Fprintf(hasher, "|%d|%d|", rule.Interval, rule.DayOfMonth)
	for _, d := range rule.DaysOfWeek {
		fmt.Fprintf(hasher, "%d,", d)
	}
	hasher.Write([]byte(rule.End.Type))
	fmt.Fprintf(hasher, "|%d|", rule.End.Occurrences)
	hasher.Write([]byte(rule.End.Date.Format(time.RFC3339Nano)))
	fmt.Fprintf(hasher, "|%d|", limit)
	hasher.Write([]byte(until.Format(time.RFC3339Nano)))

	return fmt.Sprintf("%x", hasher.Sum(nil))
}

func (c *expansionCache) get(anchor time.Time, rule ScheduleRule, limit int, until time.Time) ([]Occurrence, bool) {
	key := cacheKey(anchor, rule, limit, until)

	c.mutex.RLock()
	entry, exists := c.entries[key]
	c.mutex.RUnlock()

	if !exists {
		return nil, false
	}

	now := time.Now()
	if now.After(entry.expiresAt) {
		c.mutex.Lock()
		delete(c.entries, key)
		c.mutex.Unlock()
		return nil, false
	}

	c.mutex.Lock()
	entry.accessedAt = now
	c.mutex.Unlock()

	return entry.result, true
}

func (c *expansionCache) set(anchor time.Time, rule ScheduleRule, limit int, until time.Time, result []Occurrence) {
	key := cacheKey(anchor, rule, limit, until)
	now := time.Now()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = &cacheEntry{
		result:     result,
		expiresAt:  now.Add(c.ttl),
		accessedAt: now,
	}

	if len(c.entries) > c.maxEntries {
		c.cleanup()
	}
}

// cleanup removes expired entries, then the least recently accessed entries
// while still over the limit. Caller must hold the write lock.
func (c *expansionCache) cleanup() {
	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}

	if len(c.entries) <= c.maxEntries {
		return
	}

	type keyAccess struct {
		key        string
		accessedAt time.Time
	}
	byAge := make([]keyAccess, 0, len(c.entries))
	for key, entry := range c.entries {
		byAge = append(byAge, keyAccess{key, entry.accessedAt})
	}
	sort.Slice(byAge, func(i, j int) bool {
		return byAge[i].accessedAt.Before(byAge[j].accessedAt)
	})

	entriesToRemove := len(c.entries) - c.maxEntries
	for i := 0; i < entriesToRemove && i < len(byAge); i++ {
		delete(c.entries, byAge[i].key)
	}
}

func (c *expansionCache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mutex.Lock()
			c.cleanup()
			c.mutex.Unlock()
		case <-c.stopCleanup:
			return
		}
	}
}

// Close stops the cleanup goroutine and clears the cache.
func (c *expansionCache) Close() {
	close(c.stopCleanup)
	c.mutex.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mutex.Unlock()
}

// CacheStats provides information about cache occupancy.
type CacheStats struct {
	TotalEntries   int
	ExpiredEntries int
	ActiveEntries  int
}

// CacheStats reports the calculator's cache occupancy. All zeros when the
// cache is disabled.
func (c *Calculator) CacheStats() CacheStats {
	if c.cache == nil {
		return CacheStats{}
	}

	c.cache.mutex.RLock()
	defer c.cache.mutex.RUnlock()

	total := len(c.cache.entries)
	expired := 0
	now := time.Now()
	for _, entry := range c.cache.entries {
		if now.After(entry.expiresAt) {
			expired++
		}
	}

	return CacheStats{
		TotalEntries:   total,
		ExpiredEntries: expired,
		ActiveEntries:  total - expired,
	}
}
