// Package cache provides the in-memory LRU+TTL memoization cache.
package cache

import (
	"container/list"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/core/ports"
)

// entry is owned by the cache and mutated in place on every hit.
type entry struct {
	key          string
	payload      any
	category     domain.CacheCategory
	ttl          time.Duration
	expiresAt    time.Time
	lastAccessed time.Time
	elem         *list.Element
}

// MemoryCache implements ports.ChartCache.
//
// Each category keeps its own recency list with the most recently accessed entry
// at the front, so eviction removes the entry with the oldest lastAccessed in O(1).
// Reads renew the expiry to now plus the entry's original TTL.
type MemoryCache struct {
	mu       sync.Mutex
	clock    clockwork.Clock
	capacity map[domain.CacheCategory]int
	entries  map[string]*entry
	recency  map[domain.CacheCategory]*list.List
	observer ports.CacheObserver
	logger   ports.Logger

	hits      uint64
	misses    uint64
	evictions uint64
}

// Option configures a MemoryCache.
type Option func(*MemoryCache)

// WithObserver reports cache events to o.
func WithObserver(o ports.CacheObserver) Option {
	return func(c *MemoryCache) { c.observer = o }
}

// WithLogger logs evictions to l.
func WithLogger(l ports.Logger) Option {
	return func(c *MemoryCache) { c.logger = l }
}

// New creates a MemoryCache. Categories missing from capacity, or with a
// non-positive limit, are bounded by TTL alone.
func New(clock clockwork.Clock, capacity map[domain.CacheCategory]int, opts ...Option) *MemoryCache {
	c := &MemoryCache{
		clock:    clock,
		capacity: make(map[domain.CacheCategory]int, len(capacity)),
		entries:  make(map[string]*entry),
		recency:  make(map[domain.CacheCategory]*list.List),
	}
	for k, v := range capacity {
		c.capacity[k] = v
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the payload stored under key. Expired entries are purged and reported as missing.
func (c *MemoryCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.miss()
		return nil, false
	}

	now := c.clock.Now()
	if expired(e, now) {
		c.removeLocked(e)
		c.miss()
		return nil, false
	}

	e.expiresAt = now.Add(e.ttl)
	e.lastAccessed = now
	c.recency[e.category].MoveToFront(e.elem)

	c.hits++
	if c.observer != nil {
		c.observer.Hit(e.category)
	}
	return e.payload, true
}

// Set stores payload under key. Expired entries are purged first; a bounded
// category at capacity loses its least recently accessed entry.
func (c *MemoryCache) Set(key string, payload any, ttl time.Duration, category domain.CacheCategory) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	c.clearExpiredLocked(now)

	if existing, ok := c.entries[key]; ok {
		c.removeLocked(existing)
	}

	lru := c.listFor(category)
	if limit := c.capacity[category]; limit > 0 {
		for lru.Len() >= limit {
			c.evictLocked(lru.Back().Value.(*entry))
		}
	}

	e := &entry{
		key:          key,
		payload:      payload,
		category:     category,
		ttl:          ttl,
		expiresAt:    now.Add(ttl),
		lastAccessed: now,
	}
	e.elem = lru.PushFront(e)
	c.entries[key] = e
	c.resized(category)
}

// Remove deletes a single entry.
func (c *MemoryCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.removeLocked(e)
	}
}

// Clear deletes every entry. Counters are kept.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry)
	for category := range c.recency {
		c.recency[category].Init()
		c.resized(category)
	}
}

// ClearByCategory deletes every entry of the category.
func (c *MemoryCache) ClearByCategory(category domain.CacheCategory) {
	c.mu.Lock()
	defer c.mu.Unlock()

	lru, ok := c.recency[category]
	if !ok {
		return
	}
	for el := lru.Front(); el != nil; el = el.Next() {
		delete(c.entries, el.Value.(*entry).key)
	}
	lru.Init()
	c.resized(category)
}

// ClearExpired deletes every entry whose expiry has passed.
func (c *MemoryCache) ClearExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clearExpiredLocked(c.clock.Now())
}

// Size returns the number of entries.
func (c *MemoryCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// SizeByCategory returns the number of entries in the category.
func (c *MemoryCache) SizeByCategory(category domain.CacheCategory) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if lru, ok := c.recency[category]; ok {
		return lru.Len()
	}
	return 0
}

// Stats returns a snapshot of occupancy and counters.
func (c *MemoryCache) Stats() domain.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	byCategory := make(map[domain.CacheCategory]int, len(c.recency))
	for category, lru := range c.recency {
		byCategory[category] = lru.Len()
	}
	return domain.CacheStats{
		Total:      len(c.entries),
		ByCategory: byCategory,
		Hits:       c.hits,
		Misses:     c.misses,
		Evictions:  c.evictions,
	}
}

func expired(e *entry, now time.Time) bool {
	return now.After(e.expiresAt)
}

func (c *MemoryCache) listFor(category domain.CacheCategory) *list.List {
	lru, ok := c.recency[category]
	if !ok {
		lru = list.New()
		c.recency[category] = lru
	}
	return lru
}

func (c *MemoryCache) clearExpiredLocked(now time.Time) {
	for _, e := range c.entries {
		if expired(e, now) {
			c.removeLocked(e)
		}
	}
}

func (c *MemoryCache) removeLocked(e *entry) {
	delete(c.entries, e.key)
	c.recency[e.category].Remove(e.elem)
	c.resized(e.category)
}

func (c *MemoryCache) evictLocked(e *entry) {
	c.removeLocked(e)
	c.evictions++
	if c.observer != nil {
		c.observer.Evicted(e.category)
	}
	if c.logger != nil {
		c.logger.Info(fmt.Sprintf("cache: evicted %s from %s", e.key, e.category))
	}
}

func (c *MemoryCache) miss() {
	c.misses++
	if c.observer != nil {
		c.observer.Miss()
	}
}

func (c *MemoryCache) resized(category domain.CacheCategory) {
	if c.observer != nil {
		c.observer.Resized(category, c.recency[category].Len())
	}
}
