package cache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jyotish/internal/adapters/cache"
	"go.trai.ch/jyotish/internal/core/domain"
)

// fakeClock is the part of clockwork's fake clock the tests drive.
type fakeClock interface {
	clockwork.Clock
	Advance(d time.Duration)
}

func newCache(t *testing.T) (*cache.MemoryCache, fakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	return cache.New(clock, domain.DefaultCategoryCapacity()), clock
}

func TestMemoryCache_GetMiss(t *testing.T) {
	c, _ := newCache(t)

	v, ok := c.Get("missing")

	assert.False(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, uint64(1), c.Stats().Misses)
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	c, _ := newCache(t)

	c.Set("profile:1", "payload", time.Hour, domain.CategoryFullProfile)
	v, ok := c.Get("profile:1")

	require.True(t, ok)
	assert.Equal(t, "payload", v)
	assert.Equal(t, uint64(1), c.Stats().Hits)
}

func TestMemoryCache_EvictsOldestAccessedInCategory(t *testing.T) {
	c, clock := newCache(t)

	for i := range 20 {
		c.Set(fmt.Sprintf("m%d", i), i, time.Hour, domain.CategoryMinimalProfile)
		clock.Advance(time.Second)
	}
	// Touch m0 so m1 becomes the least recently accessed.
	_, ok := c.Get("m0")
	require.True(t, ok)
	clock.Advance(time.Second)

	c.Set("m20", 20, time.Hour, domain.CategoryMinimalProfile)

	assert.Equal(t, 20, c.SizeByCategory(domain.CategoryMinimalProfile))
	_, ok = c.Get("m1")
	assert.False(t, ok, "m1 had the oldest lastAccessed")
	_, ok = c.Get("m0")
	assert.True(t, ok)
	_, ok = c.Get("m20")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestMemoryCache_EvictionIsPerCategory(t *testing.T) {
	c, clock := newCache(t)

	c.Set("other", "x", time.Hour, domain.CategoryPositions)
	clock.Advance(time.Second)
	for i := range 31 {
		c.Set(fmt.Sprintf("c%d", i), i, time.Hour, domain.CategoryCompatibility)
		clock.Advance(time.Second)
	}

	assert.Equal(t, 30, c.SizeByCategory(domain.CategoryCompatibility))
	assert.Equal(t, 1, c.SizeByCategory(domain.CategoryPositions))
	_, ok := c.Get("c0")
	assert.False(t, ok)
	_, ok = c.Get("other")
	assert.True(t, ok)
}

func TestMemoryCache_UnboundedCategoriesNeverEvict(t *testing.T) {
	c, _ := newCache(t)

	for i := range 100 {
		c.Set(fmt.Sprintf("f%d", i), i, time.Hour, domain.CategoryFullProfile)
		c.Set(fmt.Sprintf("d%d", i), i, time.Hour, domain.CategoryCalendar)
	}

	assert.Equal(t, 100, c.SizeByCategory(domain.CategoryFullProfile))
	assert.Equal(t, 100, c.SizeByCategory(domain.CategoryCalendar))
	assert.Equal(t, uint64(0), c.Stats().Evictions)
}

func TestMemoryCache_ReplacingKeyDoesNotEvict(t *testing.T) {
	c, _ := newCache(t)

	for i := range 20 {
		c.Set(fmt.Sprintf("m%d", i), i, time.Hour, domain.CategoryMinimalProfile)
	}
	c.Set("m5", "updated", time.Hour, domain.CategoryMinimalProfile)

	assert.Equal(t, 20, c.Size())
	v, ok := c.Get("m5")
	require.True(t, ok)
	assert.Equal(t, "updated", v)
	assert.Equal(t, uint64(0), c.Stats().Evictions)
}

func TestMemoryCache_GetRenewsExpiry(t *testing.T) {
	c, clock := newCache(t)

	c.Set("k", 1, time.Hour, domain.CategoryFullProfile)

	clock.Advance(50 * time.Minute)
	_, ok := c.Get("k")
	require.True(t, ok)

	// Without renewal the entry would have expired 10 minutes into this step.
	clock.Advance(50 * time.Minute)
	_, ok = c.Get("k")
	require.True(t, ok)

	clock.Advance(61 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size(), "expired entry is purged on access")
}

func TestMemoryCache_ClearExpiredRemovesOnlyExpired(t *testing.T) {
	c, clock := newCache(t)

	c.Set("short", 1, time.Minute, domain.CategoryFullProfile)
	c.Set("long", 2, time.Hour, domain.CategoryCalendar)
	clock.Advance(2 * time.Minute)

	c.ClearExpired()

	assert.Equal(t, 1, c.Size())
	_, ok := c.Get("long")
	assert.True(t, ok)
}

func TestMemoryCache_SetPurgesExpiredGlobally(t *testing.T) {
	c, clock := newCache(t)

	c.Set("stale", 1, time.Minute, domain.CategoryPositions)
	clock.Advance(2 * time.Minute)
	c.Set("fresh", 2, time.Hour, domain.CategoryFullProfile)

	assert.Equal(t, 1, c.Size())
	assert.Equal(t, 0, c.SizeByCategory(domain.CategoryPositions))
}

func TestMemoryCache_RemoveAndClear(t *testing.T) {
	c, _ := newCache(t)

	c.Set("a", 1, time.Hour, domain.CategoryFullProfile)
	c.Set("b", 2, time.Hour, domain.CategoryMinimalProfile)
	c.Set("c", 3, time.Hour, domain.CategoryMinimalProfile)

	c.Remove("a")
	c.Remove("unknown")
	assert.Equal(t, 2, c.Size())

	c.ClearByCategory(domain.CategoryMinimalProfile)
	assert.Equal(t, 0, c.Size())

	c.Set("d", 4, time.Hour, domain.CategoryCalendar)
	c.Clear()
	assert.Equal(t, 0, c.Size())
	assert.Equal(t, 0, c.SizeByCategory(domain.CategoryCalendar))
}

func TestMemoryCache_Stats(t *testing.T) {
	c, _ := newCache(t)

	c.Set("a", 1, time.Hour, domain.CategoryFullProfile)
	c.Set("b", 2, time.Hour, domain.CategoryCompatibility)
	c.Get("a")
	c.Get("z")

	stats := c.Stats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ByCategory[domain.CategoryFullProfile])
	assert.Equal(t, 1, stats.ByCategory[domain.CategoryCompatibility])
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
}

type recordingObserver struct {
	mu        sync.Mutex
	hits      int
	misses    int
	evictions int
	sizes     map[domain.CacheCategory]int
}

func (o *recordingObserver) Hit(domain.CacheCategory) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.hits++
}

func (o *recordingObserver) Miss() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.misses++
}

func (o *recordingObserver) Evicted(domain.CacheCategory) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.evictions++
}

func (o *recordingObserver) Resized(category domain.CacheCategory, size int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sizes[category] = size
}

func TestMemoryCache_Observer(t *testing.T) {
	obs := &recordingObserver{sizes: map[domain.CacheCategory]int{}}
	clock := clockwork.NewFakeClock()
	c := cache.New(clock, map[domain.CacheCategory]int{domain.CategoryPositions: 1}, cache.WithObserver(obs))

	c.Set("a", 1, time.Hour, domain.CategoryPositions)
	c.Set("b", 2, time.Hour, domain.CategoryPositions)
	c.Get("b")
	c.Get("a")

	assert.Equal(t, 1, obs.hits)
	assert.Equal(t, 1, obs.misses)
	assert.Equal(t, 1, obs.evictions)
	assert.Equal(t, 1, obs.sizes[domain.CategoryPositions])
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	c, _ := newCache(t)

	var wg sync.WaitGroup
	for g := range 16 {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := range 200 {
				key := fmt.Sprintf("k%d", (g*7+i)%60)
				c.Set(key, i, time.Hour, domain.CategoryPositions)
				c.Get(key)
				_ = c.Stats()
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.SizeByCategory(domain.CategoryPositions), 50)
	assert.Equal(t, c.Size(), c.SizeByCategory(domain.CategoryPositions))
}
