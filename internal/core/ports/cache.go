package ports

import (
	"time"

	"go.trai.ch/jyotish/internal/core/domain"
)

// ChartCache memoizes computed payloads in memory for the process lifetime.
type ChartCache interface {
	// Get returns the payload for key and renews its expiry, or false if missing or expired.
	Get(key string) (any, bool)
	// Set stores payload under key, evicting within the category if it is full.
	Set(key string, payload any, ttl time.Duration, category domain.CacheCategory)
	// Remove deletes a single entry.
	Remove(key string)
	// Clear deletes every entry.
	Clear()
	// ClearByCategory deletes every entry of the category.
	ClearByCategory(category domain.CacheCategory)
	// ClearExpired deletes every entry whose expiry has passed.
	ClearExpired()
	// Size returns the number of entries.
	Size() int
	// SizeByCategory returns the number of entries in the category.
	SizeByCategory(category domain.CacheCategory) int
	// Stats returns a snapshot of occupancy and counters.
	Stats() domain.CacheStats
}

// CacheObserver receives cache events, e.g. to export metrics.
type CacheObserver interface {
	Hit(category domain.CacheCategory)
	Miss()
	Evicted(category domain.CacheCategory)
	Resized(category domain.CacheCategory, size int)
}
