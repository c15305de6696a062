package domain

import "time"

// CacheCategory tags a cache entry with the kind of data it holds.
type CacheCategory string

// Cache categories. FullProfile and Calendar are unbounded and rely on TTL alone.
const (
	CategoryFullProfile    CacheCategory = "fullProfile"
	CategoryCalendar       CacheCategory = "calendar"
	CategoryMinimalProfile CacheCategory = "minimalProfile"
	CategoryCompatibility  CacheCategory = "compatibility"
	CategoryPositions      CacheCategory = "positions"
)

// CacheCategories lists every category.
var CacheCategories = []CacheCategory{
	CategoryFullProfile,
	CategoryCalendar,
	CategoryMinimalProfile,
	CategoryCompatibility,
	CategoryPositions,
}

// DefaultCategoryCapacity returns the built-in entry limits of the bounded categories.
func DefaultCategoryCapacity() map[CacheCategory]int {
	return map[CacheCategory]int{
		CategoryMinimalProfile: 20,
		CategoryCompatibility:  30,
		CategoryPositions:      50,
	}
}

// DefaultCategoryTTL returns the built-in time-to-live of each category.
func DefaultCategoryTTL() map[CacheCategory]time.Duration {
	return map[CacheCategory]time.Duration{
		CategoryFullProfile:    24 * time.Hour,
		CategoryCalendar:       12 * time.Hour,
		CategoryMinimalProfile: 6 * time.Hour,
		CategoryCompatibility:  6 * time.Hour,
		CategoryPositions:      time.Hour,
	}
}

// CacheStats is a snapshot of cache occupancy and counters.
type CacheStats struct {
	Total      int                   `json:"total"`
	ByCategory map[CacheCategory]int `json:"byCategory"`
	Hits       uint64                `json:"hits"`
	Misses     uint64                `json:"misses"`
	Evictions  uint64                `json:"evictions"`
}
