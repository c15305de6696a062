package domain

import "time"

// EphemerisSource selects the position provider implementation.
type EphemerisSource string

// Ephemeris sources.
const (
	EphemerisMean  EphemerisSource = "mean"
	EphemerisTable EphemerisSource = "table"
)

// Config is the resolved calculator configuration.
type Config struct {
	Defaults       Settings
	CacheTTL       map[CacheCategory]time.Duration
	CacheCapacity  map[CacheCategory]int
	ComputeTimeout time.Duration
	Ephemeris      EphemerisSource
	EphemerisTable string
	LogJSON        bool
	Trace          bool
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Defaults:       DefaultSettings(),
		CacheTTL:       DefaultCategoryTTL(),
		CacheCapacity:  DefaultCategoryCapacity(),
		ComputeTimeout: DefaultComputeTimeout,
		Ephemeris:      EphemerisMean,
	}
}

// TTL returns the time-to-live configured for the category.
func (c *Config) TTL(category CacheCategory) time.Duration {
	if ttl, ok := c.CacheTTL[category]; ok {
		return ttl
	}
	return DefaultCategoryTTL()[category]
}
