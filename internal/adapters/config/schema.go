package config

import "time"

// File represents the structure of the jyotish.yaml configuration file.
type File struct {
	Defaults  DefaultsDTO  `yaml:"defaults"`
	Cache     CacheDTO     `yaml:"cache"`
	Compute   ComputeDTO   `yaml:"compute"`
	Ephemeris EphemerisDTO `yaml:"ephemeris"`
	Log       LogDTO       `yaml:"log"`
}

// DefaultsDTO holds the settings applied when a request leaves them empty.
type DefaultsDTO struct {
	Reference   string `yaml:"reference" validate:"omitempty,oneof=lahiri raman krishnamurti fagan-bradley yukteshwar true-chitra sayana"`
	Precision   string `yaml:"precision" validate:"omitempty,oneof=low medium high maximum"`
	HouseSystem string `yaml:"houseSystem" validate:"omitempty,oneof=whole-sign equal porphyry sripati"`
}

// CacheDTO overrides per-category TTLs and capacities.
type CacheDTO struct {
	TTL      map[string]time.Duration `yaml:"ttl" validate:"dive,keys,oneof=fullProfile minimalProfile compatibility positions calendar,endkeys,gt=0"`
	Capacity map[string]int           `yaml:"capacity" validate:"dive,keys,oneof=minimalProfile compatibility positions,endkeys,gt=0"`
}

// ComputeDTO bounds a single computation.
type ComputeDTO struct {
	Timeout time.Duration `yaml:"timeout" validate:"omitempty,gt=0"`
}

// EphemerisDTO selects the position provider.
type EphemerisDTO struct {
	Source string `yaml:"source" validate:"omitempty,oneof=mean table"`
	Table  string `yaml:"table" validate:"required_if=Source table"`
}

// LogDTO configures the logger.
type LogDTO struct {
	JSON  bool `yaml:"json"`
	Trace bool `yaml:"trace"`
}
