// Package config provides the configuration loader for jyotish.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:   logger,
		validate: validator.New(),
	}
}

// Load searches for jyotish.yaml from cwd upwards and merges it over the defaults.
// A missing file yields the defaults.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path, ok := findConfiguration(cwd)
	if !ok {
		return domain.DefaultConfig(), nil
	}

	var file File
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, err
	}

	if err := l.validate.Struct(&file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", path)
	}

	cfg := file.toDomain(filepath.Dir(path))
	if cfg.Defaults.Reference == domain.ReferenceSayana && l.Logger != nil {
		l.Logger.Warn(fmt.Sprintf("%s sets the sayana reference; positions stay tropical", domain.ConfigFileName))
	}
	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func readAndUnmarshalYAML(path string, out any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered from the working directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(domain.ErrConfigReadFailed, "path", path)
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}

// toDomain overlays the file onto the defaults. Relative table paths resolve against baseDir.
func (f *File) toDomain(baseDir string) *domain.Config {
	cfg := domain.DefaultConfig()

	cfg.Defaults = cfg.Defaults.Resolve(domain.Settings{
		Reference:   domain.ReferenceSystem(f.Defaults.Reference),
		Precision:   domain.Precision(f.Defaults.Precision),
		HouseSystem: domain.HouseSystem(f.Defaults.HouseSystem),
	})

	for k, v := range f.Cache.TTL {
		cfg.CacheTTL[domain.CacheCategory(k)] = v
	}
	for k, v := range f.Cache.Capacity {
		cfg.CacheCapacity[domain.CacheCategory(k)] = v
	}

	if f.Compute.Timeout > 0 {
		cfg.ComputeTimeout = f.Compute.Timeout
	}

	if f.Ephemeris.Source != "" {
		cfg.Ephemeris = domain.EphemerisSource(f.Ephemeris.Source)
	}
	if f.Ephemeris.Table != "" {
		cfg.EphemerisTable = resolvePath(baseDir, f.Ephemeris.Table)
	}

	cfg.LogJSON = f.Log.JSON
	cfg.Trace = f.Log.Trace
	return cfg
}

func resolvePath(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(baseDir, p))
}
