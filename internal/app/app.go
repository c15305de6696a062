// Package app implements the application layer for jyotish.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/core/ports"
	"go.trai.ch/jyotish/internal/engine/validator"
	"golang.org/x/sync/singleflight"
)

// App orchestrates validation, caching and computation of profiles.
type App struct {
	cfg       *domain.Config
	provider  ports.PositionProvider
	cache     ports.ChartCache
	validator *validator.Validator
	logger    ports.Logger
	tracer    ports.Tracer
	clock     clockwork.Clock

	flight singleflight.Group

	// primary holds the most recent primary profile, served when its
	// recomputation times out.
	mu      sync.Mutex
	primary *domain.FixedBirthData
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	provider ports.PositionProvider,
	cache ports.ChartCache,
	val *validator.Validator,
	log ports.Logger,
	tracer ports.Tracer,
	clock clockwork.Clock,
) *App {
	return &App{
		cfg:       cfg,
		provider:  provider,
		cache:     cache,
		validator: val,
		logger:    log,
		tracer:    tracer,
		clock:     clock,
	}
}

// ClearCacheEntry removes a single cached result.
func (a *App) ClearCacheEntry(key string) {
	a.cache.Remove(key)
}

// ClearCache removes every cached result. The primary fallback is kept.
func (a *App) ClearCache() {
	a.cache.Clear()
}

// GetCacheStats returns the cache occupancy per category and its counters.
func (a *App) GetCacheStats() domain.CacheStats {
	return a.cache.Stats()
}

// cached returns the payload under key when it has type T. A payload of any
// other type is treated as corrupt: it is dropped and reported as a miss.
func cached[T any](a *App, key string) (T, bool) {
	var zero T

	v, ok := a.cache.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		a.logger.Warn(fmt.Sprintf("cache: dropping %s holding unexpected %T", key, v))
		a.cache.Remove(key)
		return zero, false
	}
	return typed, true
}

// share collapses concurrent calls for key into one execution of fn. It
// returns ctx.Err() once ctx is done, even if fn is still running.
func share[T any](ctx context.Context, a *App, key string, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	ch := a.flight.DoChan(key, func() (any, error) {
		return fn(ctx)
	})
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil //nolint:forcetypeassert // fn returns T
	}
}

// warn logs every validation warning.
func (a *App) warn(result domain.ValidationResult) {
	for _, w := range result.Warnings {
		a.logger.Warn(fmt.Sprintf("%s: %s", w.Field, w.Message))
	}
}

// withTimeout bounds a computation by the configured compute timeout.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.ComputeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.cfg.ComputeTimeout)
}
