package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/core/ports"
	"go.trai.ch/jyotish/internal/engine/ayanamsha"
	"go.trai.ch/jyotish/internal/engine/dasha"
	"go.trai.ch/jyotish/internal/engine/zodiac"
	"go.trai.ch/zerr"
)

// birth is a validated request resolved to an instant and concrete settings.
type birth struct {
	req      domain.BirthRequest
	settings domain.Settings
	instant  time.Time
	warnings []domain.ValidationIssue
}

// resolveBirth validates req and fills empty settings from the configured defaults.
// Settings are resolved first so that defaults get the same warnings as explicit values.
func (a *App) resolveBirth(req domain.BirthRequest) (birth, error) {
	settings := a.cfg.Defaults.Resolve(req.Settings)
	req.Settings = settings

	result := a.validator.ValidateBirthRequest(req)
	if !result.IsValid() {
		return birth{}, &domain.ValidationError{Result: result}
	}
	a.warn(result)

	loc, err := time.LoadLocation(req.TimeZone)
	if err != nil {
		return birth{}, zerr.With(zerr.Wrap(err, domain.ErrValidationFailed.Error()), "time_zone", req.TimeZone)
	}

	return birth{
		req:      req,
		settings: settings,
		instant:  req.Local.In(loc).UTC(),
		warnings: result.Warnings,
	}, nil
}

// GetFixedBirthData returns the full profile for a birth request.
//
// Results are cached per instant, place and settings. When a primary profile
// cannot be computed before the compute timeout, the most recent primary
// profile is returned instead if it has the same key, and a warning is logged.
func (a *App) GetFixedBirthData(ctx context.Context, req domain.BirthRequest) (*domain.FixedBirthData, error) {
	b, err := a.resolveBirth(req)
	if err != nil {
		return nil, err
	}

	key := ProfileKey(b.instant, req.Latitude, req.Longitude, b.settings)
	if profile, ok := cached[*domain.FixedBirthData](a, key); ok {
		if req.Primary {
			a.rememberPrimary(profile)
		}
		return profile, nil
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	profile, err := share(ctx, a, key, func(ctx context.Context) (*domain.FixedBirthData, error) {
		return a.computeFixed(ctx, key, b)
	})
	if err != nil {
		if req.Primary && errors.Is(err, context.DeadlineExceeded) {
			if prev := a.lastPrimary(key); prev != nil {
				a.logger.Warn(fmt.Sprintf("profile %s timed out after %s; using the last computed profile", key, a.cfg.ComputeTimeout))
				return prev, nil
			}
		}
		return nil, err
	}

	if req.Primary {
		a.rememberPrimary(profile)
	}
	return profile, nil
}

func (a *App) computeFixed(ctx context.Context, key string, b birth) (*domain.FixedBirthData, error) {
	ctx, span := a.tracer.Start(ctx, "profile.compute",
		ports.WithAttribute("key", key),
		ports.WithAttribute("reference", string(b.settings.Reference)),
	)
	defer span.End()

	jd := ayanamsha.JulianDay(b.instant)
	raw, err := a.positions(ctx, jd, b.req.Latitude, b.req.Longitude)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	correction := ayanamsha.CorrectionAt(b.settings.Reference, jd)
	sidereal := func(tropical float64) float64 {
		return zodiac.Round(ayanamsha.ToSidereal(tropical, correction), b.settings.Precision)
	}

	positions := make([]domain.PlanetPosition, 0, len(domain.Planets))
	for _, planet := range domain.Planets {
		positions = append(positions, domain.PlanetPosition{
			Planet:    planet,
			Longitude: sidereal(raw.Longitudes[planet]),
		})
	}
	angles := domain.Angles{
		Ascendant: sidereal(raw.Angles.Ascendant),
		Midheaven: sidereal(raw.Angles.Midheaven),
	}

	chart, err := zodiac.BuildChart(b.settings.HouseSystem, angles, positions)
	if err != nil {
		err = errors.Join(domain.ErrCalculationFailed, err)
		span.RecordError(err)
		return nil, err
	}

	moon := chart.Planets[domain.PlanetMoon]
	timeline := dasha.BuildTimeline(moon.Nakshatra.Number, zodiac.NakshatraFraction(moon.Longitude), b.instant)

	now := a.clock.Now()
	current, err := dasha.Active(timeline, now)
	if err != nil {
		err = errors.Join(domain.ErrCalculationFailed, err)
		span.RecordError(err)
		return nil, err
	}

	profile := &domain.FixedBirthData{
		Key:           key,
		Request:       b.req,
		Settings:      b.settings,
		Instant:       b.instant,
		JulianDay:     jd,
		Ayanamsha:     correction,
		Rashi:         moon.Rashi,
		Nakshatra:     moon.Nakshatra,
		Pada:          moon.Pada,
		MoonLongitude: moon.Longitude,
		Chart:         chart,
		Timeline:      timeline,
		CurrentDasha:  current,
		CalculatedAt:  now,
		Warnings:      b.warnings,
	}

	a.cache.Set(key, profile, a.cfg.TTL(domain.CategoryFullProfile), domain.CategoryFullProfile)
	return profile, nil
}

// GetMinimalBirthData returns the Moon-only profile used for matching.
func (a *App) GetMinimalBirthData(ctx context.Context, req domain.BirthRequest) (*domain.MinimalBirthData, error) {
	b, err := a.resolveBirth(req)
	if err != nil {
		return nil, err
	}

	key := MinimalKey(b.instant, req.Latitude, req.Longitude, b.settings)
	if profile, ok := cached[*domain.MinimalBirthData](a, key); ok {
		return profile, nil
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	return share(ctx, a, key, func(ctx context.Context) (*domain.MinimalBirthData, error) {
		return a.computeMinimal(ctx, key, b)
	})
}

func (a *App) computeMinimal(ctx context.Context, key string, b birth) (*domain.MinimalBirthData, error) {
	ctx, span := a.tracer.Start(ctx, "profile.minimal", ports.WithAttribute("key", key))
	defer span.End()

	jd := ayanamsha.JulianDay(b.instant)
	tropical, err := a.longitude(ctx, domain.PlanetMoon, jd)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	correction := ayanamsha.CorrectionAt(b.settings.Reference, jd)
	moon := zodiac.Classify(zodiac.Round(ayanamsha.ToSidereal(tropical, correction), b.settings.Precision))

	profile := &domain.MinimalBirthData{
		Key:           key,
		Instant:       b.instant,
		Rashi:         moon.Rashi,
		Nakshatra:     moon.Nakshatra,
		Pada:          moon.Pada,
		MoonLongitude: moon.Longitude,
		CalculatedAt:  a.clock.Now(),
	}

	a.cache.Set(key, profile, a.cfg.TTL(domain.CategoryMinimalProfile), domain.CategoryMinimalProfile)
	return profile, nil
}

func (a *App) lastPrimary(key string) *domain.FixedBirthData {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.primary == nil || a.primary.Key != key {
		return nil
	}
	return a.primary
}

func (a *App) rememberPrimary(profile *domain.FixedBirthData) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.primary = profile
}
