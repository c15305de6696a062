package app

import (
	"context"
	"errors"

	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/core/ports"
	"go.trai.ch/zerr"
)

// rawPositions is the tropical provider output for one instant and place.
type rawPositions struct {
	Longitudes map[domain.Planet]float64
	Angles     domain.Angles
}

// positions returns the tropical longitudes of every graha and the angles,
// served from the positions cache when possible.
func (a *App) positions(ctx context.Context, jd, lat, lon float64) (*rawPositions, error) {
	key := positionsKey(jd, lat, lon)
	if raw, ok := cached[*rawPositions](a, key); ok {
		return raw, nil
	}

	ctx, span := a.tracer.Start(ctx, "ephemeris.positions", ports.WithAttribute("julian_day", jd))
	defer span.End()

	raw := &rawPositions{Longitudes: make(map[domain.Planet]float64, len(domain.Planets))}
	for _, planet := range domain.Planets {
		l, err := a.longitude(ctx, planet, jd)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		raw.Longitudes[planet] = l
	}

	angles, err := a.provider.Angles(ctx, jd, lat, lon)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "position provider failed"), "julian_day", jd)
		span.RecordError(err)
		return nil, err
	}
	if !domain.IsFinite(angles.Ascendant) || !domain.IsFinite(angles.Midheaven) {
		err = errors.Join(domain.ErrCalculationFailed, zerr.With(domain.ErrNonFiniteLongitude, "point", "angles"))
		span.RecordError(err)
		return nil, err
	}
	raw.Angles = domain.Angles{
		Ascendant: domain.NormalizeDegrees(angles.Ascendant),
		Midheaven: domain.NormalizeDegrees(angles.Midheaven),
	}

	a.cache.Set(key, raw, a.cfg.TTL(domain.CategoryPositions), domain.CategoryPositions)
	return raw, nil
}

// longitude asks the provider for one planet. Provider errors stay in the chain.
func (a *App) longitude(ctx context.Context, planet domain.Planet, jd float64) (float64, error) {
	l, err := a.provider.Longitude(ctx, planet, jd)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "position provider failed"), "planet", string(planet))
	}
	if !domain.IsFinite(l) {
		return 0, errors.Join(domain.ErrCalculationFailed, zerr.With(domain.ErrNonFiniteLongitude, "planet", string(planet)))
	}
	return domain.NormalizeDegrees(l), nil
}
