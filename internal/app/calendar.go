package app

import (
	"context"
	"time"

	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/core/ports"
	"go.trai.ch/jyotish/internal/engine/ayanamsha"
	"go.trai.ch/jyotish/internal/engine/panchanga"
	"go.trai.ch/jyotish/internal/engine/zodiac"
	"go.trai.ch/zerr"
)

// GetCalendarDay summarises a civil day at local noon. Future dates are allowed.
func (a *App) GetCalendarDay(ctx context.Context, req domain.CalendarRequest) (*domain.CalendarDay, error) {
	settings := a.cfg.Defaults.Resolve(domain.Settings{Reference: req.Reference})
	req.Reference = settings.Reference

	result := a.validator.ValidateCalendarRequest(req)
	if !result.IsValid() {
		return nil, &domain.ValidationError{Result: result}
	}
	a.warn(result)

	loc, err := time.LoadLocation(req.TimeZone)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrValidationFailed.Error()), "time_zone", req.TimeZone)
	}

	key := CalendarKey(req, settings.Reference)
	if day, ok := cached[*domain.CalendarDay](a, key); ok {
		return day, nil
	}

	noon := time.Date(req.Year, time.Month(req.Month), req.Day, 12, 0, 0, 0, loc)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	return share(ctx, a, key, func(ctx context.Context) (*domain.CalendarDay, error) {
		return a.computeCalendar(ctx, key, req, noon, settings)
	})
}

func (a *App) computeCalendar(
	ctx context.Context,
	key string,
	req domain.CalendarRequest,
	noon time.Time,
	settings domain.Settings,
) (*domain.CalendarDay, error) {
	ctx, span := a.tracer.Start(ctx, "calendar.day", ports.WithAttribute("key", key))
	defer span.End()

	jd := ayanamsha.JulianDay(noon)
	raw, err := a.positions(ctx, jd, req.Latitude, req.Longitude)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	sun, moon := raw.Longitudes[domain.PlanetSun], raw.Longitudes[domain.PlanetMoon]
	correction := ayanamsha.CorrectionAt(settings.Reference, jd)
	sunSidereal := zodiac.Round(ayanamsha.ToSidereal(sun, correction), settings.Precision)
	moonSidereal := zodiac.Round(ayanamsha.ToSidereal(moon, correction), settings.Precision)
	placement := zodiac.Classify(moonSidereal)

	tithi := panchanga.Tithi(sun, moon)
	day := &domain.CalendarDay{
		Key:       key,
		Date:      noon,
		Vara:      noon.Weekday(),
		VaraLord:  domain.VaraLord(noon.Weekday()),
		Tithi:     tithi,
		Paksha:    panchanga.PakshaOf(tithi),
		Yoga:      panchanga.Yoga(sunSidereal, moonSidereal),
		Rashi:     placement.Rashi,
		Nakshatra: placement.Nakshatra,
		Pada:      placement.Pada,
	}

	a.cache.Set(key, day, a.cfg.TTL(domain.CategoryCalendar), domain.CategoryCalendar)
	return day, nil
}
