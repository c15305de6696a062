// Package ephemeris provides position providers for the calculator.
//
// MeanProvider evaluates low-precision mean-element series and needs no data
// files. TableProvider interpolates a tabulated ephemeris loaded from YAML.
// Both return tropical longitudes in [0,360).
package ephemeris

import (
	"context"
	"math"

	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/core/ports"
	"go.trai.ch/jyotish/internal/engine/ayanamsha"
	"go.trai.ch/zerr"
)

// orbit holds J2000 mean elements of a circular heliocentric orbit.
type orbit struct {
	longitude float64 // mean longitude at J2000, degrees
	rate      float64 // degrees per Julian century
	radius    float64 // semi-major axis, AU
}

var earthOrbit = orbit{100.46457166, 35999.37244981, 1.00000261}

var planetOrbits = map[domain.Planet]orbit{
	domain.PlanetMercury: {252.25032350, 149472.67411175, 0.38709927},
	domain.PlanetVenus:   {181.97909950, 58517.81538729, 0.72333566},
	domain.PlanetMars:    {-4.55343205, 19140.30268499, 1.52371034},
	domain.PlanetJupiter: {34.39644051, 3034.74612775, 5.20288700},
	domain.PlanetSaturn:  {49.95424423, 1222.49362201, 9.53667594},
}

// MeanProvider implements ports.PositionProvider with mean-element series.
// Accuracy is roughly a degree for the Sun and Moon and a few degrees for the
// outer planets.
type MeanProvider struct{}

var _ ports.PositionProvider = (*MeanProvider)(nil)

// NewMeanProvider creates a MeanProvider.
func NewMeanProvider() *MeanProvider {
	return &MeanProvider{}
}

// Longitude returns the tropical geocentric longitude of planet at jd.
func (p *MeanProvider) Longitude(ctx context.Context, planet domain.Planet, jd float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	t := ayanamsha.Centuries(jd)

	switch planet {
	case domain.PlanetSun:
		return sunLongitude(t), nil
	case domain.PlanetMoon:
		return moonLongitude(t), nil
	case domain.PlanetRahu:
		return meanNode(t), nil
	case domain.PlanetKetu:
		return domain.NormalizeDegrees(meanNode(t) + 180), nil
	}

	o, ok := planetOrbits[planet]
	if !ok {
		return 0, zerr.With(domain.ErrUnsupportedPlanet, "planet", string(planet))
	}
	return geocentric(o, t), nil
}

// Angles returns the tropical ascendant and midheaven for the place.
func (p *MeanProvider) Angles(ctx context.Context, jd, lat, lon float64) (domain.Angles, error) {
	if err := ctx.Err(); err != nil {
		return domain.Angles{}, err
	}
	return ComputeAngles(jd, lat, lon), nil
}

func sunMeanAnomaly(t float64) float64 {
	return 357.52911 + 35999.05029*t
}

func sunLongitude(t float64) float64 {
	l0 := 280.46646 + 36000.76983*t
	m := radians(sunMeanAnomaly(t))
	c := (1.914602-0.004817*t)*math.Sin(m) +
		(0.019993-0.000101*t)*math.Sin(2*m) +
		0.000289*math.Sin(3*m)
	return domain.NormalizeDegrees(l0 + c)
}

// moonLongitude keeps the six largest periodic terms of the lunar theory.
func moonLongitude(t float64) float64 {
	l := 218.3164477 + 481267.88123421*t
	d := radians(297.8501921 + 445267.1114034*t)
	m := radians(sunMeanAnomaly(t))
	mp := radians(134.9633964 + 477198.8675055*t)
	f := radians(93.2720950 + 483202.0175233*t)

	l += 6.289*math.Sin(mp) +
		1.274*math.Sin(2*d-mp) +
		0.658*math.Sin(2*d) +
		0.214*math.Sin(2*mp) -
		0.186*math.Sin(m) -
		0.114*math.Sin(2*f)
	return domain.NormalizeDegrees(l)
}

func meanNode(t float64) float64 {
	return domain.NormalizeDegrees(125.04452 - 1934.136261*t)
}

func geocentric(o orbit, t float64) float64 {
	lp := radians(o.longitude + o.rate*t)
	le := radians(earthOrbit.longitude + earthOrbit.rate*t)

	x := o.radius*math.Cos(lp) - earthOrbit.radius*math.Cos(le)
	y := o.radius*math.Sin(lp) - earthOrbit.radius*math.Sin(le)
	return domain.NormalizeDegrees(degrees(math.Atan2(y, x)))
}

// SiderealTime returns the local mean sidereal time in degrees for an
// east-positive longitude.
func SiderealTime(jd, lon float64) float64 {
	t := ayanamsha.Centuries(jd)
	gmst := 280.46061837 +
		360.98564736629*(jd-ayanamsha.J2000) +
		0.000387933*t*t -
		t*t*t/38710000
	return domain.NormalizeDegrees(gmst + lon)
}

// Obliquity returns the mean obliquity of the ecliptic in degrees.
func Obliquity(jd float64) float64 {
	return 23.4392911 - 0.0130042*ayanamsha.Centuries(jd)
}

// ComputeAngles derives the ascendant and midheaven from local sidereal time.
func ComputeAngles(jd, lat, lon float64) domain.Angles {
	theta := radians(SiderealTime(jd, lon))
	eps := radians(Obliquity(jd))
	phi := radians(lat)

	mc := math.Atan2(math.Sin(theta), math.Cos(theta)*math.Cos(eps))
	asc := math.Atan2(math.Cos(theta), -(math.Sin(theta)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps)))

	return domain.Angles{
		Ascendant: domain.NormalizeDegrees(degrees(asc)),
		Midheaven: domain.NormalizeDegrees(degrees(mc)),
	}
}

func radians(d float64) float64 { return d * math.Pi / 180 }

func degrees(r float64) float64 { return r * 180 / math.Pi }
