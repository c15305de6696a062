// Package ayanamsha converts tropical ecliptic longitudes into the sidereal frame.
//
// The correction is a cubic in Julian centuries from J2000. It is a deliberate
// approximation and does not model nutation.
package ayanamsha

import (
	"math"
	"time"

	"go.trai.ch/jyotish/internal/core/domain"
)

const (
	// J2000 is the Julian Day of 2000-01-01 12:00 TT.
	J2000 = 2451545.0
	// DaysPerCentury is the length of a Julian century.
	DaysPerCentury = 36525.0
	// UnixEpoch is the Julian Day of 1970-01-01 00:00 UTC.
	UnixEpoch = 2440587.5

	secondsPerDay = 86400.0
)

// Base offsets at J2000.
const (
	BaseLahiri       = 23.4392911
	BaseRaman        = 22.5
	BaseKrishnamurti = 23.0
	BaseFaganBradley = 24.0
)

var bases = map[domain.ReferenceSystem]float64{
	domain.ReferenceLahiri:       BaseLahiri,
	domain.ReferenceRaman:        BaseRaman,
	domain.ReferenceKrishnamurti: BaseKrishnamurti,
	domain.ReferenceFaganBradley: BaseFaganBradley,
}

// JulianDay returns the Julian Day of an instant.
func JulianDay(t time.Time) float64 {
	return float64(t.Unix())/secondsPerDay + float64(t.Nanosecond())/(secondsPerDay*1e9) + UnixEpoch
}

// Time converts a Julian Day back into a UTC instant, rounded to the millisecond.
func Time(jd float64) time.Time {
	ms := int64(math.Round((jd - UnixEpoch) * secondsPerDay * 1000))
	return time.UnixMilli(ms).UTC()
}

// Centuries returns the Julian centuries elapsed since J2000.
func Centuries(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// Base returns the J2000 offset of the reference system.
// Systems without their own constant reuse the Lahiri base; sayana has none.
func Base(ref domain.ReferenceSystem) float64 {
	if ref == domain.ReferenceSayana {
		return 0
	}
	if b, ok := bases[ref]; ok {
		return b
	}
	return BaseLahiri
}

// CorrectionAt returns the ayanamsha in degrees for a Julian Day.
func CorrectionAt(ref domain.ReferenceSystem, jd float64) float64 {
	if ref == domain.ReferenceSayana {
		return 0
	}
	t := Centuries(jd)
	return Base(ref) - 0.0130042*t - 0.00000016*t*t + 0.0000000005*t*t*t
}

// Correction returns the ayanamsha in degrees for an instant.
func Correction(ref domain.ReferenceSystem, instant time.Time) float64 {
	return CorrectionAt(ref, JulianDay(instant))
}

// ToSidereal subtracts the correction from a tropical longitude and wraps the result into [0,360).
func ToSidereal(tropical, correction float64) float64 {
	return domain.NormalizeDegrees(tropical - correction)
}
