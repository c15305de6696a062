// Package zodiac classifies sidereal longitudes into signs, lunar mansions and houses.
package zodiac

import (
	"math"

	"go.trai.ch/jyotish/internal/core/domain"
)

// RashiNumber returns the sign (1-12) containing the longitude.
func RashiNumber(longitude float64) int {
	l := domain.NormalizeDegrees(longitude)
	return clamp(int(math.Floor(l/domain.RashiSpan))+1, domain.RashiCount)
}

// NakshatraNumber returns the lunar mansion (1-27) containing the longitude.
func NakshatraNumber(longitude float64) int {
	l := domain.NormalizeDegrees(longitude)
	return clamp(int(math.Floor(l/domain.NakshatraSpan))+1, domain.NakshatraCount)
}

// PadaNumber returns the quarter (1-4) of the lunar mansion containing the longitude.
func PadaNumber(longitude float64) int {
	l := domain.NormalizeDegrees(longitude)
	return clamp(int(math.Floor(math.Mod(l, domain.NakshatraSpan)/domain.PadaSpan))+1, domain.PadaCount)
}

// NakshatraFraction returns the fraction of the current lunar mansion already traversed, in [0,1).
func NakshatraFraction(longitude float64) float64 {
	l := domain.NormalizeDegrees(longitude)
	f := math.Mod(l, domain.NakshatraSpan) / domain.NakshatraSpan
	if f >= 1 {
		return 0
	}
	return f
}

// Classify resolves the sign, mansion and quarter of a sidereal longitude.
func Classify(longitude float64) domain.Placement {
	l := domain.NormalizeDegrees(longitude)
	return domain.Placement{
		Longitude:    l,
		DegreeInSign: math.Mod(l, domain.RashiSpan),
		Rashi:        domain.Rashi(RashiNumber(l)),
		Nakshatra:    domain.Nakshatra(NakshatraNumber(l)),
		Pada:         domain.PadaData{Number: PadaNumber(l)},
	}
}

// Round applies the precision tier to a longitude and keeps it in [0,360).
func Round(longitude float64, precision domain.Precision) float64 {
	decimals := precision.Decimals()
	if decimals < 0 {
		return domain.NormalizeDegrees(longitude)
	}
	scale := math.Pow(10, float64(decimals))
	return domain.NormalizeDegrees(math.Round(longitude*scale) / scale)
}

// clamp guards the upper bound against float rounding just below 360.
func clamp(n, upper int) int {
	if n > upper {
		return upper
	}
	if n < 1 {
		return 1
	}
	return n
}
