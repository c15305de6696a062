// Package panchanga derives the lunar-calendar elements of a day from the
// Sun and Moon longitudes.
package panchanga

import (
	"math"

	"go.trai.ch/jyotish/internal/core/domain"
)

const (
	// TithiSpan is the Moon-Sun elongation covered by one tithi.
	TithiSpan = 12.0
	// TithisPerMonth is the number of tithis in a lunar month.
	TithisPerMonth = 30
	// YogaCount is the number of nitya yogas.
	YogaCount = 27
)

// Elongation returns the Moon's angular distance ahead of the Sun in [0,360).
// It is the same in the tropical and sidereal frames.
func Elongation(sun, moon float64) float64 {
	return domain.NormalizeDegrees(moon - sun)
}

// Tithi returns the lunar day (1..30).
func Tithi(sun, moon float64) int {
	return clamp(int(math.Floor(Elongation(sun, moon)/TithiSpan))+1, TithisPerMonth)
}

// PakshaOf returns the fortnight containing the tithi.
func PakshaOf(tithi int) domain.Paksha {
	if tithi <= TithisPerMonth/2 {
		return domain.PakshaShukla
	}
	return domain.PakshaKrishna
}

// Yoga returns the nitya yoga (1..27) from sidereal Sun and Moon longitudes.
func Yoga(sun, moon float64) int {
	sum := domain.NormalizeDegrees(sun + moon)
	return clamp(int(math.Floor(sum/domain.NakshatraSpan))+1, YogaCount)
}

func clamp(n, hi int) int {
	if n > hi {
		return hi
	}
	if n < 1 {
		return 1
	}
	return n
}
