package domain

import "math"

// FullCircle is the number of degrees in one revolution.
const FullCircle = 360.0

// NormalizeDegrees wraps an angle into [0,360).
func NormalizeDegrees(deg float64) float64 {
	r := math.Mod(deg, FullCircle)
	if r < 0 {
		r += FullCircle
	}
	// math.Mod of a tiny negative value plus 360 can round up to 360.
	if r >= FullCircle {
		r = 0
	}
	return r
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
