package app

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/jyotish/internal/core/domain"
)

// Cache key prefixes.
const (
	prefixProfile   = "profile"
	prefixMinimal   = "minimal"
	prefixCompat    = "compat"
	prefixCalendar  = "calendar"
	prefixPositions = "positions"
)

// coordDecimals bounds the coordinate resolution that distinguishes cache keys.
const coordDecimals = 6

// keyFor hashes the fields written by write and prefixes the digest.
func keyFor(prefix string, write func(w io.Writer)) string {
	d := xxhash.New()
	write(d)
	return fmt.Sprintf("%s:%016x", prefix, d.Sum64())
}

func roundCoord(v float64) float64 {
	scale := math.Pow(10, coordDecimals)
	return math.Round(v*scale) / scale
}

// ProfileKey identifies a full profile by instant, place and resolved settings.
func ProfileKey(instant time.Time, lat, lon float64, s domain.Settings) string {
	return keyFor(prefixProfile, func(w io.Writer) {
		fmt.Fprintf(w, "%d|%.6f|%.6f|%s|%s|%s",
			instant.UTC().UnixNano(), roundCoord(lat), roundCoord(lon),
			s.Reference, s.Precision, s.HouseSystem)
	})
}

// MinimalKey identifies a Moon-only profile.
func MinimalKey(instant time.Time, lat, lon float64, s domain.Settings) string {
	return keyFor(prefixMinimal, func(w io.Writer) {
		fmt.Fprintf(w, "%d|%.6f|%.6f|%s|%s",
			instant.UTC().UnixNano(), roundCoord(lat), roundCoord(lon),
			s.Reference, s.Precision)
	})
}

// CompatibilityKey identifies a scored pair. Order matters since scoring is directional.
func CompatibilityKey(groom, bride domain.MatchProfile) string {
	return keyFor(prefixCompat, func(w io.Writer) {
		for _, p := range []domain.MatchProfile{groom, bride} {
			fmt.Fprintf(w, "%d|%d|%d|%.6f;", p.Rashi, p.Nakshatra, p.Pada, p.MoonLongitude)
		}
	})
}

// CalendarKey identifies a calendar day.
func CalendarKey(req domain.CalendarRequest, ref domain.ReferenceSystem) string {
	return keyFor(prefixCalendar, func(w io.Writer) {
		fmt.Fprintf(w, "%04d-%02d-%02d|%s|%.6f|%.6f|%s",
			req.Year, req.Month, req.Day, req.TimeZone,
			roundCoord(req.Latitude), roundCoord(req.Longitude), ref)
	})
}

// positionsKey identifies raw provider output for an instant and place.
func positionsKey(jd, lat, lon float64) string {
	return keyFor(prefixPositions, func(w io.Writer) {
		fmt.Fprintf(w, "%.9f|%.6f|%.6f", jd, roundCoord(lat), roundCoord(lon))
	})
}
