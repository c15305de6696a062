// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/jyotish/internal/core/domain"
)

// PositionProvider supplies raw tropical positions from an ephemeris.
//
// It is the only collaborator that may block; every other computation is synchronous.
//
//go:generate go run go.uber.org/mock/mockgen -source=position_provider.go -destination=mocks/mock_position_provider.go -package=mocks
type PositionProvider interface {
	// Longitude returns the tropical ecliptic longitude of the planet in [0,360)
	// at the given Julian Day (UT).
	Longitude(ctx context.Context, planet domain.Planet, julianDay float64) (float64, error)

	// Angles returns the tropical ascendant and midheaven for the given Julian Day
	// and geographic latitude/longitude in degrees (east positive).
	Angles(ctx context.Context, julianDay, latitude, longitude float64) (domain.Angles, error)
}
