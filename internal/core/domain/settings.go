package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// ReferenceSystem selects the ayanamsha used to convert tropical to sidereal longitudes.
type ReferenceSystem string

// Reference systems.
const (
	ReferenceLahiri       ReferenceSystem = "lahiri"
	ReferenceRaman        ReferenceSystem = "raman"
	ReferenceKrishnamurti ReferenceSystem = "krishnamurti"
	ReferenceFaganBradley ReferenceSystem = "fagan-bradley"
	ReferenceYukteshwar   ReferenceSystem = "yukteshwar"
	ReferenceTrueChitra   ReferenceSystem = "true-chitra"
	// ReferenceSayana applies no correction; longitudes stay tropical.
	ReferenceSayana ReferenceSystem = "sayana"
)

// ReferenceSystems lists every recognised reference system.
var ReferenceSystems = []ReferenceSystem{
	ReferenceLahiri,
	ReferenceRaman,
	ReferenceKrishnamurti,
	ReferenceFaganBradley,
	ReferenceYukteshwar,
	ReferenceTrueChitra,
	ReferenceSayana,
}

// Precision is the rounding tier applied to reported longitudes.
type Precision string

// Precision tiers.
const (
	PrecisionLow     Precision = "low"
	PrecisionMedium  Precision = "medium"
	PrecisionHigh    Precision = "high"
	PrecisionMaximum Precision = "maximum"
)

// Precisions lists every recognised precision tier.
var Precisions = []Precision{PrecisionLow, PrecisionMedium, PrecisionHigh, PrecisionMaximum}

// Decimals returns the number of decimal places kept by the tier, or -1 for no rounding.
func (p Precision) Decimals() int {
	switch p {
	case PrecisionLow:
		return 2
	case PrecisionMedium:
		return 4
	case PrecisionHigh:
		return 6
	default:
		return -1
	}
}

// HouseSystem selects how the twelve bhavas are divided.
type HouseSystem string

// House systems.
const (
	HouseWholeSign HouseSystem = "whole-sign"
	HouseEqual     HouseSystem = "equal"
	HousePorphyry  HouseSystem = "porphyry"
	HouseSripati   HouseSystem = "sripati"
)

// HouseSystems lists every recognised house system.
var HouseSystems = []HouseSystem{HouseWholeSign, HouseEqual, HousePorphyry, HouseSripati}

// Valid reports whether r is a recognised reference system.
func (r ReferenceSystem) Valid() bool { return slices.Contains(ReferenceSystems, r) }

// Valid reports whether p is a recognised precision tier.
func (p Precision) Valid() bool { return slices.Contains(Precisions, p) }

// Valid reports whether h is a recognised house system.
func (h HouseSystem) Valid() bool { return slices.Contains(HouseSystems, h) }

// ParseReferenceSystem converts a user supplied name into a ReferenceSystem.
func ParseReferenceSystem(s string) (ReferenceSystem, error) {
	r := ReferenceSystem(s)
	if !r.Valid() {
		return "", zerr.With(ErrUnknownReferenceSystem, "reference", s)
	}
	return r, nil
}

// ParsePrecision converts a user supplied name into a Precision.
func ParsePrecision(s string) (Precision, error) {
	p := Precision(s)
	if !p.Valid() {
		return "", zerr.With(ErrUnknownPrecision, "precision", s)
	}
	return p, nil
}

// ParseHouseSystem converts a user supplied name into a HouseSystem.
func ParseHouseSystem(s string) (HouseSystem, error) {
	h := HouseSystem(s)
	if !h.Valid() {
		return "", zerr.With(ErrUnknownHouseSystem, "house_system", s)
	}
	return h, nil
}

// Settings is the fallback resolution for optional request fields.
type Settings struct {
	Reference   ReferenceSystem
	Precision   Precision
	HouseSystem HouseSystem
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Reference:   ReferenceLahiri,
		Precision:   PrecisionHigh,
		HouseSystem: HouseWholeSign,
	}
}

// Resolve fills every empty field of override from s. Precedence is override, then s.
func (s Settings) Resolve(override Settings) Settings {
	out := override
	if out.Reference == "" {
		out.Reference = s.Reference
	}
	if out.Precision == "" {
		out.Precision = s.Precision
	}
	if out.HouseSystem == "" {
		out.HouseSystem = s.HouseSystem
	}
	return out
}
