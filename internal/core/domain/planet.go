// Package domain contains the core astrological types and static attribute tables.
package domain

// Planet identifies one of the nine grahas used in Vedic astrology.
type Planet string

// The nine grahas.
const (
	PlanetSun     Planet = "sun"
	PlanetMoon    Planet = "moon"
	PlanetMars    Planet = "mars"
	PlanetMercury Planet = "mercury"
	PlanetJupiter Planet = "jupiter"
	PlanetVenus   Planet = "venus"
	PlanetSaturn  Planet = "saturn"
	PlanetRahu    Planet = "rahu"
	PlanetKetu    Planet = "ketu"
)

// Planets lists every graha in the conventional weekday order followed by the nodes.
var Planets = []Planet{
	PlanetSun,
	PlanetMoon,
	PlanetMars,
	PlanetMercury,
	PlanetJupiter,
	PlanetVenus,
	PlanetSaturn,
	PlanetRahu,
	PlanetKetu,
}

// VimshottariOrder is the fixed rotation of dasha lords.
// It is also the lord sequence of the nakshatras, repeating every nine.
var VimshottariOrder = [9]Planet{
	PlanetKetu,
	PlanetVenus,
	PlanetSun,
	PlanetMoon,
	PlanetMars,
	PlanetRahu,
	PlanetJupiter,
	PlanetSaturn,
	PlanetMercury,
}

// VimshottariCycleYears is the length of one full dasha cycle.
const VimshottariCycleYears = 120

// DaysPerYear is the Julian year used for all dasha arithmetic.
const DaysPerYear = 365.25

var vimshottariYears = map[Planet]float64{
	PlanetKetu:    7,
	PlanetVenus:   20,
	PlanetSun:     6,
	PlanetMoon:    10,
	PlanetMars:    7,
	PlanetRahu:    18,
	PlanetJupiter: 16,
	PlanetSaturn:  19,
	PlanetMercury: 17,
}

// String returns the lowercase planet identifier.
func (p Planet) String() string {
	return string(p)
}

// Title returns the display name of the planet.
func (p Planet) Title() string {
	switch p {
	case PlanetSun:
		return "Sun"
	case PlanetMoon:
		return "Moon"
	case PlanetMars:
		return "Mars"
	case PlanetMercury:
		return "Mercury"
	case PlanetJupiter:
		return "Jupiter"
	case PlanetVenus:
		return "Venus"
	case PlanetSaturn:
		return "Saturn"
	case PlanetRahu:
		return "Rahu"
	case PlanetKetu:
		return "Ketu"
	default:
		return string(p)
	}
}

// Valid reports whether p is one of the nine grahas.
func (p Planet) Valid() bool {
	_, ok := vimshottariYears[p]
	return ok
}

// PeriodYears returns the Vimshottari mahadasha length of the planet in years.
// Unknown planets return zero.
func PeriodYears(p Planet) float64 {
	return vimshottariYears[p]
}

// VimshottariIndex returns the position of p in VimshottariOrder, or -1.
func VimshottariIndex(p Planet) int {
	for i, lord := range VimshottariOrder {
		if lord == p {
			return i
		}
	}
	return -1
}

// NextDashaLord returns the lord that follows p in the Vimshottari rotation.
func NextDashaLord(p Planet) Planet {
	idx := VimshottariIndex(p)
	if idx < 0 {
		return VimshottariOrder[0]
	}
	return VimshottariOrder[(idx+1)%len(VimshottariOrder)]
}
