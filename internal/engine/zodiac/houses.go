package zodiac

import (
	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/zerr"
)

const houseCount = 12

// Cusps returns the sidereal starting longitude of each of the twelve houses.
// Angles must already be sidereal.
func Cusps(system domain.HouseSystem, angles domain.Angles) ([houseCount]float64, error) {
	switch system {
	case domain.HouseWholeSign:
		return wholeSignCusps(angles.Ascendant), nil
	case domain.HouseEqual:
		return equalCusps(angles.Ascendant), nil
	case domain.HousePorphyry:
		return porphyryCusps(angles), nil
	case domain.HouseSripati:
		return sripatiCusps(angles), nil
	default:
		return [houseCount]float64{}, zerr.With(domain.ErrUnknownHouseSystem, "house_system", string(system))
	}
}

func wholeSignCusps(ascendant float64) [houseCount]float64 {
	var cusps [houseCount]float64
	first := RashiNumber(ascendant) - 1
	for i := range cusps {
		cusps[i] = float64((first+i)%domain.RashiCount) * domain.RashiSpan
	}
	return cusps
}

func equalCusps(ascendant float64) [houseCount]float64 {
	var cusps [houseCount]float64
	for i := range cusps {
		cusps[i] = domain.NormalizeDegrees(ascendant + float64(i)*domain.RashiSpan)
	}
	return cusps
}

// porphyryCusps trisects each quadrant between the four angles.
func porphyryCusps(angles domain.Angles) [houseCount]float64 {
	asc := domain.NormalizeDegrees(angles.Ascendant)
	ic := domain.NormalizeDegrees(angles.Midheaven + 180)

	var cusps [houseCount]float64
	cusps[0] = asc
	cusps[3] = ic

	first := arc(asc, ic) / 3
	second := arc(ic, asc+180) / 3
	cusps[1] = domain.NormalizeDegrees(asc + first)
	cusps[2] = domain.NormalizeDegrees(asc + 2*first)
	cusps[4] = domain.NormalizeDegrees(ic + second)
	cusps[5] = domain.NormalizeDegrees(ic + 2*second)

	for i := 6; i < houseCount; i++ {
		cusps[i] = domain.NormalizeDegrees(cusps[i-6] + 180)
	}
	return cusps
}

// sripatiCusps places each house start midway between consecutive porphyry cusps.
func sripatiCusps(angles domain.Angles) [houseCount]float64 {
	mid := porphyryCusps(angles)
	var cusps [houseCount]float64
	for i := range cusps {
		prev := mid[(i+houseCount-1)%houseCount]
		cusps[i] = domain.NormalizeDegrees(prev + arc(prev, mid[i])/2)
	}
	return cusps
}

// arc is the forward distance in degrees from a to b.
func arc(from, to float64) float64 {
	return domain.NormalizeDegrees(to - from)
}

// HouseOf returns the house (1-12) whose span contains the longitude.
func HouseOf(longitude float64, cusps [houseCount]float64) int {
	l := domain.NormalizeDegrees(longitude)
	for i := range cusps {
		next := cusps[(i+1)%houseCount]
		span := arc(cusps[i], next)
		if arc(cusps[i], l) < span {
			return i + 1
		}
	}
	// Degenerate cusps collapse every span to zero.
	return 1
}

// HouseLords maps each house to the lord of the sign on its cusp.
func HouseLords(cusps [houseCount]float64) map[int]domain.Planet {
	lords := make(map[int]domain.Planet, houseCount)
	for i, c := range cusps {
		lords[i+1] = domain.RashiLord(RashiNumber(c))
	}
	return lords
}

// BuildChart classifies the ascendant and every planet and assigns them to houses.
// Positions and angles must already be sidereal.
func BuildChart(
	system domain.HouseSystem,
	angles domain.Angles,
	positions []domain.PlanetPosition,
) (domain.BirthChart, error) {
	cusps, err := Cusps(system, angles)
	if err != nil {
		return domain.BirthChart{}, err
	}

	chart := domain.BirthChart{
		HouseSystem:  system,
		Ascendant:    Classify(angles.Ascendant),
		Cusps:        cusps,
		Planets:      make(map[domain.Planet]domain.PlanetPlacement, len(positions)),
		HouseLords:   HouseLords(cusps),
		PlanetHouses: make(map[domain.Planet]int, len(positions)),
	}

	for _, pos := range positions {
		house := HouseOf(pos.Longitude, cusps)
		chart.Planets[pos.Planet] = domain.PlanetPlacement{
			Planet:    pos.Planet,
			Placement: Classify(pos.Longitude),
			House:     house,
		}
		chart.PlanetHouses[pos.Planet] = house
	}

	return chart, nil
}
