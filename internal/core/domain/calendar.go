package domain

import "time"

// Paksha is the lunar fortnight.
type Paksha string

// Pakshas.
const (
	PakshaShukla  Paksha = "shukla"
	PakshaKrishna Paksha = "krishna"
)

// CalendarRequest is the input of a calendar-day computation. Future dates are allowed.
type CalendarRequest struct {
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	Day       int             `json:"day"`
	TimeZone  string          `json:"timeZone"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Reference ReferenceSystem `json:"reference"`
}

// CalendarDay is the panchanga-style summary of a civil day, sampled at local noon.
type CalendarDay struct {
	Key       string        `json:"key"`
	Date      time.Time     `json:"date"`
	Vara      time.Weekday  `json:"vara"`
	VaraLord  Planet        `json:"varaLord"`
	Tithi     int           `json:"tithi"`
	Paksha    Paksha        `json:"paksha"`
	Yoga      int           `json:"yoga"`
	Rashi     RashiData     `json:"rashi"`
	Nakshatra NakshatraData `json:"nakshatra"`
	Pada      PadaData      `json:"pada"`
}

var varaLords = [7]Planet{
	PlanetSun,
	PlanetMoon,
	PlanetMars,
	PlanetMercury,
	PlanetJupiter,
	PlanetVenus,
	PlanetSaturn,
}

// VaraLord returns the planetary ruler of a weekday.
func VaraLord(d time.Weekday) Planet {
	return varaLords[int(d)%len(varaLords)]
}
