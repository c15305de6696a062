package domain

import "time"

// LocalDateTime is a wall-clock reading in some time zone, before resolution to an instant.
type LocalDateTime struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// NewLocalDateTime captures the wall-clock fields of t.
func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// In resolves the wall-clock reading to an instant in loc.
func (l LocalDateTime) In(loc *time.Location) time.Time {
	return time.Date(l.Year, time.Month(l.Month), l.Day, l.Hour, l.Minute, l.Second, 0, loc)
}

// BirthRequest is the input of a profile computation.
type BirthRequest struct {
	Local     LocalDateTime `json:"local"`
	TimeZone  string        `json:"timeZone"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Settings  Settings      `json:"settings"`
	// Primary marks the user's own profile, which is kept as a fallback on timeouts.
	Primary bool `json:"primary"`
}

// Angles are the tropical ascendant and midheaven for an instant and place.
type Angles struct {
	Ascendant float64 `json:"ascendant"`
	Midheaven float64 `json:"midheaven"`
}

// Placement is the classification of a sidereal longitude.
type Placement struct {
	Longitude    float64       `json:"longitude"`
	DegreeInSign float64       `json:"degreeInSign"`
	Rashi        RashiData     `json:"rashi"`
	Nakshatra    NakshatraData `json:"nakshatra"`
	Pada         PadaData      `json:"pada"`
}

// PlanetPosition is a planet's sidereal longitude in [0,360).
type PlanetPosition struct {
	Planet    Planet  `json:"planet"`
	Longitude float64 `json:"longitude"`
}

// PlanetPlacement is a classified planet together with the house it occupies.
type PlanetPlacement struct {
	Planet Planet `json:"planet"`
	Placement
	House int `json:"house"`
}

// BirthChart holds per-planet placements and the house mappings.
type BirthChart struct {
	HouseSystem  HouseSystem                `json:"houseSystem"`
	Ascendant    Placement                  `json:"ascendant"`
	Cusps        [12]float64                `json:"cusps"`
	Planets      map[Planet]PlanetPlacement `json:"planets"`
	HouseLords   map[int]Planet             `json:"houseLords"`
	PlanetHouses map[Planet]int             `json:"planetHouses"`
}

// MatchProfile is the subset of a profile needed for compatibility scoring.
type MatchProfile struct {
	Rashi         int     `json:"rashi"`
	Nakshatra     int     `json:"nakshatra"`
	Pada          int     `json:"pada"`
	MoonLongitude float64 `json:"moonLongitude"`
}

// FixedBirthData is the immutable profile computed for one instant, location and settings.
// Recomputation produces a new value rather than mutating an existing one.
type FixedBirthData struct {
	Key           string            `json:"key"`
	Request       BirthRequest      `json:"request"`
	Settings      Settings          `json:"settings"`
	Instant       time.Time         `json:"instant"`
	JulianDay     float64           `json:"julianDay"`
	Ayanamsha     float64           `json:"ayanamsha"`
	Rashi         RashiData         `json:"rashi"`
	Nakshatra     NakshatraData     `json:"nakshatra"`
	Pada          PadaData          `json:"pada"`
	MoonLongitude float64           `json:"moonLongitude"`
	Chart         BirthChart        `json:"chart"`
	Timeline      []DashaPeriod     `json:"timeline"`
	CurrentDasha  ActiveDasha       `json:"currentDasha"`
	CalculatedAt  time.Time         `json:"calculatedAt"`
	Warnings      []ValidationIssue `json:"warnings,omitempty"`
}

// MatchProfile extracts the matching inputs from the profile.
func (f *FixedBirthData) MatchProfile() MatchProfile {
	return MatchProfile{
		Rashi:         f.Rashi.Number,
		Nakshatra:     f.Nakshatra.Number,
		Pada:          f.Pada.Number,
		MoonLongitude: f.MoonLongitude,
	}
}

// MinimalBirthData is the reduced Moon-only profile used for pairwise matching.
type MinimalBirthData struct {
	Key           string        `json:"key"`
	Instant       time.Time     `json:"instant"`
	Rashi         RashiData     `json:"rashi"`
	Nakshatra     NakshatraData `json:"nakshatra"`
	Pada          PadaData      `json:"pada"`
	MoonLongitude float64       `json:"moonLongitude"`
	CalculatedAt  time.Time     `json:"calculatedAt"`
}

// MatchProfile extracts the matching inputs from the profile.
func (m *MinimalBirthData) MatchProfile() MatchProfile {
	return MatchProfile{
		Rashi:         m.Rashi.Number,
		Nakshatra:     m.Nakshatra.Number,
		Pada:          m.Pada.Number,
		MoonLongitude: m.MoonLongitude,
	}
}
