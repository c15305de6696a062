package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
	secsLayout = "15:04:05"
)

var errInvalidFlag = zerr.New("invalid flag value")

// birthFlags collects the flags describing one birth. A non-empty prefix
// namespaces them so two births can share a command.
type birthFlags struct {
	prefix string

	date      string
	clock     string
	timeZone  string
	latitude  float64
	longitude float64

	reference   string
	precision   string
	houseSystem string
	primary     bool
}

func (b *birthFlags) name(flag string) string {
	if b.prefix == "" {
		return flag
	}
	return b.prefix + "-" + flag
}

func (b *birthFlags) register(cmd *cobra.Command, who string) {
	f := cmd.Flags()
	f.StringVar(&b.date, b.name("date"), "", "Birth date of the "+who+" (YYYY-MM-DD)")
	f.StringVar(&b.clock, b.name("time"), "12:00", "Local birth time of the "+who+" (HH:MM or HH:MM:SS)")
	f.StringVar(&b.timeZone, b.name("tz"), "", "IANA time zone of the birth place")
	f.Float64Var(&b.latitude, b.name("lat"), 0, "Latitude in degrees, north positive")
	f.Float64Var(&b.longitude, b.name("lon"), 0, "Longitude in degrees, east positive")

	for _, required := range []string{"date", "tz", "lat", "lon"} {
		_ = cmd.MarkFlagRequired(b.name(required))
	}
}

// registerSettings adds the calculation setting flags. Empty values fall back to the configured defaults.
func (b *birthFlags) registerSettings(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&b.reference, "reference", "", "Ayanamsha reference system")
	f.StringVar(&b.precision, "precision", "", "Rounding of reported longitudes: low, medium, high or maximum")
	f.StringVar(&b.houseSystem, "house-system", "", "House system: whole-sign, equal, porphyry or sripati")
	f.BoolVar(&b.primary, "primary", false, "Treat this as the user's own profile")
}

func (b *birthFlags) request() (domain.BirthRequest, error) {
	day, err := time.Parse(dateLayout, b.date)
	if err != nil {
		return domain.BirthRequest{}, zerr.With(errInvalidFlag, "flag", b.name("date"))
	}
	clock, err := parseClock(b.clock)
	if err != nil {
		return domain.BirthRequest{}, zerr.With(errInvalidFlag, "flag", b.name("time"))
	}

	return domain.BirthRequest{
		Local: domain.LocalDateTime{
			Year:   day.Year(),
			Month:  int(day.Month()),
			Day:    day.Day(),
			Hour:   clock.Hour(),
			Minute: clock.Minute(),
			Second: clock.Second(),
		},
		TimeZone:  b.timeZone,
		Latitude:  b.latitude,
		Longitude: b.longitude,
		Settings: domain.Settings{
			Reference:   domain.ReferenceSystem(b.reference),
			Precision:   domain.Precision(b.precision),
			HouseSystem: domain.HouseSystem(b.houseSystem),
		},
		Primary: b.primary,
	}, nil
}

func parseClock(s string) (time.Time, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(secsLayout, s)
}
