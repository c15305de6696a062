package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newCalendarCmd() *cobra.Command {
	var (
		date      string
		timeZone  string
		latitude  float64
		longitude float64
		reference string
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Summarise a civil day: weekday, tithi, yoga and the Moon's nakshatra",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := time.Parse(dateLayout, date)
			if err != nil {
				return zerr.With(errInvalidFlag, "flag", "date")
			}
			res, err := c.app.GetCalendarDay(cmd.Context(), domain.CalendarRequest{
				Year:      day.Year(),
				Month:     int(day.Month()),
				Day:       day.Day(),
				TimeZone:  timeZone,
				Latitude:  latitude,
				Longitude: longitude,
				Reference: domain.ReferenceSystem(reference),
			})
			if err != nil {
				return err
			}
			if jsonMode(cmd) {
				return writeJSON(cmd.OutOrStdout(), res)
			}

			r := newRenderer(cmd.OutOrStdout())
			r.heading("%s", res.Date.Format("Monday, 2 January 2006"))
			r.field("Vara", fmt.Sprintf("%s (%s)", res.Vara, res.VaraLord.Title()))
			r.field("Tithi", fmt.Sprintf("%s, %s paksha", strconv.Itoa(res.Tithi), res.Paksha))
			r.field("Yoga", strconv.Itoa(res.Yoga))
			r.field("Moon", fmt.Sprintf("%s, %s", rashiLabel(res.Rashi), nakshatraLabel(res.Nakshatra, res.Pada)))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&date, "date", "", "Civil date (YYYY-MM-DD)")
	f.StringVar(&timeZone, "tz", "", "IANA time zone of the place")
	f.Float64Var(&latitude, "lat", 0, "Latitude in degrees, north positive")
	f.Float64Var(&longitude, "lon", 0, "Longitude in degrees, east positive")
	f.StringVar(&reference, "reference", "", "Ayanamsha reference system")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("tz")
	return cmd
}
