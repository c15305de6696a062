// Package validator performs pre-flight sanity checks on calculation inputs.
//
// Errors block a computation; warnings are advisory and are carried through
// to the result.
package validator

import (
	"fmt"
	"math"
	"time"
	// Embedded zone database so zone lookups work on hosts without zoneinfo.
	_ "time/tzdata"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/jyotish/internal/core/domain"
)

const (
	minYear           = 1
	maxYear           = 9999
	accurateFrom      = 1900
	accurateUntil     = 2100
	poleLatitude      = 85.0
	dateLineLongitude = 170.0
)

// Validator checks birth and calendar requests against the current time.
type Validator struct {
	clock clockwork.Clock
}

// New creates a Validator that reads "now" from clock.
func New(clock clockwork.Clock) *Validator {
	return &Validator{clock: clock}
}

type collector struct {
	result domain.ValidationResult
}

func (c *collector) fail(field string, code domain.IssueCode, format string, args ...any) {
	c.result.Errors = append(c.result.Errors, domain.ValidationIssue{
		Field: field, Code: code, Message: fmt.Sprintf(format, args...),
	})
}

func (c *collector) warn(field string, code domain.IssueCode, format string, args ...any) {
	c.result.Warnings = append(c.result.Warnings, domain.ValidationIssue{
		Field: field, Code: code, Message: fmt.Sprintf(format, args...),
	})
}

// ValidateDateComponents checks that every field of the wall-clock reading is in calendar range.
func (v *Validator) ValidateDateComponents(local domain.LocalDateTime) domain.ValidationResult {
	var c collector

	if local.Year < minYear || local.Year > maxYear {
		c.fail("year", domain.IssueDateOutOfRange, "year %d is outside [%d, %d]", local.Year, minYear, maxYear)
	}
	if local.Month < 1 || local.Month > 12 {
		c.fail("month", domain.IssueDateOutOfRange, "month %d is outside [1, 12]", local.Month)
	} else if days := daysIn(local.Year, local.Month); local.Day < 1 || local.Day > days {
		c.fail("day", domain.IssueDateOutOfRange, "day %d is outside [1, %d]", local.Day, days)
	}
	if local.Hour < 0 || local.Hour > 23 {
		c.fail("hour", domain.IssueDateOutOfRange, "hour %d is outside [0, 23]", local.Hour)
	}
	if local.Minute < 0 || local.Minute > 59 {
		c.fail("minute", domain.IssueDateOutOfRange, "minute %d is outside [0, 59]", local.Minute)
	}
	if local.Second < 0 || local.Second > 59 {
		c.fail("second", domain.IssueDateOutOfRange, "second %d is outside [0, 59]", local.Second)
	}

	return c.result
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ValidateBirthDateTime checks a birth moment. Future instants are rejected.
func (v *Validator) ValidateBirthDateTime(local domain.LocalDateTime, timeZone string) domain.ValidationResult {
	return v.validateDateTime(local, timeZone, false)
}

// ValidateCalendarDateTime checks a calendar moment. Future instants are permitted.
func (v *Validator) ValidateCalendarDateTime(local domain.LocalDateTime, timeZone string) domain.ValidationResult {
	return v.validateDateTime(local, timeZone, true)
}

func (v *Validator) validateDateTime(local domain.LocalDateTime, timeZone string, allowFuture bool) domain.ValidationResult {
	c := collector{result: v.ValidateDateComponents(local)}

	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		c.fail("timeZone", domain.IssueUnknownTimeZone, "unknown time zone %q", timeZone)
	}
	if !c.result.IsValid() {
		return c.result
	}

	instant := local.In(loc)
	if !allowFuture && instant.After(v.clock.Now()) {
		c.fail("date", domain.IssueFutureDate, "birth date %s is in the future", instant.Format(time.RFC3339))
	}
	if local.Year < accurateFrom || local.Year > accurateUntil {
		c.warn("date", domain.IssueReducedAccuracy,
			"year %d is outside %d-%d; positions have reduced accuracy", local.Year, accurateFrom, accurateUntil)
	}

	return c.result
}

// ValidateCoordinates checks a geographic location in degrees.
func (v *Validator) ValidateCoordinates(latitude, longitude float64) domain.ValidationResult {
	var c collector

	latOK, lonOK := true, true
	if !domain.IsFinite(latitude) {
		c.fail("latitude", domain.IssueNotFinite, "latitude is not a finite number")
		latOK = false
	} else if latitude < -90 || latitude > 90 {
		c.fail("latitude", domain.IssueLatitudeRange, "latitude %g is outside [-90, 90]", latitude)
		latOK = false
	}
	if !domain.IsFinite(longitude) {
		c.fail("longitude", domain.IssueNotFinite, "longitude is not a finite number")
		lonOK = false
	} else if longitude < -180 || longitude > 180 {
		c.fail("longitude", domain.IssueLongitudeRange, "longitude %g is outside [-180, 180]", longitude)
		lonOK = false
	}

	if latOK && math.Abs(latitude) > poleLatitude {
		c.warn("latitude", domain.IssuePoleProximity, "latitude %g is close to a pole; house cusps may be unreliable", latitude)
	}
	if lonOK && math.Abs(longitude) > dateLineLongitude {
		c.warn("longitude", domain.IssueDateLineProximity, "longitude %g is close to the date line; check the time zone", longitude)
	}
	if latitude == 0 && longitude == 0 {
		c.warn("location", domain.IssuePlaceholderLocation, "coordinates (0, 0) look like a placeholder")
	}

	return c.result
}

// ValidateEnums checks the calculation settings. Empty fields pass; the app
// validates settings after resolving them from the configured defaults.
func (v *Validator) ValidateEnums(settings domain.Settings) domain.ValidationResult {
	var c collector

	if settings.Reference != "" && !settings.Reference.Valid() {
		c.fail("reference", domain.IssueUnknownReference, "unknown reference system %q", settings.Reference)
	}
	if settings.Precision != "" && !settings.Precision.Valid() {
		c.fail("precision", domain.IssueUnknownPrecision, "unknown precision %q", settings.Precision)
	}
	if settings.HouseSystem != "" && !settings.HouseSystem.Valid() {
		c.fail("houseSystem", domain.IssueUnknownHouseSystem, "unknown house system %q", settings.HouseSystem)
	}

	if settings.Reference == domain.ReferenceSayana {
		c.warn("reference", domain.IssueZeroCorrection, "reference system %q applies no correction; positions stay tropical", settings.Reference)
	}
	if settings.Precision == domain.PrecisionMaximum {
		c.warn("precision", domain.IssueMaximumPrecision, "maximum precision exceeds the accuracy of the position model")
	}
	if settings.HouseSystem == domain.HousePorphyry {
		c.warn("houseSystem", domain.IssueUnusualHouseSystem, "house system %q is unusual in Vedic practice", settings.HouseSystem)
	}

	return c.result
}

// ValidateBirthRequest runs every check that applies to a profile request.
func (v *Validator) ValidateBirthRequest(req domain.BirthRequest) domain.ValidationResult {
	return v.ValidateBirthDateTime(req.Local, req.TimeZone).
		Merge(v.ValidateCoordinates(req.Latitude, req.Longitude)).
		Merge(v.ValidateEnums(req.Settings))
}

// ValidateCalendarRequest runs every check that applies to a calendar-day request.
func (v *Validator) ValidateCalendarRequest(req domain.CalendarRequest) domain.ValidationResult {
	noon := domain.LocalDateTime{Year: req.Year, Month: req.Month, Day: req.Day, Hour: 12}
	return v.ValidateCalendarDateTime(noon, req.TimeZone).
		Merge(v.ValidateCoordinates(req.Latitude, req.Longitude)).
		Merge(v.ValidateEnums(domain.Settings{Reference: req.Reference}))
}

// ValidateMatchProfile checks that a profile handed to the scorer is in range
// and that its nakshatra, pada and optional longitude agree with its rashi.
// role prefixes the field names, e.g. "groom.nakshatra".
func (v *Validator) ValidateMatchProfile(role string, p domain.MatchProfile) domain.ValidationResult {
	var c collector

	if p.Rashi < 1 || p.Rashi > domain.RashiCount {
		c.fail(role+".rashi", domain.IssueProfileOutOfRange, "rashi %d is outside [1, %d]", p.Rashi, domain.RashiCount)
	}
	if p.Nakshatra < 1 || p.Nakshatra > domain.NakshatraCount {
		c.fail(role+".nakshatra", domain.IssueProfileOutOfRange, "nakshatra %d is outside [1, %d]", p.Nakshatra, domain.NakshatraCount)
	}
	if p.Pada < 1 || p.Pada > domain.PadaCount {
		c.fail(role+".pada", domain.IssueProfileOutOfRange, "pada %d is outside [1, %d]", p.Pada, domain.PadaCount)
	}
	if !domain.IsFinite(p.MoonLongitude) {
		c.fail(role+".moonLongitude", domain.IssueNotFinite, "moon longitude is not a finite number")
	}
	if !c.result.IsValid() {
		return c.result
	}

	// Nine padas make up each rashi.
	if r := ((p.Nakshatra-1)*domain.PadaCount+p.Pada-1)/9 + 1; r != p.Rashi {
		c.fail(role+".nakshatra", domain.IssueProfileInconsistent,
			"nakshatra %d pada %d lies in rashi %d, not %d", p.Nakshatra, p.Pada, r, p.Rashi)
	}
	// Zero means the longitude was not supplied.
	if p.MoonLongitude != 0 {
		if r := int(domain.NormalizeDegrees(p.MoonLongitude)/domain.RashiSpan) + 1; r != p.Rashi {
			c.fail(role+".moonLongitude", domain.IssueProfileInconsistent,
				"moon longitude %g lies in rashi %d, not %d", p.MoonLongitude, r, p.Rashi)
		}
	}

	return c.result
}
