package domain

import "go.trai.ch/zerr"

var (
	// ErrValidationFailed is returned when input validation produced blocking errors.
	ErrValidationFailed = zerr.New("validation failed")

	// ErrCalculationFailed is returned when a profile could not be computed from provider output.
	ErrCalculationFailed = zerr.New("calculation failed")

	// ErrNonFiniteLongitude is returned when the position provider yields NaN or infinity.
	ErrNonFiniteLongitude = zerr.New("position provider returned a non-finite longitude")

	// ErrUnknownReferenceSystem is returned when a reference system name is not recognised.
	ErrUnknownReferenceSystem = zerr.New("unknown reference system")

	// ErrUnknownPrecision is returned when a precision tier name is not recognised.
	ErrUnknownPrecision = zerr.New("unknown precision")

	// ErrUnknownHouseSystem is returned when a house system name is not recognised.
	ErrUnknownHouseSystem = zerr.New("unknown house system")

	// ErrUnsupportedPlanet is returned when a provider cannot compute the requested planet.
	ErrUnsupportedPlanet = zerr.New("planet not supported by position provider")

	// ErrEphemerisOutOfRange is returned when a tabulated ephemeris does not cover the requested day.
	ErrEphemerisOutOfRange = zerr.New("julian day outside ephemeris table range")

	// ErrQueryBeforeBirth is returned when a dasha is requested for an instant before birth.
	ErrQueryBeforeBirth = zerr.New("query instant precedes birth")

	// ErrEmptyTimeline is returned when a dasha lookup is attempted on an empty timeline.
	ErrEmptyTimeline = zerr.New("dasha timeline is empty")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrEphemerisTableInvalid is returned when an ephemeris table cannot be used.
	ErrEphemerisTableInvalid = zerr.New("invalid ephemeris table")
)
