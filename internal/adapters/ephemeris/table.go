package ephemeris

import (
	"context"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// TableFile is the YAML layout of a tabulated ephemeris.
//
//	rows:
//	  - jd: 2451545.0
//	    longitudes: {sun: 280.37, moon: 223.32, rahu: 125.04}
type TableFile struct {
	Rows []TableRow `yaml:"rows" validate:"required,min=2,dive"`
}

// TableRow holds tropical longitudes for one Julian Day.
type TableRow struct {
	JD         float64                   `yaml:"jd" validate:"gt=0"`
	Longitudes map[domain.Planet]float64 `yaml:"longitudes" validate:"required,min=1"`
}

// TableProvider implements ports.PositionProvider by linear interpolation
// between tabulated rows. Ketu is derived from Rahu when not tabulated.
// Angles are computed from sidereal time since they depend on the place.
type TableProvider struct {
	rows []TableRow
}

var _ ports.PositionProvider = (*TableProvider)(nil)

// LoadTable reads and validates a table file.
func LoadTable(path string) (*TableProvider, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEphemerisTableInvalid.Error()), "path", path)
	}

	var file TableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEphemerisTableInvalid.Error()), "path", path)
	}

	p, err := NewTableProvider(file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return p, nil
}

// NewTableProvider validates file and sorts its rows by Julian Day.
func NewTableProvider(file TableFile) (*TableProvider, error) {
	if err := validator.New().Struct(&file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrEphemerisTableInvalid.Error())
	}

	rows := slices.Clone(file.Rows)
	slices.SortFunc(rows, func(a, b TableRow) int {
		switch {
		case a.JD < b.JD:
			return -1
		case a.JD > b.JD:
			return 1
		default:
			return 0
		}
	})
	for i := 1; i < len(rows); i++ {
		if rows[i].JD == rows[i-1].JD {
			return nil, zerr.With(domain.ErrEphemerisTableInvalid, "duplicate_jd", rows[i].JD)
		}
	}

	return &TableProvider{rows: rows}, nil
}

// Range returns the first and last tabulated Julian Day.
func (p *TableProvider) Range() (first, last float64) {
	return p.rows[0].JD, p.rows[len(p.rows)-1].JD
}

// Longitude interpolates the tropical longitude of planet at jd.
func (p *TableProvider) Longitude(ctx context.Context, planet domain.Planet, jd float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if planet == domain.PlanetKetu {
		if _, ok := p.rows[0].Longitudes[domain.PlanetKetu]; !ok {
			rahu, err := p.Longitude(ctx, domain.PlanetRahu, jd)
			if err != nil {
				return 0, err
			}
			return domain.NormalizeDegrees(rahu + 180), nil
		}
	}

	lo, hi, frac, err := p.bracket(jd)
	if err != nil {
		return 0, err
	}

	a, okA := lo.Longitudes[planet]
	b, okB := hi.Longitudes[planet]
	if !okA || !okB {
		return 0, zerr.With(domain.ErrUnsupportedPlanet, "planet", string(planet))
	}
	return interpolate(a, b, frac), nil
}

// Angles returns the ascendant and midheaven for the place.
func (p *TableProvider) Angles(ctx context.Context, jd, lat, lon float64) (domain.Angles, error) {
	if err := ctx.Err(); err != nil {
		return domain.Angles{}, err
	}
	return ComputeAngles(jd, lat, lon), nil
}

func (p *TableProvider) bracket(jd float64) (lo, hi TableRow, frac float64, err error) {
	first, last := p.Range()
	if jd < first || jd > last {
		return lo, hi, 0, zerr.With(zerr.With(zerr.With(domain.ErrEphemerisOutOfRange,
			"julian_day", jd), "first", first), "last", last)
	}

	i, found := slices.BinarySearchFunc(p.rows, jd, func(r TableRow, target float64) int {
		switch {
		case r.JD < target:
			return -1
		case r.JD > target:
			return 1
		default:
			return 0
		}
	})
	if found {
		return p.rows[i], p.rows[i], 0, nil
	}

	lo, hi = p.rows[i-1], p.rows[i]
	return lo, hi, (jd - lo.JD) / (hi.JD - lo.JD), nil
}

// interpolate moves from a towards b along the shorter arc.
func interpolate(a, b, frac float64) float64 {
	delta := domain.NormalizeDegrees(b-a+180) - 180
	return domain.NormalizeDegrees(a + delta*frac)
}
