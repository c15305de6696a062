package ephemeris_test

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jyotish/internal/adapters/ephemeris"
	"go.trai.ch/jyotish/internal/core/domain"
)

const j2000 = 2451545.0

// arc returns the unsigned angular distance between two longitudes.
func arc(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	return math.Min(d, 360-d)
}

func TestMeanProvider_J2000(t *testing.T) {
	p := ephemeris.NewMeanProvider()
	ctx := context.Background()

	tests := []struct {
		planet domain.Planet
		want   float64
	}{
		{domain.PlanetSun, 280.382159},
		{domain.PlanetMoon, 223.281414},
		{domain.PlanetRahu, 125.04452},
		{domain.PlanetKetu, 305.04452},
		{domain.PlanetMercury, 272.693937},
		{domain.PlanetVenus, 241.773372},
		{domain.PlanetMars, 327.000025},
		{domain.PlanetJupiter, 23.609012},
		{domain.PlanetSaturn, 44.998788},
	}

	for _, tt := range tests {
		t.Run(string(tt.planet), func(t *testing.T) {
			got, err := p.Longitude(ctx, tt.planet, j2000)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-4)
		})
	}
}

func TestMeanProvider_RangeSweep(t *testing.T) {
	p := ephemeris.NewMeanProvider()
	ctx := context.Background()

	for jd := 2415020.5; jd < 2488070.5; jd += 1234.567 {
		for _, planet := range domain.Planets {
			lon, err := p.Longitude(ctx, planet, jd)
			require.NoError(t, err)
			assert.True(t, lon >= 0 && lon < 360, "%s at %f out of range: %f", planet, jd, lon)
		}
	}
}

func TestMeanProvider_NodesOpposed(t *testing.T) {
	p := ephemeris.NewMeanProvider()
	ctx := context.Background()

	rahu, err := p.Longitude(ctx, domain.PlanetRahu, 2460000.5)
	require.NoError(t, err)
	ketu, err := p.Longitude(ctx, domain.PlanetKetu, 2460000.5)
	require.NoError(t, err)

	assert.InDelta(t, 180, arc(rahu, ketu), 1e-9)
}

func TestMeanProvider_Errors(t *testing.T) {
	p := ephemeris.NewMeanProvider()

	_, err := p.Longitude(context.Background(), domain.Planet("pluto"), j2000)
	assert.ErrorContains(t, err, domain.ErrUnsupportedPlanet.Error())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Longitude(ctx, domain.PlanetSun, j2000)
	require.ErrorIs(t, err, context.Canceled)
	_, err = p.Angles(ctx, j2000, 0, 0)
	require.ErrorIs(t, err, context.Canceled)
}

func TestComputeAngles_EquatorAtZeroSiderealTime(t *testing.T) {
	// Longitude chosen so local sidereal time is 0h at J2000.
	lon := 360 - 280.46061837
	require.InDelta(t, 0, arc(ephemeris.SiderealTime(j2000, lon), 0), 1e-9)

	angles := ephemeris.ComputeAngles(j2000, 0, lon)
	assert.InDelta(t, 0, arc(angles.Midheaven, 0), 1e-6)
	assert.InDelta(t, 0, arc(angles.Ascendant, 90), 1e-6)
}

func TestComputeAngles_AscendantLeadsMidheaven(t *testing.T) {
	for jd := j2000; jd < j2000+1; jd += 0.05 {
		angles := ephemeris.ComputeAngles(jd, 28.61, 77.21)
		lead := math.Mod(angles.Ascendant-angles.Midheaven+360, 360)
		assert.True(t, lead > 0 && lead < 180, "ascendant must lie east of the midheaven, got %f", lead)
	}
}

func TestObliquity(t *testing.T) {
	assert.InDelta(t, 23.4392911, ephemeris.Obliquity(j2000), 1e-12)
}

func sampleTable() ephemeris.TableFile {
	return ephemeris.TableFile{Rows: []ephemeris.TableRow{
		{JD: j2000 + 1, Longitudes: map[domain.Planet]float64{domain.PlanetSun: 10, domain.PlanetMoon: 20, domain.PlanetRahu: 125}},
		{JD: j2000, Longitudes: map[domain.Planet]float64{domain.PlanetSun: 350, domain.PlanetMoon: 10, domain.PlanetRahu: 125.1}},
	}}
}

func TestTableProvider_Interpolates(t *testing.T) {
	p, err := ephemeris.NewTableProvider(sampleTable())
	require.NoError(t, err)
	ctx := context.Background()

	first, last := p.Range()
	assert.InDelta(t, j2000, first, 0)
	assert.InDelta(t, j2000+1, last, 0)

	moon, err := p.Longitude(ctx, domain.PlanetMoon, j2000+0.5)
	require.NoError(t, err)
	assert.InDelta(t, 15, moon, 1e-9)

	sun, err := p.Longitude(ctx, domain.PlanetSun, j2000+0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0, arc(sun, 0), 1e-9, "wraps across 0 Aries")

	exact, err := p.Longitude(ctx, domain.PlanetMoon, j2000+1)
	require.NoError(t, err)
	assert.InDelta(t, 20, exact, 1e-9)

	ketu, err := p.Longitude(ctx, domain.PlanetKetu, j2000)
	require.NoError(t, err)
	assert.InDelta(t, 305.1, ketu, 1e-9)
}

func TestTableProvider_Errors(t *testing.T) {
	p, err := ephemeris.NewTableProvider(sampleTable())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = p.Longitude(ctx, domain.PlanetMoon, j2000+2)
	assert.ErrorContains(t, err, domain.ErrEphemerisOutOfRange.Error())

	_, err = p.Longitude(ctx, domain.PlanetMars, j2000)
	assert.ErrorContains(t, err, domain.ErrUnsupportedPlanet.Error())
}

func TestNewTableProvider_Invalid(t *testing.T) {
	tests := []struct {
		name string
		file ephemeris.TableFile
	}{
		{
			name: "single row",
			file: ephemeris.TableFile{Rows: []ephemeris.TableRow{
				{JD: j2000, Longitudes: map[domain.Planet]float64{domain.PlanetSun: 1}},
			}},
		},
		{
			name: "duplicate day",
			file: ephemeris.TableFile{Rows: []ephemeris.TableRow{
				{JD: j2000, Longitudes: map[domain.Planet]float64{domain.PlanetSun: 1}},
				{JD: j2000, Longitudes: map[domain.Planet]float64{domain.PlanetSun: 2}},
			}},
		},
		{
			name: "row without longitudes",
			file: ephemeris.TableFile{Rows: []ephemeris.TableRow{
				{JD: j2000, Longitudes: map[domain.Planet]float64{domain.PlanetSun: 1}},
				{JD: j2000 + 1},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ephemeris.NewTableProvider(tt.file)
			assert.ErrorContains(t, err, domain.ErrEphemerisTableInvalid.Error())
		})
	}
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	content := `
rows:
  - jd: 2451545.0
    longitudes: {sun: 280.0, moon: 220.0, rahu: 125.0}
  - jd: 2451546.0
    longitudes: {sun: 281.0, moon: 233.0, rahu: 124.9}
`
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))

	p, err := ephemeris.LoadTable(path)
	require.NoError(t, err)

	moon, err := p.Longitude(context.Background(), domain.PlanetMoon, 2451545.25)
	require.NoError(t, err)
	assert.InDelta(t, 223.25, moon, 1e-9)

	_, err = ephemeris.LoadTable(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, domain.ErrEphemerisTableInvalid.Error())
}

func TestNew_SelectsSource(t *testing.T) {
	cfg := domain.DefaultConfig()
	p, err := ephemeris.New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &ephemeris.MeanProvider{}, p)

	cfg.Ephemeris = domain.EphemerisTable
	cfg.EphemerisTable = filepath.Join(t.TempDir(), "absent.yaml")
	_, err = ephemeris.New(cfg)
	assert.Error(t, err)
}
