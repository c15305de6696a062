package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jyotish/cmd/jyotish/commands"
	"go.trai.ch/jyotish/internal/build"
	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/engine/dasha"
	"go.trai.ch/jyotish/internal/engine/koota"
	"go.trai.ch/jyotish/internal/engine/zodiac"
)

type mockApp struct {
	fixedFunc    func(ctx context.Context, req domain.BirthRequest) (*domain.FixedBirthData, error)
	matchFunc    func(ctx context.Context, groom, bride domain.BirthRequest) (*domain.MatchResult, error)
	compatFunc   func(ctx context.Context, groom, bride domain.MatchProfile) (*domain.CompatibilityResult, error)
	calendarFunc func(ctx context.Context, req domain.CalendarRequest) (*domain.CalendarDay, error)
}

func (m *mockApp) GetFixedBirthData(ctx context.Context, req domain.BirthRequest) (*domain.FixedBirthData, error) {
	return m.fixedFunc(ctx, req)
}

func (m *mockApp) MatchBirths(ctx context.Context, groom, bride domain.BirthRequest) (*domain.MatchResult, error) {
	return m.matchFunc(ctx, groom, bride)
}

func (m *mockApp) CalculateCompatibility(ctx context.Context, groom, bride domain.MatchProfile) (*domain.CompatibilityResult, error) {
	return m.compatFunc(ctx, groom, bride)
}

func (m *mockApp) GetCalendarDay(ctx context.Context, req domain.CalendarRequest) (*domain.CalendarDay, error) {
	return m.calendarFunc(ctx, req)
}

type metricsStub struct{ text string }

func (s metricsStub) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, s.text)
	return err
}

var birth = time.Date(1990, 5, 15, 9, 0, 0, 0, time.UTC)

func sampleProfile(t *testing.T) *domain.FixedBirthData {
	t.Helper()

	moon := zodiac.Classify(76.559456)
	timeline := dasha.BuildTimeline(moon.Nakshatra.Number, zodiac.NakshatraFraction(moon.Longitude), birth)
	active, err := dasha.Active(timeline, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	chart, err := zodiac.BuildChart(domain.HouseWholeSign, domain.Angles{Ascendant: 146.56, Midheaven: 56.56}, []domain.PlanetPosition{
		{Planet: domain.PlanetSun, Longitude: 30.76},
		{Planet: domain.PlanetMoon, Longitude: moon.Longitude},
	})
	require.NoError(t, err)

	return &domain.FixedBirthData{
		Instant:       birth,
		Settings:      domain.DefaultSettings(),
		Ayanamsha:     23.440544,
		Rashi:         moon.Rashi,
		Nakshatra:     moon.Nakshatra,
		Pada:          moon.Pada,
		MoonLongitude: moon.Longitude,
		Chart:         chart,
		Timeline:      timeline,
		CurrentDasha:  active,
	}
}

func execute(t *testing.T, cli *commands.CLI, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Chart(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured domain.BirthRequest
		mock := &mockApp{
			fixedFunc: func(_ context.Context, req domain.BirthRequest) (*domain.FixedBirthData, error) {
				captured = req
				return sampleProfile(t), nil
			},
		}

		out, err := execute(t, commands.New(mock), "chart",
			"--date", "1990-05-15", "--time", "14:30", "--tz", "Asia/Kolkata",
			"--lat", "28.6139", "--lon", "77.209", "--reference", "raman", "--primary")
		require.NoError(t, err)

		assert.Equal(t, domain.LocalDateTime{Year: 1990, Month: 5, Day: 15, Hour: 14, Minute: 30}, captured.Local)
		assert.Equal(t, "Asia/Kolkata", captured.TimeZone)
		assert.InDelta(t, 28.6139, captured.Latitude, 1e-9)
		assert.Equal(t, domain.ReferenceRaman, captured.Settings.Reference)
		assert.Empty(t, captured.Settings.Precision)
		assert.True(t, captured.Primary)

		assert.Contains(t, out, "Mithuna (Gemini), Ardra pada 3")
		assert.Contains(t, out, "Simha (Leo)")
		assert.Contains(t, out, "Saturn / Rahu")
	})

	t.Run("prints json", func(t *testing.T) {
		mock := &mockApp{
			fixedFunc: func(_ context.Context, _ domain.BirthRequest) (*domain.FixedBirthData, error) {
				return sampleProfile(t), nil
			},
		}

		out, err := execute(t, commands.New(mock), "chart",
			"--date", "1990-05-15", "--tz", "Asia/Kolkata", "--lat", "28.6", "--lon", "77.2", "--json")
		require.NoError(t, err)

		var decoded domain.FixedBirthData
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, 6, decoded.Nakshatra.Number)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		mock := &mockApp{
			fixedFunc: func(_ context.Context, _ domain.BirthRequest) (*domain.FixedBirthData, error) {
				panic("should not be called")
			},
		}

		_, err := execute(t, commands.New(mock), "chart",
			"--date", "15/05/1990", "--tz", "Asia/Kolkata", "--lat", "28.6", "--lon", "77.2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid flag value")
	})

	t.Run("requires a time zone", func(t *testing.T) {
		_, err := execute(t, commands.New(&mockApp{}), "chart", "--date", "1990-05-15", "--lat", "28.6", "--lon", "77.2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tz")
	})

	t.Run("returns app errors", func(t *testing.T) {
		mock := &mockApp{
			fixedFunc: func(_ context.Context, _ domain.BirthRequest) (*domain.FixedBirthData, error) {
				return nil, errors.New("simulated error")
			},
		}

		_, err := execute(t, commands.New(mock), "chart",
			"--date", "1990-05-15", "--tz", "Asia/Kolkata", "--lat", "28.6", "--lon", "77.2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Dasha(t *testing.T) {
	mock := &mockApp{
		fixedFunc: func(_ context.Context, _ domain.BirthRequest) (*domain.FixedBirthData, error) {
			return sampleProfile(t), nil
		},
	}

	t.Run("uses the current dasha by default", func(t *testing.T) {
		out, err := execute(t, commands.New(mock), "dasha",
			"--date", "1990-05-15", "--tz", "Asia/Kolkata", "--lat", "28.6", "--lon", "77.2")
		require.NoError(t, err)
		assert.Contains(t, out, "Saturn antardashas")
	})

	t.Run("honours --at", func(t *testing.T) {
		out, err := execute(t, commands.New(mock), "dasha",
			"--date", "1990-05-15", "--tz", "Asia/Kolkata", "--lat", "28.6", "--lon", "77.2",
			"--at", "2000-01-01", "--json")
		require.NoError(t, err)

		var decoded struct {
			Active      domain.ActiveDasha   `json:"active"`
			Antardashas []domain.DashaPeriod `json:"antardashas"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, domain.PlanetJupiter, decoded.Active.Mahadasha.Lord)
		assert.Len(t, decoded.Antardashas, 9)
		assert.Equal(t, domain.PlanetJupiter, decoded.Antardashas[0].Lord)
	})

	t.Run("rejects a date before birth", func(t *testing.T) {
		_, err := execute(t, commands.New(mock), "dasha",
			"--date", "1990-05-15", "--tz", "Asia/Kolkata", "--lat", "28.6", "--lon", "77.2",
			"--at", "1980-01-01")
		require.ErrorContains(t, err, domain.ErrQueryBeforeBirth.Error())
	})
}

func TestCommands_Match(t *testing.T) {
	groom := domain.MatchProfile{Rashi: 3, Nakshatra: 6, Pada: 3, MoonLongitude: 76.56}
	bride := domain.MatchProfile{Rashi: 5, Nakshatra: 10, Pada: 1, MoonLongitude: 121}
	result := koota.Score(groom, bride)

	t.Run("wires both births", func(t *testing.T) {
		var capturedGroom, capturedBride domain.BirthRequest
		mock := &mockApp{
			matchFunc: func(_ context.Context, g, b domain.BirthRequest) (*domain.MatchResult, error) {
				capturedGroom, capturedBride = g, b
				gm := zodiac.Classify(groom.MoonLongitude)
				bm := zodiac.Classify(bride.MoonLongitude)
				return &domain.MatchResult{
					Groom:  &domain.MinimalBirthData{Rashi: gm.Rashi, Nakshatra: gm.Nakshatra, Pada: gm.Pada},
					Bride:  &domain.MinimalBirthData{Rashi: bm.Rashi, Nakshatra: bm.Nakshatra, Pada: bm.Pada},
					Result: &result,
				}, nil
			},
		}

		out, err := execute(t, commands.New(mock), "match",
			"--groom-date", "1990-05-15", "--groom-tz", "Asia/Kolkata", "--groom-lat", "28.6", "--groom-lon", "77.2",
			"--bride-date", "1992-08-01", "--bride-time", "06:15:30", "--bride-tz", "Europe/London",
			"--bride-lat", "51.5", "--bride-lon", "-0.12")
		require.NoError(t, err)

		assert.Equal(t, 1990, capturedGroom.Local.Year)
		assert.Equal(t, "Europe/London", capturedBride.TimeZone)
		assert.Equal(t, 30, capturedBride.Local.Second)
		assert.InDelta(t, -0.12, capturedBride.Longitude, 1e-9)

		assert.Contains(t, out, "Groom")
		assert.Contains(t, out, "nadi")
		assert.Contains(t, out, result.Recommendation)
	})

	t.Run("scores known placements", func(t *testing.T) {
		var gotGroom, gotBride domain.MatchProfile
		mock := &mockApp{
			compatFunc: func(_ context.Context, g, b domain.MatchProfile) (*domain.CompatibilityResult, error) {
				gotGroom, gotBride = g, b
				return &result, nil
			},
		}

		out, err := execute(t, commands.New(mock), "match", "score", "3:6:3:76.56", "5:10:1", "--json")
		require.NoError(t, err)

		assert.Equal(t, groom, gotGroom)
		assert.Equal(t, domain.MatchProfile{Rashi: 5, Nakshatra: 10, Pada: 1}, gotBride)

		var decoded domain.CompatibilityResult
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.InDelta(t, result.Total, decoded.Total, 1e-9)
	})

	t.Run("rejects a malformed placement", func(t *testing.T) {
		_, err := execute(t, commands.New(&mockApp{}), "match", "score", "3:6", "5:10:1")
		require.ErrorContains(t, err, "invalid flag value")
	})
}

func TestCommands_Calendar(t *testing.T) {
	var captured domain.CalendarRequest
	noon := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	moon := zodiac.Classify(166.56)
	mock := &mockApp{
		calendarFunc: func(_ context.Context, req domain.CalendarRequest) (*domain.CalendarDay, error) {
			captured = req
			return &domain.CalendarDay{
				Date:      noon,
				Vara:      noon.Weekday(),
				VaraLord:  domain.VaraLord(noon.Weekday()),
				Tithi:     16,
				Paksha:    domain.PakshaKrishna,
				Yoga:      12,
				Rashi:     moon.Rashi,
				Nakshatra: moon.Nakshatra,
				Pada:      moon.Pada,
			}, nil
		},
	}

	out, err := execute(t, commands.New(mock), "calendar",
		"--date", "2030-01-01", "--tz", "Asia/Kolkata", "--lat", "28.6", "--lon", "77.2", "--reference", "krishnamurti")
	require.NoError(t, err)

	assert.Equal(t, 2030, captured.Year)
	assert.Equal(t, domain.ReferenceKrishnamurti, captured.Reference)
	assert.Contains(t, out, "Tuesday, 1 January 2030")
	assert.Contains(t, out, "Tuesday (Mars)")
	assert.Contains(t, out, "16, krishna paksha")
	assert.Contains(t, out, "Kanya (Virgo), Hasta pada 2")
}

func TestCommands_Metrics(t *testing.T) {
	mock := &mockApp{
		calendarFunc: func(_ context.Context, _ domain.CalendarRequest) (*domain.CalendarDay, error) {
			return &domain.CalendarDay{}, nil
		},
	}
	cli := commands.New(mock, commands.WithMetrics(metricsStub{text: "jyotish_cache_misses_total 2\n"}))

	out, err := execute(t, cli, "calendar", "--date", "2030-01-01", "--tz", "UTC", "--json", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "jyotish_cache_misses_total 2")

	out, err = execute(t, commands.New(mock, commands.WithMetrics(metricsStub{text: "hidden"})),
		"calendar", "--date", "2030-01-01", "--tz", "UTC", "--json")
	require.NoError(t, err)
	assert.NotContains(t, out, "hidden")
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, commands.New(&mockApp{}), "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}
