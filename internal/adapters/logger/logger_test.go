package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jyotish/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_PrettyLevels(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Info("cache warmed")
	l.Warn("reduced accuracy")
	l.Error(zerr.Wrap(zerr.New("table missing"), "load ephemeris"))

	assert.Equal(t,
		"cache warmed\n"+
			"! reduced accuracy\n"+
			"✗ Error: load ephemeris\n\n  Caused by:\n    → table missing\n",
		buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	l.SetJSON(true)

	l.Error(zerr.With(zerr.New("out of range"), "jd", 2451545.0))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "out of range", record["error"])
	assert.InDelta(t, 2451545.0, record["jd"], 1e-9)
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	l.SetJSON(true)
	l.SetJSON(false)

	t.Setenv("NO_COLOR", "1")
	l.SetOutput(&buf)
	l.Info("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestPrettyHandler_AttrsAndGroups(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	h := logger.NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	lg := slog.New(h).WithGroup("cache").With("category", "positions")

	lg.Info("evicted", "key", "pos:1")
	lg.Debug("filtered")

	assert.Equal(t, "evicted cache.category=positions cache.key=pos:1\n", buf.String())
}
