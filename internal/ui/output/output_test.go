package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/jyotish/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestColorProfile_Detected(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	p := output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestPlainProfile(t *testing.T) {
	assert.Equal(t, termenv.Ascii, output.PlainProfile())
}

func TestNew_WritesThrough(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)

	_, _ = out.WriteString("rohini")
	assert.Equal(t, "rohini", buf.String())
}

func TestNewWithProfile_NilWriter(t *testing.T) {
	out := output.NewWithProfile(nil, output.PlainProfile)
	assert.NotNil(t, out)
}

func TestNewWithProfile_AsciiDropsColour(t *testing.T) {
	var buf bytes.Buffer
	out := output.NewWithProfile(&buf, output.PlainProfile)

	styled := out.String("text").Foreground(termenv.RGBColor("#D93025"))
	_, _ = out.WriteString(styled.String())
	assert.Equal(t, "text", buf.String())
}
