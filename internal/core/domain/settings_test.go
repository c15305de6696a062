package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jyotish/internal/core/domain"
)

func TestSettings_Resolve(t *testing.T) {
	defaults := domain.DefaultSettings()

	resolved := defaults.Resolve(domain.Settings{Precision: domain.PrecisionLow})
	assert.Equal(t, domain.Settings{
		Reference:   domain.ReferenceLahiri,
		Precision:   domain.PrecisionLow,
		HouseSystem: domain.HouseWholeSign,
	}, resolved)

	assert.Equal(t, defaults, defaults.Resolve(domain.Settings{}))
}

func TestParseSettings(t *testing.T) {
	ref, err := domain.ParseReferenceSystem("fagan-bradley")
	require.NoError(t, err)
	assert.Equal(t, domain.ReferenceFaganBradley, ref)

	_, err = domain.ParseReferenceSystem("galactic")
	require.ErrorContains(t, err, domain.ErrUnknownReferenceSystem.Error())

	_, err = domain.ParsePrecision("extreme")
	require.ErrorContains(t, err, domain.ErrUnknownPrecision.Error())

	h, err := domain.ParseHouseSystem("sripati")
	require.NoError(t, err)
	assert.Equal(t, domain.HouseSripati, h)

	_, err = domain.ParseHouseSystem("placidus")
	require.ErrorContains(t, err, domain.ErrUnknownHouseSystem.Error())
}

func TestPrecision_Decimals(t *testing.T) {
	assert.Equal(t, 2, domain.PrecisionLow.Decimals())
	assert.Equal(t, 4, domain.PrecisionMedium.Decimals())
	assert.Equal(t, 6, domain.PrecisionHigh.Decimals())
	assert.Equal(t, -1, domain.PrecisionMaximum.Decimals())
}

func TestConfig_TTL(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.CacheTTL = map[domain.CacheCategory]time.Duration{domain.CategoryPositions: time.Minute}

	assert.Equal(t, time.Minute, cfg.TTL(domain.CategoryPositions))
	assert.Equal(t, 24*time.Hour, cfg.TTL(domain.CategoryFullProfile))
}

func TestValidationResult(t *testing.T) {
	a := domain.ValidationResult{Errors: []domain.ValidationIssue{{Code: domain.IssueLatitudeRange, Message: "bad latitude"}}}
	b := domain.ValidationResult{Warnings: []domain.ValidationIssue{{Code: domain.IssuePoleProximity}}}

	merged := a.Merge(b)
	assert.False(t, merged.IsValid())
	assert.True(t, merged.HasError(domain.IssueLatitudeRange))
	assert.True(t, merged.HasWarning(domain.IssuePoleProximity))
	assert.Len(t, a.Warnings, 0)

	err := &domain.ValidationError{Result: merged}
	require.ErrorIs(t, err, domain.ErrValidationFailed)
	assert.Contains(t, err.Error(), "bad latitude")
}
