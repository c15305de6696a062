package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jyotish/internal/core/domain"
)

func TestLevelForTotal(t *testing.T) {
	tests := []struct {
		total float64
		want  domain.CompatibilityLevel
	}{
		{36, domain.LevelExcellent},
		{28, domain.LevelExcellent},
		{27.5, domain.LevelVeryGood},
		{24, domain.LevelVeryGood},
		{23.5, domain.LevelGood},
		{18, domain.LevelGood},
		{17.5, domain.LevelAverage},
		{12, domain.LevelAverage},
		{11.5, domain.LevelPoor},
		{6, domain.LevelPoor},
		{5.5, domain.LevelVeryPoor},
		{0, domain.LevelVeryPoor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.LevelForTotal(tt.total), "total=%v", tt.total)
	}
}

func TestKootaMaxima(t *testing.T) {
	var sum float64
	for _, k := range domain.Kootas {
		sum += k.MaxPoints()
	}
	assert.InDelta(t, domain.MaxTotalScore, sum, 1e-9)
	assert.InDelta(t, 8.0, domain.KootaNadi.MaxPoints(), 1e-9)
}

func TestCompatibilityResult_Score(t *testing.T) {
	res := &domain.CompatibilityResult{Scores: []domain.KootaScore{{Koota: domain.KootaTara, Score: 1.5}}}
	assert.InDelta(t, 1.5, res.Score(domain.KootaTara), 1e-9)
	assert.Zero(t, res.Score(domain.KootaNadi))

	// Readable straight off a returned value.
	scored := func() domain.CompatibilityResult { return *res }
	assert.InDelta(t, 1.5, scored().Score(domain.KootaTara), 1e-9)
}
