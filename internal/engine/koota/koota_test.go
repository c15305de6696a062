package koota_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/engine/koota"
	"go.trai.ch/jyotish/internal/engine/zodiac"
)

func profileAt(longitude float64) domain.MatchProfile {
	p := zodiac.Classify(longitude)
	return domain.MatchProfile{
		Rashi:         p.Rashi.Number,
		Nakshatra:     p.Nakshatra.Number,
		Pada:          p.Pada.Number,
		MoonLongitude: p.Longitude,
	}
}

func TestScore_IdenticalProfiles(t *testing.T) {
	p := profileAt(1)

	result := koota.Score(p, p)

	assert.InDelta(t, 1, result.Score(domain.KootaVarna), 0)
	assert.InDelta(t, 2, result.Score(domain.KootaVashya), 0)
	assert.InDelta(t, 3, result.Score(domain.KootaTara), 0)
	assert.InDelta(t, 4, result.Score(domain.KootaYoni), 0)
	assert.InDelta(t, 5, result.Score(domain.KootaGrahaMaitri), 0)
	assert.InDelta(t, 6, result.Score(domain.KootaGana), 0)
	assert.InDelta(t, 7, result.Score(domain.KootaBhakoot), 0)
	assert.InDelta(t, 0, result.Score(domain.KootaNadi), 0)

	assert.InDelta(t, 28, result.Total, 0)
	assert.Equal(t, domain.LevelExcellent, result.Level)
	assert.Equal(t, []domain.Dosha{domain.DoshaNadi}, result.Doshas)
	assert.False(t, result.NadiNullified)
	assert.Contains(t, result.Recommendation, "Nadi dosha present.")
}

func TestScore_NadiNullifiedBySamePadaRule(t *testing.T) {
	groom := profileAt(1)
	bride := profileAt(5)
	require.Equal(t, groom.Nakshatra, bride.Nakshatra)
	require.NotEqual(t, groom.Pada, bride.Pada)

	result := koota.Score(groom, bride)

	assert.InDelta(t, 8, result.Score(domain.KootaNadi), 0)
	assert.True(t, result.NadiNullified)
	assert.Empty(t, result.Doshas)
	assert.InDelta(t, 36, result.Total, 0)
	assert.Contains(t, result.Recommendation, "nullified")
}

func TestScore_SameNadiDifferentNakshatra(t *testing.T) {
	// Rohini and Magha are both antya.
	groom := profileAt(45.5)
	bride := profileAt(125)
	require.Equal(t, 4, groom.Nakshatra)
	require.Equal(t, 10, bride.Nakshatra)

	result := koota.Score(groom, bride)

	assert.InDelta(t, 0, result.Score(domain.KootaVarna), 0)
	assert.InDelta(t, 0.5, result.Score(domain.KootaVashya), 0)
	assert.InDelta(t, 1.5, result.Score(domain.KootaTara), 0)
	assert.InDelta(t, 1, result.Score(domain.KootaYoni), 0)
	assert.InDelta(t, 0, result.Score(domain.KootaGrahaMaitri), 0)
	assert.InDelta(t, 0, result.Score(domain.KootaGana), 0)
	assert.InDelta(t, 7, result.Score(domain.KootaBhakoot), 0)
	assert.InDelta(t, 0, result.Score(domain.KootaNadi), 0)

	assert.InDelta(t, 10, result.Total, 0)
	assert.Equal(t, domain.LevelPoor, result.Level)
	assert.Equal(t, []domain.Dosha{domain.DoshaNadi, domain.DoshaGana}, result.Doshas)
}

func TestScore_Bhakoot(t *testing.T) {
	tests := []struct {
		name  string
		bride float64
		want  float64
	}{
		{"same sign", 10, 7},
		{"2/12", 40, 0},
		{"3/11", 70, 7},
		{"4/10", 100, 7},
		{"5/9", 130, 0},
		{"6/8", 160, 0},
		{"7/7", 190, 7},
		{"8/6", 220, 0},
		{"9/5", 250, 0},
		{"12/2", 340, 0},
	}

	groom := profileAt(10)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := koota.Score(groom, profileAt(tt.bride))
			assert.InDelta(t, tt.want, result.Score(domain.KootaBhakoot), 0)
		})
	}
}

func TestScore_GanaIsDirectional(t *testing.T) {
	// Ashwini is deva, Krittika rakshasa.
	deva := profileAt(1)
	rakshasa := profileAt(30)

	assert.InDelta(t, 0, koota.Score(deva, rakshasa).Score(domain.KootaGana), 0)
	assert.InDelta(t, 1, koota.Score(rakshasa, deva).Score(domain.KootaGana), 0)
}

func TestScore_VarnaIsDirectional(t *testing.T) {
	// Cancer is Brahmin, Gemini Shudra.
	cancer := profileAt(95)
	gemini := profileAt(65)

	assert.InDelta(t, 1, koota.Score(cancer, gemini).Score(domain.KootaVarna), 0)
	assert.InDelta(t, 0, koota.Score(gemini, cancer).Score(domain.KootaVarna), 0)
}

func TestScore_VashyaSplitsSagittariusAndCapricorn(t *testing.T) {
	leo := profileAt(125)

	// Early Sagittarius is manava, late Sagittarius chatushpada.
	assert.InDelta(t, 0, koota.Score(leo, profileAt(245)).Score(domain.KootaVashya), 0)
	assert.InDelta(t, 0.5, koota.Score(leo, profileAt(260)).Score(domain.KootaVashya), 0)

	// Early Capricorn is chatushpada, late Capricorn jalachara.
	assert.InDelta(t, 0.5, koota.Score(leo, profileAt(275)).Score(domain.KootaVashya), 0)
	assert.InDelta(t, 1, koota.Score(leo, profileAt(290)).Score(domain.KootaVashya), 0)
}

func TestScore_VashyaWithoutLongitudeUsesPada(t *testing.T) {
	leo := profileAt(125)

	// Uttara Ashadha pada 1 lies in late Sagittarius.
	withLongitude := domain.MatchProfile{Rashi: 9, Nakshatra: 21, Pada: 1, MoonLongitude: 267.5}
	withoutLongitude := domain.MatchProfile{Rashi: 9, Nakshatra: 21, Pada: 1}

	assert.InDelta(t, 0.5, koota.Score(withLongitude, leo).Score(domain.KootaVashya), 0)
	assert.InDelta(t, 0.5, koota.Score(withoutLongitude, leo).Score(domain.KootaVashya), 0)

	// Mula pada 2 lies in early Sagittarius.
	mula := domain.MatchProfile{Rashi: 9, Nakshatra: 19, Pada: 2}
	assert.InDelta(t, 0, koota.Score(mula, leo).Score(domain.KootaVashya), 0)
}

func TestScore_BoundsForEveryPadaPair(t *testing.T) {
	for i := range 108 {
		for j := range 108 {
			groom := profileAt(float64(i)*domain.PadaSpan + 1)
			bride := profileAt(float64(j)*domain.PadaSpan + 1)

			result := koota.Score(groom, bride)

			require.Len(t, result.Scores, 8)
			var sum float64
			for _, s := range result.Scores {
				require.GreaterOrEqual(t, s.Score, 0.0)
				require.LessOrEqual(t, s.Score, s.Max, "koota %s", s.Koota)
				sum += s.Score
			}
			require.InDelta(t, sum, result.Total, 1e-9)
			require.GreaterOrEqual(t, result.Total, 0.0)
			require.LessOrEqual(t, result.Total, domain.MaxTotalScore)
			require.Equal(t, domain.LevelForTotal(result.Total), result.Level)
			require.NotEmpty(t, result.Recommendation)
		}
	}
}
