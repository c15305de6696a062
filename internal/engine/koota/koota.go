// Package koota scores Ashta Koota compatibility between two Moon profiles.
//
// The first profile is the groom and the second the bride; Varna, Tara and
// Gana are directional.
package koota

import (
	"fmt"
	"math"
	"strings"

	"go.trai.ch/jyotish/internal/core/domain"
)

// Score computes the eight kootas, the total and the verdict.
func Score(groom, bride domain.MatchProfile) domain.CompatibilityResult {
	nadi, nullified := nadiScore(groom, bride)
	scores := []domain.KootaScore{
		varnaScore(groom, bride),
		vashyaScore(groom, bride),
		taraScore(groom, bride),
		yoniScore(groom, bride),
		maitriScore(groom, bride),
		ganaScore(groom, bride),
		bhakootScore(groom, bride),
		nadi,
	}

	var total float64
	for _, s := range scores {
		total += s.Score
	}
	total = math.Max(0, math.Min(domain.MaxTotalScore, total))

	result := domain.CompatibilityResult{
		Scores:        scores,
		Total:         total,
		Level:         domain.LevelForTotal(total),
		NadiNullified: nullified,
	}
	result.Doshas = doshas(&result)
	result.Recommendation = recommendation(&result)
	return result
}

func newScore(k domain.Koota, score float64, detail string) domain.KootaScore {
	return domain.KootaScore{Koota: k, Score: score, Max: k.MaxPoints(), Detail: detail}
}

func varnaScore(groom, bride domain.MatchProfile) domain.KootaScore {
	g := signVarna[domain.Rashi(groom.Rashi).Number-1]
	b := signVarna[domain.Rashi(bride.Rashi).Number-1]
	score := 0.0
	if g >= b {
		score = 1
	}
	return newScore(domain.KootaVarna, score, varnaNames[g]+"/"+varnaNames[b])
}

func vashyaScore(groom, bride domain.MatchProfile) domain.KootaScore {
	g := signVashya(domain.Rashi(groom.Rashi).Number, degreeInSign(groom))
	b := signVashya(domain.Rashi(bride.Rashi).Number, degreeInSign(bride))
	return newScore(domain.KootaVashya, vashyaPoints[g][b], vashyaNames[g]+"/"+vashyaNames[b])
}

// degreeInSign places the Moon within its rashi. A profile without a longitude
// is placed at the midpoint of its pada.
func degreeInSign(p domain.MatchProfile) float64 {
	lon := p.MoonLongitude
	if lon == 0 {
		lon = float64(p.Nakshatra-1)*domain.NakshatraSpan + (float64(p.Pada)-0.5)*domain.PadaSpan
	}
	return math.Mod(domain.NormalizeDegrees(lon), domain.RashiSpan)
}

// taraOf counts from one nakshatra to another, inclusive, and reduces the count to one of nine taras.
func taraOf(from, to int) int {
	n := ((to-from)%domain.NakshatraCount+domain.NakshatraCount)%domain.NakshatraCount + 1
	return (n-1)%9 + 1
}

func taraScore(groom, bride domain.MatchProfile) domain.KootaScore {
	fromBride := taraOf(bride.Nakshatra, groom.Nakshatra)
	fromGroom := taraOf(groom.Nakshatra, bride.Nakshatra)

	score := 0.0
	if !inauspiciousTaras[fromBride] {
		score += 1.5
	}
	if !inauspiciousTaras[fromGroom] {
		score += 1.5
	}
	return newScore(domain.KootaTara, score, fmt.Sprintf("tara %d/%d", fromBride, fromGroom))
}

func yoniScore(groom, bride domain.MatchProfile) domain.KootaScore {
	g := domain.Nakshatra(groom.Nakshatra).Yoni
	b := domain.Nakshatra(bride.Nakshatra).Yoni
	return newScore(domain.KootaYoni, yoniPoints[yoniOrder[g]][yoniOrder[b]], string(g)+"/"+string(b))
}

func maitriScore(groom, bride domain.MatchProfile) domain.KootaScore {
	g := domain.RashiLord(groom.Rashi)
	b := domain.RashiLord(bride.Rashi)
	detail := g.String() + "/" + b.String()
	if g == b {
		return newScore(domain.KootaGrahaMaitri, 5, detail)
	}
	return newScore(domain.KootaGrahaMaitri, maitriPoints[relationOf(g, b)][relationOf(b, g)], detail)
}

func ganaScore(groom, bride domain.MatchProfile) domain.KootaScore {
	g := domain.Nakshatra(groom.Nakshatra).Gana
	b := domain.Nakshatra(bride.Nakshatra).Gana
	return newScore(domain.KootaGana, ganaPoints[g][b], string(g)+"/"+string(b))
}

// bhakootScore penalises the 2/12, 5/9 and 6/8 sign relationships.
func bhakootScore(groom, bride domain.MatchProfile) domain.KootaScore {
	g := domain.Rashi(groom.Rashi).Number
	b := domain.Rashi(bride.Rashi).Number
	forward := ((b-g)%domain.RashiCount+domain.RashiCount)%domain.RashiCount + 1
	backward := ((g-b)%domain.RashiCount+domain.RashiCount)%domain.RashiCount + 1

	score := 7.0
	switch forward {
	case 2, 12, 5, 9, 6, 8:
		score = 0
	}
	return newScore(domain.KootaBhakoot, score, fmt.Sprintf("%d/%d", forward, backward))
}

// nadiScore awards full marks when the nadis differ. Equal nadis score zero unless
// both Moons share a nakshatra in different padas, which nullifies the dosha.
func nadiScore(groom, bride domain.MatchProfile) (domain.KootaScore, bool) {
	g := domain.Nakshatra(groom.Nakshatra)
	b := domain.Nakshatra(bride.Nakshatra)
	detail := string(g.Nadi) + "/" + string(b.Nadi)

	if g.Number == b.Number && groom.Pada != bride.Pada {
		return newScore(domain.KootaNadi, 8, detail+" (nullified)"), true
	}
	if g.Nadi == b.Nadi {
		return newScore(domain.KootaNadi, 0, detail), false
	}
	return newScore(domain.KootaNadi, 8, detail), false
}

func doshas(r *domain.CompatibilityResult) []domain.Dosha {
	var out []domain.Dosha
	if r.Score(domain.KootaNadi) == 0 {
		out = append(out, domain.DoshaNadi)
	}
	if r.Score(domain.KootaBhakoot) == 0 {
		out = append(out, domain.DoshaBhakoot)
	}
	if r.Score(domain.KootaGana) == 0 {
		out = append(out, domain.DoshaGana)
	}
	return out
}

var levelAdvice = map[domain.CompatibilityLevel]string{
	domain.LevelExcellent: "Excellent match; highly recommended.",
	domain.LevelVeryGood:  "Very good match; recommended.",
	domain.LevelGood:      "Good match; meets the traditional minimum of 18 points.",
	domain.LevelAverage:   "Average match; consider a detailed chart comparison.",
	domain.LevelPoor:      "Poor match; not recommended without remedial measures.",
	domain.LevelVeryPoor:  "Very poor match; not recommended.",
}

func recommendation(r *domain.CompatibilityResult) string {
	parts := []string{levelAdvice[r.Level]}
	for _, d := range r.Doshas {
		parts = append(parts, fmt.Sprintf("%s%s dosha present.", strings.ToUpper(string(d[:1])), d[1:]))
	}
	if r.NadiNullified {
		parts = append(parts, "Nadi dosha nullified: same nakshatra in different padas.")
	}
	return strings.Join(parts, " ")
}
