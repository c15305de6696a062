package domain

// Koota names one of the eight Ashta Koota factors.
type Koota string

// The eight kootas in classical order.
const (
	KootaVarna       Koota = "varna"
	KootaVashya      Koota = "vashya"
	KootaTara        Koota = "tara"
	KootaYoni        Koota = "yoni"
	KootaGrahaMaitri Koota = "grahaMaitri"
	KootaGana        Koota = "gana"
	KootaBhakoot     Koota = "bhakoot"
	KootaNadi        Koota = "nadi"
)

// Kootas lists the factors in classical order.
var Kootas = []Koota{
	KootaVarna,
	KootaVashya,
	KootaTara,
	KootaYoni,
	KootaGrahaMaitri,
	KootaGana,
	KootaBhakoot,
	KootaNadi,
}

var kootaMax = map[Koota]float64{
	KootaVarna:       1,
	KootaVashya:      2,
	KootaTara:        3,
	KootaYoni:        4,
	KootaGrahaMaitri: 5,
	KootaGana:        6,
	KootaBhakoot:     7,
	KootaNadi:        8,
}

// MaxTotalScore is the sum of all koota maxima.
const MaxTotalScore = 36.0

// MaxPoints returns the maximum score of the koota.
func (k Koota) MaxPoints() float64 {
	return kootaMax[k]
}

// CompatibilityLevel is the verdict derived from the total score.
type CompatibilityLevel string

// Compatibility levels from best to worst.
const (
	LevelExcellent CompatibilityLevel = "excellent"
	LevelVeryGood  CompatibilityLevel = "veryGood"
	LevelGood      CompatibilityLevel = "good"
	LevelAverage   CompatibilityLevel = "average"
	LevelPoor      CompatibilityLevel = "poor"
	LevelVeryPoor  CompatibilityLevel = "veryPoor"
)

// levelThresholds are inclusive lower bounds, best first.
var levelThresholds = []struct {
	min   float64
	level CompatibilityLevel
}{
	{28, LevelExcellent},
	{24, LevelVeryGood},
	{18, LevelGood},
	{12, LevelAverage},
	{6, LevelPoor},
}

// LevelForTotal maps a total score to its compatibility level.
func LevelForTotal(total float64) CompatibilityLevel {
	for _, th := range levelThresholds {
		if total >= th.min {
			return th.level
		}
	}
	return LevelVeryPoor
}

// KootaScore is one scored factor.
type KootaScore struct {
	Koota  Koota   `json:"koota"`
	Score  float64 `json:"score"`
	Max    float64 `json:"max"`
	Detail string  `json:"detail"`
}

// Dosha names an affliction detected while scoring.
type Dosha string

// Doshas.
const (
	DoshaNadi    Dosha = "nadi"
	DoshaBhakoot Dosha = "bhakoot"
	DoshaGana    Dosha = "gana"
)

// CompatibilityResult is the immutable outcome of scoring two profiles.
type CompatibilityResult struct {
	Scores         []KootaScore       `json:"scores"`
	Total          float64            `json:"total"`
	Level          CompatibilityLevel `json:"level"`
	Doshas         []Dosha            `json:"doshas,omitempty"`
	NadiNullified  bool               `json:"nadiNullified"`
	Recommendation string             `json:"recommendation"`
}

// Score returns the sub-score of the given koota, or zero if absent.
func (r CompatibilityResult) Score(k Koota) float64 {
	for _, s := range r.Scores {
		if s.Koota == k {
			return s.Score
		}
	}
	return 0
}

// MatchResult pairs two reduced profiles with their compatibility score.
type MatchResult struct {
	Groom  *MinimalBirthData    `json:"groom"`
	Bride  *MinimalBirthData    `json:"bride"`
	Result *CompatibilityResult `json:"result"`
}
