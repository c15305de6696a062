package domain

// Element is the classical element of a sign.
type Element string

// Elements cycle fire, earth, air, water through the zodiac.
const (
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementAir   Element = "air"
	ElementWater Element = "water"
)

// Quality is the modality of a sign.
type Quality string

// Qualities cycle cardinal, fixed, mutable through the zodiac.
const (
	QualityCardinal Quality = "cardinal"
	QualityFixed    Quality = "fixed"
	QualityMutable  Quality = "mutable"
)

// Gender is the polarity of a sign or nakshatra.
type Gender string

// Genders.
const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderNeutral Gender = "neutral"
)

// RashiCount is the number of zodiac signs.
const RashiCount = 12

// RashiSpan is the width of one sign in degrees.
const RashiSpan = 30.0

// RashiData describes one of the twelve signs. It is derived purely from Number.
type RashiData struct {
	Number      int     `json:"number"`
	Name        string  `json:"name"`
	EnglishName string  `json:"englishName"`
	Lord        Planet  `json:"lord"`
	Element     Element `json:"element"`
	Quality     Quality `json:"quality"`
	Gender      Gender  `json:"gender"`
	Symbol      string  `json:"symbol"`
}

type rashiName struct {
	sanskrit string
	english  string
	symbol   string
}

var rashiNames = [RashiCount]rashiName{
	{"Mesha", "Aries", "Ram"},
	{"Vrishabha", "Taurus", "Bull"},
	{"Mithuna", "Gemini", "Twins"},
	{"Karka", "Cancer", "Crab"},
	{"Simha", "Leo", "Lion"},
	{"Kanya", "Virgo", "Maiden"},
	{"Tula", "Libra", "Scales"},
	{"Vrishchika", "Scorpio", "Scorpion"},
	{"Dhanu", "Sagittarius", "Archer"},
	{"Makara", "Capricorn", "Sea-goat"},
	{"Kumbha", "Aquarius", "Water-bearer"},
	{"Meena", "Pisces", "Fish"},
}

var rashiLords = [RashiCount]Planet{
	PlanetMars,
	PlanetVenus,
	PlanetMercury,
	PlanetMoon,
	PlanetSun,
	PlanetMercury,
	PlanetVenus,
	PlanetMars,
	PlanetJupiter,
	PlanetSaturn,
	PlanetSaturn,
	PlanetJupiter,
}

var elementCycle = [4]Element{ElementFire, ElementEarth, ElementAir, ElementWater}

var qualityCycle = [3]Quality{QualityCardinal, QualityFixed, QualityMutable}

// rashiGenders is keyed by the starting degree of the sign.
var rashiGenders = map[int]Gender{
	0:   GenderMale,
	30:  GenderFemale,
	60:  GenderNeutral,
	90:  GenderMale,
	120: GenderMale,
	150: GenderFemale,
	180: GenderNeutral,
	210: GenderFemale,
	240: GenderMale,
	270: GenderFemale,
	300: GenderNeutral,
	330: GenderFemale,
}

// Rashi resolves the attributes of the sign with the given number (1..12).
// Numbers outside the range are wrapped into it.
func Rashi(number int) RashiData {
	n := wrapIndex(number, RashiCount)
	start := (n * int(RashiSpan)) % 360
	names := rashiNames[n]

	return RashiData{
		Number:      n + 1,
		Name:        names.sanskrit,
		EnglishName: names.english,
		Lord:        rashiLords[n],
		Element:     elementCycle[(start/30)%4],
		Quality:     qualityCycle[(start%90)/30],
		Gender:      rashiGenders[start],
		Symbol:      names.symbol,
	}
}

// RashiLord returns the ruling planet of the sign with the given number.
func RashiLord(number int) Planet {
	return rashiLords[wrapIndex(number, RashiCount)]
}

// wrapIndex maps a 1-based number onto a 0-based index in [0, size).
func wrapIndex(number, size int) int {
	idx := (number - 1) % size
	if idx < 0 {
		idx += size
	}
	return idx
}
