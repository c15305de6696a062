package domain

// Gana is the temperament class of a nakshatra.
type Gana string

// Ganas.
const (
	GanaDeva     Gana = "deva"
	GanaManushya Gana = "manushya"
	GanaRakshasa Gana = "rakshasa"
)

// Guna is the quality of a nakshatra, following its gana.
type Guna string

// Gunas.
const (
	GunaSattva Guna = "sattva"
	GunaRajas  Guna = "rajas"
	GunaTamas  Guna = "tamas"
)

// Yoni is the animal archetype of a nakshatra.
type Yoni string

// The fourteen yonis.
const (
	YoniHorse    Yoni = "horse"
	YoniElephant Yoni = "elephant"
	YoniSheep    Yoni = "sheep"
	YoniSerpent  Yoni = "serpent"
	YoniDog      Yoni = "dog"
	YoniCat      Yoni = "cat"
	YoniRat      Yoni = "rat"
	YoniCow      Yoni = "cow"
	YoniBuffalo  Yoni = "buffalo"
	YoniTiger    Yoni = "tiger"
	YoniDeer     Yoni = "deer"
	YoniMonkey   Yoni = "monkey"
	YoniMongoose Yoni = "mongoose"
	YoniLion     Yoni = "lion"
)

// Nadi is the pulse category of a nakshatra.
type Nadi string

// Nadis.
const (
	NadiAdya   Nadi = "adya"
	NadiMadhya Nadi = "madhya"
	NadiAntya  Nadi = "antya"
)

const (
	// NakshatraCount is the number of lunar mansions.
	NakshatraCount = 27
	// PadaCount is the number of quarters in a nakshatra.
	PadaCount = 4
	// NakshatraSpan is the width of one nakshatra in degrees (13°20′).
	NakshatraSpan = 360.0 / NakshatraCount
	// PadaSpan is the width of one pada in degrees (3°20′).
	PadaSpan = NakshatraSpan / PadaCount
)

// NakshatraData describes one of the 27 lunar mansions. It is derived purely from Number.
type NakshatraData struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
	Lord        Planet `json:"lord"`
	Deity       string `json:"deity"`
	Symbol      string `json:"symbol"`
	Gender      Gender `json:"gender"`
	Gana        Gana   `json:"gana"`
	Guna        Guna   `json:"guna"`
	Yoni        Yoni   `json:"yoni"`
	Nadi        Nadi   `json:"nadi"`
}

// PadaData is the quarter (1..4) within a nakshatra.
type PadaData struct {
	Number int `json:"number"`
}

type nakshatraRow struct {
	name    string
	english string
	deity   string
	symbol  string
	gender  Gender
	gana    Gana
	yoni    Yoni
	nadi    Nadi
}

var nakshatraTable = [NakshatraCount]nakshatraRow{
	{"Ashwini", "Horse Wife", "Ashwini Kumaras", "Horse's head", GenderMale, GanaDeva, YoniHorse, NadiAdya},
	{"Bharani", "Bearer", "Yama", "Yoni", GenderMale, GanaManushya, YoniElephant, NadiMadhya},
	{"Krittika", "Cutter", "Agni", "Razor", GenderFemale, GanaRakshasa, YoniSheep, NadiAntya},
	{"Rohini", "Red One", "Prajapati", "Chariot", GenderMale, GanaManushya, YoniSerpent, NadiAntya},
	{"Mrigashira", "Deer's Head", "Soma", "Deer's head", GenderFemale, GanaDeva, YoniSerpent, NadiMadhya},
	{"Ardra", "Moist One", "Rudra", "Teardrop", GenderFemale, GanaManushya, YoniDog, NadiAdya},
	{"Punarvasu", "Return of the Light", "Aditi", "Quiver of arrows", GenderFemale, GanaDeva, YoniCat, NadiAdya},
	{"Pushya", "Nourisher", "Brihaspati", "Cow's udder", GenderMale, GanaDeva, YoniSheep, NadiMadhya},
	{"Ashlesha", "Entwiner", "Nagas", "Coiled serpent", GenderMale, GanaRakshasa, YoniCat, NadiAntya},
	{"Magha", "Mighty One", "Pitris", "Royal throne", GenderMale, GanaRakshasa, YoniRat, NadiAntya},
	{"Purva Phalguni", "Former Red One", "Bhaga", "Front legs of a bed", GenderFemale, GanaManushya, YoniRat, NadiMadhya},
	{"Uttara Phalguni", "Latter Red One", "Aryaman", "Back legs of a bed", GenderMale, GanaManushya, YoniCow, NadiAdya},
	{"Hasta", "Hand", "Savitr", "Hand", GenderFemale, GanaDeva, YoniBuffalo, NadiAdya},
	{"Chitra", "Brilliant", "Vishvakarma", "Pearl", GenderFemale, GanaRakshasa, YoniTiger, NadiMadhya},
	{"Swati", "Independent One", "Vayu", "Young sprout", GenderMale, GanaDeva, YoniBuffalo, NadiAntya},
	{"Vishakha", "Forked", "Indra-Agni", "Triumphal arch", GenderMale, GanaRakshasa, YoniTiger, NadiAntya},
	{"Anuradha", "Following Radha", "Mitra", "Lotus", GenderFemale, GanaDeva, YoniDeer, NadiMadhya},
	{"Jyeshtha", "Eldest", "Indra", "Circular amulet", GenderMale, GanaRakshasa, YoniDeer, NadiAdya},
	{"Mula", "Root", "Nirriti", "Bunch of roots", GenderMale, GanaRakshasa, YoniDog, NadiAdya},
	{"Purva Ashadha", "Former Invincible", "Apas", "Winnowing basket", GenderMale, GanaManushya, YoniMonkey, NadiMadhya},
	{"Uttara Ashadha", "Latter Invincible", "Vishvedevas", "Elephant tusk", GenderMale, GanaManushya, YoniMongoose, NadiAntya},
	{"Shravana", "Hearing", "Vishnu", "Ear", GenderFemale, GanaDeva, YoniMonkey, NadiAntya},
	{"Dhanishta", "Wealthiest", "Vasus", "Drum", GenderFemale, GanaRakshasa, YoniLion, NadiMadhya},
	{"Shatabhisha", "Hundred Physicians", "Varuna", "Empty circle", GenderFemale, GanaRakshasa, YoniHorse, NadiAdya},
	{"Purva Bhadrapada", "Former Lucky Feet", "Aja Ekapada", "Front of a funeral cot", GenderMale, GanaManushya, YoniLion, NadiAdya},
	{"Uttara Bhadrapada", "Latter Lucky Feet", "Ahir Budhnya", "Back of a funeral cot", GenderMale, GanaManushya, YoniCow, NadiMadhya},
	{"Revati", "Wealthy", "Pushan", "Fish", GenderFemale, GanaDeva, YoniElephant, NadiAntya},
}

var ganaGuna = map[Gana]Guna{
	GanaDeva:     GunaSattva,
	GanaManushya: GunaRajas,
	GanaRakshasa: GunaTamas,
}

// Nakshatra resolves the attributes of the lunar mansion with the given number (1..27).
// Numbers outside the range are wrapped into it.
func Nakshatra(number int) NakshatraData {
	n := wrapIndex(number, NakshatraCount)
	row := nakshatraTable[n]

	return NakshatraData{
		Number:      n + 1,
		Name:        row.name,
		EnglishName: row.english,
		Lord:        NakshatraLord(n + 1),
		Deity:       row.deity,
		Symbol:      row.symbol,
		Gender:      row.gender,
		Gana:        row.gana,
		Guna:        ganaGuna[row.gana],
		Yoni:        row.yoni,
		Nadi:        row.nadi,
	}
}

// NakshatraLord returns the Vimshottari lord of the nakshatra with the given number.
func NakshatraLord(number int) Planet {
	return VimshottariOrder[wrapIndex(number, NakshatraCount)%len(VimshottariOrder)]
}
