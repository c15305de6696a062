package koota

import "go.trai.ch/jyotish/internal/core/domain"

type varna int

// Varnas in ascending rank.
const (
	varnaShudra varna = iota
	varnaVaishya
	varnaKshatriya
	varnaBrahmin
)

var varnaNames = map[varna]string{
	varnaShudra:    "shudra",
	varnaVaishya:   "vaishya",
	varnaKshatriya: "kshatriya",
	varnaBrahmin:   "brahmin",
}

// signVarna is indexed by rashi number minus one. Water signs are Brahmin,
// fire Kshatriya, earth Vaishya and air Shudra.
var signVarna = [domain.RashiCount]varna{
	varnaKshatriya, varnaVaishya, varnaShudra, varnaBrahmin,
	varnaKshatriya, varnaVaishya, varnaShudra, varnaBrahmin,
	varnaKshatriya, varnaVaishya, varnaShudra, varnaBrahmin,
}

type vashya int

const (
	vashyaChatushpada vashya = iota
	vashyaManava
	vashyaJalachara
	vashyaVanachara
	vashyaKeeta
)

var vashyaNames = map[vashya]string{
	vashyaChatushpada: "chatushpada",
	vashyaManava:      "manava",
	vashyaJalachara:   "jalachara",
	vashyaVanachara:   "vanachara",
	vashyaKeeta:       "keeta",
}

// vashyaPoints is symmetric and indexed by vashya group in declaration order.
var vashyaPoints = [5][5]float64{
	{2, 1, 1, 0.5, 1},
	{1, 2, 0.5, 0, 1},
	{1, 0.5, 2, 1, 1},
	{0.5, 0, 1, 2, 0},
	{1, 1, 1, 0, 2},
}

// signVashya resolves the vashya group. Sagittarius and Capricorn change group at 15°.
func signVashya(rashi int, degreeInSign float64) vashya {
	switch rashi {
	case 1, 2:
		return vashyaChatushpada
	case 3, 6, 7, 11:
		return vashyaManava
	case 4, 12:
		return vashyaJalachara
	case 5:
		return vashyaVanachara
	case 8:
		return vashyaKeeta
	case 9:
		if degreeInSign < 15 {
			return vashyaManava
		}
		return vashyaChatushpada
	case 10:
		if degreeInSign < 15 {
			return vashyaChatushpada
		}
		return vashyaJalachara
	default:
		return vashyaManava
	}
}

// yoniOrder fixes the row and column order of yoniPoints.
var yoniOrder = map[domain.Yoni]int{
	domain.YoniHorse:    0,
	domain.YoniElephant: 1,
	domain.YoniSheep:    2,
	domain.YoniSerpent:  3,
	domain.YoniDog:      4,
	domain.YoniCat:      5,
	domain.YoniRat:      6,
	domain.YoniCow:      7,
	domain.YoniBuffalo:  8,
	domain.YoniTiger:    9,
	domain.YoniDeer:     10,
	domain.YoniMonkey:   11,
	domain.YoniMongoose: 12,
	domain.YoniLion:     13,
}

// yoniPoints is symmetric. Sworn enemies score zero.
var yoniPoints = [14][14]float64{
	{4, 2, 2, 3, 2, 2, 2, 1, 0, 1, 3, 3, 2, 1},
	{2, 4, 3, 3, 2, 2, 2, 2, 3, 1, 2, 3, 2, 0},
	{2, 3, 4, 2, 1, 2, 1, 3, 3, 1, 2, 0, 3, 1},
	{3, 3, 2, 4, 2, 1, 1, 1, 1, 2, 2, 2, 0, 2},
	{2, 2, 1, 2, 4, 2, 1, 2, 2, 1, 0, 2, 1, 1},
	{2, 2, 2, 1, 2, 4, 0, 2, 2, 1, 3, 3, 2, 1},
	{2, 2, 1, 1, 1, 0, 4, 2, 2, 2, 2, 2, 1, 2},
	{1, 2, 3, 1, 2, 2, 2, 4, 3, 0, 3, 2, 2, 1},
	{0, 3, 3, 1, 2, 2, 2, 3, 4, 1, 2, 2, 2, 1},
	{1, 1, 1, 2, 1, 1, 2, 0, 1, 4, 1, 1, 2, 1},
	{3, 2, 2, 2, 0, 3, 2, 3, 2, 1, 4, 2, 2, 1},
	{3, 3, 0, 2, 2, 3, 2, 2, 2, 1, 2, 4, 3, 2},
	{2, 2, 3, 0, 1, 2, 1, 2, 2, 2, 2, 3, 4, 2},
	{1, 0, 1, 2, 1, 1, 2, 1, 1, 1, 1, 2, 2, 4},
}

type relation int

const (
	relEnemy relation = iota
	relNeutral
	relFriend
)

// naturalFriends and naturalEnemies list the natural relationships of the seven sign lords.
// Any pair absent from both is neutral.
var naturalFriends = map[domain.Planet][]domain.Planet{
	domain.PlanetSun:     {domain.PlanetMoon, domain.PlanetMars, domain.PlanetJupiter},
	domain.PlanetMoon:    {domain.PlanetSun, domain.PlanetMercury},
	domain.PlanetMars:    {domain.PlanetSun, domain.PlanetMoon, domain.PlanetJupiter},
	domain.PlanetMercury: {domain.PlanetSun, domain.PlanetVenus},
	domain.PlanetJupiter: {domain.PlanetSun, domain.PlanetMoon, domain.PlanetMars},
	domain.PlanetVenus:   {domain.PlanetMercury, domain.PlanetSaturn},
	domain.PlanetSaturn:  {domain.PlanetMercury, domain.PlanetVenus},
}

var naturalEnemies = map[domain.Planet][]domain.Planet{
	domain.PlanetSun:     {domain.PlanetVenus, domain.PlanetSaturn},
	domain.PlanetMars:    {domain.PlanetMercury},
	domain.PlanetMercury: {domain.PlanetMoon},
	domain.PlanetJupiter: {domain.PlanetMercury, domain.PlanetVenus},
	domain.PlanetVenus:   {domain.PlanetSun, domain.PlanetMoon},
	domain.PlanetSaturn:  {domain.PlanetSun, domain.PlanetMoon, domain.PlanetMars},
}

func relationOf(from, to domain.Planet) relation {
	for _, p := range naturalFriends[from] {
		if p == to {
			return relFriend
		}
	}
	for _, p := range naturalEnemies[from] {
		if p == to {
			return relEnemy
		}
	}
	return relNeutral
}

// maitriPoints is indexed by the two relations (enemy, neutral, friend) and is symmetric.
var maitriPoints = [3][3]float64{
	{0, 0.5, 1},
	{0.5, 3, 4},
	{1, 4, 5},
}

// ganaPoints is indexed groom gana then bride gana.
var ganaPoints = map[domain.Gana]map[domain.Gana]float64{
	domain.GanaDeva:     {domain.GanaDeva: 6, domain.GanaManushya: 6, domain.GanaRakshasa: 0},
	domain.GanaManushya: {domain.GanaDeva: 5, domain.GanaManushya: 6, domain.GanaRakshasa: 0},
	domain.GanaRakshasa: {domain.GanaDeva: 1, domain.GanaManushya: 0, domain.GanaRakshasa: 6},
}

// inauspiciousTaras are the taras Vipat, Pratyak and Naidhana.
var inauspiciousTaras = map[int]bool{3: true, 5: true, 7: true}
