package festival

import "github.com/brahmakaal/kaal-engine/internal/domain/panchang"

// Type classifies how a festival's date is found.
type Type string

const (
	TypeLunar     Type = "lunar"     // lunar month + paksha + tithi
	TypeSolar     Type = "solar"     // sidereal sign ingress of the Sun
	TypeNakshatra Type = "nakshatra" // Moon's nakshatra within a lunar month
	TypeRecurring Type = "recurring" // Ekadashi, Purnima, Amavasya
)

// Category groups festivals for filtering.
type Category string

const (
	CategoryMajor        Category = "major"
	CategoryReligious    Category = "religious"
	CategorySeasonal     Category = "seasonal"
	CategoryRegional     Category = "regional"
	CategorySpiritual    Category = "spiritual"
	CategoryAstronomical Category = "astronomical"
)

// Region narrows a festival to the traditions that observe it.
type Region string

const (
	RegionAllIndia   Region = "all_india"
	RegionNorthIndia Region = "north_india"
	RegionSouthIndia Region = "south_india"
	RegionEastIndia  Region = "east_india"
	RegionWestIndia  Region = "west_india"
	RegionBengal     Region = "bengal"
	RegionKerala     Region = "kerala"
	RegionTamilNadu  Region = "tamil_nadu"
)

// Rule defines how one festival is matched against a day's panchang.
type Rule struct {
	Name     string
	Type     Type
	Category Category
	Regions  []Region

	// Lunar parameters. Tithi is the 1-based day within the paksha, so
	// both Purnima and Amavasya are 15.
	Month  string
	Paksha panchang.Paksha
	Tithi  int

	// Nakshatra parameter for nakshatra-type rules, matched within Month.
	Nakshatra string

	Description      string
	AlternativeNames []string
	DurationDays     int
}

// ObservedIn reports whether the rule applies to any of the requested
// regions. An empty request or an all-India rule always matches.
func (r Rule) ObservedIn(regions []Region) bool {
	if len(regions) == 0 {
		return true
	}
	for _, rr := range r.Regions {
		if rr == RegionAllIndia {
			return true
		}
		for _, want := range regions {
			if rr == want {
				return true
			}
		}
	}
	return false
}

// DefaultRules is the built-in festival database: the major pan-Indian
// festivals plus a few regional ones exercising each rule type.
func DefaultRules() []Rule {
	return []Rule{
		// The five days of Diwali.
		{
			Name: "Dhanteras", Type: TypeLunar, Category: CategoryMajor,
			Regions: []Region{RegionAllIndia},
			Month:   "Kartik", Paksha: panchang.KrishnaPaksha, Tithi: 13,
			Description: "First day of Diwali, worship of wealth and prosperity",
		},
		{
			Name: "Naraka Chaturdashi", Type: TypeLunar, Category: CategoryMajor,
			Regions: []Region{RegionAllIndia},
			Month:   "Kartik", Paksha: panchang.KrishnaPaksha, Tithi: 14,
			Description:      "Second day of Diwali, defeat of the demon Narakasura",
			AlternativeNames: []string{"Choti Diwali", "Roop Chaudas"},
		},
		{
			Name: "Diwali", Type: TypeLunar, Category: CategoryMajor,
			Regions: []Region{RegionAllIndia},
			Month:   "Kartik", Paksha: panchang.KrishnaPaksha, Tithi: 15,
			Description:      "Festival of lights, worship of Goddess Lakshmi",
			AlternativeNames: []string{"Deepavali", "Lakshmi Puja"},
		},
		{
			Name: "Govardhan Puja", Type: TypeLunar, Category: CategoryMajor,
			Regions: []Region{RegionNorthIndia},
			Month:   "Kartik", Paksha: panchang.ShuklaPaksha, Tithi: 1,
			Description:      "Fourth day of Diwali, worship of Mount Govardhan",
			AlternativeNames: []string{"Annakut"},
		},
		{
			Name: "Bhai Dooj", Type: TypeLunar, Category: CategoryMajor,
			Regions: []Region{RegionNorthIndia},
			Month:   "Kartik", Paksha: panchang.ShuklaPaksha, Tithi: 2,
			Description:      "Fifth day of Diwali, bond between brothers and sisters",
			AlternativeNames: []string{"Bhai Tika", "Yama Dwitiya"},
		},

		// Holi.
		{
			Name: "Holika Dahan", Type: TypeLunar, Category: CategoryMajor,
			Regions: []Region{RegionAllIndia},
			Month:   "Phalguna", Paksha: panchang.ShuklaPaksha, Tithi: 15,
			Description: "Bonfire night before Holi, burning of Holika",
		},
		{
			Name: "Holi", Type: TypeLunar, Category: CategoryMajor,
			Regions: []Region{RegionAllIndia},
			Month:   "Chaitra", Paksha: panchang.KrishnaPaksha, Tithi: 1,
			Description:      "Festival of colors, celebration of spring",
			AlternativeNames: []string{"Rangwali Holi", "Dhulandi"},
		},

		// Navaratri cycle.
		{
			Name: "Chaitra Navaratri", Type: TypeLunar, Category: CategoryMajor,
			Regions: []Region{RegionNorthIndia},
			Month:   "Chaitra", Paksha: panchang.ShuklaPaksha, Tithi: 1,
			Description:  "Nine nights dedicated to Goddess Durga",
			DurationDays: 9,
		},
		{
			Name: "Sharad Navaratri", Type: TypeLunar, Category: CategoryMajor,
			Regions: []Region{RegionAllIndia},
			Month:   "Ashwin", Paksha: panchang.ShuklaPaksha, Tithi: 1,
			Description:      "Nine nights dedicated to Goddess Durga",
			DurationDays:     9,
			AlternativeNames: []string{"Durga Puja"},
		},
		{
			Name: "Dussehra", Type: TypeLunar, Category: CategoryMajor,
			Regions: []Region{RegionAllIndia},
			Month:   "Ashwin", Paksha: panchang.ShuklaPaksha, Tithi: 10,
			Description:      "Victory of good over evil",
			AlternativeNames: []string{"Vijayadashami", "Dasara"},
		},

		// Other majors.
		{
			Name: "Ram Navami", Type: TypeLunar, Category: CategoryMajor,
			Regions: []Region{RegionAllIndia},
			Month:   "Chaitra", Paksha: panchang.ShuklaPaksha, Tithi: 9,
			Description: "Birth of Lord Rama",
		},
		{
			Name: "Krishna Janmashtami", Type: TypeLunar, Category: CategoryMajor,
			Regions: []Region{RegionAllIndia},
			Month:   "Bhadrapada", Paksha: panchang.KrishnaPaksha, Tithi: 8,
			Description: "Birth of Lord Krishna",
		},
		{
			Name: "Ganesh Chaturthi", Type: TypeLunar, Category: CategoryMajor,
			Regions: []Region{RegionAllIndia},
			Month:   "Bhadrapada", Paksha: panchang.ShuklaPaksha, Tithi: 4,
			Description:  "Birth of Lord Ganesha",
			DurationDays: 10,
		},
		{
			Name: "Maha Shivaratri", Type: TypeLunar, Category: CategoryReligious,
			Regions: []Region{RegionAllIndia},
			Month:   "Magha", Paksha: panchang.KrishnaPaksha, Tithi: 14,
			Description: "Great night of Lord Shiva",
		},
		{
			Name: "Vasant Panchami", Type: TypeLunar, Category: CategorySeasonal,
			Regions: []Region{RegionNorthIndia},
			Month:   "Magha", Paksha: panchang.ShuklaPaksha, Tithi: 5,
			Description:      "Worship of Goddess Saraswati, arrival of spring",
			AlternativeNames: []string{"Saraswati Puja"},
		},
		{
			Name: "Raksha Bandhan", Type: TypeLunar, Category: CategorySeasonal,
			Regions: []Region{RegionNorthIndia},
			Month:   "Shravana", Paksha: panchang.ShuklaPaksha, Tithi: 15,
			Description: "Bond of protection between siblings",
		},
		{
			Name: "Guru Purnima", Type: TypeLunar, Category: CategoryReligious,
			Regions: []Region{RegionAllIndia},
			Month:   "Ashadha", Paksha: panchang.ShuklaPaksha, Tithi: 15,
			Description: "Honoring of spiritual teachers",
		},
		{
			Name: "Kali Puja", Type: TypeLunar, Category: CategoryRegional,
			Regions: []Region{RegionBengal, RegionEastIndia},
			Month:   "Kartik", Paksha: panchang.KrishnaPaksha, Tithi: 15,
			Description: "Worship of Goddess Kali on the Kartik new moon",
		},
		{
			Name: "Onam", Type: TypeNakshatra, Category: CategoryRegional,
			Regions: []Region{RegionKerala},
			Month:   "Bhadrapada", Nakshatra: "Shravana",
			Description: "Kerala harvest festival on the Shravana nakshatra",
		},
	}
}
