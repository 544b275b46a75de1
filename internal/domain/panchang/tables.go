package panchang

import "time"

// tithiBaseNames are the fourteen shared lunar-day names. The fifteenth day
// of each paksha has its own name: Purnima (full) and Amavasya (new).
var tithiBaseNames = [14]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi",
}

// nakshatraNames are the 27 lunar mansions in ecliptic order.
var nakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira",
	"Ardra", "Punarvasu", "Pushya", "Ashlesha", "Magha",
	"Purva Phalguni", "Uttara Phalguni", "Hasta", "Chitra", "Swati",
	"Vishakha", "Anuradha", "Jyeshtha", "Mula", "Purva Ashadha",
	"Uttara Ashadha", "Shravana", "Dhanishtha", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// nakshatraLords repeat the nine Vimshottari lords three times across the 27
// mansions.
var nakshatraLords = [27]string{
	"Ketu", "Venus", "Sun", "Moon", "Mars",
	"Rahu", "Jupiter", "Saturn", "Mercury", "Ketu",
	"Venus", "Sun", "Moon", "Mars", "Rahu",
	"Jupiter", "Saturn", "Mercury", "Ketu", "Venus",
	"Sun", "Moon", "Mars", "Rahu", "Jupiter",
	"Saturn", "Mercury",
}

// yogaNames are the 27 Sun+Moon combination categories.
var yogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarma", "Dhriti", "Shula", "Ganda",
	"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra",
	"Siddhi", "Vyatipata", "Variyan", "Parigha", "Shiva",
	"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma",
	"Indra", "Vaidhriti",
}

// movableKaranas is the repeating seven-name karana group covering slots
// 1–56 of the 60-slot cycle.
var movableKaranas = [7]string{
	"Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija", "Vishti",
}

// Fixed karanas pinned to slot 0 and slots 57–59.
const (
	karanaKimstughna  = "Kimstughna"
	karanaShakuni     = "Shakuni"
	karanaChatushpada = "Chatushpada"
	karanaNaga        = "Naga"
)

// rashiNames are the twelve sidereal zodiac signs.
var rashiNames = [12]string{
	"Mesha", "Vrishabha", "Mithuna", "Karka", "Simha", "Kanya",
	"Tula", "Vrishchika", "Dhanu", "Makara", "Kumbha", "Meena",
}

// rashiLords are the classical sign rulers.
var rashiLords = [12]string{
	"Mars", "Venus", "Mercury", "Moon", "Sun", "Mercury",
	"Venus", "Mars", "Jupiter", "Saturn", "Saturn", "Jupiter",
}

// varaNames and varaLords are indexed by time.Weekday (Sunday = 0).
var varaNames = [7]string{
	"Ravivara", "Somavara", "Mangalavara", "Budhavara",
	"Guruvara", "Shukravara", "Shanivara",
}

var varaLords = [7]string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn",
}

// moonPhaseNames split the Sun–Moon elongation into eight 45° sectors.
var moonPhaseNames = [8]string{
	"New Moon", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
	"Full Moon", "Waning Gibbous", "Last Quarter", "Waning Crescent",
}

// seasonNames map 60° bands of solar longitude to the six Vedic ritus.
var seasonNames = [6]string{
	"Vasanta", "Grishma", "Varsha", "Sharad", "Hemanta", "Shishira",
}

// Weekday→segment lookup for the daylight eighths, indexed by time.Weekday.
// Values are 0-based segment indices into the 8 equal daylight divisions.
// Standard reference tables: e.g. Rahu Kaal occupies the 8th segment on
// Sunday (16:30–18:00 for a 6:00–18:00 day) and the 2nd on Monday.
var (
	rahuKaalSegments      = [7]int{7, 1, 6, 4, 5, 3, 2}
	gulikaKaalSegments    = [7]int{6, 5, 4, 3, 2, 1, 0}
	yamagandaKaalSegments = [7]int{4, 3, 2, 1, 0, 6, 5}
)

// shoolDirections is the inauspicious travel direction per weekday
// (Disha Shool), indexed by time.Weekday.
var shoolDirections = [7]string{
	time.Sunday:    "West",
	time.Monday:    "East",
	time.Tuesday:   "North",
	time.Wednesday: "North",
	time.Thursday:  "South",
	time.Friday:    "West",
	time.Saturday:  "East",
}

// shoolDeities are the guardian deities of the four directions.
var shoolDeities = map[string]string{
	"North": "Kubera",
	"East":  "Indra",
	"South": "Yama",
	"West":  "Varuna",
}

// oppositeDirections gives the favorable direction opposite a Shool.
var oppositeDirections = map[string]string{
	"North": "South",
	"South": "North",
	"East":  "West",
	"West":  "East",
}

// taraNames are the nine tara positions counted from a birth nakshatra.
var taraNames = [9]string{
	"Janma", "Sampat", "Vipat", "Kshema", "Pratyak",
	"Sadhaka", "Vadha", "Mitra", "Parama Mitra",
}

// taraQualities classifies each tara position.
var taraQualities = [9]string{
	"Neutral", "Very Good", "Bad", "Good", "Bad",
	"Good", "Very Bad", "Very Good", "Excellent",
}

// panchakaTypes cycle across the five panchaka nakshatras by weekday.
var panchakaTypes = [5]string{
	"Agni Panchaka", "Raja Panchaka", "Mrityu Panchaka",
	"Chor Panchaka", "Roga Panchaka",
}

// samvatsaraNames is the 60-year Jovian cycle. Year 1987 CE began Prabhava.
var samvatsaraNames = [60]string{
	"Prabhava", "Vibhava", "Shukla", "Pramoda", "Prajapati",
	"Angirasa", "Shrimukha", "Bhava", "Yuva", "Dhata",
	"Ishvara", "Bahudhanya", "Pramathi", "Vikrama", "Vrisha",
	"Chitrabhanu", "Svabhanu", "Tarana", "Parthiva", "Vyaya",
	"Sarvajit", "Sarvadhari", "Virodhi", "Vikrita", "Khara",
	"Nandana", "Vijaya", "Jaya", "Manmatha", "Durmukha",
	"Hemalamba", "Vilamba", "Vikari", "Sharvari", "Plava",
	"Shubhakrit", "Shobhakrit", "Krodhi", "Vishvavasu", "Parabhava",
	"Plavanga", "Kilaka", "Saumya", "Sadharana", "Virodhikrit",
	"Paridhavi", "Pramadi", "Ananda", "Rakshasa", "Nala",
	"Pingala", "Kalayukti", "Siddharthi", "Raudra", "Durmati",
	"Dundubhi", "Rudhirodgari", "Raktakshi", "Krodhana", "Akshaya",
}
