package panchang

import (
	"fmt"
	"math"
	"time"

	"github.com/brahmakaal/kaal-engine/internal/domain"
)

// nakshatraSpan is the ecliptic width of one lunar mansion.
const nakshatraSpan = 360.0 / 27.0

// Paksha is the lunar fortnight: waxing (Shukla) or waning (Krishna).
type Paksha string

const (
	ShuklaPaksha  Paksha = "Shukla"
	KrishnaPaksha Paksha = "Krishna"
)

// Tithi is a lunar day derived from the Moon−Sun elongation.
type Tithi struct {
	// Value is the continuous tithi in [0, 30): elongation / 12°.
	Value float64

	// Number is the 1-based tithi number in [1, 30].
	Number int

	// Paksha is Shukla for numbers 1–15, Krishna for 16–30.
	Paksha Paksha

	// Name is the traditional name, e.g. "Shukla Ekadashi" or "Amavasya".
	Name string
}

// Nakshatra is one of the 27 lunar mansions.
type Nakshatra struct {
	Index int // [0, 27)
	Name  string
	Lord  string
}

// Yoga is one of the 27 Sun+Moon combination categories.
type Yoga struct {
	// Value is the continuous yoga in [0, 27).
	Value float64
	Index int // [0, 27)
	Name  string
}

// Karana is a half-tithi slot in the 60-slot cycle.
type Karana struct {
	Index int // [0, 60)
	Name  string

	// Fixed is true for the four karanas pinned to slots 0 and 57–59.
	Fixed bool
}

// Vara is the weekday element with its planetary lord.
type Vara struct {
	Weekday time.Weekday
	Name    string
	Lord    string
}

// Rashi is a sidereal zodiac sign.
type Rashi struct {
	Index int // [0, 12)
	Name  string
	Lord  string
}

// MoonPhase names the Sun–Moon elongation sector and carries the
// illuminated fraction of the lunar disc.
type MoonPhase struct {
	// ElongationDeg is (moon − sun) mod 360.
	ElongationDeg float64
	Name          string

	// IlluminationPct is (1 − cos elongation) / 2 × 100.
	IlluminationPct float64
}

// ComputeTithi derives the tithi from sidereal Sun and Moon longitudes.
func ComputeTithi(sunLong, moonLong float64) Tithi {
	value := domain.NormalizeDegrees(moonLong-sunLong) / 12.0
	number := int(value) + 1

	paksha := ShuklaPaksha
	if number > 15 {
		paksha = KrishnaPaksha
	}

	var name string
	switch number {
	case 15:
		name = "Purnima"
	case 30:
		name = "Amavasya"
	default:
		idx := (number - 1) % 15
		name = fmt.Sprintf("%s %s", paksha, tithiBaseNames[idx])
	}

	return Tithi{Value: value, Number: number, Paksha: paksha, Name: name}
}

// ComputeNakshatra derives the lunar mansion from the Moon's sidereal
// longitude.
func ComputeNakshatra(moonLong float64) Nakshatra {
	idx := int(domain.NormalizeDegrees(moonLong)/nakshatraSpan) % 27
	return Nakshatra{Index: idx, Name: nakshatraNames[idx], Lord: nakshatraLords[idx]}
}

// ComputeYoga derives the yoga from the sum of the sidereal longitudes.
func ComputeYoga(sunLong, moonLong float64) Yoga {
	value := domain.NormalizeDegrees(sunLong+moonLong) / nakshatraSpan
	idx := int(value) % 27
	return Yoga{Value: value, Index: idx, Name: yogaNames[idx]}
}

// ComputeKarana derives the half-tithi slot. Slot 0 is the fixed Kimstughna
// karana (first half of Shukla Pratipada); slots 57–59 are the fixed
// Shakuni, Chatushpada and Naga karanas closing the dark fortnight; the
// seven movable karanas repeat through slots 1–56.
func ComputeKarana(sunLong, moonLong float64) Karana {
	tithiValue := domain.NormalizeDegrees(moonLong-sunLong) / 12.0
	idx := int(tithiValue*2) % 60

	switch {
	case idx == 0:
		return Karana{Index: idx, Name: karanaKimstughna, Fixed: true}
	case idx == 57:
		return Karana{Index: idx, Name: karanaShakuni, Fixed: true}
	case idx == 58:
		return Karana{Index: idx, Name: karanaChatushpada, Fixed: true}
	case idx == 59:
		return Karana{Index: idx, Name: karanaNaga, Fixed: true}
	default:
		return Karana{Index: idx, Name: movableKaranas[(idx-1)%7]}
	}
}

// ComputeVara derives the weekday element from the local mean civil day at
// the location's longitude.
func ComputeVara(at domain.Instant, longitude float64) Vara {
	wd := at.LocalMean(longitude).Weekday()
	return Vara{Weekday: wd, Name: varaNames[wd], Lord: varaLords[wd]}
}

// ComputeRashi derives the sidereal zodiac sign of a longitude.
func ComputeRashi(longitude float64) Rashi {
	idx := int(domain.NormalizeDegrees(longitude)/30.0) % 12
	return Rashi{Index: idx, Name: rashiNames[idx], Lord: rashiLords[idx]}
}

// ComputeMoonPhase derives the phase name and illuminated fraction from the
// Sun–Moon elongation.
func ComputeMoonPhase(sunLong, moonLong float64) MoonPhase {
	elong := domain.NormalizeDegrees(moonLong - sunLong)
	idx := int(elong/45.0) % 8
	illum := (1 - math.Cos(elong*math.Pi/180)) / 2 * 100
	return MoonPhase{ElongationDeg: elong, Name: moonPhaseNames[idx], IlluminationPct: illum}
}

// ComputeSeason maps the Sun's sidereal longitude to one of the six ritus,
// 60° of arc each starting at Mesha.
func ComputeSeason(sunLong float64) string {
	idx := int(domain.NormalizeDegrees(sunLong)/60.0) % 6
	return seasonNames[idx]
}
