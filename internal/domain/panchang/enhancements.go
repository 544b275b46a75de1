package panchang

import (
	"time"

	"github.com/brahmakaal/kaal-engine/internal/domain"
)

// Mean motions used for end-time estimates, in degrees per day.
const (
	meanTithiHours     = 23.62
	moonMeanMotionDeg  = 13.2
	firstPanchakaIndex = 22 // Dhanishtha
)

// EndEstimate is a mean-motion estimate of when the current element yields
// to the next one.
type EndEstimate struct {
	At              domain.Instant
	PercentComplete float64
}

// Tarabala is the tara position of the current nakshatra counted from a
// birth nakshatra.
type Tarabala struct {
	// Count is the 1-based tara position in [1, 9].
	Count   int
	Name    string
	Quality string
}

// Chandrabala is the Moon's house position counted from a birth rashi.
type Chandrabala struct {
	// Position is 1-based in [1, 12].
	Position  int
	Favorable bool
}

// Shool is the inauspicious travel direction for a weekday.
type Shool struct {
	Direction          string
	Deity              string
	FavorableDirection string
}

// Panchaka classifies the five closing nakshatras of the lunar cycle.
type Panchaka struct {
	// Active is false outside the five panchaka nakshatras.
	Active bool
	Type   string
}

// TraditionalYears are the Hindu calendar year counts for a civil date.
type TraditionalYears struct {
	VikramSamvat int
	ShakaSamvat  int
	KaliYuga     int
	Samvatsara   string
}

// EstimateTithiEnd projects the current tithi's end from the mean tithi
// duration.
func EstimateTithiEnd(t Tithi, at domain.Instant) EndEstimate {
	progress := t.Value - float64(int(t.Value))
	remainingHours := (1 - progress) * meanTithiHours
	return EndEstimate{
		At:              at.Add(time.Duration(remainingHours * float64(time.Hour))),
		PercentComplete: progress * 100,
	}
}

// EstimateNakshatraEnd projects the current nakshatra's end from the Moon's
// mean daily motion.
func EstimateNakshatraEnd(moonLong float64, at domain.Instant) EndEstimate {
	pos := domain.NormalizeDegrees(moonLong)
	within := pos - float64(int(pos/nakshatraSpan))*nakshatraSpan
	remainingDeg := nakshatraSpan - within
	remainingHours := remainingDeg / moonMeanMotionDeg * 24
	return EndEstimate{
		At:              at.Add(time.Duration(remainingHours * float64(time.Hour))),
		PercentComplete: within / nakshatraSpan * 100,
	}
}

// ComputeTarabala counts the current nakshatra from the birth nakshatra and
// reduces it into the nine-tara cycle.
func ComputeTarabala(birth, current Nakshatra) Tarabala {
	count := ((current.Index-birth.Index+27)%27)%9 + 1
	return Tarabala{
		Count:   count,
		Name:    taraNames[count-1],
		Quality: taraQualities[count-1],
	}
}

// ComputeChandrabala counts the Moon's rashi from the birth rashi. Houses
// 1, 3, 6, 7, 10 and 11 are favorable.
func ComputeChandrabala(birth, moon Rashi) Chandrabala {
	pos := (moon.Index-birth.Index+12)%12 + 1
	switch pos {
	case 1, 3, 6, 7, 10, 11:
		return Chandrabala{Position: pos, Favorable: true}
	default:
		return Chandrabala{Position: pos, Favorable: false}
	}
}

// ComputeShool returns the Disha Shool for a weekday together with the
// favorable opposite direction.
func ComputeShool(wd time.Weekday) Shool {
	dir := shoolDirections[wd]
	return Shool{
		Direction:          dir,
		Deity:              shoolDeities[dir],
		FavorableDirection: oppositeDirections[dir],
	}
}

// ComputePanchaka reports whether the nakshatra falls in the panchaka group
// (Dhanishtha through Revati) and, if so, which of the five types applies.
func ComputePanchaka(n Nakshatra, wd time.Weekday) Panchaka {
	if n.Index < firstPanchakaIndex {
		return Panchaka{}
	}
	idx := (n.Index - firstPanchakaIndex + int(wd)) % 5
	return Panchaka{Active: true, Type: panchakaTypes[idx]}
}

// ComputeTraditionalYears derives the Hindu year counts from the local mean
// civil date. Vikram Samvat begins in Chaitra (April boundary here), Shaka
// Samvat in March, and the Samvatsara name follows the 60-year Jovian cycle
// anchored at Prabhava = 1987 CE.
func ComputeTraditionalYears(at domain.Instant, longitude float64) TraditionalYears {
	local := at.LocalMean(longitude)
	year := local.Year()
	month := int(local.Month())

	vikram := year + 56
	if month >= 4 {
		vikram = year + 57
	}
	shaka := year - 79
	if month >= 3 {
		shaka = year - 78
	}

	cycle := (year - 1987) % 60
	if cycle < 0 {
		cycle += 60
	}

	return TraditionalYears{
		VikramSamvat: vikram,
		ShakaSamvat:  shaka,
		KaliYuga:     year + 3102,
		Samvatsara:   samvatsaraNames[cycle],
	}
}
