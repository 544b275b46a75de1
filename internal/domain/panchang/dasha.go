package panchang

import (
	"fmt"
	"math"
	"time"

	"github.com/brahmakaal/kaal-engine/internal/domain"
)

// vimshottariSequence is the nine-lord maha dasha cycle with each lord's
// period in years, 120 years in total. The order matches nakshatraLords, so
// the lord of the birth nakshatra opens the cycle.
var vimshottariSequence = [9]struct {
	Lord  string
	Years float64
}{
	{"Ketu", 7}, {"Venus", 20}, {"Sun", 6},
	{"Moon", 10}, {"Mars", 7}, {"Rahu", 18},
	{"Jupiter", 16}, {"Saturn", 19}, {"Mercury", 17},
}

// dashaYear is the dasha year length in days.
const dashaYear = 365.25

// DashaPeriod is one Vimshottari maha dasha.
type DashaPeriod struct {
	Lord  string
	Start domain.Instant
	End   domain.Instant

	// Years is the period length. The opening period carries only the
	// balance remaining at birth.
	Years float64
}

// ComputeDashaPeriods returns the nine Vimshottari maha dashas starting at
// birth, seeded by the Moon's sidereal longitude. The opening dasha is
// shortened to its balance: the fraction of the birth nakshatra the Moon has
// yet to traverse.
func ComputeDashaPeriods(moonLong float64, birth domain.Instant) ([]DashaPeriod, error) {
	if math.IsNaN(moonLong) || math.IsInf(moonLong, 0) {
		return nil, fmt.Errorf("%w: moon longitude %v", domain.ErrMissingLongitude, moonLong)
	}

	norm := domain.NormalizeDegrees(moonLong)
	idx := int(norm/nakshatraSpan) % 27
	traversed := math.Mod(norm, nakshatraSpan) / nakshatraSpan

	periods := make([]DashaPeriod, 0, len(vimshottariSequence))
	start := birth
	for i := range vimshottariSequence {
		seq := vimshottariSequence[(idx+i)%len(vimshottariSequence)]
		years := seq.Years
		if i == 0 {
			years *= 1 - traversed
		}
		end := start.Add(time.Duration(years * dashaYear * 24 * float64(time.Hour)))
		periods = append(periods, DashaPeriod{Lord: seq.Lord, Start: start, End: end, Years: years})
		start = end
	}
	return periods, nil
}
