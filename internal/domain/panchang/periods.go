package panchang

import (
	"time"

	"github.com/brahmakaal/kaal-engine/internal/domain"
)

// DayPeriods are the traditional sub-intervals of one solar day derived from
// sunrise and sunset.
type DayPeriods struct {
	RahuKaal       domain.Interval
	GulikaKaal     domain.Interval
	YamagandaKaal  domain.Interval
	BrahmaMuhurta  domain.Interval
	AbhijitMuhurta domain.Interval
}

// ComputeDayPeriods builds the weekday-dependent kaal windows and the two
// auspicious muhurtas from the day's sunrise and sunset.
//
// The three kaals divide daylight into 8 equal segments and select one per
// weekday from fixed lookup tables. Brahma Muhurta is the fixed window
// [sunrise−96m, sunrise−48m]. Abhijit Muhurta is the middle 1/15 of
// daylight, centered on apparent solar noon.
func ComputeDayPeriods(sunrise, sunset domain.Instant, weekday time.Weekday) DayPeriods {
	daylight := sunset.Sub(sunrise)

	return DayPeriods{
		RahuKaal:      daylightSegment(sunrise, daylight, rahuKaalSegments[weekday]),
		GulikaKaal:    daylightSegment(sunrise, daylight, gulikaKaalSegments[weekday]),
		YamagandaKaal: daylightSegment(sunrise, daylight, yamagandaKaalSegments[weekday]),
		BrahmaMuhurta: domain.Interval{
			Start: sunrise.Add(-96 * time.Minute),
			End:   sunrise.Add(-48 * time.Minute),
		},
		AbhijitMuhurta: abhijitMuhurta(sunrise, daylight),
	}
}

// daylightSegment returns the i-th of 8 equal daylight divisions. Segment
// boundaries are computed as exact fractions of the daylight span so the
// eight segments tile [sunrise, sunset] without gap or overlap.
func daylightSegment(sunrise domain.Instant, daylight time.Duration, i int) domain.Interval {
	start := sunrise.Add(daylight * time.Duration(i) / 8)
	end := sunrise.Add(daylight * time.Duration(i+1) / 8)
	return domain.Interval{Start: start, End: end}
}

func abhijitMuhurta(sunrise domain.Instant, daylight time.Duration) domain.Interval {
	noon := sunrise.Add(daylight / 2)
	half := daylight / 30
	return domain.Interval{Start: noon.Add(-half), End: noon.Add(half)}
}
