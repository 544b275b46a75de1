package domain

import (
	"encoding/json"
	"math"
	"time"
)

// J2000 is the Julian Day of the J2000.0 reference epoch
// (2000 January 1, 12:00 on the uniform timescale).
const J2000 = 2451545.0

// secondsPerDay is the length of a Julian day in SI seconds.
const secondsPerDay = 86400.0

// unixEpochJD is the Julian Day of the Unix epoch (1970-01-01 00:00).
const unixEpochJD = 2440587.5

// Instant is a point in time normalized to the engine's uniform timescale.
// Callers are expected to apply any time-system correction (ΔT) before
// constructing an Instant; the engine never adjusts it further.
//
// Instant is an immutable value type: all methods return new values.
type Instant struct {
	t time.Time
}

// NewInstant creates an Instant from a time.Time, normalized to UTC.
func NewInstant(t time.Time) Instant {
	return Instant{t: t.UTC()}
}

// InstantFromJulianDay creates an Instant from a Julian Day number.
// Seconds and nanoseconds are split so dates far outside the
// nanosecond-representable range still convert correctly.
func InstantFromJulianDay(jd float64) Instant {
	secs := (jd - unixEpochJD) * secondsPerDay
	whole, frac := math.Modf(secs)
	return Instant{t: time.Unix(int64(whole), int64(frac*float64(time.Second))).UTC()}
}

// JulianDay returns the instant as a Julian Day number.
func (i Instant) JulianDay() float64 {
	secs := float64(i.t.Unix()) + float64(i.t.Nanosecond())/float64(time.Second)
	return secs/secondsPerDay + unixEpochJD
}

// JulianCenturies returns the Julian centuries elapsed since J2000.0.
func (i Instant) JulianCenturies() float64 {
	return (i.JulianDay() - J2000) / 36525.0
}

// JulianYears returns the Julian years elapsed since J2000.0.
func (i Instant) JulianYears() float64 {
	return (i.JulianDay() - J2000) / 365.25
}

// Time returns the underlying UTC time.
func (i Instant) Time() time.Time {
	return i.t
}

// Add returns the instant shifted by d.
func (i Instant) Add(d time.Duration) Instant {
	return Instant{t: i.t.Add(d)}
}

// Sub returns the duration i − other.
func (i Instant) Sub(other Instant) time.Duration {
	return i.t.Sub(other.t)
}

// Before reports whether i is strictly earlier than other.
func (i Instant) Before(other Instant) bool {
	return i.t.Before(other.t)
}

// After reports whether i is strictly later than other.
func (i Instant) After(other Instant) bool {
	return i.t.After(other.t)
}

// Equal reports whether both instants denote the same time.
func (i Instant) Equal(other Instant) bool {
	return i.t.Equal(other.t)
}

// IsZero reports whether the instant is the zero value.
func (i Instant) IsZero() bool {
	return i.t.IsZero()
}

// MarshalJSON renders the instant as an RFC 3339 UTC timestamp.
func (i Instant) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.t)
}

// UnmarshalJSON parses an RFC 3339 timestamp, normalizing to UTC.
func (i *Instant) UnmarshalJSON(data []byte) error {
	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	i.t = t.UTC()
	return nil
}

// LocalMean returns the local mean time at the given geographic longitude,
// using the 15° per hour convention. Vara (weekday) and civil day boundaries
// are taken from local mean time, not UTC.
func (i Instant) LocalMean(longitude float64) time.Time {
	offset := time.Duration(longitude / 15.0 * float64(time.Hour))
	return i.t.Add(offset)
}

// Interval is a half-open time span [Start, End).
type Interval struct {
	Start Instant
	End   Instant
}

// Duration returns the length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Contains reports whether t falls inside [Start, End).
func (iv Interval) Contains(t Instant) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// Overlaps reports whether the two intervals share any time.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}
