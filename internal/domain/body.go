package domain

import (
	"fmt"
	"math"
)

// Body identifies a celestial body whose position the ephemeris provider can
// report. The set is closed: unknown identifiers are rejected at parse time.
type Body string

// Bodies recognized by the engine. Rahu and Ketu are the mean lunar nodes.
const (
	BodySun     Body = "sun"
	BodyMoon    Body = "moon"
	BodyMars    Body = "mars"
	BodyMercury Body = "mercury"
	BodyJupiter Body = "jupiter"
	BodyVenus   Body = "venus"
	BodySaturn  Body = "saturn"
	BodyRahu    Body = "rahu"
	BodyKetu    Body = "ketu"
)

// ParseBody validates a body identifier string.
func ParseBody(s string) (Body, error) {
	b := Body(s)
	switch b {
	case BodySun, BodyMoon, BodyMars, BodyMercury, BodyJupiter,
		BodyVenus, BodySaturn, BodyRahu, BodyKetu:
		return b, nil
	default:
		return "", fmt.Errorf("%w: unknown body %q", ErrMissingLongitude, s)
	}
}

// BodyLongitude is an apparent geocentric ecliptic longitude of a body at
// some instant, in the tropical frame. Supplied by the ephemeris provider.
type BodyLongitude struct {
	Body    Body
	Degrees float64
}

// Validate checks that the longitude is a finite value in [0, 360).
func (b BodyLongitude) Validate() error {
	if b.Body == "" {
		return fmt.Errorf("%w: body not set", ErrMissingLongitude)
	}
	if math.IsNaN(b.Degrees) || math.IsInf(b.Degrees, 0) {
		return fmt.Errorf("%w: %s longitude is not finite", ErrMissingLongitude, b.Body)
	}
	if b.Degrees < 0 || b.Degrees >= 360 {
		return fmt.Errorf("%w: %s longitude %.6f outside [0, 360)", ErrMissingLongitude, b.Body, b.Degrees)
	}
	return nil
}

// NormalizeDegrees reduces an angle to the range [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// Tiny negative inputs round up to exactly 360 after the correction.
	if deg >= 360 {
		deg = 0
	}
	return deg
}
