// Package analytic provides a self-contained, low-precision analytic
// ephemeris. Solar positions are good to a few hundredths of a degree and
// lunar positions to a few tenths. It needs no kernel files, which makes it
// the default provider for tests and for deployments without ephemeris data.
package analytic

import (
	"context"
	"fmt"
	"math"

	"github.com/brahmakaal/kaal-engine/internal/domain"
)

// Supported Julian Day range of the analytic series. Requests outside it
// fail with domain.ErrEphemerisUnavailable, mirroring how a kernel-backed
// provider behaves at the edge of its data.
const (
	minJD = 2086308.0 // ~1000 CE
	maxJD = 2816788.0 // ~3000 CE
)

// meanMotion holds J2000 mean longitude and daily motion for the bodies the
// provider models with plain circular motion.
var meanMotion = map[domain.Body]struct{ l0, rate float64 }{
	domain.BodyMercury: {252.25032, 4.09233445},
	domain.BodyVenus:   {181.97910, 1.60213034},
	domain.BodyMars:    {355.45332, 0.52402068},
	domain.BodyJupiter: {34.39644, 0.08308529},
	domain.BodySaturn:  {49.95424, 0.03344414},
}

// moonParallaxDeg is the Moon's mean equatorial horizontal parallax.
const moonParallaxDeg = 0.9508

// Provider is the analytic ephemeris implementation.
// The zero value is ready to use.
type Provider struct{}

// New creates an analytic ephemeris provider.
func New() *Provider {
	return &Provider{}
}

// Longitude implements ephemeris.Provider with low-precision series.
func (p *Provider) Longitude(ctx context.Context, body domain.Body, at domain.Instant) (domain.BodyLongitude, error) {
	if err := ctx.Err(); err != nil {
		return domain.BodyLongitude{}, err
	}
	jd := at.JulianDay()
	if jd < minJD || jd > maxJD {
		return domain.BodyLongitude{}, fmt.Errorf(
			"%w: jd %.2f outside analytic range [%.0f, %.0f]",
			domain.ErrEphemerisUnavailable, jd, minJD, maxJD)
	}

	n := jd - domain.J2000
	var lon float64
	switch body {
	case domain.BodySun:
		lon = solarLongitude(n)
	case domain.BodyMoon:
		lon = lunarLongitude(n)
	case domain.BodyRahu:
		lon = 125.0445479 - 0.0529538083*n
	case domain.BodyKetu:
		lon = 125.0445479 - 0.0529538083*n + 180
	default:
		mm, ok := meanMotion[body]
		if !ok {
			return domain.BodyLongitude{}, fmt.Errorf(
				"%w: no series for body %q", domain.ErrEphemerisUnavailable, body)
		}
		lon = mm.l0 + mm.rate*n
	}

	return domain.BodyLongitude{Body: body, Degrees: domain.NormalizeDegrees(lon)}, nil
}

// Altitude implements ephemeris.Provider: it converts the body's ecliptic
// position to horizontal coordinates via the local sidereal time. The Moon's
// altitude is reduced by the parallax term so it is topocentric.
func (p *Provider) Altitude(ctx context.Context, body domain.Body, at domain.Instant, loc domain.Location) (float64, error) {
	bl, err := p.Longitude(ctx, body, at)
	if err != nil {
		return 0, err
	}

	n := at.JulianDay() - domain.J2000
	eps := rad(23.4393 - 3.563e-7*n)
	lambda := rad(bl.Degrees)

	// Ecliptic latitude is treated as zero for every body in this model.
	sinDec := math.Sin(eps) * math.Sin(lambda)
	dec := math.Asin(sinDec)
	ra := math.Atan2(math.Cos(eps)*math.Sin(lambda), math.Cos(lambda))

	// Greenwich mean sidereal time, then local hour angle.
	gmst := 280.46061837 + 360.98564736629*n
	lst := rad(domain.NormalizeDegrees(gmst + loc.Longitude))
	ha := lst - ra

	lat := rad(loc.Latitude)
	sinAlt := math.Sin(lat)*math.Sin(dec) + math.Cos(lat)*math.Cos(dec)*math.Cos(ha)
	alt := deg(math.Asin(sinAlt))

	if body == domain.BodyMoon {
		alt -= moonParallaxDeg * math.Cos(rad(alt))
	}
	return alt, nil
}

// solarLongitude is the low-precision apparent solar longitude
// (Astronomical Almanac series).
func solarLongitude(n float64) float64 {
	l := 280.460 + 0.9856474*n
	g := rad(357.528 + 0.9856003*n)
	return l + 1.915*math.Sin(g) + 0.020*math.Sin(2*g)
}

// lunarLongitude is a two-term lunar longitude: mean longitude plus the
// principal elliptic term (evection and friends are dropped).
func lunarLongitude(n float64) float64 {
	l := 218.316 + 13.176396*n
	m := rad(134.963 + 13.064993*n)
	return l + 6.289*math.Sin(m)
}

func rad(d float64) float64 { return d * math.Pi / 180 }

func deg(r float64) float64 { return r * 180 / math.Pi }
