package ephemeris

import (
	"context"

	"github.com/brahmakaal/kaal-engine/internal/domain"
)

// Provider supplies celestial body positions for the calendrical core.
//
// Implementations must fail with an error wrapping
// domain.ErrEphemerisUnavailable for instants outside their supported
// historical range or for bodies they cannot compute, never returning a
// default position. Blocking implementations must honor the context.
type Provider interface {
	// Longitude returns the apparent geocentric ecliptic longitude of the
	// body at the instant, in the tropical frame, degrees [0, 360).
	Longitude(ctx context.Context, body domain.Body, at domain.Instant) (domain.BodyLongitude, error)

	// Altitude returns the topocentric altitude of the body above the
	// horizon at the instant and location, in degrees. Used by rise/set
	// root-finding.
	Altitude(ctx context.Context, body domain.Body, at domain.Instant, loc domain.Location) (float64, error)
}
