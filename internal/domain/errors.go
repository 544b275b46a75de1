package domain

import "errors"

// Common domain errors used across the engine.
// Callers check for these with errors.Is; layers above wrap them with
// enough context (instant, location, system) to reproduce the failure.
var (
	// ErrInvalidCoordinate is returned when a latitude is outside [-90, 90]
	// or a longitude is outside [-180, 180].
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidInstant is returned when an instant falls outside the
	// supported calendrical range.
	ErrInvalidInstant = errors.New("invalid instant")

	// ErrUnknownAyanamshaSystem is returned when an ayanamsha system
	// identifier is not one of the supported systems.
	ErrUnknownAyanamshaSystem = errors.New("unknown ayanamsha system")

	// ErrEphemerisUnavailable is returned when the ephemeris provider failed
	// or has no data for the requested body and instant.
	ErrEphemerisUnavailable = errors.New("ephemeris unavailable")

	// ErrMissingLongitude is returned when a body longitude input is absent
	// or malformed. It is propagated, never defaulted to zero.
	ErrMissingLongitude = errors.New("missing or malformed body longitude")

	// ErrNoRiseOrSet is returned when no rise or set event exists within the
	// searched day, e.g. polar day or polar night.
	ErrNoRiseOrSet = errors.New("no rise or set event found")

	// ErrEmptySearchWindow is returned when a muhurta search range is
	// shorter than one sampling step.
	ErrEmptySearchWindow = errors.New("search window shorter than one step")

	// ErrUnknownEventType is returned when a muhurta event type identifier is
	// not one of the supported types.
	ErrUnknownEventType = errors.New("unknown muhurta event type")

	// ErrInvalidRules is returned when a muhurta rule set fails structural
	// validation, e.g. factor weights not summing to 1.
	ErrInvalidRules = errors.New("invalid muhurta rules")

	// ErrUnknownTier is returned when a quality tier identifier is not one
	// of the six bands.
	ErrUnknownTier = errors.New("unknown quality tier")
)
