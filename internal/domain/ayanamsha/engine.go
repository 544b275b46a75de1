package ayanamsha

import (
	"fmt"

	"github.com/brahmakaal/kaal-engine/internal/domain"
)

// Validated historical range, in Julian years relative to J2000.0.
// Outside [500 BCE, 2500 CE] the linear model is an extrapolation and
// results are flagged as such.
const (
	minValidatedYears = -2500.0
	maxValidatedYears = 500.0
)

// Value is the ayanamsha of one system at one instant. Immutable once
// computed and safe to cache indefinitely for that (system, instant) pair.
type Value struct {
	// System that produced the value.
	System System

	// Degrees is the ayanamsha in degrees.
	Degrees float64

	// Extrapolated is true when the instant lies outside the validated
	// historical range and the value is a linear extrapolation.
	Extrapolated bool
}

// Info describes a system's defining constants.
type Info struct {
	System            System
	Description       string
	J2000Degrees      float64
	RateArcsecPerYear float64
}

// Engine computes ayanamsha values. It holds only the static system table
// and is safe for concurrent use.
type Engine struct{}

// NewEngine creates an ayanamsha engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Value computes the ayanamsha for the given system and instant.
// It returns domain.ErrUnknownAyanamshaSystem for an unrecognized system.
func (e *Engine) Value(system System, at domain.Instant) (Value, error) {
	params, ok := systemTable[system]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", domain.ErrUnknownAyanamshaSystem, string(system))
	}

	years := at.JulianYears()
	t := at.JulianCenturies()

	deg := params.BaseDegrees
	deg += years * params.RateArcsecPerYear / 3600.0
	deg += (params.T2Arcsec*t*t + params.T3Arcsec*t*t*t) / 3600.0
	deg += params.ProperMotionArcsec * t / 3600.0

	return Value{
		System:       system,
		Degrees:      deg,
		Extrapolated: years < minValidatedYears || years > maxValidatedYears,
	}, nil
}

// CompareAll computes the ayanamsha of every supported system at the instant.
func (e *Engine) CompareAll(at domain.Instant) map[System]Value {
	out := make(map[System]Value, len(systemTable))
	for _, sys := range Systems() {
		v, err := e.Value(sys, at)
		if err != nil {
			// Unreachable for the closed enumeration.
			continue
		}
		out[sys] = v
	}
	return out
}

// ToSidereal converts a tropical ecliptic longitude to the sidereal frame of
// the given system, normalized to [0, 360).
func (e *Engine) ToSidereal(tropical float64, system System, at domain.Instant) (float64, error) {
	v, err := e.Value(system, at)
	if err != nil {
		return 0, err
	}
	return domain.NormalizeDegrees(tropical - v.Degrees), nil
}

// ToTropical converts a sidereal longitude back to the tropical frame.
// It is the exact inverse of ToSidereal for the same system and instant.
func (e *Engine) ToTropical(sidereal float64, system System, at domain.Instant) (float64, error) {
	v, err := e.Value(system, at)
	if err != nil {
		return 0, err
	}
	return domain.NormalizeDegrees(sidereal + v.Degrees), nil
}

// SystemInfo returns the defining constants of a system.
func (e *Engine) SystemInfo(system System) (Info, error) {
	params, ok := systemTable[system]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", domain.ErrUnknownAyanamshaSystem, string(system))
	}
	return Info{
		System:            system,
		Description:       params.Description,
		J2000Degrees:      params.BaseDegrees,
		RateArcsecPerYear: params.RateArcsecPerYear,
	}, nil
}
