package ayanamsha

import (
	"fmt"

	"github.com/brahmakaal/kaal-engine/internal/domain"
)

// System identifies a sidereal reference system. The set is closed:
// ParseSystem rejects unknown identifiers at construction time.
type System string

// Supported ayanamsha systems.
const (
	Lahiri         System = "lahiri"
	Raman          System = "raman"
	Krishnamurti   System = "krishnamurti"
	Yukteshwar     System = "yukteshwar"
	SuryaSiddhanta System = "surya_siddhanta"
	FaganBradley   System = "fagan_bradley"
	DeLuce         System = "deluce"
	PushyaPaksha   System = "pushya_paksha"
	GalacticCenter System = "galactic_center"
	TrueCitra      System = "true_citra"
)

// Systems lists every supported system in a stable order.
func Systems() []System {
	return []System{
		Lahiri, Raman, Krishnamurti, Yukteshwar, SuryaSiddhanta,
		FaganBradley, DeLuce, PushyaPaksha, GalacticCenter, TrueCitra,
	}
}

// ParseSystem validates a system identifier string. Unknown identifiers are
// rejected here so callers never carry an invalid tag into a calculation.
func ParseSystem(s string) (System, error) {
	sys := System(s)
	if _, ok := systemTable[sys]; !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownAyanamshaSystem, s)
	}
	return sys, nil
}

// systemParams defines one reference system: the ayanamsha value at J2000.0,
// a linear precession rate, and optional polynomial corrections in Julian
// centuries since J2000.0.
type systemParams struct {
	// Description is the human-readable name of the system.
	Description string

	// BaseDegrees is the ayanamsha at the J2000.0 epoch, in degrees.
	BaseDegrees float64

	// RateArcsecPerYear is the linear precession rate in arcseconds per
	// Julian year.
	RateArcsecPerYear float64

	// T2Arcsec and T3Arcsec are quadratic and cubic correction coefficients
	// in arcseconds per T² and T³, with T in Julian centuries.
	T2Arcsec float64
	T3Arcsec float64

	// ProperMotionArcsec is an additional linear term in arcseconds per
	// century accounting for the proper motion of the reference star.
	ProperMotionArcsec float64
}

// systemTable carries the per-system constants. The values are reference
// data, not logic: swapping a row changes the system's definition.
var systemTable = map[System]systemParams{
	Lahiri: {
		Description:       "Chitrapaksha ayanamsha (official Indian)",
		BaseDegrees:       23.85209,
		RateArcsecPerYear: 50.29,
		T2Arcsec:          0.000139,
		T3Arcsec:          0.0000002,
	},
	Raman: {
		Description:       "B.V. Raman ayanamsha",
		BaseDegrees:       21.45292,
		RateArcsecPerYear: 50.26,
	},
	Krishnamurti: {
		Description:       "Krishnamurti Paddhati (KP)",
		BaseDegrees:       23.86388,
		RateArcsecPerYear: 50.29,
		T2Arcsec:          0.000144,
	},
	Yukteshwar: {
		Description:       "Sri Yukteshwar ayanamsha",
		BaseDegrees:       22.46667,
		RateArcsecPerYear: 50.33,
	},
	SuryaSiddhanta: {
		Description:       "Traditional Surya Siddhanta",
		BaseDegrees:       22.46157,
		RateArcsecPerYear: 54.0,
	},
	FaganBradley: {
		Description:       "Fagan-Bradley (Western sidereal)",
		BaseDegrees:       24.74204,
		RateArcsecPerYear: 50.25,
	},
	DeLuce: {
		Description:       "DeLuce ayanamsha",
		BaseDegrees:       24.02958,
		RateArcsecPerYear: 50.27,
	},
	PushyaPaksha: {
		Description:       "Pushya Paksha ayanamsha",
		BaseDegrees:       25.11667,
		RateArcsecPerYear: 50.29,
	},
	GalacticCenter: {
		Description:       "Galactic Center ayanamsha",
		BaseDegrees:       26.96667,
		RateArcsecPerYear: 50.29,
	},
	TrueCitra: {
		Description:        "True Chitrapaksha (Spica-anchored)",
		BaseDegrees:        23.86289,
		RateArcsecPerYear:  50.29,
		ProperMotionArcsec: 0.000035,
	},
}
