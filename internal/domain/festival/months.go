package festival

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/brahmakaal/kaal-engine/internal/domain"
	"github.com/brahmakaal/kaal-engine/internal/domain/panchang"
)

// lunarMonthNames is the amanta month cycle starting at Chaitra.
var lunarMonthNames = [12]string{
	"Chaitra", "Vaishakha", "Jyeshtha", "Ashadha",
	"Shravana", "Bhadrapada", "Ashwin", "Kartik",
	"Margashirsha", "Pausha", "Magha", "Phalguna",
}

// solarMonthNames are the sidereal solar months, one per rashi ingress.
var solarMonthNames = [12]string{
	"Mesha", "Vrishabha", "Mithuna", "Karka", "Simha", "Kanya",
	"Tula", "Vrishchika", "Dhanu", "Makara", "Kumbha", "Meena",
}

// New moon search bounds. The synodic month is 29.53 days and the Newton
// step converges within a handful of iterations at 12.19°/day mean
// elongation rate.
const (
	meanElongationRateDeg = 12.190749
	newMoonIterations     = 10
	newMoonToleranceDeg   = 1e-4
)

// signedElongation folds (moon − sun) into (−180, 180] so the value crosses
// zero at the new moon.
func signedElongation(elong float64) float64 {
	e := math.Mod(elong+180, 360)
	if e < 0 {
		e += 360
	}
	return e - 180
}

// newMoonBefore finds the instant of the last new moon at or before the
// given instant by Newton iteration on the Sun-Moon elongation.
func (e *Engine) newMoonBefore(ctx context.Context, at domain.Instant) (domain.Instant, error) {
	elong, err := e.elongation(ctx, at)
	if err != nil {
		return domain.Instant{}, err
	}

	// First guess: step back by the elapsed part of the lunation.
	t := at.Add(-time.Duration(elong / meanElongationRateDeg * 24 * float64(time.Hour)))

	for i := 0; i < newMoonIterations; i++ {
		cur, err := e.elongation(ctx, t)
		if err != nil {
			return domain.Instant{}, err
		}
		diff := signedElongation(cur)
		if math.Abs(diff) < newMoonToleranceDeg {
			break
		}
		t = t.Add(-time.Duration(diff / meanElongationRateDeg * 24 * float64(time.Hour)))
	}

	// Guard the "at is exactly a new moon" edge: never return a future
	// instant.
	if t.After(at) {
		t = t.Add(-time.Duration(29.53 * 24 * float64(time.Hour)))
	}
	return t, nil
}

// elongation returns the tropical Sun-Moon elongation in [0, 360) at an
// instant. The ayanamsha cancels in the difference, so tropical longitudes
// are sufficient.
func (e *Engine) elongation(ctx context.Context, at domain.Instant) (float64, error) {
	sun, err := e.eph.Longitude(ctx, domain.BodySun, at)
	if err != nil {
		return 0, fmt.Errorf("sun longitude at jd=%.5f: %w", at.JulianDay(), err)
	}
	moon, err := e.eph.Longitude(ctx, domain.BodyMoon, at)
	if err != nil {
		return 0, fmt.Errorf("moon longitude at jd=%.5f: %w", at.JulianDay(), err)
	}
	return domain.NormalizeDegrees(moon.Degrees - sun.Degrees), nil
}

// amantaMonthIndex finds the amanta lunar month containing the instant: the
// month that began at the previous new moon, named for the rashi the Sun
// occupied then. A new moon with the Sun in Meena opens Chaitra (index 0).
func (e *Engine) amantaMonthIndex(ctx context.Context, at domain.Instant) (int, error) {
	newMoon, err := e.newMoonBefore(ctx, at)
	if err != nil {
		return 0, err
	}

	sun, err := e.eph.Longitude(ctx, domain.BodySun, newMoon)
	if err != nil {
		return 0, fmt.Errorf("sun longitude at jd=%.5f: %w", newMoon.JulianDay(), err)
	}
	sid, err := e.ayan.ToSidereal(sun.Degrees, e.system, newMoon)
	if err != nil {
		return 0, err
	}

	rashi := int(sid/30.0) % 12
	return (rashi + 1) % 12, nil
}

// monthNameFor renders the purnimanta month name the rule tables use: the
// Krishna fortnight after a full moon already carries the next month's name,
// so Diwali falls in Kartik even though the amanta month is still Ashwin.
func monthNameFor(amantaIndex int, paksha panchang.Paksha) string {
	if paksha == panchang.KrishnaPaksha {
		return lunarMonthNames[(amantaIndex+1)%12]
	}
	return lunarMonthNames[amantaIndex]
}
