package panchang

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/brahmakaal/kaal-engine/internal/domain"
)

// Horizon geometry constants.
const (
	// sunHorizonDeg is atmospheric refraction plus the solar semidiameter:
	// the Sun has risen when its center reaches −0.833°.
	sunHorizonDeg = 0.833

	// moonHorizonDeg is atmospheric refraction plus the lunar semidiameter.
	// Provider altitudes for the Moon are topocentric, so parallax is
	// already accounted for and the threshold matches the Sun's form.
	moonHorizonDeg = 0.567
)

// Solver bounds. The scan brackets a sign change of (altitude − target);
// bisection then refines it to subsecond precision.
const (
	scanStep            = 10 * time.Minute
	bisectTolerance     = 500 * time.Millisecond
	maxBisectIterations = 48
	retryWidening       = 6 * time.Hour
)

// crossingDirection selects which horizon crossing the solver looks for.
type crossingDirection int

const (
	crossingRise crossingDirection = iota
	crossingSet
)

// horizonDip is the dip of the visible horizon for an elevated observer,
// 1.76·√h arcminutes, in degrees.
func horizonDip(elevationM float64) float64 {
	if elevationM <= 0 {
		return 0
	}
	return 1.76 * math.Sqrt(elevationM) / 60.0
}

// dayBounds returns the 24-hour window of the local mean civil day
// containing the instant, expressed in the uniform timescale.
func dayBounds(at domain.Instant, loc domain.Location) domain.Interval {
	offset := time.Duration(loc.Longitude / 15.0 * float64(time.Hour))
	local := at.LocalMean(loc.Longitude)
	y, m, d := local.Date()
	localMidnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	start := domain.NewInstant(localMidnight.Add(-offset))
	return domain.Interval{Start: start, End: start.Add(24 * time.Hour)}
}

// sunTimes solves sunrise, sunset and apparent solar noon for the civil day
// containing the instant. A failed bracket is retried once with the window
// widened by ±6 h before reporting domain.ErrNoRiseOrSet.
func (d *Deriver) sunTimes(ctx context.Context, at domain.Instant, loc domain.Location) (rise, set, noon domain.Instant, err error) {
	target := -(sunHorizonDeg + horizonDip(loc.ElevationM))
	window := dayBounds(at, loc)

	rise, err = d.findCrossing(ctx, domain.BodySun, loc, window, target, crossingRise)
	if err != nil {
		return rise, set, noon, fmt.Errorf("sunrise at lat=%.4f lon=%.4f jd=%.5f: %w",
			loc.Latitude, loc.Longitude, at.JulianDay(), err)
	}
	set, err = d.findCrossing(ctx, domain.BodySun, loc, window, target, crossingSet)
	if err != nil {
		return rise, set, noon, fmt.Errorf("sunset at lat=%.4f lon=%.4f jd=%.5f: %w",
			loc.Latitude, loc.Longitude, at.JulianDay(), err)
	}
	noon = rise.Add(set.Sub(rise) / 2)
	return rise, set, noon, nil
}

// moonTimes solves moonrise and moonset analogously, against the lunar
// horizon altitude.
func (d *Deriver) moonTimes(ctx context.Context, at domain.Instant, loc domain.Location) (rise, set domain.Instant, err error) {
	target := -(moonHorizonDeg + horizonDip(loc.ElevationM))
	window := dayBounds(at, loc)

	rise, err = d.findCrossing(ctx, domain.BodyMoon, loc, window, target, crossingRise)
	if err != nil {
		return rise, set, fmt.Errorf("moonrise at lat=%.4f lon=%.4f jd=%.5f: %w",
			loc.Latitude, loc.Longitude, at.JulianDay(), err)
	}
	set, err = d.findCrossing(ctx, domain.BodyMoon, loc, window, target, crossingSet)
	if err != nil {
		return rise, set, fmt.Errorf("moonset at lat=%.4f lon=%.4f jd=%.5f: %w",
			loc.Latitude, loc.Longitude, at.JulianDay(), err)
	}
	return rise, set, nil
}

// findCrossing scans the window for a sign change of (altitude − target) in
// the requested direction and refines it by bisection. If the initial window
// has no crossing it retries once with a widened window; if that also fails
// the search reports domain.ErrNoRiseOrSet.
func (d *Deriver) findCrossing(
	ctx context.Context,
	body domain.Body,
	loc domain.Location,
	window domain.Interval,
	target float64,
	dir crossingDirection,
) (domain.Instant, error) {
	t, err := d.scanForCrossing(ctx, body, loc, window, target, dir)
	if err == nil || !errors.Is(err, domain.ErrNoRiseOrSet) {
		return t, err
	}

	widened := domain.Interval{
		Start: window.Start.Add(-retryWidening),
		End:   window.End.Add(retryWidening),
	}
	return d.scanForCrossing(ctx, body, loc, widened, target, dir)
}

// errNoCrossing marks an exhausted bracket scan; findCrossing translates it
// into the widened retry before letting it surface.
var errNoCrossing = fmt.Errorf("%w: no horizon crossing in window", domain.ErrNoRiseOrSet)

func (d *Deriver) scanForCrossing(
	ctx context.Context,
	body domain.Body,
	loc domain.Location,
	window domain.Interval,
	target float64,
	dir crossingDirection,
) (domain.Instant, error) {
	prev := window.Start
	prevAlt, err := d.eph.Altitude(ctx, body, prev, loc)
	if err != nil {
		return domain.Instant{}, err
	}

	for t := prev.Add(scanStep); !t.After(window.End); t = t.Add(scanStep) {
		if err := ctx.Err(); err != nil {
			return domain.Instant{}, err
		}
		alt, err := d.eph.Altitude(ctx, body, t, loc)
		if err != nil {
			return domain.Instant{}, err
		}

		crossed := (dir == crossingRise && prevAlt < target && alt >= target) ||
			(dir == crossingSet && prevAlt > target && alt <= target)
		if crossed {
			return d.bisect(ctx, body, loc, prev, t, target, dir)
		}
		prev, prevAlt = t, alt
	}
	return domain.Instant{}, errNoCrossing
}

// bisect narrows a bracketed crossing down to bisectTolerance with a bounded
// iteration count.
func (d *Deriver) bisect(
	ctx context.Context,
	body domain.Body,
	loc domain.Location,
	lo, hi domain.Instant,
	target float64,
	dir crossingDirection,
) (domain.Instant, error) {
	for iter := 0; iter < maxBisectIterations && hi.Sub(lo) > bisectTolerance; iter++ {
		mid := lo.Add(hi.Sub(lo) / 2)
		alt, err := d.eph.Altitude(ctx, body, mid, loc)
		if err != nil {
			return domain.Instant{}, err
		}

		above := alt >= target
		if (dir == crossingRise) == above {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo.Add(hi.Sub(lo) / 2), nil
}
