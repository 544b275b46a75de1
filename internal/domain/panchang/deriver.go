package panchang

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/brahmakaal/kaal-engine/internal/domain"
	"github.com/brahmakaal/kaal-engine/internal/ephemeris"
)

// Result is the full set of calendrical elements for one instant and
// location. It is derived entirely from the inputs and never mutated after
// derivation.
type Result struct {
	Instant  domain.Instant
	Location domain.Location

	Tithi     Tithi
	Nakshatra Nakshatra
	Yoga      Yoga
	Karana    Karana
	Vara      Vara

	Sunrise   domain.Instant
	Sunset    domain.Instant
	SolarNoon domain.Instant
	Moonrise  domain.Instant
	Moonset   domain.Instant

	MoonPhase MoonPhase

	Periods DayPeriods

	SunRashi  Rashi
	MoonRashi Rashi
	Season    string

	Shool    Shool
	Panchaka Panchaka

	TithiEnds     EndEstimate
	NakshatraEnds EndEstimate

	Years TraditionalYears
}

// Deriver computes Results. It consults the ephemeris provider only for
// rise/set altitude solving; every other element is a pure function of the
// sidereal longitudes.
type Deriver struct {
	eph    ephemeris.Provider
	logger *slog.Logger
}

// NewDeriver creates a panchang deriver.
func NewDeriver(eph ephemeris.Provider, logger *slog.Logger) *Deriver {
	return &Deriver{eph: eph, logger: logger}
}

// Derive computes the full panchang from sidereal Sun and Moon longitudes.
// On any failure it returns a nil Result and a typed error, never a
// partially populated Result.
func (d *Deriver) Derive(
	ctx context.Context,
	sunSidereal, moonSidereal float64,
	at domain.Instant,
	loc domain.Location,
) (*Result, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(sunSidereal) || math.IsInf(sunSidereal, 0) {
		return nil, fmt.Errorf("%w: sun longitude not finite", domain.ErrMissingLongitude)
	}
	if math.IsNaN(moonSidereal) || math.IsInf(moonSidereal, 0) {
		return nil, fmt.Errorf("%w: moon longitude not finite", domain.ErrMissingLongitude)
	}

	sunrise, sunset, noon, err := d.sunTimes(ctx, at, loc)
	if err != nil {
		return nil, err
	}
	moonrise, moonset, err := d.moonTimes(ctx, at, loc)
	if err != nil {
		return nil, err
	}

	tithi := ComputeTithi(sunSidereal, moonSidereal)
	nakshatra := ComputeNakshatra(moonSidereal)
	vara := ComputeVara(at, loc.Longitude)

	d.logger.Debug("panchang derived",
		"jd", at.JulianDay(),
		"tithi", tithi.Name,
		"nakshatra", nakshatra.Name,
		"vara", vara.Name)

	return &Result{
		Instant:  at,
		Location: loc,

		Tithi:     tithi,
		Nakshatra: nakshatra,
		Yoga:      ComputeYoga(sunSidereal, moonSidereal),
		Karana:    ComputeKarana(sunSidereal, moonSidereal),
		Vara:      vara,

		Sunrise:   sunrise,
		Sunset:    sunset,
		SolarNoon: noon,
		Moonrise:  moonrise,
		Moonset:   moonset,

		MoonPhase: ComputeMoonPhase(sunSidereal, moonSidereal),

		Periods: ComputeDayPeriods(sunrise, sunset, vara.Weekday),

		SunRashi:  ComputeRashi(sunSidereal),
		MoonRashi: ComputeRashi(moonSidereal),
		Season:    ComputeSeason(sunSidereal),

		Shool:    ComputeShool(vara.Weekday),
		Panchaka: ComputePanchaka(nakshatra, vara.Weekday),

		TithiEnds:     EstimateTithiEnd(tithi, at),
		NakshatraEnds: EstimateNakshatraEnd(moonSidereal, at),

		Years: ComputeTraditionalYears(at, loc.Longitude),
	}, nil
}
