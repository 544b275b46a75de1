package festival

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/brahmakaal/kaal-engine/internal/domain"
	"github.com/brahmakaal/kaal-engine/internal/domain/ayanamsha"
	"github.com/brahmakaal/kaal-engine/internal/domain/panchang"
	"github.com/brahmakaal/kaal-engine/internal/ephemeris"
)

// Observation time within the civil day. Elements are judged at local mean
// morning, the conventional sunrise reference for festival tithis.
const observationHour = 6

// Dedup windows. A tithi can straddle two consecutive mornings; a nakshatra
// recurs within a long lunar month.
const (
	tithiDedupDays     = 2
	nakshatraDedupDays = 15
)

// Date is one matched festival occurrence.
type Date struct {
	Rule Rule

	// Day is the local mean civil date, at UTC midnight.
	Day time.Time

	LunarMonth string
	Tithi      panchang.Tithi
	Nakshatra  panchang.Nakshatra
}

// Engine derives festival calendars from ephemeris longitudes.
type Engine struct {
	eph    ephemeris.Provider
	ayan   *ayanamsha.Engine
	system ayanamsha.System
	rules  []Rule
	logger *slog.Logger
}

// NewEngine creates a festival engine over the default rule database.
func NewEngine(eph ephemeris.Provider, ayan *ayanamsha.Engine, system ayanamsha.System, logger *slog.Logger) *Engine {
	return &Engine{
		eph:    eph,
		ayan:   ayan,
		system: system,
		rules:  DefaultRules(),
		logger: logger,
	}
}

// Calendar computes every festival occurrence of a civil year at the
// location, filtered by the requested regions. Results are chronological.
func (e *Engine) Calendar(ctx context.Context, loc domain.Location, year int, regions []Region) ([]Date, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)

	var out []Date
	lastSeen := make(map[string]time.Time)

	prevRashi, err := e.sunRashiAt(ctx, e.morningInstant(start.AddDate(0, 0, -1), loc))
	if err != nil {
		return nil, err
	}

	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("festival calendar for %d: %w", year, err)
		}

		at := e.morningInstant(day, loc)

		sunSid, moonSid, err := e.siderealLongitudes(ctx, at)
		if err != nil {
			return nil, err
		}

		tithi := panchang.ComputeTithi(sunSid, moonSid)
		nakshatra := panchang.ComputeNakshatra(moonSid)

		amanta, err := e.amantaMonthIndex(ctx, at)
		if err != nil {
			return nil, err
		}
		month := monthNameFor(amanta, tithi.Paksha)

		matches := e.matchDay(day, month, tithi, nakshatra, regions, lastSeen)
		out = append(out, matches...)

		// Sidereal sign ingress between consecutive mornings is a
		// sankranti.
		rashi := int(sunSid/30.0) % 12
		if rashi != prevRashi {
			rule := sankrantiRule(rashi)
			if rule.ObservedIn(regions) {
				out = append(out, Date{
					Rule:       rule,
					Day:        day,
					LunarMonth: month,
					Tithi:      tithi,
					Nakshatra:  nakshatra,
				})
			}
		}
		prevRashi = rashi
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Day.Equal(out[j].Day) {
			return out[i].Day.Before(out[j].Day)
		}
		return out[i].Rule.Name < out[j].Rule.Name
	})

	e.logger.Debug("festival calendar derived",
		"year", year,
		"lat", loc.Latitude,
		"lon", loc.Longitude,
		"festivals", len(out))

	return out, nil
}

// matchDay applies the rule database plus the recurring observances to one
// morning's elements.
func (e *Engine) matchDay(
	day time.Time,
	month string,
	tithi panchang.Tithi,
	nakshatra panchang.Nakshatra,
	regions []Region,
	lastSeen map[string]time.Time,
) []Date {
	withinPaksha := (tithi.Number-1)%15 + 1

	var out []Date
	emit := func(rule Rule, dedupDays int) {
		if !rule.ObservedIn(regions) {
			return
		}
		if seen, ok := lastSeen[rule.Name]; ok {
			if day.Sub(seen) < time.Duration(dedupDays)*24*time.Hour {
				return
			}
		}
		lastSeen[rule.Name] = day
		out = append(out, Date{
			Rule:       rule,
			Day:        day,
			LunarMonth: month,
			Tithi:      tithi,
			Nakshatra:  nakshatra,
		})
	}

	for _, rule := range e.rules {
		switch rule.Type {
		case TypeLunar:
			if rule.Month == month && rule.Paksha == tithi.Paksha && rule.Tithi == withinPaksha {
				emit(rule, tithiDedupDays)
			}
		case TypeNakshatra:
			if rule.Month == month && rule.Nakshatra == nakshatra.Name {
				emit(rule, nakshatraDedupDays)
			}
		}
	}

	// Recurring observances are generated, not listed in the database.
	if withinPaksha == 11 {
		emit(ekadashiRule(month, tithi.Paksha), tithiDedupDays)
	}
	switch tithi.Number {
	case 15:
		emit(purnimaRule(month), tithiDedupDays)
	case 30:
		emit(amavasyaRule(month), tithiDedupDays)
	}

	return out
}

// morningInstant is the uniform-timescale instant of local mean 06:00 on the
// civil day.
func (e *Engine) morningInstant(day time.Time, loc domain.Location) domain.Instant {
	offset := time.Duration(loc.Longitude / 15.0 * float64(time.Hour))
	y, m, d := day.Date()
	localMorning := time.Date(y, m, d, observationHour, 0, 0, 0, time.UTC)
	return domain.NewInstant(localMorning.Add(-offset))
}

func (e *Engine) siderealLongitudes(ctx context.Context, at domain.Instant) (sun, moon float64, err error) {
	sunBL, err := e.eph.Longitude(ctx, domain.BodySun, at)
	if err != nil {
		return 0, 0, fmt.Errorf("sun longitude at jd=%.5f: %w", at.JulianDay(), err)
	}
	moonBL, err := e.eph.Longitude(ctx, domain.BodyMoon, at)
	if err != nil {
		return 0, 0, fmt.Errorf("moon longitude at jd=%.5f: %w", at.JulianDay(), err)
	}
	sun, err = e.ayan.ToSidereal(sunBL.Degrees, e.system, at)
	if err != nil {
		return 0, 0, err
	}
	moon, err = e.ayan.ToSidereal(moonBL.Degrees, e.system, at)
	if err != nil {
		return 0, 0, err
	}
	return sun, moon, nil
}

func (e *Engine) sunRashiAt(ctx context.Context, at domain.Instant) (int, error) {
	sunBL, err := e.eph.Longitude(ctx, domain.BodySun, at)
	if err != nil {
		return 0, fmt.Errorf("sun longitude at jd=%.5f: %w", at.JulianDay(), err)
	}
	sid, err := e.ayan.ToSidereal(sunBL.Degrees, e.system, at)
	if err != nil {
		return 0, err
	}
	return int(sid/30.0) % 12, nil
}

func sankrantiRule(rashi int) Rule {
	name := solarMonthNames[rashi] + " Sankranti"
	var alt []string
	switch solarMonthNames[rashi] {
	case "Makara":
		name = "Makar Sankranti"
		alt = []string{"Pongal", "Uttarayan"}
	case "Mesha":
		alt = []string{"Baisakhi"}
	}
	return Rule{
		Name:             name,
		Type:             TypeSolar,
		Category:         CategoryAstronomical,
		Regions:          []Region{RegionAllIndia},
		AlternativeNames: alt,
		Description:      fmt.Sprintf("Sun's ingress into sidereal %s", solarMonthNames[rashi]),
	}
}

func ekadashiRule(month string, paksha panchang.Paksha) Rule {
	return Rule{
		Name:        fmt.Sprintf("%s %s Ekadashi", month, paksha),
		Type:        TypeRecurring,
		Category:    CategorySpiritual,
		Regions:     []Region{RegionAllIndia},
		Month:       month,
		Paksha:      paksha,
		Tithi:       11,
		Description: "Fasting day on the eleventh tithi",
	}
}

func purnimaRule(month string) Rule {
	return Rule{
		Name:        month + " Purnima",
		Type:        TypeRecurring,
		Category:    CategorySpiritual,
		Regions:     []Region{RegionAllIndia},
		Month:       month,
		Paksha:      panchang.ShuklaPaksha,
		Tithi:       15,
		Description: "Full moon observance",
	}
}

func amavasyaRule(month string) Rule {
	return Rule{
		Name:        month + " Amavasya",
		Type:        TypeRecurring,
		Category:    CategorySpiritual,
		Regions:     []Region{RegionAllIndia},
		Month:       month,
		Paksha:      panchang.KrishnaPaksha,
		Tithi:       15,
		Description: "New moon observance",
	}
}
