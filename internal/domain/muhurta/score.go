package muhurta

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/brahmakaal/kaal-engine/internal/domain"
	"github.com/brahmakaal/kaal-engine/internal/domain/panchang"
)

// Tier is the quality band of a blended score.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierVeryGood  Tier = "very_good"
	TierGood      Tier = "good"
	TierAverage   Tier = "average"
	TierPoor      Tier = "poor"
	TierAvoid     Tier = "avoid"
)

// tierRank orders the bands from worst to best for threshold comparisons.
var tierRank = map[Tier]int{
	TierAvoid:     0,
	TierPoor:      1,
	TierAverage:   2,
	TierGood:      3,
	TierVeryGood:  4,
	TierExcellent: 5,
}

// ParseTier converts a tier identifier to its Tier value.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := tierRank[t]; !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownTier, s)
	}
	return t, nil
}

// AtLeast reports whether t meets or exceeds the min quality band.
func (t Tier) AtLeast(min Tier) bool {
	return tierRank[t] >= tierRank[min]
}

// TierForScore maps a 0-100 score into its quality band.
func TierForScore(score int) Tier {
	switch {
	case score >= 80:
		return TierExcellent
	case score >= 70:
		return TierVeryGood
	case score >= 60:
		return TierGood
	case score >= 50:
		return TierAverage
	case score >= 40:
		return TierPoor
	default:
		return TierAvoid
	}
}

// Favorability endpoints. Factors score in [0, 1] before weighting.
const (
	favorable   = 1.0
	unfavorable = 0.0
)

// FactorScore is the contribution of one factor to the blended score.
type FactorScore struct {
	Factor Factor

	// Favorability is the raw per-factor value in [0, 1].
	Favorability float64

	Weight float64

	// Note names what drove the value, e.g. the tithi or nakshatra matched.
	Note string
}

// Evaluation is the scored judgment of one candidate moment.
type Evaluation struct {
	// Score is the blended 0-100 score. A hard exclusion forces 0.
	Score int
	Tier  Tier

	// Excluded is true when the candidate overlaps a hard-excluded period.
	Excluded bool

	Factors  []FactorScore
	Warnings []string
}

// Evaluate scores one candidate window against the rules using an already
// derived panchang. Optional sidereal longitudes for the rule's key planets
// feed the planetary factor; absent planets degrade to neutral with a
// warning.
func Evaluate(
	rules *Rules,
	p *panchang.Result,
	window domain.Interval,
	planetLongitudes map[domain.Body]float64,
) (Evaluation, error) {
	if err := rules.Validate(); err != nil {
		return Evaluation{}, err
	}

	var warnings []string
	factors := make([]FactorScore, 0, len(rules.Weights))

	add := func(f Factor, favorability float64, note string) {
		if w, ok := rules.Weights[f]; ok {
			factors = append(factors, FactorScore{
				Factor:       f,
				Favorability: favorability,
				Weight:       w,
				Note:         note,
			})
		}
	}

	fav, note := scoreTithi(rules, p.Tithi)
	add(FactorTithi, fav, note)

	fav, note = scoreNakshatra(rules, p.Nakshatra)
	add(FactorNakshatra, fav, note)

	fav, note = scoreYoga(rules, p.Yoga)
	add(FactorYoga, fav, note)

	fav, note = scoreKarana(rules, p.Karana)
	add(FactorKarana, fav, note)

	fav, note = scoreVara(rules, p.Vara)
	add(FactorVara, fav, note)

	fav, note, kaalWarnings, excluded := scoreKaal(rules, p.Periods, window)
	add(FactorKaal, fav, note)
	warnings = append(warnings, kaalWarnings...)

	fav, note = scoreMoonPhase(rules, p.MoonPhase)
	add(FactorMoonPhase, fav, note)

	fav, note, planetWarnings := scorePlanets(rules, planetLongitudes)
	add(FactorPlanetary, fav, note)
	warnings = append(warnings, planetWarnings...)

	if excluded {
		return Evaluation{
			Score:    0,
			Tier:     TierAvoid,
			Excluded: true,
			Factors:  factors,
			Warnings: warnings,
		}, nil
	}

	var blended float64
	for _, fs := range factors {
		blended += fs.Weight * fs.Favorability
	}
	score := int(math.Round(blended * 100))
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	return Evaluation{
		Score:    score,
		Tier:     TierForScore(score),
		Factors:  factors,
		Warnings: warnings,
	}, nil
}

func scoreTithi(rules *Rules, t panchang.Tithi) (float64, string) {
	switch {
	case rules.FavorableTithis[t.Number]:
		return favorable, fmt.Sprintf("favorable tithi %s", t.Name)
	case rules.AvoidTithis[t.Number]:
		return unfavorable, fmt.Sprintf("avoid tithi %s", t.Name)
	default:
		return rules.NeutralValue, fmt.Sprintf("neutral tithi %s", t.Name)
	}
}

func scoreNakshatra(rules *Rules, n panchang.Nakshatra) (float64, string) {
	switch {
	case rules.AvoidNakshatras[n.Name]:
		return unfavorable, fmt.Sprintf("avoid nakshatra %s", n.Name)
	case rules.GandaMoola[n.Name]:
		// Junction nakshatras never score above neutral.
		return unfavorable, fmt.Sprintf("ganda moola nakshatra %s", n.Name)
	case rules.FavorableNakshatras[n.Name]:
		return favorable, fmt.Sprintf("favorable nakshatra %s", n.Name)
	default:
		return rules.NeutralValue, fmt.Sprintf("neutral nakshatra %s", n.Name)
	}
}

func scoreYoga(rules *Rules, y panchang.Yoga) (float64, string) {
	switch {
	case rules.FavorableYogas[y.Name]:
		return favorable, fmt.Sprintf("favorable yoga %s", y.Name)
	case rules.AvoidYogas[y.Name]:
		return unfavorable, fmt.Sprintf("avoid yoga %s", y.Name)
	default:
		return rules.NeutralValue, fmt.Sprintf("neutral yoga %s", y.Name)
	}
}

func scoreKarana(rules *Rules, k panchang.Karana) (float64, string) {
	switch {
	case rules.AvoidKaranas[k.Name]:
		return unfavorable, fmt.Sprintf("avoid karana %s", k.Name)
	case rules.FavorableKaranas[k.Name]:
		return favorable, fmt.Sprintf("favorable karana %s", k.Name)
	default:
		return rules.NeutralValue, fmt.Sprintf("neutral karana %s", k.Name)
	}
}

func scoreVara(rules *Rules, v panchang.Vara) (float64, string) {
	switch {
	case rules.FavorableVaras[v.Weekday]:
		return favorable, fmt.Sprintf("favorable vara %s", v.Name)
	case rules.AvoidVaras[v.Weekday]:
		return unfavorable, fmt.Sprintf("avoid vara %s", v.Name)
	default:
		return rules.NeutralValue, fmt.Sprintf("neutral vara %s", v.Name)
	}
}

// scoreKaal judges the candidate window against the day's inauspicious
// periods. Rahu Kaal overlap always hard-excludes; Gulika and Yamaganda
// exclude only when the rules say so, otherwise they cost the factor and add
// a warning.
func scoreKaal(rules *Rules, periods panchang.DayPeriods, window domain.Interval) (float64, string, []string, bool) {
	var warnings []string
	excluded := false

	if window.Overlaps(periods.RahuKaal) {
		warnings = append(warnings, "window overlaps Rahu Kaal")
		excluded = true
	}
	if window.Overlaps(periods.GulikaKaal) {
		warnings = append(warnings, "window overlaps Gulika Kaal")
		if rules.HardExcludeGulika {
			excluded = true
		}
	}
	if window.Overlaps(periods.YamagandaKaal) {
		warnings = append(warnings, "window overlaps Yamaganda Kaal")
		if rules.HardExcludeYamaganda {
			excluded = true
		}
	}

	if len(warnings) == 0 {
		return favorable, "clear of inauspicious periods", nil, false
	}
	return unfavorable, strings.Join(warnings, "; "), warnings, excluded
}

// scoreMoonPhase favors the waxing half for growth-oriented events and a
// moderate illumination otherwise.
func scoreMoonPhase(rules *Rules, phase panchang.MoonPhase) (float64, string) {
	note := fmt.Sprintf("%s at %.0f%% illumination", phase.Name, phase.IlluminationPct)

	if rules.WaxingMoonPreferred {
		switch {
		case phase.Name == "Full Moon":
			return favorable, note
		case strings.HasPrefix(phase.Name, "Waxing") && phase.IlluminationPct > 25:
			return favorable, note
		case phase.Name == "New Moon":
			return unfavorable, note
		default:
			return rules.NeutralValue, note
		}
	}

	if phase.IlluminationPct >= 25 && phase.IlluminationPct <= 75 {
		return favorable, note
	}
	return rules.NeutralValue, note
}

// scorePlanets averages the sign strength of the rule's key planets.
// A planet with no supplied longitude contributes the neutral value and a
// warning instead of failing the evaluation.
func scorePlanets(rules *Rules, longitudes map[domain.Body]float64) (float64, string, []string) {
	if len(rules.KeyPlanets) == 0 {
		return rules.NeutralValue, "no key planets for event", nil
	}

	var warnings []string
	var sum float64
	notes := make([]string, 0, len(rules.KeyPlanets))

	// Stable iteration so notes and warnings are deterministic.
	planets := append([]domain.Body(nil), rules.KeyPlanets...)
	sort.Slice(planets, func(i, j int) bool { return planets[i] < planets[j] })

	for _, body := range planets {
		lon, ok := longitudes[body]
		if !ok {
			sum += rules.NeutralValue
			warnings = append(warnings,
				fmt.Sprintf("no longitude for %s, planetary factor degraded to neutral", body))
			notes = append(notes, fmt.Sprintf("%s=unknown", body))
			continue
		}
		s := SignStrength(body, lon)
		sum += s.Favorability
		notes = append(notes, fmt.Sprintf("%s=%s", body, s.Dignity))
	}

	return sum / float64(len(planets)), strings.Join(notes, ", "), warnings
}
