package muhurta

import (
	"fmt"
	"math"
	"time"

	"github.com/brahmakaal/kaal-engine/internal/domain"
)

// EventType selects the rule set used to judge a moment.
type EventType string

const (
	EventMarriage  EventType = "marriage"
	EventBusiness  EventType = "business"
	EventTravel    EventType = "travel"
	EventEducation EventType = "education"
	EventProperty  EventType = "property"
	EventGeneral   EventType = "general"
)

// EventTypes lists all supported event types in a stable order.
func EventTypes() []EventType {
	return []EventType{
		EventMarriage, EventBusiness, EventTravel,
		EventEducation, EventProperty, EventGeneral,
	}
}

// ParseEventType validates a string identifier.
func ParseEventType(s string) (EventType, error) {
	for _, et := range EventTypes() {
		if string(et) == s {
			return et, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownEventType, s)
}

// Factor identifies one weighted component of the blended score.
type Factor string

const (
	FactorTithi     Factor = "tithi"
	FactorNakshatra Factor = "nakshatra"
	FactorYoga      Factor = "yoga"
	FactorKarana    Factor = "karana"
	FactorVara      Factor = "vara"
	FactorKaal      Factor = "kaal"
	FactorMoonPhase Factor = "moon_phase"
	FactorPlanetary Factor = "planetary"
)

// weightSumTolerance bounds the acceptable drift of the factor weights from
// an exact sum of 1.
const weightSumTolerance = 1e-9

// Rules is the full rule set for one event type: per-factor weights plus the
// favorable and avoid sets each factor is judged against.
type Rules struct {
	Event EventType

	// Weights must sum to 1 across all factors.
	Weights map[Factor]float64

	// NeutralValue is the favorability assigned when a factor matches
	// neither set. Defaults to 0.5.
	NeutralValue float64

	FavorableTithis map[int]bool
	AvoidTithis     map[int]bool

	FavorableNakshatras map[string]bool
	AvoidNakshatras     map[string]bool

	FavorableVaras map[time.Weekday]bool
	AvoidVaras     map[time.Weekday]bool

	FavorableYogas map[string]bool
	AvoidYogas     map[string]bool

	FavorableKaranas map[string]bool
	AvoidKaranas     map[string]bool

	// GandaMoola nakshatras count as unfavorable for the nakshatra factor
	// even when an event-specific set would call them neutral.
	GandaMoola map[string]bool

	// HardExcludeGulika and HardExcludeYamaganda extend the hard exclusion
	// beyond Rahu Kaal, which always excludes.
	HardExcludeGulika    bool
	HardExcludeYamaganda bool

	// WaxingMoonPreferred marks growth-oriented events that favor a waxing
	// or full moon.
	WaxingMoonPreferred bool

	// KeyPlanets are the optional bodies whose sign strength feeds the
	// planetary factor. Sun and Moon are always assessed.
	KeyPlanets []domain.Body
}

// defaultWeights is the traditional eight-factor weighting.
func defaultWeights() map[Factor]float64 {
	return map[Factor]float64{
		FactorTithi:     0.15,
		FactorNakshatra: 0.15,
		FactorYoga:      0.10,
		FactorKarana:    0.10,
		FactorVara:      0.10,
		FactorKaal:      0.15,
		FactorMoonPhase: 0.10,
		FactorPlanetary: 0.15,
	}
}

// gandaMoolaSet are the six junction nakshatras.
func gandaMoolaSet() map[string]bool {
	return stringSet("Ashwini", "Ashlesha", "Magha", "Jyeshtha", "Mula", "Revati")
}

// commonAvoidNakshatras is shared by every default rule set.
func commonAvoidNakshatras() map[string]bool {
	return stringSet("Bharani", "Ashlesha", "Jyeshtha", "Mula")
}

// Yoga quality is event-independent in the traditional tables.
func defaultFavorableYogas() map[string]bool {
	return stringSet("Siddhi", "Siddha", "Sadhya", "Shubha", "Shukla", "Brahma", "Indra")
}

func defaultAvoidYogas() map[string]bool {
	return stringSet("Vyaghata", "Parigha", "Vyatipata", "Vaidhriti")
}

// The movable karanas other than Vishti (Bhadra) favor new undertakings.
func defaultFavorableKaranas() map[string]bool {
	return stringSet("Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija")
}

// Vishti (Bhadra) and the four fixed karanas are avoided for new
// undertakings.
func defaultAvoidKaranas() map[string]bool {
	return stringSet("Vishti", "Shakuni", "Chatushpada", "Naga", "Kimstughna")
}

// NewDefaultRules creates the traditional rule set for an event type.
// General events use the business tables.
func NewDefaultRules(event EventType) (*Rules, error) {
	r := &Rules{
		Event:            event,
		Weights:          defaultWeights(),
		NeutralValue:     0.5,
		AvoidTithis:      intSet(1, 4, 6, 8, 9, 14, 15, 30),
		AvoidNakshatras:  commonAvoidNakshatras(),
		AvoidVaras:       weekdaySet(time.Tuesday, time.Saturday),
		FavorableYogas:   defaultFavorableYogas(),
		AvoidYogas:       defaultAvoidYogas(),
		FavorableKaranas: defaultFavorableKaranas(),
		AvoidKaranas:     defaultAvoidKaranas(),
		GandaMoola:       gandaMoolaSet(),
	}

	switch event {
	case EventMarriage:
		r.FavorableTithis = intSet(2, 3, 5, 7, 10, 11, 12, 13)
		r.FavorableNakshatras = stringSet(
			"Rohini", "Mrigashira", "Magha", "Uttara Phalguni", "Hasta",
			"Swati", "Anuradha", "Uttara Ashadha", "Uttara Bhadrapada")
		r.FavorableVaras = weekdaySet(
			time.Sunday, time.Monday, time.Wednesday, time.Thursday, time.Friday)
		r.WaxingMoonPreferred = true
		r.KeyPlanets = []domain.Body{domain.BodyJupiter, domain.BodyVenus}

	case EventBusiness, EventGeneral:
		r.FavorableTithis = intSet(2, 3, 5, 7, 10, 11, 13)
		r.FavorableNakshatras = stringSet(
			"Ashwini", "Rohini", "Pushya", "Magha", "Uttara Phalguni",
			"Hasta", "Chitra", "Swati", "Anuradha", "Uttara Ashadha",
			"Shravana", "Dhanishtha", "Shatabhisha")
		r.FavorableVaras = weekdaySet(
			time.Sunday, time.Monday, time.Wednesday, time.Thursday)
		r.WaxingMoonPreferred = true
		r.KeyPlanets = []domain.Body{domain.BodyMercury, domain.BodyJupiter}

	case EventTravel:
		r.FavorableTithis = intSet(2, 3, 5, 6, 7, 10, 11, 12, 13)
		r.AvoidTithis = intSet(1, 4, 8, 9, 14, 15, 30)
		r.FavorableNakshatras = stringSet(
			"Ashwini", "Rohini", "Mrigashira", "Punarvasu", "Pushya",
			"Hasta", "Chitra", "Swati", "Anuradha", "Shravana",
			"Dhanishtha", "Shatabhisha")
		r.FavorableVaras = weekdaySet(
			time.Monday, time.Wednesday, time.Thursday, time.Friday)
		r.KeyPlanets = []domain.Body{domain.BodyMercury}

	case EventEducation:
		r.FavorableTithis = intSet(2, 3, 5, 7, 10, 11, 12, 13)
		r.FavorableNakshatras = stringSet(
			"Ashwini", "Rohini", "Punarvasu", "Pushya", "Hasta", "Chitra",
			"Swati", "Anuradha", "Uttara Ashadha", "Shravana", "Dhanishtha",
			"Revati")
		r.FavorableVaras = weekdaySet(
			time.Monday, time.Wednesday, time.Thursday, time.Friday)
		r.KeyPlanets = []domain.Body{domain.BodyMercury, domain.BodyJupiter}

	case EventProperty:
		r.FavorableTithis = intSet(2, 3, 5, 7, 10, 11, 12, 13)
		r.FavorableNakshatras = stringSet(
			"Rohini", "Mrigashira", "Pushya", "Magha", "Uttara Phalguni",
			"Hasta", "Chitra", "Swati", "Anuradha", "Uttara Ashadha",
			"Shravana", "Uttara Bhadrapada")
		r.FavorableVaras = weekdaySet(
			time.Sunday, time.Monday, time.Wednesday, time.Thursday, time.Friday)
		r.KeyPlanets = []domain.Body{domain.BodyMars, domain.BodyVenus}

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEventType, event)
	}

	return r, nil
}

// Validate checks structural soundness: weights present and summing to 1,
// neutral value inside [0, 1].
func (r *Rules) Validate() error {
	if len(r.Weights) == 0 {
		return fmt.Errorf("%w: no factor weights", domain.ErrInvalidRules)
	}

	var sum float64
	for f, w := range r.Weights {
		if w < 0 {
			return fmt.Errorf("%w: negative weight for factor %q", domain.ErrInvalidRules, f)
		}
		sum += w
	}
	if math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("%w: factor weights sum to %.6f, want 1", domain.ErrInvalidRules, sum)
	}

	if r.NeutralValue < 0 || r.NeutralValue > 1 {
		return fmt.Errorf("%w: neutral value %.3f outside [0, 1]", domain.ErrInvalidRules, r.NeutralValue)
	}
	return nil
}

func intSet(vals ...int) map[int]bool {
	s := make(map[int]bool, len(vals))
	for _, v := range vals {
		s[v] = true
	}
	return s
}

func stringSet(vals ...string) map[string]bool {
	s := make(map[string]bool, len(vals))
	for _, v := range vals {
		s[v] = true
	}
	return s
}

func weekdaySet(vals ...time.Weekday) map[time.Weekday]bool {
	s := make(map[time.Weekday]bool, len(vals))
	for _, v := range vals {
		s[v] = true
	}
	return s
}
