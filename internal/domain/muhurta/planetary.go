package muhurta

import (
	"github.com/brahmakaal/kaal-engine/internal/domain"
)

// Dignity classifies a planet's placement in a sidereal sign.
type Dignity string

const (
	DignityExalted     Dignity = "exalted"
	DignityOwnSign     Dignity = "own_sign"
	DignityDebilitated Dignity = "debilitated"
	DignityNeutral     Dignity = "neutral"
)

// Strength is the dignity of a planet together with its favorability in
// [0, 1] for the planetary factor.
type Strength struct {
	Body         domain.Body
	Dignity      Dignity
	Favorability float64
}

// signDignities holds the classical exaltation, own and debilitation signs
// per planet, as 0-based rashi indices (Mesha = 0).
var signDignities = map[domain.Body]struct {
	exalted     int
	own         []int
	debilitated int
}{
	domain.BodySun:     {exalted: 0, own: []int{4}, debilitated: 6},
	domain.BodyMoon:    {exalted: 1, own: []int{3}, debilitated: 7},
	domain.BodyMars:    {exalted: 9, own: []int{0, 7}, debilitated: 3},
	domain.BodyMercury: {exalted: 5, own: []int{2, 5}, debilitated: 11},
	domain.BodyJupiter: {exalted: 3, own: []int{8, 11}, debilitated: 9},
	domain.BodyVenus:   {exalted: 11, own: []int{1, 6}, debilitated: 5},
	domain.BodySaturn:  {exalted: 6, own: []int{9, 10}, debilitated: 0},
}

// Favorability per dignity class.
const (
	exaltedStrength     = 1.0
	ownSignStrength     = 0.8
	neutralStrength     = 0.5
	debilitatedStrength = 0.0
)

// SignStrength judges a planet's dignity from its sidereal longitude.
// Bodies without a dignity table (the lunar nodes) are neutral.
func SignStrength(body domain.Body, siderealLong float64) Strength {
	d, ok := signDignities[body]
	if !ok {
		return Strength{Body: body, Dignity: DignityNeutral, Favorability: neutralStrength}
	}

	sign := int(domain.NormalizeDegrees(siderealLong)/30.0) % 12

	switch {
	case sign == d.exalted:
		return Strength{Body: body, Dignity: DignityExalted, Favorability: exaltedStrength}
	case sign == d.debilitated:
		return Strength{Body: body, Dignity: DignityDebilitated, Favorability: debilitatedStrength}
	default:
		for _, own := range d.own {
			if sign == own {
				return Strength{Body: body, Dignity: DignityOwnSign, Favorability: ownSignStrength}
			}
		}
		return Strength{Body: body, Dignity: DignityNeutral, Favorability: neutralStrength}
	}
}
