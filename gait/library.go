package gait

import "github.com/MasterYip/OCS2"

// Stance keeps all four feet planted for the whole cycle.
func Stance() Template {
	return Template{
		EventTimes:   []float64{0.5},
		ModeSequence: []ocs2.Mode{ModeStance},
	}
}

// Trot alternates the two diagonal leg pairs with no overlap.
func Trot() Template {
	return Template{
		EventTimes:   []float64{0.3, 0.6},
		ModeSequence: []ocs2.Mode{ModeLFRH, ModeRFLH},
	}
}

// StandingTrot inserts a full-stance phase between the diagonal pairs.
func StandingTrot() Template {
	return Template{
		EventTimes:   []float64{0.25, 0.3, 0.55, 0.6},
		ModeSequence: []ocs2.Mode{ModeLFRH, ModeStance, ModeRFLH, ModeStance},
	}
}

// FlyingTrot inserts a flight phase between the diagonal pairs.
func FlyingTrot() Template {
	return Template{
		EventTimes:   []float64{0.15, 0.2, 0.35, 0.4},
		ModeSequence: []ocs2.Mode{ModeLFRH, ModeFly, ModeRFLH, ModeFly},
	}
}

// Pace alternates the two lateral leg pairs with a short flight phase.
func Pace() Template {
	return Template{
		EventTimes:   []float64{0.28, 0.3, 0.58, 0.6},
		ModeSequence: []ocs2.Mode{ModeLFLH, ModeFly, ModeRFRH, ModeFly},
	}
}

// DefaultCollection returns the built-in gaits keyed by name.
func DefaultCollection() map[string]Template {
	return map[string]Template{
		"stance":        Stance(),
		"trot":          Trot(),
		"standing_trot": StandingTrot(),
		"flying_trot":   FlyingTrot(),
		"pace":          Pace(),
	}
}
