package gait

import (
	"fmt"
	"strconv"

	"github.com/MasterYip/OCS2"
)

// NumLegs is the number of contact points of the quadruped.
const NumLegs = 4

// Leg indices, matching the bit layout of the mode number.
const (
	LegLF = iota
	LegRF
	LegLH
	LegRH
)

// A mode number encodes the stance legs as a bit per contact point:
// LF is the highest bit, RH the lowest.
const (
	ModeFly    ocs2.Mode = 0
	ModeRH     ocs2.Mode = 1
	ModeLH     ocs2.Mode = 2
	ModeLHRH   ocs2.Mode = 3
	ModeRF     ocs2.Mode = 4
	ModeRFRH   ocs2.Mode = 5
	ModeRFLH   ocs2.Mode = 6
	ModeRFLHRH ocs2.Mode = 7
	ModeLF     ocs2.Mode = 8
	ModeLFRH   ocs2.Mode = 9
	ModeLFLH   ocs2.Mode = 10
	ModeLFLHRH ocs2.Mode = 11
	ModeLFRF   ocs2.Mode = 12
	ModeLFRFRH ocs2.Mode = 13
	ModeLFRFLH ocs2.Mode = 14
	ModeStance ocs2.Mode = 15
)

var modeNames = map[string]ocs2.Mode{
	"FLY":      ModeFly,
	"RH":       ModeRH,
	"LH":       ModeLH,
	"LH_RH":    ModeLHRH,
	"RF":       ModeRF,
	"RF_RH":    ModeRFRH,
	"RF_LH":    ModeRFLH,
	"RF_LH_RH": ModeRFLHRH,
	"LF":       ModeLF,
	"LF_RH":    ModeLFRH,
	"LF_LH":    ModeLFLH,
	"LF_LH_RH": ModeLFLHRH,
	"LF_RF":    ModeLFRF,
	"LF_RF_RH": ModeLFRFRH,
	"LF_RF_LH": ModeLFRFLH,
	"STANCE":   ModeStance,
}

// ModeFromFlags encodes per-leg contact flags into a mode number.
func ModeFromFlags(contact [NumLegs]bool) ocs2.Mode {
	var m ocs2.Mode
	for leg := 0; leg < NumLegs; leg++ {
		if contact[leg] {
			m |= 1 << (NumLegs - 1 - leg)
		}
	}
	return m
}

// ContactFlags decodes a mode number into per-leg contact flags.
func ContactFlags(m ocs2.Mode) [NumLegs]bool {
	var contact [NumLegs]bool
	for leg := 0; leg < NumLegs; leg++ {
		contact[leg] = m&(1<<(NumLegs-1-leg)) != 0
	}
	return contact
}

// ParseMode resolves a mode given by name ("LF_RH", "STANCE", ...) or as a
// bare mode number.
func ParseMode(s string) (ocs2.Mode, error) {
	if m, ok := modeNames[s]; ok {
		return m, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unknown mode %q", s)
	}
	return ocs2.Mode(n), nil
}
