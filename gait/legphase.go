package gait

import (
	"math"
	"sort"

	"github.com/MasterYip/OCS2"
	"gonum.org/v1/gonum/mat"
)

// LegPhase describes how far a leg is through its current swing interval.
// Phase runs from 0 at lift-off to 1 at touch-down; it is -1 while the leg
// is in contact or when the swing interval is not bounded by the schedule.
type LegPhase struct {
	Phase    float64
	Duration float64
}

// SwingPhases computes the swing phase of each leg at time t under the
// given mode schedule.
func SwingPhases(t float64, ms ocs2.ModeSchedule) [NumLegs]LegPhase {
	inContact := LegPhase{Phase: -1}

	ind := sort.Search(len(ms.EventTimes), func(i int) bool {
		return ms.EventTimes[i] > t
	})
	contact := ContactFlags(ms.ModeSequence[ind])

	var phases [NumLegs]LegPhase
	for leg := 0; leg < NumLegs; leg++ {
		if contact[leg] {
			phases[leg] = inContact
			continue
		}

		// Walk to the lift-off event. A swing that began before the first
		// event has no defined start, so no phase can be assigned.
		start := ind
		for start > 0 && !ContactFlags(ms.ModeSequence[start-1])[leg] {
			start--
		}
		if start == 0 {
			phases[leg] = inContact
			continue
		}

		// Walk to the touch-down event; the last mode has no end time.
		end := ind
		for end < len(ms.EventTimes) && !ContactFlags(ms.ModeSequence[end+1])[leg] {
			end++
		}
		if end == len(ms.EventTimes) {
			phases[leg] = inContact
			continue
		}

		liftOff := ms.EventTimes[start-1]
		touchDown := ms.EventTimes[end]
		phases[leg] = LegPhase{
			Phase:    (t - liftOff) / (touchDown - liftOff),
			Duration: touchDown - liftOff,
		}
	}

	return phases
}

// GeneralizedTime assembles the per-leg swing features consumed by the
// learned policy: phase, phase rate, and sin(pi*phase), stacked per leg into
// a single vector. Legs in contact contribute zeros.
func GeneralizedTime(t float64, ms ocs2.ModeSchedule) *mat.VecDense {
	phases := SwingPhases(t, ms)
	out := mat.NewVecDense(3*NumLegs, nil)
	for leg := 0; leg < NumLegs; leg++ {
		if phases[leg].Phase < 0.0 {
			continue
		}
		out.SetVec(0*NumLegs+leg, phases[leg].Phase)
		out.SetVec(1*NumLegs+leg, 1.0/phases[leg].Duration)
		out.SetVec(2*NumLegs+leg, math.Sin(math.Pi*phases[leg].Phase))
	}
	return out
}
