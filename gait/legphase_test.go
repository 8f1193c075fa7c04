package gait

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MasterYip/OCS2"
)

func TestSwingPhasesTrot(t *testing.T) {
	// [0, 0.3): LF+RH stance, [0.3, 0.6): RF+LH stance, stance brackets.
	ms := Trot().Schedule(ModeStance, 0.6)

	// Halfway through the first phase: RF and LH are mid-swing.
	phases := SwingPhases(0.15, ms)
	assert.Equal(t, -1.0, phases[LegLF].Phase)
	assert.Equal(t, -1.0, phases[LegRH].Phase)
	assert.InDelta(t, 0.5, phases[LegRF].Phase, 1e-9)
	assert.InDelta(t, 0.3, phases[LegRF].Duration, 1e-9)
	assert.InDelta(t, 0.5, phases[LegLH].Phase, 1e-9)

	// Halfway through the second phase: LF and RH are mid-swing.
	phases = SwingPhases(0.45, ms)
	assert.InDelta(t, 0.5, phases[LegLF].Phase, 1e-9)
	assert.InDelta(t, 0.5, phases[LegRH].Phase, 1e-9)
	assert.Equal(t, -1.0, phases[LegRF].Phase)
	assert.Equal(t, -1.0, phases[LegLH].Phase)

	// Early in the first phase.
	phases = SwingPhases(0.06, ms)
	assert.InDelta(t, 0.2, phases[LegRF].Phase, 1e-9)

	// Outside the tiled cycles everything is in stance.
	phases = SwingPhases(1.0, ms)
	for leg := 0; leg < NumLegs; leg++ {
		assert.Equal(t, -1.0, phases[leg].Phase, "leg %d", leg)
	}
}

func TestSwingPhasesSpansEvents(t *testing.T) {
	// A swing interval can span several schedule phases; the phase is
	// measured across the whole interval, not the current phase only.
	ms := ocs2.NewModeSchedule(
		[]float64{0.0, 0.2, 0.5, 1.0},
		[]ocs2.Mode{ModeStance, ModeLFLH, ModeLH, ModeStance, ModeStance},
	)

	// RF lifts off at 0.0 and lands at 0.5, swinging across the 0.2 event.
	phases := SwingPhases(0.25, ms)
	assert.InDelta(t, 0.5, phases[LegRF].Phase, 1e-9)
	assert.InDelta(t, 0.5, phases[LegRF].Duration, 1e-9)

	// LF lifts off at 0.2 and lands at 0.5.
	assert.InDelta(t, (0.25-0.2)/0.3, phases[LegLF].Phase, 1e-9)
}

func TestSwingPhasesUnbounded(t *testing.T) {
	// A swing with no lift-off or touch-down event has no defined phase.
	ms := ocs2.NewModeSchedule([]float64{1.0}, []ocs2.Mode{ModeFly, ModeFly})

	phases := SwingPhases(0.5, ms)
	for leg := 0; leg < NumLegs; leg++ {
		assert.Equal(t, -1.0, phases[leg].Phase, "leg %d", leg)
	}
}

func TestGeneralizedTime(t *testing.T) {
	ms := Trot().Schedule(ModeStance, 0.6)
	v := GeneralizedTime(0.15, ms)

	assert.Equal(t, 3*NumLegs, v.Len())

	// Legs in contact contribute zeros.
	assert.Equal(t, 0.0, v.AtVec(0*NumLegs+LegLF))
	assert.Equal(t, 0.0, v.AtVec(1*NumLegs+LegRH))
	assert.Equal(t, 0.0, v.AtVec(2*NumLegs+LegLF))

	// Swinging legs: phase, phase rate, sin(pi*phase).
	assert.InDelta(t, 0.5, v.AtVec(0*NumLegs+LegRF), 1e-9)
	assert.InDelta(t, 1.0/0.3, v.AtVec(1*NumLegs+LegRF), 1e-9)
	assert.InDelta(t, 1.0, v.AtVec(2*NumLegs+LegRF), 1e-9)
	assert.InDelta(t, 0.5, v.AtVec(0*NumLegs+LegLH), 1e-9)
}
