// Package gait generates periodic mode schedules for legged locomotion by
// tiling a gait-cycle template over a requested horizon.
package gait

import (
	"math"

	"github.com/MasterYip/OCS2"
)

// Template describes one repetition of a periodic gait. EventTimes holds
// strictly increasing positive offsets into the cycle, the last of which is
// the cycle period. ModeSequence has the same length; ModeSequence[k] is the
// mode active on the half-open interval ending at EventTimes[k].
type Template struct {
	EventTimes   []float64
	ModeSequence []ocs2.Mode
}

// Period returns the duration of one repetition of the template.
func (t Template) Period() float64 {
	return t.EventTimes[len(t.EventTimes)-1]
}

// EventTimesAndModeSequence tiles tmpl over the requested duration. The
// returned event times start at 0.0 and embed floor(duration/Period()) whole
// cycles; partial cycles are dropped, so the covered span may fall short of
// duration. defaultMode brackets the schedule on both sides, which is why
// the mode sequence always has exactly one more entry than the event times:
// the final default mode has no explicit end time.
func EventTimesAndModeSequence(defaultMode ocs2.Mode, duration float64, tmpl Template) (ocs2.ScalarArray, []ocs2.Mode) {
	numCycles := int(math.Floor(duration / tmpl.Period()))

	eventTimes := ocs2.ScalarArray{0.0}
	modeSequence := []ocs2.Mode{defaultMode}

	for c := 0; c < numCycles; c++ {
		shift := eventTimes[len(eventTimes)-1]
		for _, te := range tmpl.EventTimes {
			eventTimes = append(eventTimes, shift+te)
		}
		modeSequence = append(modeSequence, tmpl.ModeSequence...)
	}

	modeSequence = append(modeSequence, defaultMode)
	return eventTimes, modeSequence
}

// Schedule tiles the template over the requested duration and wraps the
// result in a ModeSchedule.
func (t Template) Schedule(defaultMode ocs2.Mode, duration float64) ocs2.ModeSchedule {
	eventTimes, modeSequence := EventTimesAndModeSequence(defaultMode, duration, t)
	return ocs2.ModeSchedule{EventTimes: eventTimes, ModeSequence: modeSequence}
}
