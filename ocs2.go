// Package ocs2 provides the value types exchanged with an MPC solver:
// system observations, target trajectories, and mode schedules. Everything
// here is plain data with copy-construction semantics; nothing holds onto
// the slices passed in.
package ocs2

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Mode identifies which discrete dynamics/contact configuration is active
// over a time interval.
type Mode uint64

// SystemObservation is a snapshot of the system at a single point in time.
type SystemObservation struct {
	Mode  Mode
	Time  float64
	State *mat.VecDense
	Input *mat.VecDense
}

// NewSystemObservation copies the given state and input into a fresh
// observation.
func NewSystemObservation(mode Mode, time float64, state, input []float64) SystemObservation {
	return SystemObservation{
		Mode:  mode,
		Time:  time,
		State: vecCopy(state),
		Input: vecCopy(input),
	}
}

// NewSystemObservationArray returns a zeroed observation slice of the given
// length, for callers filling entries one by one.
func NewSystemObservationArray(length int) []SystemObservation {
	return make([]SystemObservation, length)
}

// TargetTrajectories holds the desired time/state/input triplets that a
// tracking controller steers towards. The three slices are parallel.
type TargetTrajectories struct {
	Times  ScalarArray
	States VectorArray
	Inputs VectorArray
}

// NewTargetTrajectories copies the given parallel trajectories.
func NewTargetTrajectories(times []float64, states, inputs [][]float64) TargetTrajectories {
	return TargetTrajectories{
		Times:  NewScalarArray(times),
		States: NewVectorArray(states),
		Inputs: NewVectorArray(inputs),
	}
}

// NewTargetTrajectoriesArray returns a zeroed trajectory slice of the given
// length.
func NewTargetTrajectoriesArray(length int) []TargetTrajectories {
	return make([]TargetTrajectories, length)
}

// ModeSchedule pairs switching times with the mode active between them.
// ModeSequence always has exactly one more entry than EventTimes:
// ModeSequence[i] is active from EventTimes[i-1] to EventTimes[i], the first
// mode is active before the first event, and the last one extends
// indefinitely past the last event.
type ModeSchedule struct {
	EventTimes   ScalarArray
	ModeSequence []Mode
}

// NewModeSchedule copies the given event times and mode sequence.
func NewModeSchedule(eventTimes []float64, modeSequence []Mode) ModeSchedule {
	ms := ModeSchedule{
		EventTimes:   NewScalarArray(eventTimes),
		ModeSequence: make([]Mode, len(modeSequence)),
	}
	copy(ms.ModeSequence, modeSequence)
	return ms
}

// NewModeScheduleArray returns a zeroed schedule slice of the given length.
func NewModeScheduleArray(length int) []ModeSchedule {
	return make([]ModeSchedule, length)
}

// ModeAtTime returns the mode active at time t. Event times are switching
// instants, so a query exactly at an event time returns the mode entered at
// that instant.
func (ms ModeSchedule) ModeAtTime(t float64) Mode {
	ind := sort.Search(len(ms.EventTimes), func(i int) bool {
		return ms.EventTimes[i] > t
	})
	return ms.ModeSequence[ind]
}

func (ms ModeSchedule) String() string {
	return fmt.Sprintf("&ModeSchedule{events=%v modes=%v}", []float64(ms.EventTimes), ms.ModeSequence)
}

func vecCopy(data []float64) *mat.VecDense {
	if len(data) == 0 {
		return nil
	}
	return mat.NewVecDense(len(data), append([]float64(nil), data...))
}
