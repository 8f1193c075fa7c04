package ocs2

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// IndexAlpha locates the query time t in the sorted times array, returning
// the index of the interval containing it and the interpolation coefficient
// alpha, such that the interpolated value is
//
//	alpha*values[index] + (1-alpha)*values[index+1]
//
// Queries before the first entry clamp to (0, 1); queries past the last
// entry clamp to (len-2, 0). times must be non-empty.
func IndexAlpha(t float64, times []float64) (int, float64) {
	last := len(times) - 1
	if last < 1 || t <= times[0] {
		return 0, 1.0
	}
	if t >= times[last] {
		return last - 1, 0.0
	}

	// First index with times[i] > t; the enclosing interval starts one
	// before it.
	ind := sort.Search(len(times), func(i int) bool { return times[i] > t }) - 1
	alpha := (times[ind+1] - t) / (times[ind+1] - times[ind])
	return ind, alpha
}

// Interpolate linearly interpolates the scalar trajectory values at time t.
func Interpolate(t float64, times, values []float64) float64 {
	ind, alpha := IndexAlpha(t, times)
	if alpha == 1.0 {
		return values[ind]
	}
	return alpha*values[ind] + (1.0-alpha)*values[ind+1]
}

// InterpolateVec linearly interpolates the vector trajectory values at time
// t, returning a fresh vector.
func InterpolateVec(t float64, times []float64, values VectorArray) *mat.VecDense {
	ind, alpha := IndexAlpha(t, times)
	out := mat.NewVecDense(values[ind].Len(), nil)
	if alpha == 1.0 {
		out.CopyVec(values[ind])
		return out
	}
	out.AddScaledVec(out, alpha, values[ind])
	out.AddScaledVec(out, 1.0-alpha, values[ind+1])
	return out
}

// DesiredState returns the target state interpolated at time t.
func (tt TargetTrajectories) DesiredState(t float64) *mat.VecDense {
	return InterpolateVec(t, tt.Times, tt.States)
}

// DesiredInput returns the target input interpolated at time t.
func (tt TargetTrajectories) DesiredInput(t float64) *mat.VecDense {
	return InterpolateVec(t, tt.Times, tt.Inputs)
}
