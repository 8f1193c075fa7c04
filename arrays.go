package ocs2

import "gonum.org/v1/gonum/mat"

// ScalarArray is an ordered sequence of scalars, typically timestamps.
type ScalarArray []float64

// SizeArray is an ordered sequence of non-negative integers, typically mode
// identifiers or dimension counts.
type SizeArray []uint64

// VectorArray is an ordered sequence of vectors, typically a state or input
// trajectory.
type VectorArray []*mat.VecDense

// NewScalarArray copies data into a fresh ScalarArray.
func NewScalarArray(data []float64) ScalarArray {
	out := make(ScalarArray, len(data))
	copy(out, data)
	return out
}

// NewSizeArray copies data into a fresh SizeArray.
func NewSizeArray(data []uint64) SizeArray {
	out := make(SizeArray, len(data))
	copy(out, data)
	return out
}

// NewVectorArray copies each row of data into a fresh VectorArray.
func NewVectorArray(data [][]float64) VectorArray {
	out := make(VectorArray, len(data))
	for i, row := range data {
		out[i] = vecCopy(row)
	}
	return out
}
