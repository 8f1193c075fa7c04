// Package bmath implements arithmetic over a leading batch dimension.
// Batched vectors are the rows of a batch×dim matrix; batched matrices are
// a slice of dim×dim matrices, one per batch entry.
package bmath

import "gonum.org/v1/gonum/mat"

// Dot computes the row-wise dot product of two batch×dim matrices.
func Dot(a, b *mat.Dense) *mat.VecDense {
	n, _ := a.Dims()
	out := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetVec(i, mat.Dot(a.RowView(i), b.RowView(i)))
	}
	return out
}

// MulVec multiplies each matrix in ms by the corresponding row of vs,
// returning the products stacked as rows.
func MulVec(ms []*mat.Dense, vs *mat.Dense) *mat.Dense {
	n, _ := vs.Dims()
	rows, _ := ms[0].Dims()
	out := mat.NewDense(n, rows, nil)
	var tmp mat.VecDense
	for i := 0; i < n; i++ {
		tmp.MulVec(ms[i], vs.RowView(i))
		for j := 0; j < rows; j++ {
			out.Set(i, j, tmp.AtVec(j))
		}
	}
	return out
}

// MulMat multiplies the matrices in as and bs pairwise.
func MulMat(as, bs []*mat.Dense) []*mat.Dense {
	out := make([]*mat.Dense, len(as))
	for i := range as {
		ra, _ := as[i].Dims()
		_, cb := bs[i].Dims()
		out[i] = mat.NewDense(ra, cb, nil)
		out[i].Mul(as[i], bs[i])
	}
	return out
}
