package graphblas

import "gonum.org/v1/gonum/blas/blas64"

// MultiplyPlusTimesFloat64 computes C = A.B for the float64 PLUS-TIMES
// semiring using blas64.Axpy for the dense scatter-add step of the
// Gustavson algorithm, instead of the generic per-element scalar loop of
// gustavsonMultiply. It is one of the engine's two float64 fast paths
// (the other is MultiplyTransposeDotFloat64): Go generics cannot be specialised on a runtime-supplied Semiring
// value, so callers working with float64 and PLUS-TIMES opt into this
// path explicitly rather than relying on Multiply to detect it.
func MultiplyPlusTimesFloat64(a, b *Matrix[float64], mask *Matrix[bool], mcomp bool) (*Matrix[float64], error) {
	acc := make([]float64, a.vlen)
	xDense := make([]float64, a.vlen)
	yVec := blas64.Vector{N: a.vlen, Data: acc, Inc: 1}

	rows := make([]int, 0)
	cols := make([]int, 0)
	vals := make([]float64, 0)

	for kb := 0; kb < b.nvec; kb++ {
		j := b.VectorAt(kb)
		var colTouched []int

		bStart, bEnd := b.VectorBounds(kb)
		for bp := bStart; bp < bEnd; bp++ {
			if b.zombie.len() > 0 && b.zombie.data[bp] {
				continue
			}
			k := int(b.i.data[bp])
			bv := b.x.data[bp]
			ka, ok := a.findVec(k)
			if !ok {
				continue
			}

			var localTouched []int
			aStart, aEnd := a.VectorBounds(ka)
			for ap := aStart; ap < aEnd; ap++ {
				if a.zombie.len() > 0 && a.zombie.data[ap] {
					continue
				}
				row := int(a.i.data[ap])
				xDense[row] = a.x.data[ap]
				localTouched = append(localTouched, row)
			}
			if len(localTouched) == 0 {
				continue
			}
			xVec := blas64.Vector{N: a.vlen, Data: xDense, Inc: 1}
			blas64.Axpy(bv, xVec, yVec)
			colTouched = append(colTouched, localTouched...)
			for _, r := range localTouched {
				xDense[r] = 0
			}
		}

		sortInts(colTouched)
		colTouched = dedupSortedInts(colTouched)
		for _, row := range colTouched {
			if !maskAllows(mask, mcomp, row, j) {
				acc[row] = 0
				continue
			}
			rows = append(rows, row)
			cols = append(cols, j)
			vals = append(vals, acc[row])
			acc[row] = 0
		}
	}

	out, err := Build[float64](a.vlen, b.vdim, true, rows, cols, vals, PlusMonoid[float64]().Op)
	if err != nil {
		return nil, err
	}
	out.Conform()
	return out, nil
}

// dedupSortedInts removes adjacent duplicates from a sorted slice in
// place, needed because the same output row may be scattered into by
// more than one contributing A column within a single output column.
func dedupSortedInts(xs []int) []int {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, v := range xs[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
