package graphblas

import "github.com/graphblas-go/graphblas/internal/spblas"

// MultiplyTransposeDotFloat64 computes C = A'.B for float64 PLUS-TIMES
// using the sparse BLAS level-1 Scatter/Dot primitives of internal/spblas
// instead of the generic merge-based mergeDot: A's column is densified
// once per column via Scatter, then spblas.Dot gathers B's column
// against that dense buffer directly, avoiding the per-pair sorted-merge
// walk mergeDot performs for arbitrary semirings.
func MultiplyTransposeDotFloat64(a, b *Matrix[float64], mask *Matrix[bool], mcomp bool) (*Matrix[float64], error) {
	ca, cb := toCSC(a), toCSC(b)
	if ca.vlen != cb.vlen {
		return nil, newError(CodeDimensionMismatch, "A' and B shared dimension mismatch")
	}

	dense := make([]float64, ca.vlen)
	rows := make([]int, 0)
	cols := make([]int, 0)
	vals := make([]float64, 0)

	for ka := 0; ka < ca.nvec; ka++ {
		i := ca.VectorAt(ka)
		aStart, aEnd := ca.VectorBounds(ka)
		var idx []int
		var vs []float64
		for pos := aStart; pos < aEnd; pos++ {
			if ca.zombie.len() > 0 && ca.zombie.data[pos] {
				continue
			}
			idx = append(idx, int(ca.i.data[pos]))
			vs = append(vs, ca.x.data[pos])
		}
		if len(idx) == 0 {
			continue
		}
		spblas.Scatter(vs, dense, 1, idx)
		aSet := make(map[int]bool, len(idx))
		for _, r := range idx {
			aSet[r] = true
		}

		for kb := 0; kb < cb.nvec; kb++ {
			j := cb.VectorAt(kb)
			if !maskAllows(mask, mcomp, i, j) {
				continue
			}
			bStart, bEnd := cb.VectorBounds(kb)
			var bIdx []int
			var bVals []float64
			overlap := false
			for pos := bStart; pos < bEnd; pos++ {
				if cb.zombie.len() > 0 && cb.zombie.data[pos] {
					continue
				}
				r := int(cb.i.data[pos])
				bIdx = append(bIdx, r)
				bVals = append(bVals, cb.x.data[pos])
				if aSet[r] {
					overlap = true
				}
			}
			if !overlap {
				continue
			}
			dot := spblas.Dot(bVals, bIdx, dense, 1)
			rows = append(rows, i)
			cols = append(cols, j)
			vals = append(vals, dot)
		}

		for _, r := range idx {
			dense[r] = 0
		}
	}

	out, err := Build[float64](ca.vdim, cb.vdim, true, rows, cols, vals, PlusMonoid[float64]().Op)
	if err != nil {
		return nil, err
	}
	out.Conform()
	return out, nil
}
