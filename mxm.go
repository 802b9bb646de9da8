package graphblas

// Multiply computes C = semiring(A, B), honouring the four transpose
// combinations (A.B, A'.B, A.B', A'.B') and an optional mask. The
// transpose-A-only form is handled without materialising a transpose,
// since a merge-based dot product can read A's stored columns directly;
// the other two transposing forms materialise the needed transpose(s)
// first and then fall back to the non-transposing dispatch.
//
// Apart from the diagonal-operand shortcut (scaleRows/scaleCols, which
// run in one pass), every form slices its outer loop (B's stored vectors,
// or for A'.B the mask's or A's stored vectors) into e.numWorkers()
// weighted groups via columnGroups and runs them concurrently through
// multiplyParallel, one algorithm task per group; the group index also
// serves as a Gustavson Sauna pool slot, so concurrently-running groups
// never contend over the same workspace.
//
// eq lets the dot-product form (A'.B) short-circuit a merge as soon as
// it reaches the semiring's terminal value; pass nil to disable the
// check (the other three forms ignore eq).
func Multiply[Z, X, Y any](e *Engine, a *Matrix[X], b *Matrix[Y], sr Semiring[Z, X, Y], mask *Matrix[bool], mcomp bool, transposeA, transposeB bool, eq func(Z, Z) bool) (*Matrix[Z], error) {
	if transposeA && !transposeB {
		ca, cb := toCSC(a), toCSC(b)
		if ca.vlen != cb.vlen {
			return nil, newError(CodeDimensionMismatch, "A' and B shared dimension mismatch")
		}

		n := ca.nvec
		weight := func(k int) int64 {
			start, end := ca.VectorBounds(k)
			return end - start
		}
		if mask != nil && !mcomp {
			n = mask.nvec
			weight = func(k int) int64 {
				start, end := mask.VectorBounds(k)
				return end - start
			}
		}
		rows, cols, vals, err := multiplyParallel(e, n, weight, func(slot, start, end int) ([]int, []int, []Z, error) {
			return dotMultiply(ca, cb, sr, mask, mcomp, eq, start, end)
		})
		if err != nil {
			return nil, err
		}
		out, err := Build[Z](ca.vdim, cb.vdim, true, rows, cols, vals, sr.Add.Op)
		if err != nil {
			return nil, err
		}
		out.Conform()
		return out, nil
	}

	a2, b2 := a, b
	if transposeA {
		a2 = Transpose(a)
	}
	if transposeB {
		b2 = Transpose(b)
	}
	a2, b2 = toCSC(a2), toCSC(b2)
	if a2.vdim != b2.vlen {
		return nil, newError(CodeDimensionMismatch, "A and B shared dimension mismatch")
	}
	if mask != nil {
		maskRows, maskCols := mask.Dims()
		outRows, outCols := a2.vlen, b2.vdim
		if maskRows != outRows || maskCols != outCols {
			return nil, newError(CodeDimensionMismatch, "mask shape mismatch")
		}
	}

	if isDiagonal(a2) {
		return scaleRows(a2, b2, sr, mask, mcomp)
	}
	if isDiagonal(b2) {
		return scaleCols(a2, b2, sr, mask, mcomp)
	}

	weights := columnFlopWeights(a2, b2)
	weight := func(k int) int64 { return weights[k] }
	flops := flopEstimate(a2, b2)
	avgFlopsPerCol := flops
	if b2.vdim > 0 {
		avgFlopsPerCol = flops / int64(b2.vdim)
	}

	var rows, cols []int
	var vals []Z
	var err error
	if avgFlopsPerCol > 0 && avgFlopsPerCol <= int64(maxInt(a2.vlen/8, 4)) {
		rows, cols, vals, err = multiplyParallel(e, b2.nvec, weight, func(slot, start, end int) ([]int, []int, []Z, error) {
			return heapMultiply(a2, b2, sr, mask, mcomp, start, end)
		})
	} else {
		rows, cols, vals, err = multiplyParallel(e, b2.nvec, weight, func(slot, start, end int) ([]int, []int, []Z, error) {
			return gustavsonMultiply(e.saunas, slot, a2, b2, sr, mask, mcomp, start, end)
		})
	}
	if err != nil {
		return nil, err
	}
	out, err := Build[Z](a2.vlen, b2.vdim, true, rows, cols, vals, sr.Add.Op)
	if err != nil {
		return nil, err
	}
	out.Conform()
	return out, nil
}

// toCSC returns m re-encoded in CSC form (vec == column) if it is not
// already, without changing its logical content. The dot/heap/Gustavson
// algorithms all walk "vectors" assuming a vector is a column, so any
// CSR-oriented operand is re-encoded once up front rather than taught to
// handle both orientations.
func toCSC[T any](m *Matrix[T]) *Matrix[T] {
	if m.isCSC {
		return m
	}
	rows := make([]int, 0, m.i.len())
	cols := make([]int, 0, m.i.len())
	vals := make([]T, 0, m.i.len())
	for k := 0; k < m.nvec; k++ {
		vec := m.VectorAt(k)
		m.VisitVector(vec, func(within int, v T) {
			row, col := m.fromVectorIndex(vec, within)
			rows = append(rows, row)
			cols = append(cols, col)
			vals = append(vals, v)
		})
	}
	r, c := m.Dims()
	out, err := Build[T](r, c, true, rows, cols, vals, Second[T]())
	if err != nil {
		panic(err)
	}
	return out
}
