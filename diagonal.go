package graphblas

// isDiagonal reports whether m is square and every stored (non-zombie)
// entry lies on the main diagonal, the condition under which MxM can
// shortcut to a scale instead of a full gather/scatter product.
func isDiagonal[T any](m *Matrix[T]) bool {
	rows, cols := m.Dims()
	if rows != cols {
		return false
	}
	for k := 0; k < m.nvec; k++ {
		vec := m.VectorAt(k)
		bad := false
		m.VisitVector(vec, func(within int, _ T) {
			row, col := m.fromVectorIndex(vec, within)
			if row != col {
				bad = true
			}
		})
		if bad {
			return false
		}
	}
	return true
}

// diagonalValues extracts m's diagonal as a dense map keyed by index,
// for use by scaleRows/scaleCols below.
func diagonalValues[T any](m *Matrix[T]) map[int]T {
	out := map[int]T{}
	for k := 0; k < m.nvec; k++ {
		vec := m.VectorAt(k)
		m.VisitVector(vec, func(within int, v T) {
			row, _ := m.fromVectorIndex(vec, within)
			out[row] = v
		})
	}
	return out
}

// scaleRows computes C = diag(a).B for a diagonal, i.e. C(i,j) =
// mult(a(i,i), b(i,j)): each row of B scaled by the matching diagonal
// entry of A. Rows of B with no matching diagonal entry of A contribute
// no output (a structural zero multiplies to a structural zero).
func scaleRows[Z, X, Y any](a *Matrix[X], b *Matrix[Y], sr Semiring[Z, X, Y], mask *Matrix[bool], mcomp bool) (*Matrix[Z], error) {
	diag := diagonalValues(a)
	rows := make([]int, 0)
	cols := make([]int, 0)
	vals := make([]Z, 0)
	for k := 0; k < b.nvec; k++ {
		vec := b.VectorAt(k)
		b.VisitVector(vec, func(within int, bv Y) {
			row, col := b.fromVectorIndex(vec, within)
			av, ok := diag[row]
			if !ok {
				return
			}
			if !maskAllows(mask, mcomp, row, col) {
				return
			}
			rows = append(rows, row)
			cols = append(cols, col)
			vals = append(vals, sr.Mult(av, bv))
		})
	}
	out, err := Build[Z](b.vlen, b.vdim, b.isCSC, rows, cols, vals, sr.Add.Op)
	if err != nil {
		return nil, err
	}
	out.Conform()
	return out, nil
}

// scaleCols computes C = A.diag(b), i.e. C(i,j) = mult(a(i,j), b(j,j)):
// each column of A scaled by the matching diagonal entry of B.
func scaleCols[Z, X, Y any](a *Matrix[X], b *Matrix[Y], sr Semiring[Z, X, Y], mask *Matrix[bool], mcomp bool) (*Matrix[Z], error) {
	diag := diagonalValues(b)
	rows := make([]int, 0)
	cols := make([]int, 0)
	vals := make([]Z, 0)
	for k := 0; k < a.nvec; k++ {
		vec := a.VectorAt(k)
		a.VisitVector(vec, func(within int, av X) {
			row, col := a.fromVectorIndex(vec, within)
			bv, ok := diag[col]
			if !ok {
				return
			}
			if !maskAllows(mask, mcomp, row, col) {
				return
			}
			rows = append(rows, row)
			cols = append(cols, col)
			vals = append(vals, sr.Mult(av, bv))
		})
	}
	out, err := Build[Z](a.vlen, a.vdim, a.isCSC, rows, cols, vals, sr.Add.Op)
	if err != nil {
		return nil, err
	}
	out.Conform()
	return out, nil
}

// maskAllows reports whether (row, col) is selected by mask under mcomp,
// with a nil mask always allowing.
func maskAllows(mask *Matrix[bool], mcomp bool, row, col int) bool {
	if mask == nil {
		return true
	}
	v, err := mask.GetElement(row, col)
	present := err == nil && v
	return present != mcomp
}
