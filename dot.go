package graphblas

// dotMultiply computes the rows/cols/vals triples of C = A'.B via
// merge-based dot products, without materialising A's transpose: A's
// column i already holds exactly the values A'(i,:) needs, so C(i,j) is
// the merge of A's stored column i against B's stored column j. Used
// whenever the caller asked for the transpose-A form of Multiply.
//
// [start, end) restricts the outer iteration domain to one task's
// slice: stored mask vectors when a non-complemented mask restricts the
// candidate space (the mask's structure is typically far sparser than
// the full a.vdim x b.vdim candidate space), or stored A vectors
// otherwise. eq, when non-nil, lets mergeDot stop accumulating a dot
// product early once it reaches the semiring's terminal value; a nil eq
// disables the check. The caller owns assembling the final matrix.
func dotMultiply[Z, X, Y any](a *Matrix[X], b *Matrix[Y], sr Semiring[Z, X, Y], mask *Matrix[bool], mcomp bool, eq func(Z, Z) bool, start, end int) ([]int, []int, []Z, error) {
	rows := make([]int, 0)
	cols := make([]int, 0)
	vals := make([]Z, 0)

	emit := func(i, j int) {
		if !maskAllows(mask, mcomp, i, j) {
			return
		}
		z, ok := mergeDot(a, b, i, j, sr, eq)
		if !ok {
			return
		}
		rows = append(rows, i)
		cols = append(cols, j)
		vals = append(vals, z)
	}

	if mask != nil && !mcomp {
		for k := start; k < end; k++ {
			vec := mask.VectorAt(k)
			mask.VisitVector(vec, func(within int, v bool) {
				if !v {
					return
				}
				row, col := mask.fromVectorIndex(vec, within)
				emit(row, col)
			})
		}
	} else {
		for ka := start; ka < end; ka++ {
			i := a.VectorAt(ka)
			for kb := 0; kb < b.nvec; kb++ {
				j := b.VectorAt(kb)
				emit(i, j)
			}
		}
	}

	return rows, cols, vals, nil
}

// mergeDot computes sum_k mult(A(k,i), B(k,j)) over the shared k domain
// by walking A's column i and B's column j in increasing within-vector
// order simultaneously, skipping positions only one side has (the
// semiring's multiply contributes nothing to a structural zero). ok is
// false when the two columns share no index, meaning the dot product is
// a structural zero and contributes no output entry. When eq is
// non-nil and the monoid declares a terminal value, the merge stops as
// soon as the running value reaches it rather than walking the rest of
// either column.
func mergeDot[Z, X, Y any](a *Matrix[X], b *Matrix[Y], i, j int, sr Semiring[Z, X, Y], eq func(Z, Z) bool) (Z, bool) {
	var zero Z
	ka, okA := a.findVec(i)
	kb, okB := b.findVec(j)
	if !okA || !okB {
		return zero, false
	}
	aStart, aEnd := a.VectorBounds(ka)
	bStart, bEnd := b.VectorBounds(kb)

	var acc Z
	found := false
	ap, bp := aStart, bStart
	for ap < aEnd && bp < bEnd {
		if a.zombie.len() > 0 && a.zombie.data[ap] {
			ap++
			continue
		}
		if b.zombie.len() > 0 && b.zombie.data[bp] {
			bp++
			continue
		}
		ai, bi := a.i.data[ap], b.i.data[bp]
		switch {
		case ai < bi:
			ap++
		case ai > bi:
			bp++
		default:
			z := sr.Mult(a.x.data[ap], b.x.data[bp])
			if !found {
				acc, found = z, true
			} else {
				acc = sr.Add.Op(acc, z)
			}
			ap++
			bp++
			if eq != nil && sr.Add.IsTerminal(acc, eq) {
				return acc, true
			}
		}
	}
	return acc, found
}
