package graphblas

// gustavsonMultiply computes the rows/cols/vals triples of C = A.B
// restricted to b's stored vectors [start, end), using a dense
// per-column workspace (a sauna, acquired at slot) to gather A's
// contributions to one output column at a time: for each nonzero
// B(k,j), scale A(:,k) by B(k,j) and scatter-add into the workspace;
// then harvest the touched rows in sorted order. Suited to output
// columns dense enough that a dense accumulator beats a heap merge.
// Each concurrently-running task passes a distinct slot so it gets its
// own Sauna workspace; the caller owns assembling the final matrix.
func gustavsonMultiply[Z, X, Y any](sp *saunaPool, slot int, a *Matrix[X], b *Matrix[Y], sr Semiring[Z, X, Y], mask *Matrix[bool], mcomp bool, start, end int) ([]int, []int, []Z, error) {
	s, release := acquireSauna[Z](sp, slot, a.vlen)
	defer release()

	rows := make([]int, 0)
	cols := make([]int, 0)
	vals := make([]Z, 0)

	for kb := start; kb < end; kb++ {
		j := b.VectorAt(kb)
		s.begin()

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
			aStart, aEnd := a.VectorBounds(ka)
			for ap := aStart; ap < aEnd; ap++ {
				if a.zombie.len() > 0 && a.zombie.data[ap] {
					continue
				}
				row := int(a.i.data[ap])
				z := sr.Mult(a.x.data[ap], bv)
				if s.isLive(row) {
					s.touch(row, sr.Add.Op(s.values[row], z))
				} else {
					s.touch(row, z)
				}
			}
		}

		touched := append([]int(nil), s.touched...)
		sortInts(touched)
		for _, row := range touched {
			if !maskAllows(mask, mcomp, row, j) {
				continue
			}
			rows = append(rows, row)
			cols = append(cols, j)
			vals = append(vals, s.values[row])
		}
	}

	return rows, cols, vals, nil
}

// sortInts is a small insertion sort for the per-column touched-row
// list, which is typically short relative to a.vlen.
func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
