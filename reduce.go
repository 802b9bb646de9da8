package graphblas

// ReduceToScalar folds every live entry of m through monoid, stopping
// early the moment the running value equals the monoid's terminal value
// (when it has one). Returns the monoid's identity if m has no live
// entries.
func ReduceToScalar[T any](m *Matrix[T], monoid Monoid[T], eq func(a, b T) bool) T {
	acc := monoid.Identity
	has := false
outer:
	for k := 0; k < m.nvec; k++ {
		start, end := m.VectorBounds(k)
		for pos := start; pos < end; pos++ {
			if m.zombie.len() > 0 && m.zombie.data[pos] {
				continue
			}
			v := m.x.data[pos]
			if !has {
				acc, has = v, true
			} else {
				acc = monoid.Op(acc, v)
			}
			if monoid.IsTerminal(acc, eq) {
				break outer
			}
		}
	}
	return acc
}

// ReduceToVector folds each row (alongRows=true) or each column
// (alongRows=false) of m independently through monoid into a dense-
// indexed sparse vector, honouring each key's terminal short-circuit
// separately -- a row that reaches the terminal value stops absorbing
// further entries while other rows keep accumulating.
func ReduceToVector[T any](m *Matrix[T], monoid Monoid[T], alongRows bool, eq func(a, b T) bool) (*Matrix[T], error) {
	acc := map[int]T{}
	done := map[int]bool{}

	for k := 0; k < m.nvec; k++ {
		vec := m.VectorAt(k)
		m.VisitVector(vec, func(within int, v T) {
			row, col := m.fromVectorIndex(vec, within)
			key := col
			if alongRows {
				key = row
			}
			if done[key] {
				return
			}
			if cur, ok := acc[key]; ok {
				acc[key] = monoid.Op(cur, v)
			} else {
				acc[key] = v
			}
			if monoid.IsTerminal(acc[key], eq) {
				done[key] = true
			}
		})
	}

	mRows, mCols := m.Dims()
	length := mCols
	if alongRows {
		length = mRows
	}
	rows := make([]int, 0, len(acc))
	cols := make([]int, 0, len(acc))
	vals := make([]T, 0, len(acc))
	for key, v := range acc {
		rows = append(rows, key)
		cols = append(cols, 0)
		vals = append(vals, v)
	}
	return Build[T](length, 1, true, rows, cols, vals, monoid.Op)
}
