package graphblas

// Wait finalises m: pending tuples are assembled (via Build) and unioned
// with m's live entries, zombies are removed by compaction, and the
// result is conformed to the engine's hyper ratio. After Wait,
// m.HasPending() and m.HasZombies() are both false.
//
// Pending tuples and live entries never share an (i,j): SetElement
// enforces this by routing writes to existing live positions into
// in-place updates rather than appending a pending tuple. Because of
// that, the union step's opdup is never actually invoked across the
// live/pending boundary -- it only resolves duplicates that arose
// within the pending buffer itself, per Build's insertion-order
// duplicate-resolution contract.
//
// Wait is a free function, not a method on Engine, because Go methods
// cannot carry their own type parameters: Engine is not generic over the
// element type T, so every per-matrix operation it drives is expressed
// this way (Wait, MaskAccum, EWiseAdd, Multiply, Subassign, ...).
func Wait[T any](e *Engine, m *Matrix[T]) error {
	if !m.HasPending() && !m.HasZombies() {
		m.Conform()
		return nil
	}

	opdup := m.opdup
	if opdup == nil {
		opdup = Second[T]()
	}

	rows := make([]int, 0, m.i.len()+len(m.pending))
	cols := make([]int, 0, m.i.len()+len(m.pending))
	vals := make([]T, 0, m.i.len()+len(m.pending))

	for k := 0; k < m.nvec; k++ {
		vec := m.VectorAt(k)
		m.VisitVector(vec, func(within int, value T) {
			row, col := m.fromVectorIndex(vec, within)
			rows = append(rows, row)
			cols = append(cols, col)
			vals = append(vals, value)
		})
	}
	for _, pt := range m.pending {
		rows = append(rows, pt.i)
		cols = append(cols, pt.j)
		vals = append(vals, pt.value)
	}

	rebuilt, err := Build[T](m.vlen, m.vdim, m.isCSC, rows, cols, vals, opdup)
	if err != nil {
		return err
	}
	rebuilt.hyperRatio = m.hyperRatio
	rebuilt.neverHyper = m.neverHyper
	rebuilt.opdup = opdup
	*m = *rebuilt
	m.Conform()
	return nil
}

// Flush registers m's deferred work (pending tuples, zombies) to be
// assembled the next time e.WaitAll is called, without blocking now.
func Flush[T any](e *Engine, m *Matrix[T]) {
	e.enqueue(func() error { return Wait(e, m) })
}
