package graphblas

import "sort"

// buildEntry is one (vec, within, value) triple carrying its original
// insertion position, used to give Build a well-defined, explicit order
// for duplicate resolution (see DESIGN.md).
type buildEntry[T any] struct {
	vec, within int
	value       T
	seq         int
}

// Build constructs a matrix from parallel row/col/value arrays.
// Construction proceeds: copy input, stable-sort lexicographically by
// (vector, within-vector index) — ties broken by original position — then
// count vectors and duplicates, construct p (and h if hypersparse), and
// assemble values, combining duplicate (i,j) entries with opdup.
//
// Build's order is an explicit contract, not an incidental one: opdup is
// applied left-to-right over entries in their original insertion order
// (rows[k], cols[k], vals[k] for increasing k) for each group of
// duplicate coordinates. This is what lets opdup == Second implement
// last-write-wins (relied on by Wait).
//
// opdup must be associative when more than two duplicates may collide;
// Second (and First) trivially satisfy this.
func Build[T any](vlen, vdim int, isCSC bool, rows, cols []int, vals []T, opdup BinaryOp[T, T, T]) (*Matrix[T], error) {
	if len(rows) != len(cols) || len(rows) != len(vals) {
		return nil, newError(CodeInvalidValue, "rows, cols, vals must have equal length")
	}
	m := NewMatrix[T](vlen, vdim, isCSC)
	if opdup == nil {
		opdup = Second[T]()
	}
	entries := make([]buildEntry[T], len(rows))
	for k := range rows {
		row, col := rows[k], cols[k]
		rs, cs := m.Dims()
		if row < 0 || row >= rs || col < 0 || col >= cs {
			return nil, newError(CodeIndexOutOfBounds, "(%d,%d) out of [0,%d)x[0,%d)", row, col, rs, cs)
		}
		vec, within := m.vectorIndex(row, col)
		entries[k] = buildEntry[T]{vec: vec, within: within, value: vals[k], seq: k}
	}
	sort.SliceStable(entries, func(a, b int) bool {
		if entries[a].vec != entries[b].vec {
			return entries[a].vec < entries[b].vec
		}
		if entries[a].within != entries[b].within {
			return entries[a].within < entries[b].within
		}
		return entries[a].seq < entries[b].seq
	})

	// Merge duplicates in (vec, within) in insertion order.
	merged := entries[:0:0]
	for idx := 0; idx < len(entries); {
		e := entries[idx]
		j := idx + 1
		val := e.value
		for j < len(entries) && entries[j].vec == e.vec && entries[j].within == e.within {
			val = opdup(val, entries[j].value)
			j++
		}
		e.value = val
		merged = append(merged, e)
		idx = j
	}
	entries = merged

	// Count entries per vector to build p (and discover which vectors are
	// non-empty, to decide whether hypersparse form is warranted).
	counts := make([]int64, vdim+1)
	for _, e := range entries {
		counts[e.vec+1]++
	}
	nonEmpty := 0
	for v := 0; v < vdim; v++ {
		if counts[v+1] > 0 {
			nonEmpty++
		}
	}

	useHyper := !m.neverHyper && vdim > 0 && float64(nonEmpty)/float64(vdim) <= m.hyperRatio

	i := make([]int32, len(entries))
	x := make([]T, len(entries))

	if useHyper {
		h := make([]int64, 0, nonEmpty)
		p := make([]int64, 0, nonEmpty+1)
		p = append(p, 0)
		pos := 0
		idx := 0
		for idx < len(entries) {
			vec := entries[idx].vec
			start := pos
			for idx < len(entries) && entries[idx].vec == vec {
				i[pos] = int32(entries[idx].within)
				x[pos] = entries[idx].value
				pos++
				idx++
			}
			_ = start
			h = append(h, int64(vec))
			p = append(p, int64(pos))
		}
		m.h = owned(h)
		m.p = owned(p)
		m.nvec = len(h)
		m.plen = len(h)
	} else {
		p := make([]int64, vdim+1)
		for v := 0; v < vdim; v++ {
			p[v+1] = p[v] + counts[v+1]
		}
		pos := make([]int64, vdim)
		copy(pos, p[:vdim])
		for _, e := range entries {
			slot := pos[e.vec]
			i[slot] = int32(e.within)
			x[slot] = e.value
			pos[e.vec]++
		}
		m.p = owned(p)
		m.h = shallowSlice[int64]{}
		m.nvec = vdim
		m.plen = vdim
	}

	m.i = owned(i)
	m.x = owned(x)
	m.opdup = opdup
	return m, nil
}
