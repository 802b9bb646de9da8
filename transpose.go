package graphblas

import "sort"

// dimsToVlenVdim converts logical (rows, cols) into the internal
// (vlen, vdim) pair for the given orientation -- the inverse of
// Matrix.Dims.
func dimsToVlenVdim(rows, cols int, isCSC bool) (vlen, vdim int) {
	if isCSC {
		return rows, cols
	}
	return cols, rows
}

// Transpose returns a new matrix equal to the logical transpose of m,
// selecting between the bucket and quicksort algorithms heuristically:
// bucket (counting sort) is used unless m is very sparse or
// hypersparse, in which case quicksort tends to win because it avoids
// allocating a dense vlen-sized count array.
func Transpose[T any](m *Matrix[T]) *Matrix[T] {
	density := float64(m.Nvals()) / float64(maxInt(m.vlen, 1))
	if m.IsHypersparse() || density < 0.05 {
		return transposeQuicksort(m)
	}
	return transposeBucket(m)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// transposeBucket implements an O(vlen + vdim + nnz) counting-sort
// transpose: a row-count pass, a prefix sum for output offsets, then a
// scatter pass. Always produces a non-hypersparse result.
// Internally, transposing swaps the role of "vector" and "within-vector
// index": the new vector domain has size m.vlen and the new
// within-vector domain has size m.vdim, independent of isCSC.
func transposeBucket[T any](m *Matrix[T]) *Matrix[T] {
	out := NewMatrix[T](m.vdim, m.vlen, m.isCSC)

	nnz := m.Nvals()
	counts := make([]int64, m.vlen+1)
	for k := 0; k < m.nvec; k++ {
		start, end := m.VectorBounds(k)
		for pos := start; pos < end; pos++ {
			if m.zombie.len() > 0 && m.zombie.data[pos] {
				continue
			}
			counts[m.i.data[pos]+1]++
		}
	}
	p := make([]int64, m.vlen+1)
	for v := 0; v < m.vlen; v++ {
		p[v+1] = p[v] + counts[v+1]
	}
	cursor := make([]int64, m.vlen)
	copy(cursor, p[:m.vlen])

	i := make([]int32, nnz)
	x := make([]T, nnz)
	for k := 0; k < m.nvec; k++ {
		vec := m.VectorAt(k)
		start, end := m.VectorBounds(k)
		for pos := start; pos < end; pos++ {
			if m.zombie.len() > 0 && m.zombie.data[pos] {
				continue
			}
			within := int64(m.i.data[pos])
			slot := cursor[within]
			cursor[within]++
			i[slot] = int32(vec)
			x[slot] = m.x.data[pos]
		}
	}

	out.p = owned(p)
	out.i = owned(i)
	out.x = owned(x)
	out.nvec = m.vlen
	out.plen = m.vlen
	return out
}

// TransposeView returns the logical transpose of m without copying or
// rearranging any stored data: this storage is orientation-agnostic, so
// flipping isCSC alone reinterprets the same (p, h, i, x) arrays as the
// transposed matrix. The returned matrix borrows m's backing arrays via
// shallowSlice; the first mutation on either side copy-on-writes its own
// array, so m and its view are safe to use independently once built.
// Requires m to have no pending tuples, since a pending tuple's (i, j)
// are logical coordinates that would need transposing themselves, which
// a zero-copy view cannot do.
func TransposeView[T any](m *Matrix[T]) (*Matrix[T], error) {
	if m.HasPending() {
		return nil, newError(CodeInvalidObject, "TransposeView requires no pending tuples; call Wait first")
	}
	out := &Matrix[T]{
		isCSC:      !m.isCSC,
		vlen:       m.vlen,
		vdim:       m.vdim,
		plen:       m.plen,
		nvec:       m.nvec,
		nzombies:   m.nzombies,
		hyperRatio: m.hyperRatio,
		neverHyper: m.neverHyper,
		opdup:      m.opdup,
		magic:      lifecycleValid,
	}
	out.p = borrowed(m.p.data)
	if m.IsHypersparse() {
		out.h = borrowed(m.h.data)
	}
	out.i = borrowed(m.i.data)
	out.x = borrowed(m.x.data)
	if m.zombie.len() > 0 {
		out.zombie = borrowed(m.zombie.data)
	}
	return out, nil
}

// transposeQuicksort implements a sort-then-build transpose: collect
// logical (row, col) pairs with their values, swap row/col, sort and
// Build.
func transposeQuicksort[T any](m *Matrix[T]) *Matrix[T] {
	nnz := m.Nvals()
	newRows := make([]int, 0, nnz)
	newCols := make([]int, 0, nnz)
	vals := make([]T, 0, nnz)
	for k := 0; k < m.nvec; k++ {
		vec := m.VectorAt(k)
		m.VisitVector(vec, func(within int, value T) {
			row, col := m.fromVectorIndex(vec, within)
			newRows = append(newRows, col)
			newCols = append(newCols, row)
			vals = append(vals, value)
		})
	}
	idx := make([]int, len(newRows))
	for k := range idx {
		idx[k] = k
	}
	sort.SliceStable(idx, func(a, b int) bool {
		va, vb := newRows[idx[a]], newRows[idx[b]]
		if va != vb {
			return va < vb
		}
		return newCols[idx[a]] < newCols[idx[b]]
	})
	sortedRows := make([]int, len(idx))
	sortedCols := make([]int, len(idx))
	sortedVals := make([]T, len(idx))
	for pos, orig := range idx {
		sortedRows[pos] = newRows[orig]
		sortedCols[pos] = newCols[orig]
		sortedVals[pos] = vals[orig]
	}

	oldRows, oldCols := m.Dims()
	vlen, vdim := dimsToVlenVdim(oldCols, oldRows, m.isCSC)
	out, err := Build[T](vlen, vdim, m.isCSC, sortedRows, sortedCols, sortedVals, Second[T]())
	if err != nil {
		// Build only errors on malformed input, which cannot occur here
		// since rows/cols are derived from an already-valid matrix.
		panic(err)
	}
	return out
}
