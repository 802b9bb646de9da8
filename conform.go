package graphblas

// Dup produces a fully deep copy of m: no shallow flags set, with pending
// tuples and zombies replicated.
func (m *Matrix[T]) Dup() *Matrix[T] {
	out := &Matrix[T]{
		isCSC:      m.isCSC,
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
	out.p = owned(append([]int64(nil), m.p.data...))
	if m.IsHypersparse() {
		out.h = owned(append([]int64(nil), m.h.data...))
	}
	out.i = owned(append([]int32(nil), m.i.data...))
	out.x = owned(append([]T(nil), m.x.data...))
	if m.zombie.len() > 0 {
		out.zombie = owned(append([]bool(nil), m.zombie.data...))
	}
	if len(m.pending) > 0 {
		out.pending = append([]pendingTuple[T](nil), m.pending...)
	}
	return out
}

// Clear empties m in place, preserving its logical dimensions and
// orientation, discarding all stored entries, zombies and pending tuples.
func (m *Matrix[T]) Clear() {
	nvec := m.vdim
	m.p = owned(make([]int64, nvec+1))
	m.h = shallowSlice[int64]{}
	m.i = shallowSlice[int32]{}
	m.x = shallowSlice[T]{}
	m.zombie = shallowSlice[bool]{}
	m.pending = nil
	m.nzombies = 0
	m.nvec = nvec
	m.plen = nvec
}

// Resize changes m's logical dimensions in place. Vectors beyond the new
// vdim are dropped; entries beyond the new vlen within a retained vector
// are dropped. Zombies and pending tuples for retained content must be
// reconciled rather than silently discarded -- achieved here by
// operating through Wait-then-rebuild so bookkeeping stays consistent.
//
// Resize is a free function (not a method) for the same reason as Wait:
// Engine is not generic, so operations needing both an Engine and a
// generic Matrix[T] are expressed as free functions.
func Resize[T any](e *Engine, m *Matrix[T], newRows, newCols int) error {
	if err := Wait(e, m); err != nil {
		return err
	}
	newVlen, newVdim := dimsToVlenVdim(newRows, newCols, m.isCSC)

	rows := make([]int, 0, m.i.len())
	cols := make([]int, 0, m.i.len())
	vals := make([]T, 0, m.i.len())
	for k := 0; k < m.nvec; k++ {
		vec := m.VectorAt(k)
		if vec >= newVdim {
			continue
		}
		m.VisitVector(vec, func(within int, value T) {
			if within >= newVlen {
				return
			}
			row, col := m.fromVectorIndex(vec, within)
			rows = append(rows, row)
			cols = append(cols, col)
			vals = append(vals, value)
		})
	}
	rebuilt, err := Build[T](newVlen, newVdim, m.isCSC, rows, cols, vals, Second[T]())
	if err != nil {
		return err
	}
	rebuilt.hyperRatio = m.hyperRatio
	rebuilt.neverHyper = m.neverHyper
	*m = *rebuilt
	return nil
}

// hyperRealloc grows m's hyperlist (h) and vector-offset (p) arrays to
// at least newPlen slots of capacity, preserving their live content. It
// is a no-op for a matrix that never goes hypersparse. Capacity beyond
// nvec is safe headroom: every consumer in this package bounds its scan
// by nvec, never by len(h)/len(p) directly.
func (m *Matrix[T]) hyperRealloc(newPlen int) {
	if m.neverHyper || newPlen <= m.plen {
		return
	}
	newP := make([]int64, newPlen+1)
	copy(newP, m.p.data)
	m.p = owned(newP)
	newH := make([]int64, newPlen)
	copy(newH, m.h.data)
	m.h = owned(newH)
	m.plen = newPlen
}

// ToHyper converts m to hypersparse form in place if it is not already,
// without changing logical content. Growth is incremental: h/p capacity
// doubles via hyperRealloc as non-empty vectors are discovered, rather
// than precomputing the exact final size with a throwaway counting
// pass.
func (m *Matrix[T]) ToHyper() {
	if m.neverHyper || m.IsHypersparse() {
		return
	}
	oldP := m.p.data
	m.h = shallowSlice[int64]{}
	m.p = owned(make([]int64, 1))
	m.plen = 0
	count := 0
	for v := 0; v < m.nvec; v++ {
		start, end := oldP[v], oldP[v+1]
		if end == start {
			continue
		}
		if count >= m.plen {
			newPlen := m.plen * 2
			if newPlen == 0 {
				newPlen = 8
			}
			m.hyperRealloc(newPlen)
		}
		m.h.data[count] = int64(v)
		m.p.data[count+1] = end
		count++
	}
	m.h.data = m.h.data[:count]
	m.p.data = m.p.data[:count+1]
	m.nvec = count
	m.plen = count
}

// ToStandard converts m to standard (non-hypersparse) form in place,
// without changing logical content.
func (m *Matrix[T]) ToStandard() {
	if !m.IsHypersparse() {
		return
	}
	p := make([]int64, m.vdim+1)
	hi := 0
	for v := 0; v < m.vdim; v++ {
		if hi < m.nvec && m.h.data[hi] == int64(v) {
			p[v+1] = p[v] + (m.p.data[hi+1] - m.p.data[hi])
			hi++
		} else {
			p[v+1] = p[v]
		}
	}
	m.p = owned(p)
	m.h = shallowSlice[int64]{}
	m.nvec = m.vdim
	m.plen = m.vdim
}

// Conform applies the hyper ratio, converting between hypersparse and
// standard form as needed, without changing logical content. The ratio
// is the number of non-empty vectors over vdim. A
// hysteresis band avoids flapping near the threshold: conversion to
// hypersparse requires the ratio to drop below half the threshold, and
// conversion to standard requires it to rise above 1.5x the threshold.
func (m *Matrix[T]) Conform() {
	if m.neverHyper || m.vdim == 0 {
		return
	}
	nonEmpty := m.nvec
	if !m.IsHypersparse() {
		nonEmpty = 0
		for k := 0; k < m.nvec; k++ {
			if m.p.data[k+1] > m.p.data[k] {
				nonEmpty++
			}
		}
	}
	ratio := float64(nonEmpty) / float64(m.vdim)
	switch {
	case !m.IsHypersparse() && ratio <= m.hyperRatio*0.5:
		m.ToHyper()
	case m.IsHypersparse() && ratio >= m.hyperRatio*1.5:
		m.ToStandard()
	}
}

// Transplant moves the content of src into the receiver, honouring
// typecasting of the element type. Since Go generics cannot convert
// between arbitrary T and U safely without a user-supplied cast, this
// generic form only supports same-type transplant; typecasting
// transplant across differing element types is provided by
// TransplantCast. If src has any shallow component, the affected
// arrays are deep-copied; otherwise ownership moves and src becomes
// empty.
func (m *Matrix[T]) Transplant(src *Matrix[T]) {
	if src.p.shallow || src.i.shallow || src.x.shallow || (src.IsHypersparse() && src.h.shallow) {
		*m = *src.Dup()
		src.Clear()
		return
	}
	*m = *src
	src.p = shallowSlice[int64]{}
	src.h = shallowSlice[int64]{}
	src.i = shallowSlice[int32]{}
	src.x = shallowSlice[T]{}
	src.zombie = shallowSlice[bool]{}
	src.pending = nil
	src.nzombies = 0
	src.nvec = src.vdim
	src.plen = src.vdim
	src.p = owned(make([]int64, src.vdim+1))
}

// TransplantCast moves the content of src into the receiver, casting
// each value from U to T via cast. The source is always left empty
// (deep copy is unavoidable across differing element types).
func TransplantCast[T, U any](dst *Matrix[T], src *Matrix[U], cast func(U) T) {
	out := &Matrix[T]{
		isCSC:      src.isCSC,
		vlen:       src.vlen,
		vdim:       src.vdim,
		plen:       src.plen,
		nvec:       src.nvec,
		nzombies:   src.nzombies,
		hyperRatio: src.hyperRatio,
		neverHyper: src.neverHyper,
		magic:      lifecycleValid,
	}
	out.p = owned(append([]int64(nil), src.p.data...))
	if src.IsHypersparse() {
		out.h = owned(append([]int64(nil), src.h.data...))
	}
	out.i = owned(append([]int32(nil), src.i.data...))
	if src.zombie.len() > 0 {
		out.zombie = owned(append([]bool(nil), src.zombie.data...))
	}
	x := make([]T, src.x.len())
	for k, v := range src.x.data {
		x[k] = cast(v)
	}
	out.x = owned(x)
	for _, pt := range src.pending {
		out.pending = append(out.pending, pendingTuple[T]{i: pt.i, j: pt.j, value: cast(pt.value)})
	}
	*dst = *out
	src.Clear()
}
