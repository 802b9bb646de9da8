package graphblas

import "sort"

// lifecycle tags the validity of a Matrix value.
type lifecycle int

const (
	lifecycleValid lifecycle = iota
	lifecyclePartial
	lifecycleFreed
)

// pendingTuple is one buffered (i, j, value) triple awaiting assembly by
// Wait.
type pendingTuple[T any] struct {
	i, j  int
	value T
}

// Matrix is the sole storage entity of the engine. Its logical shape is
// (vlen, vdim); its physical layout is a sequence of compressed vectors,
// optionally hypersparse, carrying zombies and pending tuples. All
// internal algorithms are orientation-agnostic: isCSC only determines
// how (row, col) maps onto (vlen-index, vdim-index).
type Matrix[T any] struct {
	isCSC bool

	vlen, vdim int // logical dimensions in vector orientation
	plen, nvec int // capacity and count of stored vectors

	p shallowSlice[int64] // p[0..nvec], offsets into i/x/zombie
	h shallowSlice[int64] // present (len>0) iff hypersparse; h[k] = global vector index of stored vector k

	i      shallowSlice[int32] // row-within-vector index per entry
	x      shallowSlice[T]     // value per entry
	zombie shallowSlice[bool]  // explicit zombie tag per entry (avoids sign-overloaded indices)

	pending []pendingTuple[T]
	opdup   BinaryOp[T, T, T] // merge operator used by Wait to resolve duplicate pending tuples

	nzombies int

	hyperRatio float64 // theta: nvec/vdim <= theta keeps the matrix hypersparse
	neverHyper bool    // true for Vector (vdim == 1 never goes hypersparse)

	magic lifecycle
}

const defaultHyperRatio = 1.0 / 16.0

// NewMatrix creates an empty, valid, standard-form matrix of the given
// logical dimensions and orientation.
func NewMatrix[T any](vlen, vdim int, isCSC bool) *Matrix[T] {
	if vlen < 0 || vdim < 0 {
		panic(ErrIndexOutOfBounds)
	}
	nvec := vdim
	p := make([]int64, nvec+1)
	return &Matrix[T]{
		isCSC:      isCSC,
		vlen:       vlen,
		vdim:       vdim,
		plen:       nvec,
		nvec:       nvec,
		p:          owned(p),
		hyperRatio: defaultHyperRatio,
		magic:      lifecycleValid,
	}
}

// NewVector creates an empty sparse vector of the given length. A vector
// is a Matrix with vdim == 1 that never converts to hypersparse form.
func NewVector[T any](length int) *Matrix[T] {
	m := NewMatrix[T](length, 1, true)
	m.neverHyper = true
	return m
}

// IsVector reports whether m has the shape of a vector (vdim == 1).
func (m *Matrix[T]) IsVector() bool { return m.vdim == 1 }

// IsHypersparse reports whether m currently stores h (the hyperlist).
func (m *Matrix[T]) IsHypersparse() bool { return m.h.len() > 0 }

// IsCSC reports the matrix's orientation.
func (m *Matrix[T]) IsCSC() bool { return m.isCSC }

// Dims returns the logical (rows, cols) of the matrix, translating from
// the internal (vlen, vdim) vector-orientation representation.
func (m *Matrix[T]) Dims() (rows, cols int) {
	if m.isCSC {
		return m.vlen, m.vdim
	}
	return m.vdim, m.vlen
}

// Nvals returns the number of live (non-zombie) stored entries, including
// any not-yet-assembled pending tuples conservatively counted as
// distinct (an upper bound until Wait is called).
func (m *Matrix[T]) Nvals() int {
	return (m.i.len() - m.nzombies) + len(m.pending)
}

// NNZ returns the number of physically stored entries (including
// zombies, excluding pending tuples).
func (m *Matrix[T]) NNZ() int { return m.i.len() }

// HasPending reports whether the matrix carries unassembled pending
// tuples.
func (m *Matrix[T]) HasPending() bool { return len(m.pending) > 0 }

// HasZombies reports whether the matrix carries any zombie entries.
func (m *Matrix[T]) HasZombies() bool { return m.nzombies > 0 }

// vectorIndex translates a logical (row, col) pair into (vectorIdx,
// within-vector index) according to orientation.
func (m *Matrix[T]) vectorIndex(row, col int) (vec, within int) {
	if m.isCSC {
		return col, row
	}
	return row, col
}

// fromVectorIndex is the inverse of vectorIndex.
func (m *Matrix[T]) fromVectorIndex(vec, within int) (row, col int) {
	if m.isCSC {
		return within, vec
	}
	return vec, within
}

// findVec returns the storage slot k such that h[k] == vec (or k == vec
// directly when standard form), and ok=false when vec is not currently
// stored (relevant only in hypersparse form).
func (m *Matrix[T]) findVec(vec int) (k int, ok bool) {
	if !m.IsHypersparse() {
		if vec < 0 || vec >= m.nvec {
			return 0, false
		}
		return vec, true
	}
	h := m.h.data[:m.nvec]
	idx := sort.Search(len(h), func(i int) bool { return h[i] >= int64(vec) })
	if idx < len(h) && h[idx] == int64(vec) {
		return idx, true
	}
	return 0, false
}

// GetElement returns the value stored at (row, col), or ErrNoValue if no
// live entry is present. It does not consider unassembled pending
// tuples except via the disjointness invariant: a live position with a
// pending write in flight cannot occur.
func (m *Matrix[T]) GetElement(row, col int) (T, error) {
	var zero T
	if err := m.checkBounds(row, col); err != nil {
		return zero, err
	}
	vec, within := m.vectorIndex(row, col)
	k, ok := m.findVec(vec)
	if !ok {
		return zero, ErrNoValue
	}
	start, end := m.p.data[k], m.p.data[k+1]
	for pos := start; pos < end; pos++ {
		if m.zombie.len() > 0 && m.zombie.data[pos] {
			continue
		}
		if int64(m.i.data[pos]) == int64(within) {
			return m.x.data[pos], nil
		}
	}
	return zero, ErrNoValue
}

func (m *Matrix[T]) checkBounds(row, col int) error {
	rows, cols := m.Dims()
	if row < 0 || row >= rows {
		return newError(CodeIndexOutOfBounds, "row %d out of [0,%d)", row, rows)
	}
	if col < 0 || col >= cols {
		return newError(CodeIndexOutOfBounds, "col %d out of [0,%d)", col, cols)
	}
	return nil
}

// SetElement writes value to (row, col): a write to an existing live
// entry is applied in-place; only a genuinely new position is buffered
// as a pending tuple. A write that resurrects a zombie clears the
// zombie tag and updates the value in place.
func (m *Matrix[T]) SetElement(row, col int, value T) error {
	if err := m.checkBounds(row, col); err != nil {
		return err
	}
	vec, within := m.vectorIndex(row, col)
	if k, ok := m.findVec(vec); ok {
		start, end := m.p.data[k], m.p.data[k+1]
		for pos := start; pos < end; pos++ {
			if int64(m.i.data[pos]) == int64(within) {
				if m.zombie.len() > 0 && m.zombie.data[pos] {
					m.zombie.set(int(pos), false)
					m.nzombies--
				}
				m.x.set(int(pos), value)
				return nil
			}
		}
	}
	m.pending = append(m.pending, pendingTuple[T]{i: row, j: col, value: value})
	return nil
}

// MarkZombie flags the live entry at (row, col) as deleted without
// physically compacting storage. It is a no-op if the entry is absent
// or already a zombie.
func (m *Matrix[T]) MarkZombie(row, col int) error {
	if err := m.checkBounds(row, col); err != nil {
		return err
	}
	vec, within := m.vectorIndex(row, col)
	k, ok := m.findVec(vec)
	if !ok {
		return nil
	}
	start, end := m.p.data[k], m.p.data[k+1]
	for pos := start; pos < end; pos++ {
		if int64(m.i.data[pos]) == int64(within) {
			if m.zombie.len() == 0 {
				m.zombie = owned(make([]bool, m.i.len()))
			}
			if !m.zombie.data[pos] {
				m.zombie.set(int(pos), true)
				m.nzombies++
			}
			return nil
		}
	}
	return nil
}

// VisitVector calls fn for every live (non-zombie) entry of vector vec,
// in increasing within-vector-index order, passing the within-vector
// index and the value.
func (m *Matrix[T]) VisitVector(vec int, fn func(within int, value T)) {
	k, ok := m.findVec(vec)
	if !ok {
		return
	}
	start, end := m.p.data[k], m.p.data[k+1]
	for pos := start; pos < end; pos++ {
		if m.zombie.len() > 0 && m.zombie.data[pos] {
			continue
		}
		fn(int(m.i.data[pos]), m.x.data[pos])
	}
}

// VectorBounds returns the storage half-open range [start, end) for
// stored vector slot k (not a global vector index -- see findVec).
func (m *Matrix[T]) VectorBounds(k int) (start, end int64) {
	return m.p.data[k], m.p.data[k+1]
}

// VectorAt returns the global vector index of stored slot k.
func (m *Matrix[T]) VectorAt(k int) int {
	if m.IsHypersparse() {
		return int(m.h.data[k])
	}
	return k
}

// NumStoredVectors returns nvec, the number of stored vector slots
// (equal to vdim in standard form).
func (m *Matrix[T]) NumStoredVectors() int { return m.nvec }
