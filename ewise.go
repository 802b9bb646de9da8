package graphblas

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ewiseOp distinguishes element-wise addition from multiplication for
// vector-selection purposes.
type ewiseOp int

const (
	ewiseAdd ewiseOp = iota
	ewiseMult
)

// EWiseAdd computes C = op(A, B) where op combines values present in
// either A or B (union of structure), optionally masked. Values present
// in only one operand pass through unchanged; values present in both
// are combined via op.
func EWiseAdd[T any](e *Engine, a, b *Matrix[T], op BinaryOp[T, T, T], mask *Matrix[bool], mcomp bool) (*Matrix[T], error) {
	return ewise(e, a, b, op, mask, mcomp, ewiseAdd)
}

// EWiseMult computes C = op(A, B) restricted to the intersection of A
// and B's structure (and the mask's, when non-complemented).
func EWiseMult[T any](e *Engine, a, b *Matrix[T], op BinaryOp[T, T, T], mask *Matrix[bool], mcomp bool) (*Matrix[T], error) {
	return ewise(e, a, b, op, mask, mcomp, ewiseMult)
}

func ewise[T any](e *Engine, a, b *Matrix[T], op BinaryOp[T, T, T], mask *Matrix[bool], mcomp bool, kind ewiseOp) (*Matrix[T], error) {
	if a.vlen != b.vlen || a.vdim != b.vdim {
		return nil, newError(CodeDimensionMismatch, "A and B shape mismatch")
	}
	if mask != nil && (mask.vlen != a.vlen || mask.vdim != a.vdim) {
		return nil, newError(CodeDimensionMismatch, "mask shape mismatch")
	}

	// Vector selection: ch is the set of output vectors to compute, union
	// for add, intersection for mult, narrowed by a non-complemented
	// mask's hyperlist when present.
	ch := selectVectors(a, b, mask, mcomp, kind)

	type vecResult struct {
		vec  int
		rows []int
		cols []int
		vals []T
	}
	results := make([]vecResult, len(ch))

	var aborted atomic.Bool
	g := new(errgroup.Group)
	g.SetLimit(e.numWorkers())

	for idx, vec := range ch {
		idx, vec := idx, vec
		g.Go(func() error {
			if aborted.Load() {
				return nil
			}
			rows, cols, vals := ewiseVector(a, b, vec, op, mask, mcomp, kind)
			results[idx] = vecResult{vec: vec, rows: rows, cols: cols, vals: vals}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		aborted.Store(true)
		return nil, err
	}

	totalRows := make([]int, 0)
	totalCols := make([]int, 0)
	totalVals := make([]T, 0)
	for _, r := range results {
		totalRows = append(totalRows, r.rows...)
		totalCols = append(totalCols, r.cols...)
		totalVals = append(totalVals, r.vals...)
	}

	out, err := Build[T](a.vlen, a.vdim, a.isCSC, totalRows, totalCols, totalVals, Second[T]())
	if err != nil {
		return nil, err
	}
	out.hyperRatio = a.hyperRatio
	out.Conform()
	return out, nil
}

// selectVectors computes the set of output vectors to visit.
func selectVectors[T any](a, b *Matrix[T], mask *Matrix[bool], mcomp bool, kind ewiseOp) []int {
	present := func(m *Matrix[T], vec int) bool {
		k, ok := m.findVec(vec)
		if !ok {
			return false
		}
		start, end := m.p.data[k], m.p.data[k+1]
		return end > start
	}
	presentMask := func(vec int) bool {
		if mask == nil {
			return true
		}
		_, ok := mask.findVec(vec)
		return ok
	}

	maxVdim := maxInt(a.vdim, 1)
	var ch []int
	for vec := 0; vec < maxVdim; vec++ {
		inA, inB := present(a, vec), present(b, vec)
		var want bool
		switch kind {
		case ewiseAdd:
			want = inA || inB
		case ewiseMult:
			want = inA && inB
		}
		if want && mask != nil && !mcomp {
			want = presentMask(vec)
		}
		if want {
			ch = append(ch, vec)
		}
	}
	return ch
}

// ewiseVector computes a single output vector: a merge of A(:,vec) and
// B(:,vec) under op, with the three branches (A<B copy A, A=B apply op,
// A>B copy B) for add, and only the A=B branch for mult.
func ewiseVector[T any](a, b *Matrix[T], vec int, op BinaryOp[T, T, T], mask *Matrix[bool], mcomp bool, kind ewiseOp) (rows, cols []int, vals []T) {
	aMap := map[int]T{}
	a.VisitVector(vec, func(within int, v T) { aMap[within] = v })
	bMap := map[int]T{}
	b.VisitVector(vec, func(within int, v T) { bMap[within] = v })

	seen := map[int]bool{}
	var order []int
	for within := range aMap {
		if !seen[within] {
			seen[within] = true
			order = append(order, within)
		}
	}
	for within := range bMap {
		if !seen[within] {
			seen[within] = true
			order = append(order, within)
		}
	}

	for _, within := range order {
		av, inA := aMap[within]
		bv, inB := bMap[within]

		var val T
		var keep bool
		switch {
		case kind == ewiseMult:
			if inA && inB {
				val, keep = op(av, bv), true
			}
		case inA && inB:
			val, keep = op(av, bv), true
		case inA:
			val, keep = av, true
		case inB:
			val, keep = bv, true
		}
		if !keep {
			continue
		}
		if mask != nil {
			row, col := a.fromVectorIndex(vec, within)
			mv, err := mask.GetElement(row, col)
			sel := err == nil && mv
			if sel == mcomp {
				continue
			}
		}
		row, col := a.fromVectorIndex(vec, within)
		rows = append(rows, row)
		cols = append(cols, col)
		vals = append(vals, val)
	}
	return
}
