package graphblas

import "container/heap"

// heapItem is one active (row, value, source) triple drawn from one of
// A's columns currently contributing to the output column being merged.
type heapItem[X any] struct {
	row    int32
	val    X
	srcVec int // stored-slot index within A, to advance that column's cursor
	pos    int64
}

type heapItems[X any] []heapItem[X]

func (h heapItems[X]) Len() int            { return len(h) }
func (h heapItems[X]) Less(i, j int) bool  { return h[i].row < h[j].row }
func (h heapItems[X]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *heapItems[X]) Push(x any)         { *h = append(*h, x.(heapItem[X])) }
func (h *heapItems[X]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// heapMultiply computes the rows/cols/vals triples of C = A.B
// restricted to b's stored vectors [start, end), one output column at a
// time, using a min-heap merge of the contributing columns of A so each
// output column comes out already sorted by row without a dense
// workspace. This favours sparse output columns fed by many A columns,
// where Gustavson's dense accumulator would spend most of its time on
// empty rows. The caller owns assembling the final matrix.
func heapMultiply[Z, X, Y any](a *Matrix[X], b *Matrix[Y], sr Semiring[Z, X, Y], mask *Matrix[bool], mcomp bool, start, end int) ([]int, []int, []Z, error) {
	rows := make([]int, 0)
	cols := make([]int, 0)
	vals := make([]Z, 0)

	for kb := start; kb < end; kb++ {
		j := b.VectorAt(kb)
		var h heapItems[X]
		bStart, bEnd := b.VectorBounds(kb)
		for bp := bStart; bp < bEnd; bp++ {
			if b.zombie.len() > 0 && b.zombie.data[bp] {
				continue
			}
			k := int(b.i.data[bp])
			ka, ok := a.findVec(k)
			if !ok {
				continue
			}
			aStart, aEnd := a.VectorBounds(ka)
			pos := aStart
			for pos < aEnd && a.zombie.len() > 0 && a.zombie.data[pos] {
				pos++
			}
			if pos >= aEnd {
				continue
			}
			h = append(h, heapItem[X]{row: a.i.data[pos], val: a.x.data[pos], srcVec: ka, pos: pos})
		}
		heap.Init(&h)

		// bVal lookup per source column k is needed to scale each A entry;
		// precompute a map from stored-slot (srcVec) to the B value that
		// fed it, since several a-columns may share the same b row k.
		bValOf := map[int]Y{}
		for bp := bStart; bp < bEnd; bp++ {
			if b.zombie.len() > 0 && b.zombie.data[bp] {
				continue
			}
			k := int(b.i.data[bp])
			if ka, ok := a.findVec(k); ok {
				bValOf[ka] = b.x.data[bp]
			}
		}

		var curRow int32 = -1
		var curVal Z
		haveCur := false
		for h.Len() > 0 {
			top := heap.Pop(&h).(heapItem[X])
			z := sr.Mult(top.val, bValOf[top.srcVec])
			if haveCur && top.row == curRow {
				curVal = sr.Add.Op(curVal, z)
			} else {
				if haveCur {
					if maskAllows(mask, mcomp, int(curRow), j) {
						rows = append(rows, int(curRow))
						cols = append(cols, j)
						vals = append(vals, curVal)
					}
				}
				curRow, curVal, haveCur = top.row, z, true
			}
			// advance this A column's cursor
			_, aEnd := a.VectorBounds(top.srcVec)
			next := top.pos + 1
			for next < aEnd && a.zombie.len() > 0 && a.zombie.data[next] {
				next++
			}
			if next < aEnd {
				heap.Push(&h, heapItem[X]{row: a.i.data[next], val: a.x.data[next], srcVec: top.srcVec, pos: next})
			}
		}
		if haveCur {
			if maskAllows(mask, mcomp, int(curRow), j) {
				rows = append(rows, int(curRow))
				cols = append(cols, j)
				vals = append(vals, curVal)
			}
		}
	}

	return rows, cols, vals, nil
}
