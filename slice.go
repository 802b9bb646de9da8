package graphblas

import "golang.org/x/sync/errgroup"

// columnFlopWeights computes, per stored vector of b (indexed by stored
// slot, not global vector index), the flop weight
// sum_{k in B(:,j)} |A(:,k)| -- the per-task unit columnGroups balances
// MxM work over.
func columnFlopWeights[X, Y any](a *Matrix[X], b *Matrix[Y]) []int64 {
	nnzOfCol := make(map[int]int64, a.nvec)
	for k := 0; k < a.nvec; k++ {
		vec := a.VectorAt(k)
		start, end := a.VectorBounds(k)
		nnzOfCol[vec] = end - start
	}
	weights := make([]int64, b.nvec)
	for k := 0; k < b.nvec; k++ {
		start, end := b.VectorBounds(k)
		var w int64
		for pos := start; pos < end; pos++ {
			if b.zombie.len() > 0 && b.zombie.data[pos] {
				continue
			}
			row := int(b.i.data[pos])
			w += nnzOfCol[row]
		}
		weights[k] = w
	}
	return weights
}

// flopEstimate computes a cheap flop estimate,
// flops(A,B) = sum_j sum_{k in B(:,j)} |A(:,k)|, used to choose between
// MxM algorithms.
func flopEstimate[X, Y any](a *Matrix[X], b *Matrix[Y]) int64 {
	var total int64
	for _, w := range columnFlopWeights(a, b) {
		total += w
	}
	return total
}

// columnGroups partitions [0, n) into at most ntasks contiguous,
// roughly-equal-weight groups given a per-column weight function
// (equal-flop-count grouping; falls back to equal-count grouping when
// total weight is zero).
func columnGroups(n, ntasks int, weight func(col int) int64) [][2]int {
	if n == 0 {
		return nil
	}
	if ntasks < 1 {
		ntasks = 1
	}
	if ntasks > n {
		ntasks = n
	}
	var total int64
	weights := make([]int64, n)
	for j := 0; j < n; j++ {
		weights[j] = weight(j)
		total += weights[j]
	}
	groups := make([][2]int, 0, ntasks)
	if total == 0 {
		// equal-count fallback
		base := n / ntasks
		rem := n % ntasks
		start := 0
		for t := 0; t < ntasks; t++ {
			size := base
			if t < rem {
				size++
			}
			if size == 0 {
				continue
			}
			groups = append(groups, [2]int{start, start + size})
			start += size
		}
		return groups
	}
	target := total / int64(ntasks)
	if target == 0 {
		target = 1
	}
	start := 0
	var acc int64
	for j := 0; j < n; j++ {
		acc += weights[j]
		lastGroup := len(groups) == ntasks-1
		if acc >= target && j+1 < n && !lastGroup {
			groups = append(groups, [2]int{start, j + 1})
			start = j + 1
			acc = 0
		}
	}
	if start < n {
		groups = append(groups, [2]int{start, n})
	}
	return groups
}

// multiplyParallel partitions [0, n) into e.numWorkers() column groups
// weighted by weight, runs worker over each group concurrently (slot is
// the group's index, usable as a Sauna pool slot), and concatenates the
// raw (rows, cols, vals) triples each group produces in group order.
// This is MxM's task-parallel counterpart to ewise.go's per-vector
// errgroup fan-out.
func multiplyParallel[Z any](e *Engine, n int, weight func(col int) int64, worker func(slot, start, end int) ([]int, []int, []Z, error)) ([]int, []int, []Z, error) {
	groups := columnGroups(n, e.numWorkers(), weight)

	type partial struct {
		rows, cols []int
		vals       []Z
	}
	results := make([]partial, len(groups))

	g := new(errgroup.Group)
	for idx, grp := range groups {
		idx, grp := idx, grp
		g.Go(func() error {
			rows, cols, vals, err := worker(idx, grp[0], grp[1])
			if err != nil {
				return err
			}
			results[idx] = partial{rows: rows, cols: cols, vals: vals}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	rows := make([]int, 0)
	cols := make([]int, 0)
	vals := make([]Z, 0)
	for _, r := range results {
		rows = append(rows, r.rows...)
		cols = append(cols, r.cols...)
		vals = append(vals, r.vals...)
	}
	return rows, cols, vals, nil
}
