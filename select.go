package graphblas

// Select performs C<M,repl> = accum(C, select(A, pred)): pred decides,
// per live entry of A, whether it survives into the result merged into
// c.
func Select[T any](c *Matrix[T], a *Matrix[T], pred Predicate[T], mask *Matrix[bool], mcomp, repl bool, accum BinaryOp[T, T, T]) error {
	rows := make([]int, 0, a.i.len())
	cols := make([]int, 0, a.i.len())
	vals := make([]T, 0, a.i.len())
	for k := 0; k < a.nvec; k++ {
		vec := a.VectorAt(k)
		a.VisitVector(vec, func(within int, v T) {
			row, col := a.fromVectorIndex(vec, within)
			if pred(row, col, v) {
				rows = append(rows, row)
				cols = append(cols, col)
				vals = append(vals, v)
			}
		})
	}
	t, err := Build[T](a.vlen, a.vdim, a.isCSC, rows, cols, vals, Second[T]())
	if err != nil {
		return err
	}
	return MaskAccum(c, t, mask, mcomp, repl, accum)
}

// ZombiePredicate is a Select-style predicate that also sees whether the
// candidate entry is currently a zombie, for use with SelectZombieAware.
type ZombiePredicate[T any] func(row, col int, x T, isZombie bool) bool

// SelectZombieAware performs C<M,repl> = accum(C, select(A, pred)) like
// Select, but walks A's raw storage directly instead of going through
// VisitVector, so pred sees zombie entries rather than having them
// filtered out beforehand. This is the only Select path where a
// zombie-testing predicate such as NonZombie does real filtering.
func SelectZombieAware[T any](c *Matrix[T], a *Matrix[T], pred ZombiePredicate[T], mask *Matrix[bool], mcomp, repl bool, accum BinaryOp[T, T, T]) error {
	rows := make([]int, 0, a.i.len())
	cols := make([]int, 0, a.i.len())
	vals := make([]T, 0, a.i.len())
	for k := 0; k < a.nvec; k++ {
		vec := a.VectorAt(k)
		start, end := a.VectorBounds(k)
		for pos := start; pos < end; pos++ {
			isZombie := a.zombie.len() > 0 && a.zombie.data[pos]
			within := int(a.i.data[pos])
			row, col := a.fromVectorIndex(vec, within)
			if !pred(row, col, a.x.data[pos], isZombie) {
				continue
			}
			rows = append(rows, row)
			cols = append(cols, col)
			vals = append(vals, a.x.data[pos])
		}
	}
	t, err := Build[T](a.vlen, a.vdim, a.isCSC, rows, cols, vals, Second[T]())
	if err != nil {
		return err
	}
	return MaskAccum(c, t, mask, mcomp, repl, accum)
}

// NonZombie returns a zombie-aware predicate keeping every live entry
// and dropping every zombie, the generic analogue of the built-in
// NonZombie selection operator. Used with SelectZombieAware, which
// walks raw storage, so the filtering it performs is real rather than
// already having been done by the iteration it runs under.
func NonZombie[T any]() ZombiePredicate[T] {
	return func(_, _ int, _ T, isZombie bool) bool { return !isZombie }
}

// ValueNE returns a predicate keeping entries whose value differs from v
// under eq, the generic analogue of the built-in VALUENE selection
// operator.
func ValueNE[T any](v T, eq func(a, b T) bool) Predicate[T] {
	return func(_, _ int, x T) bool { return !eq(x, v) }
}

// Tril returns a predicate keeping entries on or below the k-th
// diagonal (col - row <= k), the generic analogue of the built-in TRIL
// selection operator.
func Tril[T any](k int) Predicate[T] {
	return func(row, col int, _ T) bool { return col-row <= k }
}

// Triu returns a predicate keeping entries on or above the k-th
// diagonal (col - row >= k), the generic analogue of the built-in TRIU
// selection operator.
func Triu[T any](k int) Predicate[T] {
	return func(row, col int, _ T) bool { return col-row >= k }
}
