package graphblas

// Apply performs C<M,repl> = accum(C, op(A)): op is applied to every
// live entry of A, and the result merged into c through the usual
// masked-accumulate write-back.
func Apply[Z, X any](c *Matrix[Z], a *Matrix[X], op UnaryOp[X, Z], mask *Matrix[bool], mcomp, repl bool, accum BinaryOp[Z, Z, Z]) error {
	rows := make([]int, 0, a.i.len())
	cols := make([]int, 0, a.i.len())
	vals := make([]Z, 0, a.i.len())
	for k := 0; k < a.nvec; k++ {
		vec := a.VectorAt(k)
		a.VisitVector(vec, func(within int, v X) {
			row, col := a.fromVectorIndex(vec, within)
			rows = append(rows, row)
			cols = append(cols, col)
			vals = append(vals, op(v))
		})
	}
	t, err := Build[Z](a.vlen, a.vdim, a.isCSC, rows, cols, vals, Second[Z]())
	if err != nil {
		return err
	}
	return MaskAccum(c, t, mask, mcomp, repl, accum)
}
