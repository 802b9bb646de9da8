package graphblas

// Assign performs whole-matrix C<M,repl> = accum(C, A) addressed at
// C(I,J): unlike Subassign, mask is sized to all of C, and repl also
// governs positions of C outside the addressed submatrix -- any position
// the (whole-matrix) mask does not select is cleared when repl is set,
// even though Assign never writes a new value there.
func Assign[T any](c *Matrix[T], rows, cols IndexList, a *Matrix[T], mask *Matrix[bool], mcomp, repl bool, accum BinaryOp[T, T, T]) error {
	cRows, cCols := c.Dims()
	rowIdx := rows.Resolve(cRows)
	colIdx := cols.Resolve(cCols)

	var subMask *Matrix[bool]
	if mask != nil {
		mRows, mCols := mask.Dims()
		if mRows != cRows || mCols != cCols {
			return newError(CodeDimensionMismatch, "mask shape %dx%d does not match C shape %dx%d", mRows, mCols, cRows, cCols)
		}
		sub, err := extractRaw(mask, rows, cols)
		if err != nil {
			return err
		}
		subMask = sub
	}

	if err := Subassign(c, rows, cols, a, subMask, mcomp, repl, accum); err != nil {
		return err
	}
	if !repl || mask == nil {
		return nil
	}

	inRows := make(map[int]bool, len(rowIdx))
	for _, r := range rowIdx {
		inRows[r] = true
	}
	inCols := make(map[int]bool, len(colIdx))
	for _, cc := range colIdx {
		inCols[cc] = true
	}

	for ci := 0; ci < cRows; ci++ {
		for cj := 0; cj < cCols; cj++ {
			if inRows[ci] && inCols[cj] {
				continue // already handled by Subassign above
			}
			mv, errM := mask.GetElement(ci, cj)
			present := errM == nil && mv
			selected := present != mcomp
			if selected {
				continue
			}
			if _, err := c.GetElement(ci, cj); err == nil {
				if err := c.MarkZombie(ci, cj); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
