package graphblas

// Subassign performs C(I,J)<M,repl> = accum(C(I,J), A): it writes only
// within the addressed submatrix named by rows/cols, leaving the rest of
// C untouched regardless of mask or repl. mask, when given, is sized to
// the addressed submatrix (|I| x |J|), not to C -- this is the
// distinction between Subassign and the whole-matrix Assign built on top
// of it below.
//
// One routine parameterised over T and driven by IndexList.Resolve
// covers every combination of scalar/matrix right-hand side and
// explicit/ALL/colon index lists; the scalar right-hand-side case is
// SubassignScalar below, which broadcasts the scalar as an implicit
// dense constant matrix over the addressed region and delegates here.
func Subassign[T any](c *Matrix[T], rows, cols IndexList, a *Matrix[T], mask *Matrix[bool], mcomp, repl bool, accum BinaryOp[T, T, T]) error {
	cRows, cCols := c.Dims()
	rowIdx := rows.Resolve(cRows)
	colIdx := cols.Resolve(cCols)

	aRows, aCols := a.Dims()
	if aRows != len(rowIdx) || aCols != len(colIdx) {
		return newError(CodeDimensionMismatch, "A shape %dx%d does not match index lists %dx%d", aRows, aCols, len(rowIdx), len(colIdx))
	}
	if mask != nil {
		mRows, mCols := mask.Dims()
		if mRows != len(rowIdx) || mCols != len(colIdx) {
			return newError(CodeDimensionMismatch, "mask shape %dx%d does not match index lists %dx%d", mRows, mCols, len(rowIdx), len(colIdx))
		}
	}

	for li, gi := range rowIdx {
		if gi < 0 || gi >= cRows {
			return newError(CodeIndexOutOfBounds, "row index %d out of [0,%d)", gi, cRows)
		}
		for lj, gj := range colIdx {
			if gj < 0 || gj >= cCols {
				return newError(CodeIndexOutOfBounds, "col index %d out of [0,%d)", gj, cCols)
			}

			av, errA := a.GetElement(li, lj)
			hasA := errA == nil
			cv, errC := c.GetElement(gi, gj)
			hasC := errC == nil

			var z T
			var hasZ bool
			switch {
			case hasC && hasA:
				if accum != nil {
					z, hasZ = accum(cv, av), true
				} else {
					z, hasZ = av, true
				}
			case hasC && !hasA:
				z, hasZ = cv, true
			case !hasC && hasA:
				z, hasZ = av, true
			}

			selected := true
			if mask != nil {
				mv, errM := mask.GetElement(li, lj)
				present := errM == nil && mv
				selected = present != mcomp
			}

			switch {
			case selected && hasZ:
				if err := c.SetElement(gi, gj, z); err != nil {
					return err
				}
			case !selected && repl && hasC:
				if err := c.MarkZombie(gi, gj); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// SubassignScalar performs C(I,J)<M,repl> = accum(C(I,J), scalar): the
// scalar-expansion form of Subassign, broadcasting scalar as though it
// were the value of every entry of an implicit |I| x |J| dense constant
// matrix. Built by constructing that constant matrix and delegating to
// Subassign, rather than duplicating its mask/repl/accum logic.
func SubassignScalar[T any](c *Matrix[T], rows, cols IndexList, scalar T, mask *Matrix[bool], mcomp, repl bool, accum BinaryOp[T, T, T]) error {
	cRows, cCols := c.Dims()
	rowIdx := rows.Resolve(cRows)
	colIdx := cols.Resolve(cCols)

	rs := make([]int, 0, len(rowIdx)*len(colIdx))
	cs := make([]int, 0, len(rowIdx)*len(colIdx))
	vs := make([]T, 0, len(rowIdx)*len(colIdx))
	for li := range rowIdx {
		for lj := range colIdx {
			rs = append(rs, li)
			cs = append(cs, lj)
			vs = append(vs, scalar)
		}
	}
	a, err := Build[T](len(rowIdx), len(colIdx), c.isCSC, rs, cs, vs, Second[T]())
	if err != nil {
		return err
	}
	return Subassign(c, rows, cols, a, mask, mcomp, repl, accum)
}
