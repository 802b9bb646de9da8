package graphblas

// MaskAccum implements the unified write path C<M,repl> = accum(C,T) used
// by every operation in this engine to merge a freshly-computed result T
// back into C. c is mutated in place.
//
// mask may be nil (no masking). mcomp negates the mask predicate. repl,
// if true, clears C(i,j) wherever M does not select it (even positions M
// does not mention). accum may be nil, meaning T overwrites C elementwise
// (Z = T, taking T's pattern).
//
// c, t, and mask must share orientation; callers are responsible for
// transposing beforehand.
func MaskAccum[T any](c, t *Matrix[T], mask *Matrix[bool], mcomp, repl bool, accum BinaryOp[T, T, T]) error {
	if c.vlen != t.vlen || c.vdim != t.vdim {
		return newError(CodeDimensionMismatch, "C and T shape mismatch")
	}
	if mask != nil && (mask.vlen != c.vlen || mask.vdim != c.vdim) {
		return newError(CodeDimensionMismatch, "mask shape mismatch")
	}

	sel := func(vec, within int) bool {
		if mask == nil {
			return true
		}
		row, col := c.fromVectorIndex(vec, within)
		v, err := mask.GetElement(row, col)
		present := err == nil && v
		return present != mcomp
	}

	rows := make([]int, 0)
	cols := make([]int, 0)
	vals := make([]T, 0)

	maxVec := maxInt(c.vdim, 1)
	for vec := 0; vec < maxVec; vec++ {
		cVals := map[int]T{}
		c.VisitVector(vec, func(within int, value T) { cVals[within] = value })
		tVals := map[int]T{}
		t.VisitVector(vec, func(within int, value T) { tVals[within] = value })

		seen := map[int]bool{}
		order := make([]int, 0, len(cVals)+len(tVals))
		for within := range cVals {
			if !seen[within] {
				seen[within] = true
				order = append(order, within)
			}
		}
		for within := range tVals {
			if !seen[within] {
				seen[within] = true
				order = append(order, within)
			}
		}

		for _, within := range order {
			cv, hasC := cVals[within]
			tv, hasT := tVals[within]

			var z T
			var hasZ bool
			switch {
			case hasC && hasT:
				if accum != nil {
					z, hasZ = accum(cv, tv), true
				} else {
					z, hasZ = tv, true
				}
			case hasC && !hasT:
				if accum != nil {
					z, hasZ = cv, true
				}
			case !hasC && hasT:
				z, hasZ = tv, true
			}

			selected := sel(vec, within)
			var newVal T
			var keep bool
			if selected {
				newVal, keep = z, hasZ
			} else if !repl {
				if hasC {
					newVal, keep = cv, true
				}
			}
			if keep {
				row, col := c.fromVectorIndex(vec, within)
				rows = append(rows, row)
				cols = append(cols, col)
				vals = append(vals, newVal)
			}
		}
	}

	rebuilt, err := Build[T](c.vlen, c.vdim, c.isCSC, rows, cols, vals, Second[T]())
	if err != nil {
		return err
	}
	rebuilt.hyperRatio = c.hyperRatio
	rebuilt.neverHyper = c.neverHyper
	*c = *rebuilt
	c.Conform()
	return nil
}
