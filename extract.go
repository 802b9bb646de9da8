package graphblas

// Extract performs C<M,repl> = accum(C, A(I,J)), the read-only dual of
// Assign: it never modifies a, builds the |I| x |J| submatrix named by
// rows/cols, then merges it into c through the same masked-accumulate
// write-back path every other operation in this engine uses.
func Extract[T any](c *Matrix[T], a *Matrix[T], rows, cols IndexList, mask *Matrix[bool], mcomp, repl bool, accum BinaryOp[T, T, T]) error {
	t, err := extractRaw(a, rows, cols)
	if err != nil {
		return err
	}
	return MaskAccum(c, t, mask, mcomp, repl, accum)
}

// extractRaw builds the |I| x |J| submatrix named by rows/cols from a,
// without any masking or accumulation, used directly by Extract and by
// Assign to slice a whole-matrix mask down to the addressed submatrix.
func extractRaw[T any](a *Matrix[T], rows, cols IndexList) (*Matrix[T], error) {
	aRows, aCols := a.Dims()
	rowIdx := rows.Resolve(aRows)
	colIdx := cols.Resolve(aCols)

	outRows := make([]int, 0, len(rowIdx)*len(colIdx)/4+1)
	outCols := make([]int, 0, cap(outRows))
	outVals := make([]T, 0, cap(outRows))

	for li, r := range rowIdx {
		if r < 0 || r >= aRows {
			return nil, newError(CodeIndexOutOfBounds, "row index %d out of [0,%d)", r, aRows)
		}
		for lj, cc := range colIdx {
			if cc < 0 || cc >= aCols {
				return nil, newError(CodeIndexOutOfBounds, "col index %d out of [0,%d)", cc, aCols)
			}
			v, err := a.GetElement(r, cc)
			if err != nil {
				continue
			}
			outRows = append(outRows, li)
			outCols = append(outCols, lj)
			outVals = append(outVals, v)
		}
	}
	return Build[T](len(rowIdx), len(colIdx), a.isCSC, outRows, outCols, outVals, Second[T]())
}
