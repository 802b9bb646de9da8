package spblas

// Gemv (sparse matrix / dense vector multiply: y <- alpha*A*x + y, or
// y <- alpha*A^T*x + y) multiplies the dense vector x by the sparse
// matrix described by the CSR-style (indptr, ind, data) triple, adding
// the result into the dense vector y. indptr has nrows+1 entries;
// row i's nonzeros are data[indptr[i]:indptr[i+1]] at column indices
// ind[indptr[i]:indptr[i+1]]. incx/incy are the strides into x/y.
func Gemv(transA bool, alpha float64, indptr []int64, ind []int, data []float64, nrows int, x []float64, incx int, y []float64, incy int) {
	if alpha == 0 {
		return
	}
	for i := 0; i < nrows; i++ {
		begin, end := indptr[i], indptr[i+1]
		row := data[begin:end]
		cols := ind[begin:end]
		if transA {
			Axpy(alpha*x[i*incx], row, cols, y, incy)
		} else {
			y[i*incy] += alpha * Dot(row, cols, x, incx)
		}
	}
}
