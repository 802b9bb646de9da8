package spblas

// Gemm (sparse matrix / dense matrix multiply: C <- alpha*A*B + C, or
// C <- alpha*A^T*B + C) multiplies the dense row-major matrix B by
// the sparse matrix described by (indptr, ind, data), adding the result
// into the dense row-major matrix C. A is nrows x n (or n x nrows
// when transA), B and C have k columns and row strides ldb/ldc, so
// element (i, col) of B is b[i*ldb+col]. Computed as k independent Gemv
// calls, one per column of B/C.
func Gemm(transA bool, k int, alpha float64, indptr []int64, ind []int, data []float64, nrows int, b []float64, ldb int, c []float64, ldc int) {
	if alpha == 0 {
		return
	}
	for col := 0; col < k; col++ {
		Gemv(transA, alpha, indptr, ind, data, nrows, b[col:], ldb, c[col:], ldc)
	}
}
