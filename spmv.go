package graphblas

import "github.com/graphblas-go/graphblas/internal/spblas"

// MultiplyVector computes y += A*x (or y += A'*x when transpose is
// true) for a finalized float64 matrix and dense vectors x, y. m must
// carry no zombies or pending tuples; call Wait first.
//
// Dispatch between a scatter-add (Axpy) and a gather-dot (Dot) per
// stored vector is driven by whether the matrix's storage orientation
// already lines up with the requested multiply direction: a CSC matrix
// computing A*x (untransposed) or a CSR matrix computing A'*x both walk
// their stored vectors as columns of the product, so each stored vector
// contributes by scatter-add; the complementary cases gather-dot
// instead.
func MultiplyVector(m *Matrix[float64], transpose bool, x, y []float64) error {
	if m.HasZombies() || m.HasPending() {
		return newError(CodeInvalidObject, "MultiplyVector requires a finalized matrix; call Wait first")
	}
	rows, cols := m.Dims()
	wantXLen, wantYLen := cols, rows
	if transpose {
		wantXLen, wantYLen = rows, cols
	}
	if len(x) != wantXLen {
		return newError(CodeDimensionMismatch, "x length %d, want %d", len(x), wantXLen)
	}
	if len(y) != wantYLen {
		return newError(CodeDimensionMismatch, "y length %d, want %d", len(y), wantYLen)
	}

	axpy := (m.isCSC && !transpose) || (!m.isCSC && transpose)
	ind := widenIndex(m.i.data)
	data := m.x.data
	indptr := m.p.data

	if !m.IsHypersparse() {
		spblas.Gemv(axpy, 1, indptr, ind, data, m.nvec, x, 1, y, 1)
		return nil
	}
	for k := 0; k < m.nvec; k++ {
		vec := m.VectorAt(k)
		start, end := indptr[k], indptr[k+1]
		local := []int64{0, end - start}
		if axpy {
			spblas.Gemv(true, 1, local, ind[start:end], data[start:end], 1, x[vec:], 1, y, 1)
		} else {
			spblas.Gemv(false, 1, local, ind[start:end], data[start:end], 1, x, 1, y[vec:], 1)
		}
	}
	return nil
}

// MultiplyDense computes C += A*B (or A'*B when transpose is true) for
// a finalized float64 matrix A and dense row-major matrices B, C
// with k columns and row strides ldb, ldc. Computed as k calls to
// MultiplyVector's underlying per-vector dispatch, using Gemm directly
// in the common (non-hypersparse) case.
func MultiplyDense(m *Matrix[float64], transpose bool, k int, b []float64, ldb int, c []float64, ldc int) error {
	if m.HasZombies() || m.HasPending() {
		return newError(CodeInvalidObject, "MultiplyDense requires a finalized matrix; call Wait first")
	}
	axpy := (m.isCSC && !transpose) || (!m.isCSC && transpose)
	ind := widenIndex(m.i.data)
	data := m.x.data
	indptr := m.p.data

	if !m.IsHypersparse() {
		spblas.Gemm(axpy, k, 1, indptr, ind, data, m.nvec, b, ldb, c, ldc)
		return nil
	}
	rows, cols := m.Dims()
	xLen, yLen := cols, rows
	if transpose {
		xLen, yLen = rows, cols
	}
	for col := 0; col < k; col++ {
		x := stride(b[col:], ldb, xLen)
		y := stride(c[col:], ldc, yLen)
		if err := MultiplyVector(m, transpose, x, y); err != nil {
			return err
		}
		unstride(c[col:], ldc, y)
	}
	return nil
}

func widenIndex(idx []int32) []int {
	out := make([]int, len(idx))
	for k, v := range idx {
		out[k] = int(v)
	}
	return out
}

// stride gathers n strided values starting at s[0] into a contiguous
// buffer, matching the contiguous-vector assumption of MultiplyVector.
func stride(s []float64, inc, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = s[i*inc]
	}
	return out
}

func unstride(s []float64, inc int, vals []float64) {
	for i, v := range vals {
		s[i*inc] = v
	}
}
