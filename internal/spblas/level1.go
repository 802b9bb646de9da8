// Package spblas provides the sparse BLAS level-1 gather/scatter/axpy/dot
// routines the float64 fast paths of the graphblas engine build on:
// moving values between a sparse index-value pair and a dense buffer, and
// combining a sparse vector into a dense one.
package spblas

// Axpy (sparse update, y <- alpha*x + y) scales the sparse vector x by
// alpha and scatter-adds the result into the dense vector y at the
// positions named by indx.
func Axpy(alpha float64, x []float64, indx []int, y []float64, incy int) {
	for i, index := range indx {
		y[index*incy] += alpha * x[i]
	}
}

// Dot (sparse dot product, r <- x^T*y) computes the dot product of the
// sparse vector x against the dense vector y, gathering y at the
// positions named by indx.
func Dot(x []float64, indx []int, y []float64, incy int) (dot float64) {
	for i, index := range indx {
		dot += x[i] * y[index*incy]
	}
	return
}

// Gather (x <- y|x) copies entries from the dense vector y into the
// sparse vector x at the positions named by indx.
func Gather(y []float64, incy int, x []float64, indx []int) {
	for i, index := range indx {
		x[i] = y[index*incy]
	}
}

// GatherZero (x <- y|x, y|x <- 0) gathers as Gather does, then zeroes
// the gathered positions of y -- used to drain a dense accumulator back
// to a fresh state in the same pass that reads it out.
func GatherZero(y []float64, incy int, x []float64, indx []int) {
	for i, index := range indx {
		x[i] = y[index*incy]
		y[index*incy] = 0
	}
}

// Scatter (y|x <- x) writes the sparse vector x into the dense vector y
// at the positions named by indx.
func Scatter(x []float64, y []float64, incy int, indx []int) {
	for i, index := range indx {
		y[index*incy] = x[i]
	}
}
