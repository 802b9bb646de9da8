// Package graphblas implements the core execution engine of a sparse
// linear algebra library following the GraphBLAS abstraction: computation
// over sparse matrices defined on user-chosen semirings.
//
// The package provides the matrix representation (hypersparse/standard,
// row/column orientation, zombies, pending tuples, shallow aliasing), the
// deferred-work model (Wait), the masked accumulate-assign write path
// used by every operation, matrix multiplication (Gustavson or heap
// chosen by a flop estimate, and a dot-product algorithm for the
// transpose-A form), sparse-times-dense
// vector and matrix multiplication, element-wise addition and
// multiplication, submatrix assignment/extraction, apply/select/reduce,
// and transpose.
//
// Higher layers such as a polymorphic user-facing API, operator/type
// bookkeeping, and I/O are out of scope; this package is the execution
// core they drive.
package graphblas
