package graphblas

import "golang.org/x/exp/constraints"

// Number is the constraint satisfied by the built-in element types this
// package specialises fast paths for. User types fall outside this
// constraint and only flow through the generic operator-function path,
// which invokes the operator via a plain function value.
type Number interface {
	constraints.Integer | constraints.Float
}

// UnaryOp is a unary operator (x_type, z_type, fn: (x) -> z).
type UnaryOp[X, Z any] func(X) Z

// BinaryOp is a binary operator (x_type, y_type, z_type, fn: (x,y) -> z).
type BinaryOp[X, Y, Z any] func(X, Y) Z

// Predicate is a unary operator used by Select; it returns true when an
// entry should be kept.
type Predicate[X any] func(row, col int, x X) bool

// Monoid is (op, identity, terminal) over a single type T. op must be
// associative; commutativity is assumed for deterministic results but
// not required for correctness.
type Monoid[T any] struct {
	Op       BinaryOp[T, T, T]
	Identity T
	// Terminal, if HasTerminal is true, is an absorbing element permitting
	// early termination of a reduction.
	Terminal    T
	HasTerminal bool
}

// IsTerminal reports whether v equals the monoid's terminal value.
func (m Monoid[T]) IsTerminal(v T, eq func(a, b T) bool) bool {
	return m.HasTerminal && eq(v, m.Terminal)
}

// Semiring is (monoid, mult) with mult: X*Y -> Z where Z equals the
// monoid's type.
type Semiring[Z, X, Y any] struct {
	Add  Monoid[Z]
	Mult BinaryOp[X, Y, Z]
}

// Second returns a binary operator that discards its first argument,
// implementing the "second"-overwrite rule relied on by Wait and by
// SetElement's set-overwrite semantics.
func Second[T any]() BinaryOp[T, T, T] {
	return func(_, b T) T { return b }
}

// First returns a binary operator that discards its second argument.
func First[T any]() BinaryOp[T, T, T] {
	return func(a, _ T) T { return a }
}

// --- Built-in numeric semirings and monoids, beyond the classic
// PLUS-TIMES example, covering the MAX-FIRST/MIN-SECOND and OR-AND
// families commonly generated for GraphBLAS-style reductions. ---

// PlusMonoid returns the (+, 0) monoid for any Number type.
func PlusMonoid[T Number]() Monoid[T] {
	return Monoid[T]{Op: func(a, b T) T { return a + b }, Identity: 0}
}

// TimesOp returns the multiplication binary operator for any Number type.
func TimesOp[T Number]() BinaryOp[T, T, T] {
	return func(a, b T) T { return a * b }
}

// PlusTimes returns the classical PLUS-TIMES semiring.
func PlusTimes[T Number]() Semiring[T, T, T] {
	return Semiring[T, T, T]{Add: PlusMonoid[T](), Mult: TimesOp[T]()}
}

// MaxMonoid returns a (max, identity) monoid. identity should be the
// smallest representable value of T for correctness as an additive
// identity under max.
func MaxMonoid[T constraints.Ordered](identity T) Monoid[T] {
	return Monoid[T]{
		Op: func(a, b T) T {
			if a > b {
				return a
			}
			return b
		},
		Identity: identity,
	}
}

// MinMonoid returns a (min, identity) monoid. It declares no terminal
// value (HasTerminal is false).
func MinMonoid[T constraints.Ordered](identity T) Monoid[T] {
	return Monoid[T]{
		Op: func(a, b T) T {
			if a < b {
				return a
			}
			return b
		},
		Identity: identity,
	}
}

// MaxFirst returns the MAX-FIRST semiring: reduce with max, multiply by
// taking the first operand.
func MaxFirst[T Number](identity T) Semiring[T, T, T] {
	return Semiring[T, T, T]{Add: MaxMonoid(identity), Mult: First[T]()}
}

// MinSecond returns the MIN-SECOND semiring, the dual of MaxFirst.
func MinSecond[T Number](identity T) Semiring[T, T, T] {
	return Semiring[T, T, T]{Add: MinMonoid(identity), Mult: Second[T]()}
}

// OrLAndMonoid returns the boolean OR monoid with identity false and
// terminal true, enabling reductions to stop at the first true.
func OrLAndMonoid() Monoid[bool] {
	return Monoid[bool]{
		Op:          func(a, b bool) bool { return a || b },
		Identity:    false,
		Terminal:    true,
		HasTerminal: true,
	}
}

// AndOp returns the boolean AND binary operator.
func AndOp() BinaryOp[bool, bool, bool] {
	return func(a, b bool) bool { return a && b }
}

// OrAnd returns the boolean OR-AND semiring, the GraphBLAS analogue of
// PLUS-TIMES for Boolean semirings (used by graph reachability-style
// computations built atop this engine).
func OrAnd() Semiring[bool, bool, bool] {
	return Semiring[bool, bool, bool]{Add: OrLAndMonoid(), Mult: AndOp()}
}
