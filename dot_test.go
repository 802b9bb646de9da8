package graphblas

import "testing"

// TestMergeDotTerminalShortCircuit proves mergeDot stops accumulating
// a dot product the moment it reaches the semiring's terminal value,
// rather than walking the rest of the shared k domain: A and B share
// 1000 overlapping indices, all true under an OR/AND boolean semiring,
// so a full scan would call Mult 1000 times but a short-circuiting one
// stops at the first.
func TestMergeDotTerminalShortCircuit(t *testing.T) {
	const k = 1000
	rows := make([]int, k)
	cols := make([]int, k)
	vals := make([]bool, k)
	for idx := 0; idx < k; idx++ {
		rows[idx] = idx
		cols[idx] = 0
		vals[idx] = true
	}
	a, err := Build[bool](k, 1, true, rows, cols, vals, Second[bool]())
	if err != nil {
		t.Fatalf("Build A: %v", err)
	}
	b, err := Build[bool](k, 1, true, rows, cols, vals, Second[bool]())
	if err != nil {
		t.Fatalf("Build B: %v", err)
	}

	calls := 0
	sr := Semiring[bool, bool, bool]{
		Add: OrLAndMonoid(),
		Mult: func(x, y bool) bool {
			calls++
			return x && y
		},
	}
	eq := func(x, y bool) bool { return x == y }

	got, ok := mergeDot(a, b, 0, 0, sr, eq)
	if !ok || !got {
		t.Fatalf("mergeDot = %v, %v, want true, true", got, ok)
	}
	if calls != 1 {
		t.Fatalf("Mult invoked %d times scanning a %d-entry merge, want 1 (terminal short-circuit should stop at the first match)", calls, k)
	}
}

// TestMultiplyTransposeADotParallel exercises the transpose-A dot
// product form through multiple worker-pool slots, checking the
// parallel task split still produces the correct result.
func TestMultiplyTransposeADotParallel(t *testing.T) {
	e := NewEngine(WithThreads(4))
	a := denseFromBuild(t, 4, 4, map[[2]int]float64{
		{0, 0}: 1, {1, 1}: 2, {2, 2}: 3, {3, 3}: 4,
	})
	b := denseFromBuild(t, 4, 4, map[[2]int]float64{
		{0, 0}: 5, {1, 1}: 6, {2, 2}: 7, {3, 3}: 8,
	})
	sr := PlusTimes[float64]()
	c, err := Multiply[float64](e, a, b, sr, nil, false, true, false, nil)
	if err != nil {
		t.Fatalf("Multiply: %v", err)
	}
	assertEntries(t, c, map[[2]int]float64{
		{0, 0}: 5, {1, 1}: 12, {2, 2}: 21, {3, 3}: 32,
	})
}
