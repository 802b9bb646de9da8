package graphblas

import "testing"

func TestApplyUnaryOp(t *testing.T) {
	a := buildFloat(t, 2, 2, map[[2]int]float64{{0, 0}: 1, {1, 1}: 2})
	c := NewMatrix[float64](2, 2, true)
	double := func(x float64) float64 { return x * 2 }
	if err := Apply[float64, float64](c, a, double, nil, false, false, nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	assertEntries(t, c, map[[2]int]float64{{0, 0}: 2, {1, 1}: 4})
}

func TestSelectPredicate(t *testing.T) {
	a := buildFloat(t, 2, 2, map[[2]int]float64{{0, 0}: 1, {0, 1}: 2, {1, 0}: 3, {1, 1}: 4})
	c := NewMatrix[float64](2, 2, true)
	keepGT2 := func(_, _ int, x float64) bool { return x > 2 }
	if err := Select[float64](c, a, keepGT2, nil, false, false, nil); err != nil {
		t.Fatalf("Select: %v", err)
	}
	assertEntries(t, c, map[[2]int]float64{{1, 0}: 3, {1, 1}: 4})
}

func TestSelectTril(t *testing.T) {
	a := buildFloat(t, 2, 2, map[[2]int]float64{{0, 0}: 1, {0, 1}: 2, {1, 0}: 3, {1, 1}: 4})
	c := NewMatrix[float64](2, 2, true)
	if err := Select[float64](c, a, Tril[float64](0), nil, false, false, nil); err != nil {
		t.Fatalf("Select: %v", err)
	}
	assertEntries(t, c, map[[2]int]float64{{0, 0}: 1, {1, 0}: 3, {1, 1}: 4})
}

func TestReduceToScalarSum(t *testing.T) {
	a := buildFloat(t, 2, 2, map[[2]int]float64{{0, 0}: 1, {0, 1}: 2, {1, 0}: 3, {1, 1}: 4})
	got := ReduceToScalar[float64](a, PlusMonoid[float64](), func(x, y float64) bool { return x == y })
	if got != 10 {
		t.Fatalf("ReduceToScalar = %v, want 10", got)
	}
}

func TestReduceToScalarTerminalShortCircuit(t *testing.T) {
	a := buildBool(t, 1, 3, map[[2]int]bool{{0, 0}: false, {0, 1}: true, {0, 2}: false})
	got := ReduceToScalar[bool](a, OrLAndMonoid(), func(x, y bool) bool { return x == y })
	if !got {
		t.Fatalf("ReduceToScalar = %v, want true", got)
	}
}

// TestReduceToScalarTerminalShortCircuitObserved proves the short
// circuit actually fires rather than merely producing the right answer
// by coincidence: a 1000-element dense boolean row with a single true
// at index 500, reduced under OR with an instrumented eq that counts
// its own invocations. A full scan calls eq 1000 times; stopping at the
// first terminal match calls it 501 times (once per processed entry,
// index 0 through 500 inclusive).
func TestReduceToScalarTerminalShortCircuitObserved(t *testing.T) {
	const n = 1000
	rows := make([]int, n)
	cols := make([]int, n)
	vals := make([]bool, n)
	for idx := 0; idx < n; idx++ {
		rows[idx] = 0
		cols[idx] = idx
		vals[idx] = idx == 500
	}
	a, err := Build[bool](1, n, true, rows, cols, vals, Second[bool]())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	eqCalls := 0
	eq := func(x, y bool) bool {
		eqCalls++
		return x == y
	}
	got := ReduceToScalar[bool](a, OrLAndMonoid(), eq)
	if !got {
		t.Fatalf("ReduceToScalar = %v, want true", got)
	}
	if eqCalls != 501 {
		t.Fatalf("eq invoked %d times scanning a %d-element vector, want 501 (should stop at index 500, not scan to the end)", eqCalls, n)
	}
}

func TestSelectZombieAwareDropsZombies(t *testing.T) {
	a := buildFloat(t, 1, 3, map[[2]int]float64{{0, 0}: 1, {0, 1}: 2, {0, 2}: 3})
	if err := a.MarkZombie(0, 1); err != nil {
		t.Fatalf("MarkZombie: %v", err)
	}
	c := NewMatrix[float64](1, 3, true)
	if err := SelectZombieAware[float64](c, a, NonZombie[float64](), nil, false, false, nil); err != nil {
		t.Fatalf("SelectZombieAware: %v", err)
	}
	assertEntries(t, c, map[[2]int]float64{{0, 0}: 1, {0, 2}: 3})
}

func TestSelectZombieAwareAllZombies(t *testing.T) {
	a := buildFloat(t, 1, 2, map[[2]int]float64{{0, 0}: 1, {0, 1}: 2})
	if err := a.MarkZombie(0, 0); err != nil {
		t.Fatalf("MarkZombie: %v", err)
	}
	if err := a.MarkZombie(0, 1); err != nil {
		t.Fatalf("MarkZombie: %v", err)
	}
	c := NewMatrix[float64](1, 2, true)
	if err := SelectZombieAware[float64](c, a, NonZombie[float64](), nil, false, false, nil); err != nil {
		t.Fatalf("SelectZombieAware: %v", err)
	}
	assertEntries(t, c, map[[2]int]float64{})
}

func TestReduceToVectorAlongRows(t *testing.T) {
	a := buildFloat(t, 2, 2, map[[2]int]float64{{0, 0}: 1, {0, 1}: 2, {1, 0}: 3, {1, 1}: 4})
	v, err := ReduceToVector[float64](a, PlusMonoid[float64](), true, func(x, y float64) bool { return x == y })
	if err != nil {
		t.Fatalf("ReduceToVector: %v", err)
	}
	r0, err := v.GetElement(0, 0)
	if err != nil || r0 != 3 {
		t.Fatalf("row 0 sum = %v, %v, want 3", r0, err)
	}
	r1, err := v.GetElement(1, 0)
	if err != nil || r1 != 7 {
		t.Fatalf("row 1 sum = %v, %v, want 7", r1, err)
	}
}
