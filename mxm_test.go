package graphblas

import (
	"testing"

	"github.com/gonum/floats"
)

func denseFromBuild(t *testing.T, rows, cols int, entries map[[2]int]float64) *Matrix[float64] {
	t.Helper()
	r := make([]int, 0, len(entries))
	c := make([]int, 0, len(entries))
	v := make([]float64, 0, len(entries))
	for k, val := range entries {
		r = append(r, k[0])
		c = append(c, k[1])
		v = append(v, val)
	}
	m, err := Build[float64](rows, cols, true, r, c, v, Second[float64]())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return m
}

func assertEntries(t *testing.T, m *Matrix[float64], want map[[2]int]float64) {
	t.Helper()
	got := map[[2]int]float64{}
	for k := 0; k < m.NumStoredVectors(); k++ {
		vec := m.VectorAt(k)
		m.VisitVector(vec, func(within int, v float64) {
			row, col := m.fromVectorIndex(vec, within)
			got[[2]int{row, col}] = v
		})
	}
	if len(got) != len(want) {
		t.Fatalf("entry count mismatch: got %v, want %v", got, want)
	}
	for k, v := range want {
		gv, ok := got[k]
		if !ok || gv != v {
			t.Fatalf("entry %v: got %v (present=%v), want %v", k, gv, ok, v)
		}
	}
}

// assertEntriesApprox is assertEntries with a tolerance, for results
// accumulated through a BLAS call where summation order can differ from
// the hand-computed reference.
func assertEntriesApprox(t *testing.T, m *Matrix[float64], want map[[2]int]float64, tol float64) {
	t.Helper()
	got := map[[2]int]float64{}
	for k := 0; k < m.NumStoredVectors(); k++ {
		vec := m.VectorAt(k)
		m.VisitVector(vec, func(within int, v float64) {
			row, col := m.fromVectorIndex(vec, within)
			got[[2]int{row, col}] = v
		})
	}
	if len(got) != len(want) {
		t.Fatalf("entry count mismatch: got %v, want %v", got, want)
	}
	for k, v := range want {
		gv, ok := got[k]
		if !ok || !floats.EqualWithinAbs(gv, v, tol) {
			t.Fatalf("entry %v: got %v (present=%v), want %v (tol %v)", k, gv, ok, v, tol)
		}
	}
}

func TestMultiplyPlusTimes(t *testing.T) {
	e := NewEngine()
	// A and B: dense 2x2, classic PLUS-TIMES worked example.
	a := denseFromBuild(t, 2, 2, map[[2]int]float64{
		{0, 0}: 1, {0, 1}: 2,
		{1, 0}: 3, {1, 1}: 4,
	})
	b := denseFromBuild(t, 2, 2, map[[2]int]float64{
		{0, 0}: 5, {0, 1}: 6,
		{1, 0}: 7, {1, 1}: 8,
	})
	sr := PlusTimes[float64]()
	c, err := Multiply[float64](e, a, b, sr, nil, false, false, false, nil)
	if err != nil {
		t.Fatalf("Multiply: %v", err)
	}
	assertEntries(t, c, map[[2]int]float64{
		{0, 0}: 19, {0, 1}: 22,
		{1, 0}: 43, {1, 1}: 50,
	})
}

func TestMultiplyTransposeADot(t *testing.T) {
	e := NewEngine()
	a := denseFromBuild(t, 2, 2, map[[2]int]float64{
		{0, 0}: 1, {1, 0}: 3,
		{0, 1}: 2, {1, 1}: 4,
	})
	b := denseFromBuild(t, 2, 2, map[[2]int]float64{
		{0, 0}: 5, {0, 1}: 6,
		{1, 0}: 7, {1, 1}: 8,
	})
	sr := PlusTimes[float64]()
	eq := func(x, y float64) bool { return x == y }
	c, err := Multiply[float64](e, a, b, sr, nil, false, true, false, eq)
	if err != nil {
		t.Fatalf("Multiply: %v", err)
	}
	// A' = [[1,3],[2,4]]; A'.B = [[1*5+3*7, 1*6+3*8],[2*5+4*7,2*6+4*8]]
	assertEntries(t, c, map[[2]int]float64{
		{0, 0}: 26, {0, 1}: 30,
		{1, 0}: 38, {1, 1}: 44,
	})
}

func TestMultiplyMasked(t *testing.T) {
	e := NewEngine()
	a := denseFromBuild(t, 2, 2, map[[2]int]float64{
		{0, 0}: 1, {0, 1}: 2,
		{1, 0}: 3, {1, 1}: 4,
	})
	b := denseFromBuild(t, 2, 2, map[[2]int]float64{
		{0, 0}: 5, {0, 1}: 6,
		{1, 0}: 7, {1, 1}: 8,
	})
	maskRows := []int{0}
	maskCols := []int{0}
	maskVals := []bool{true}
	mask, err := Build[bool](2, 2, true, maskRows, maskCols, maskVals, Second[bool]())
	if err != nil {
		t.Fatalf("Build mask: %v", err)
	}
	sr := PlusTimes[float64]()
	c, err := Multiply[float64](e, a, b, sr, mask, false, false, false, nil)
	if err != nil {
		t.Fatalf("Multiply: %v", err)
	}
	assertEntries(t, c, map[[2]int]float64{
		{0, 0}: 19,
	})
}

func TestMultiplyDiagonalScale(t *testing.T) {
	e := NewEngine()
	a := denseFromBuild(t, 2, 2, map[[2]int]float64{
		{0, 0}: 2, {1, 1}: 3,
	})
	b := denseFromBuild(t, 2, 2, map[[2]int]float64{
		{0, 0}: 1, {0, 1}: 2,
		{1, 0}: 3, {1, 1}: 4,
	})
	sr := PlusTimes[float64]()
	c, err := Multiply[float64](e, a, b, sr, nil, false, false, false, nil)
	if err != nil {
		t.Fatalf("Multiply: %v", err)
	}
	assertEntries(t, c, map[[2]int]float64{
		{0, 0}: 2, {0, 1}: 4,
		{1, 0}: 9, {1, 1}: 12,
	})
}

func TestMultiplyPlusTimesFloat64BLAS(t *testing.T) {
	a := denseFromBuild(t, 2, 2, map[[2]int]float64{
		{0, 0}: 1, {0, 1}: 2,
		{1, 0}: 3, {1, 1}: 4,
	})
	b := denseFromBuild(t, 2, 2, map[[2]int]float64{
		{0, 0}: 5, {0, 1}: 6,
		{1, 0}: 7, {1, 1}: 8,
	})
	c, err := MultiplyPlusTimesFloat64(a, b, nil, false)
	if err != nil {
		t.Fatalf("MultiplyPlusTimesFloat64: %v", err)
	}
	assertEntriesApprox(t, c, map[[2]int]float64{
		{0, 0}: 19, {0, 1}: 22,
		{1, 0}: 43, {1, 1}: 50,
	}, 1e-9)
}
