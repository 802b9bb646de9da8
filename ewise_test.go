package graphblas

import "testing"

func TestEWiseAddUnion(t *testing.T) {
	e := NewEngine()
	a := buildFloat(t, 2, 2, map[[2]int]float64{{0, 0}: 1, {0, 1}: 2})
	b := buildFloat(t, 2, 2, map[[2]int]float64{{0, 1}: 10, {1, 1}: 20})
	c, err := EWiseAdd[float64](e, a, b, PlusMonoid[float64]().Op, nil, false)
	if err != nil {
		t.Fatalf("EWiseAdd: %v", err)
	}
	assertEntries(t, c, map[[2]int]float64{
		{0, 0}: 1,  // only in A
		{0, 1}: 12, // in both: 2+10
		{1, 1}: 20, // only in B
	})
}

func TestEWiseMultIntersection(t *testing.T) {
	e := NewEngine()
	a := buildFloat(t, 2, 2, map[[2]int]float64{{0, 0}: 1, {0, 1}: 2})
	b := buildFloat(t, 2, 2, map[[2]int]float64{{0, 1}: 10, {1, 1}: 20})
	c, err := EWiseMult[float64](e, a, b, TimesOp[float64](), nil, false)
	if err != nil {
		t.Fatalf("EWiseMult: %v", err)
	}
	assertEntries(t, c, map[[2]int]float64{
		{0, 1}: 20, // only position present in both
	})
}

func TestEWiseAddMasked(t *testing.T) {
	e := NewEngine()
	a := buildFloat(t, 2, 2, map[[2]int]float64{{0, 0}: 1})
	b := buildFloat(t, 2, 2, map[[2]int]float64{{1, 1}: 5})
	mask := buildBool(t, 2, 2, map[[2]int]bool{{0, 0}: true})
	c, err := EWiseAdd[float64](e, a, b, PlusMonoid[float64]().Op, mask, false)
	if err != nil {
		t.Fatalf("EWiseAdd: %v", err)
	}
	assertEntries(t, c, map[[2]int]float64{{0, 0}: 1})
}

func TestEWiseDimensionMismatch(t *testing.T) {
	e := NewEngine()
	a := buildFloat(t, 2, 2, map[[2]int]float64{{0, 0}: 1})
	b := buildFloat(t, 3, 3, map[[2]int]float64{{0, 0}: 1})
	if _, err := EWiseAdd[float64](e, a, b, PlusMonoid[float64]().Op, nil, false); err == nil {
		t.Fatal("expected a dimension mismatch error")
	}
}
