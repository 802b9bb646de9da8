package graphblas

import "testing"

func TestBuildBasic(t *testing.T) {
	m, err := Build[float64](3, 3, true,
		[]int{0, 1, 2}, []int{0, 1, 2}, []float64{1, 2, 3}, Second[float64]())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m.Nvals() != 3 {
		t.Fatalf("Nvals() = %d, want 3", m.Nvals())
	}
	for i := 0; i < 3; i++ {
		v, err := m.GetElement(i, i)
		if err != nil {
			t.Fatalf("GetElement(%d,%d): %v", i, i, err)
		}
		if v != float64(i+1) {
			t.Fatalf("GetElement(%d,%d) = %v, want %v", i, i, v, i+1)
		}
	}
}

func TestBuildDuplicatesOpdupOrder(t *testing.T) {
	// Second (last-write-wins) over an explicit insertion order: the
	// later tuple for a given coordinate always wins.
	m, err := Build[float64](1, 1, true,
		[]int{0, 0, 0}, []int{0, 0, 0}, []float64{10, 20, 30}, Second[float64]())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	v, err := m.GetElement(0, 0)
	if err != nil {
		t.Fatalf("GetElement: %v", err)
	}
	if v != 30 {
		t.Fatalf("GetElement(0,0) = %v, want 30 (last write wins)", v)
	}
}

func TestBuildDuplicatesSum(t *testing.T) {
	m, err := Build[float64](1, 1, true,
		[]int{0, 0, 0}, []int{0, 0, 0}, []float64{10, 20, 30}, PlusMonoid[float64]().Op)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	v, err := m.GetElement(0, 0)
	if err != nil {
		t.Fatalf("GetElement: %v", err)
	}
	if v != 60 {
		t.Fatalf("GetElement(0,0) = %v, want 60", v)
	}
}

func TestBuildOutOfBounds(t *testing.T) {
	_, err := Build[float64](2, 2, true, []int{5}, []int{0}, []float64{1}, Second[float64]())
	if err == nil {
		t.Fatal("expected an out-of-bounds error, got nil")
	}
}

func TestBuildHypersparseDecision(t *testing.T) {
	// A single entry in a 1000-vector matrix is well below the default
	// hyper ratio, so Build should produce a hypersparse result.
	m, err := Build[float64](1000, 1000, true, []int{3}, []int{7}, []float64{1}, Second[float64]())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !m.IsHypersparse() {
		t.Fatal("expected hypersparse result for a very sparse matrix")
	}
}
