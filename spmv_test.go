package graphblas

import "testing"

func TestMultiplyVectorUntransposed(t *testing.T) {
	a := denseFromBuild(t, 2, 2, map[[2]int]float64{
		{0, 0}: 1, {0, 1}: 2,
		{1, 0}: 3, {1, 1}: 4,
	})
	x := []float64{1, 1}
	y := []float64{0, 0}
	if err := MultiplyVector(a, false, x, y); err != nil {
		t.Fatalf("MultiplyVector: %v", err)
	}
	want := []float64{3, 7} // row 0: 1+2, row 1: 3+4
	for i := range want {
		if y[i] != want[i] {
			t.Fatalf("y[%d] = %v, want %v", i, y[i], want[i])
		}
	}
}

func TestMultiplyVectorTransposed(t *testing.T) {
	a := denseFromBuild(t, 2, 2, map[[2]int]float64{
		{0, 0}: 1, {0, 1}: 2,
		{1, 0}: 3, {1, 1}: 4,
	})
	x := []float64{1, 0}
	y := []float64{0, 0}
	if err := MultiplyVector(a, true, x, y); err != nil {
		t.Fatalf("MultiplyVector: %v", err)
	}
	want := []float64{1, 2} // A' = [[1,3],[2,4]]; A'*[1,0] = [1,2]
	for i := range want {
		if y[i] != want[i] {
			t.Fatalf("y[%d] = %v, want %v", i, y[i], want[i])
		}
	}
}

func TestMultiplyVectorHypersparse(t *testing.T) {
	a, err := Build[float64](100, 100, true, []int{50}, []int{50}, []float64{2}, Second[float64]())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !a.IsHypersparse() {
		t.Fatal("expected hypersparse matrix for this test to exercise the hypersparse path")
	}
	x := make([]float64, 100)
	x[50] = 3
	y := make([]float64, 100)
	if err := MultiplyVector(a, false, x, y); err != nil {
		t.Fatalf("MultiplyVector: %v", err)
	}
	if y[50] != 6 {
		t.Fatalf("y[50] = %v, want 6", y[50])
	}
	for i := range y {
		if i != 50 && y[i] != 0 {
			t.Fatalf("y[%d] = %v, want 0", i, y[i])
		}
	}
}

func TestMultiplyDenseMatchesRepeatedVector(t *testing.T) {
	a := denseFromBuild(t, 2, 2, map[[2]int]float64{
		{0, 0}: 1, {0, 1}: 2,
		{1, 0}: 3, {1, 1}: 4,
	})
	// B is 2x2, row-major with stride ldb=2, two columns: [1,1] and [1,0].
	b := []float64{1, 1, 1, 0}
	c := make([]float64, 4)
	if err := MultiplyDense(a, false, 2, b, 2, c, 2); err != nil {
		t.Fatalf("MultiplyDense: %v", err)
	}
	// c is row-major with stride ldc=2: c[row*2+col].
	if c[0] != 3 || c[2] != 7 {
		t.Fatalf("column 0 (rows 0,1) = [%v %v], want [3 7]", c[0], c[2])
	}
	if c[1] != 1 || c[3] != 3 {
		t.Fatalf("column 1 (rows 0,1) = [%v %v], want [1 3]", c[1], c[3])
	}
}
