package graphblas

import "testing"

func buildDense2x3(t *testing.T) *Matrix[float64] {
	t.Helper()
	m, err := Build[float64](2, 3, true,
		[]int{0, 0, 0, 1, 1, 1},
		[]int{0, 1, 2, 0, 1, 2},
		[]float64{1, 2, 3, 4, 5, 6},
		Second[float64]())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return m
}

func TestTransposeBucket(t *testing.T) {
	m := buildDense2x3(t)
	tr := transposeBucket(m)
	checkTranspose(t, m, tr)
}

func TestTransposeQuicksort(t *testing.T) {
	m := buildDense2x3(t)
	tr := transposeQuicksort(m)
	checkTranspose(t, m, tr)
}

func TestTransposeDispatch(t *testing.T) {
	m := buildDense2x3(t)
	tr := Transpose(m)
	checkTranspose(t, m, tr)
}

func TestTransposeView(t *testing.T) {
	m := buildDense2x3(t)
	tv, err := TransposeView(m)
	if err != nil {
		t.Fatalf("TransposeView: %v", err)
	}
	checkTranspose(t, m, tv)
}

func TestTransposeViewCopyOnWrite(t *testing.T) {
	m := buildDense2x3(t)
	tv, err := TransposeView(m)
	if err != nil {
		t.Fatalf("TransposeView: %v", err)
	}
	if !tv.i.shallow || !tv.x.shallow {
		t.Fatalf("TransposeView did not borrow m's storage")
	}
	if err := tv.SetElement(0, 0, 999); err != nil {
		t.Fatalf("SetElement: %v", err)
	}
	orig, err := m.GetElement(0, 0)
	if err != nil || orig != 1 {
		t.Fatalf("m(0,0) = %v, %v, want 1 unchanged after mutating the view", orig, err)
	}
	mutated, err := tv.GetElement(0, 0)
	if err != nil || mutated != 999 {
		t.Fatalf("tv(0,0) = %v, %v, want 999", mutated, err)
	}
}

func TestTransposeViewRejectsPendingTuples(t *testing.T) {
	m := buildDense2x3(t)
	m.pending = append(m.pending, pendingTuple[float64]{i: 0, j: 0, value: 5})
	if _, err := TransposeView(m); err == nil {
		t.Fatal("TransposeView: want error for a matrix with pending tuples")
	}
}

func checkTranspose(t *testing.T, m, tr *Matrix[float64]) {
	t.Helper()
	mRows, mCols := m.Dims()
	trRows, trCols := tr.Dims()
	if trRows != mCols || trCols != mRows {
		t.Fatalf("transpose dims = %dx%d, want %dx%d", trRows, trCols, mCols, mRows)
	}
	for i := 0; i < mRows; i++ {
		for j := 0; j < mCols; j++ {
			v, err := m.GetElement(i, j)
			if err != nil {
				continue
			}
			tv, err := tr.GetElement(j, i)
			if err != nil {
				t.Fatalf("transpose missing (%d,%d): %v", j, i, err)
			}
			if tv != v {
				t.Fatalf("transpose(%d,%d) = %v, want %v", j, i, tv, v)
			}
		}
	}
}
