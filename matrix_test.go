package mathhook_test

import (
	"testing"

	mathhook "github.com/AhmedMashour/mathhook"
)

func TestMatrix_Construction(t *testing.T) {
	m := mathhook.NewMatrix(2, 3)
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("want 2x3, got %dx%d", m.Rows(), m.Cols())
	}
	if !m.Get(1, 2).Equal(mathhook.N(0)) {
		t.Error("new matrices are zero-filled")
	}
	m.Set(0, 1, mathhook.S("x"))
	if m.Get(0, 1).String() != "x" {
		t.Error("Set/Get round trip failed")
	}
}

func TestMatrix_Transpose(t *testing.T) {
	m := mathhook.MatrixFromSlice(2, 3, []mathhook.Expr{
		mathhook.N(1), mathhook.N(2), mathhook.N(3),
		mathhook.N(4), mathhook.N(5), mathhook.N(6),
	})
	got := m.Transpose()
	want := mathhook.MatrixFromSlice(3, 2, []mathhook.Expr{
		mathhook.N(1), mathhook.N(4),
		mathhook.N(2), mathhook.N(5),
		mathhook.N(3), mathhook.N(6),
	})
	if !got.Equal(want) {
		t.Errorf("transpose: got %s", got.String())
	}
}

func TestMatrix_String(t *testing.T) {
	m := mathhook.MatrixFromSlice(2, 2, []mathhook.Expr{
		mathhook.N(1), mathhook.S("x"),
		mathhook.N(0), mathhook.N(1),
	})
	if m.String() != "[[1, x], [0, 1]]" {
		t.Errorf("got %s", m.String())
	}
	if m.LaTeX() != `\begin{pmatrix}1 & x \\ 0 & 1\end{pmatrix}` {
		t.Errorf("got %s", m.LaTeX())
	}
}

func TestMatrix_FromSliceCountMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("entry count mismatch must panic")
		}
	}()
	mathhook.MatrixFromSlice(2, 2, []mathhook.Expr{mathhook.N(1)})
}
