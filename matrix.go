package mathhook

import (
	"fmt"
	"strings"
)

// Matrix is a rows×cols grid of expressions. The core treats it opaquely:
// simplification canonicalizes each entry, nothing more. Matrix algebra
// (products, determinants, inverses) belongs to the matrix module consuming
// this package.
type Matrix struct {
	rows, cols int
	data       [][]Expr
}

// NewMatrix returns a rows×cols matrix of zeros.
func NewMatrix(rows, cols int) *Matrix {
	data := make([][]Expr, rows)
	for i := range data {
		data[i] = make([]Expr, cols)
		for j := range data[i] {
			data[i][j] = N(0)
		}
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

// MatrixFromSlice builds a matrix from entries in row-major order.
func MatrixFromSlice(rows, cols int, entries []Expr) *Matrix {
	if len(entries) != rows*cols {
		panic(fmt.Sprintf("mathhook: MatrixFromSlice needs %d entries, got %d", rows*cols, len(entries)))
	}
	m := NewMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[i][j] = entries[i*cols+j]
		}
	}
	return m
}

func (m *Matrix) checkBounds(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("mathhook: matrix index out of range [%d,%d] for %dx%d", row, col, m.rows, m.cols))
	}
}

func (m *Matrix) Get(row, col int) Expr {
	m.checkBounds(row, col)
	return m.data[row][col]
}

// Set assigns an entry. Matrices are mutable during construction only; a
// matrix handed to Simplify or shared across goroutines must not be written.
func (m *Matrix) Set(row, col int, val Expr) {
	m.checkBounds(row, col)
	m.data[row][col] = val
}

func (m *Matrix) Rows() int  { return m.rows }
func (m *Matrix) Cols() int  { return m.cols }
func (m *Matrix) Kind() Kind { return KindMatrix }

// Transpose returns a new transposed matrix sharing the entry expressions.
func (m *Matrix) Transpose() *Matrix {
	out := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j][i] = m.data[i][j]
		}
	}
	return out
}

func (m *Matrix) Equal(other Expr) bool {
	o, ok := other.(*Matrix)
	if !ok || m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if !m.data[i][j].Equal(o.data[i][j]) {
				return false
			}
		}
	}
	return true
}

func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i][j].String())
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}

func (m *Matrix) LaTeX() string {
	var sb strings.Builder
	sb.WriteString(`\begin{pmatrix}`)
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteString(` \\ `)
		}
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(" & ")
			}
			sb.WriteString(m.data[i][j].LaTeX())
		}
	}
	sb.WriteString(`\end{pmatrix}`)
	return sb.String()
}
