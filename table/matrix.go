package table

import (
	"fmt"

	polycipher "github.com/BackendStack21/polycipher-go"
	"github.com/BackendStack21/polycipher-go/rotation"
	"github.com/BackendStack21/polycipher-go/sequence"
)

// Matrix is a 2-D permutation container decoupled from step-based generation.
// Rows may come from mirrored, transposed or reordered tables. Every row has
// the length of the base sequence. Transforms return new matrices.
type Matrix[T comparable] struct {
	base    []T
	rows    [][]T
	index   map[T]int
	unknown T
}

// NewMatrix copies base and rows into a Matrix. It fails with ErrEmptySequence
// when base or rows is empty and ErrShapeMismatch when a row length differs
// from the base length.
func NewMatrix[T comparable](base []T, rows [][]T, unknown T) (*Matrix[T], error) {
	if len(base) == 0 || len(rows) == 0 {
		return nil, fmt.Errorf("matrix: %w", polycipher.ErrEmptySequence)
	}
	if err := checkShape(rows, len(base)); err != nil {
		return nil, fmt.Errorf("matrix: %w", err)
	}
	m := &Matrix[T]{
		base:    append([]T(nil), base...),
		rows:    make([][]T, len(rows)),
		index:   make(map[T]int, len(base)),
		unknown: unknown,
	}
	for i, row := range rows {
		m.rows[i] = append([]T(nil), row...)
	}
	for i := len(base) - 1; i >= 0; i-- {
		m.index[base[i]] = i // first occurrence wins
	}
	return m, nil
}

func checkShape[T any](rows [][]T, width int) error {
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d columns, want %d", polycipher.ErrShapeMismatch, i, len(row), width)
		}
	}
	return nil
}

// Base returns a copy of the base sequence.
func (m *Matrix[T]) Base() []T {
	return append([]T(nil), m.base...)
}

// RowCount returns the number of rows.
func (m *Matrix[T]) RowCount() int {
	return len(m.rows)
}

// Rows returns a copy of every row.
func (m *Matrix[T]) Rows() [][]T {
	out := make([][]T, len(m.rows))
	for i, row := range m.rows {
		out[i] = append([]T(nil), row...)
	}
	return out
}

// Lookup returns the cell at (row, col), both wrapping modulo the row count
// and base length.
func (m *Matrix[T]) Lookup(row, col int) T {
	return m.rows[wrap(row, len(m.rows))][wrap(col, len(m.base))]
}

// LookupSymbol selects the row by the base index of key and the column by the
// base index of plain. Symbols outside the base yield the unknown sentinel.
func (m *Matrix[T]) LookupSymbol(plain, key T) T {
	row, okRow := m.index[key]
	col, okCol := m.index[plain]
	if !okRow || !okCol {
		return m.unknown
	}
	return m.Lookup(row, col)
}

// RowVector returns a copy of row index (wrapping).
func (m *Matrix[T]) RowVector(index int) []T {
	return append([]T(nil), m.rows[wrap(index, len(m.rows))]...)
}

// ColumnVector returns column index (wrapping) read top to bottom.
func (m *Matrix[T]) ColumnVector(index int) []T {
	col := wrap(index, len(m.base))
	out := make([]T, len(m.rows))
	for i, row := range m.rows {
		out[i] = row[col]
	}
	return out
}

// IndexMatrix expresses every cell as its base index, -1 for symbols not in the base.
func (m *Matrix[T]) IndexMatrix() [][]int {
	out := make([][]int, len(m.rows))
	for i, row := range m.rows {
		out[i] = make([]int, len(row))
		for j, v := range row {
			if idx, ok := m.index[v]; ok {
				out[i][j] = idx
			} else {
				out[i][j] = -1
			}
		}
	}
	return out
}

// RotateRows rotates the contents of every row by shift; row order is kept.
func (m *Matrix[T]) RotateRows(shift int) *Matrix[T] {
	rows := make([][]T, len(m.rows))
	for i, row := range m.rows {
		rotated, err := rotation.Rotate(row, shift)
		if err != nil {
			panic(err) // rows are never empty
		}
		rows[i] = rotated
	}
	return m.derive(m.base, rows)
}

// MirrorRows reverses the contents of every row.
func (m *Matrix[T]) MirrorRows() *Matrix[T] {
	rows := make([][]T, len(m.rows))
	for i, row := range m.rows {
		rows[i] = sequence.Apply(sequence.TransformReverse, row)
	}
	return m.derive(m.base, rows)
}

// Transpose swaps rows and columns and keeps the base, so LookupSymbol swaps
// the roles of plain and key. Only square matrices keep the row width equal to
// the base length; any other shape fails with ErrShapeMismatch.
func (m *Matrix[T]) Transpose() (*Matrix[T], error) {
	rows := make([][]T, len(m.base))
	for j := range m.base {
		rows[j] = make([]T, len(m.rows))
		for i, row := range m.rows {
			rows[j][i] = row[j]
		}
	}
	if err := checkShape(rows, len(m.base)); err != nil {
		return nil, fmt.Errorf("transpose: %w", err)
	}
	return NewMatrix(m.base, rows, m.unknown)
}

// ReorderRows cyclically shifts which row occupies which position:
// with shift 1 the last row moves to the top.
func (m *Matrix[T]) ReorderRows(shift int) *Matrix[T] {
	rows, err := rotation.Rotate(m.rows, shift)
	if err != nil {
		panic(err)
	}
	return m.derive(m.base, rows)
}

// ReorderColumns cyclically shifts every column position by shift, the same
// permutation applied to each row.
func (m *Matrix[T]) ReorderColumns(shift int) *Matrix[T] {
	return m.RotateRows(shift)
}

func (m *Matrix[T]) derive(base []T, rows [][]T) *Matrix[T] {
	d, err := NewMatrix(base, rows, m.unknown)
	if err != nil {
		panic(err)
	}
	return d
}
