package table

import (
	"testing"

	polycipher "github.com/BackendStack21/polycipher-go"
	"github.com/stretchr/testify/require"
)

func runes(rows ...string) [][]rune {
	out := make([][]rune, len(rows))
	for i, r := range rows {
		out[i] = []rune(r)
	}
	return out
}

func cyclic(t *testing.T) *Matrix[rune] {
	t.Helper()
	m, err := NewMatrix([]rune("ABC"), runes("ABC", "BCA", "CAB"), '?')
	require.NoError(t, err)
	return m
}

func TestMatrix_Lookup(t *testing.T) {
	m := cyclic(t)

	require.Equal(t, 'A', m.Lookup(1, 2))
	require.Equal(t, 'A', m.Lookup(-1, 4))
	require.Equal(t, 'B', m.LookupSymbol('A', 'B'))
	require.Equal(t, '?', m.LookupSymbol('A', 'Z'))
	require.Equal(t, '?', m.LookupSymbol('Z', 'A'))
}

func TestMatrix_Vectors(t *testing.T) {
	m := cyclic(t)

	require.Equal(t, []rune("CAB"), m.RowVector(2))
	require.Equal(t, []rune("BCA"), m.ColumnVector(1))
	require.Equal(t, [][]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}, m.IndexMatrix())
	require.Equal(t, []rune("ABC"), m.Base())
}

func TestMatrix_IndexMatrixUnknown(t *testing.T) {
	m, err := NewMatrix([]rune("ABC"), runes("ABC", "DEF"), '?')
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 2}, {-1, -1, -1}}, m.IndexMatrix())
}

func TestMatrix_RotateRows(t *testing.T) {
	m := cyclic(t)
	r := m.RotateRows(1)

	require.Equal(t, runes("CAB", "ABC", "BCA"), r.Rows())
	require.Equal(t, runes("ABC", "BCA", "CAB"), m.Rows(), "source must not change")
}

func TestMatrix_MirrorRows(t *testing.T) {
	m, err := NewMatrix([]rune("ABC"), runes("ABC", "BCA"), '?')
	require.NoError(t, err)

	require.Equal(t, runes("CBA", "ACB"), m.MirrorRows().Rows())
}

func TestMatrix_Transpose(t *testing.T) {
	m, err := NewMatrix([]rune("ABC"), runes("ABC", "CAB", "BCA"), '?')
	require.NoError(t, err)

	tr, err := m.Transpose()
	require.NoError(t, err)
	require.Equal(t, runes("ACB", "BAC", "CBA"), tr.Rows())
	require.Equal(t, m.Base(), tr.Base())

	back, err := tr.Transpose()
	require.NoError(t, err)
	require.Equal(t, m.Rows(), back.Rows())
}

func TestMatrix_TransposeSwapsLookupRoles(t *testing.T) {
	tbl, err := NewRotationTable(mustAlphabet(t, "ABCDE"), 1, polycipher.ModeNormal)
	require.NoError(t, err)
	m := tbl.Matrix()

	tr, err := m.Transpose()
	require.NoError(t, err)
	require.Equal(t, []rune("ABCDE"), tr.Base())
	require.Equal(t, 'C', m.LookupSymbol('D', 'B'))
	require.Equal(t, 'C', tr.LookupSymbol('B', 'D'))
	for _, p := range "ABCDE" {
		for _, k := range "ABCDE" {
			require.Equal(t, m.LookupSymbol(k, p), tr.LookupSymbol(p, k), "plain %c key %c", p, k)
		}
	}
}

func TestMatrix_TransposeRejectsNonSquare(t *testing.T) {
	m, err := NewMatrix([]rune("ABC"), runes("ABC", "DEF"), '?')
	require.NoError(t, err)

	_, err = m.Transpose()
	require.ErrorIs(t, err, polycipher.ErrShapeMismatch)
}

func TestMatrix_ShapeMismatch(t *testing.T) {
	_, err := NewMatrix([]rune("ABC"), runes("ABC", "AB"), '?')
	require.ErrorIs(t, err, polycipher.ErrShapeMismatch)

	_, err = NewMatrix([]rune{}, runes("ABC"), '?')
	require.ErrorIs(t, err, polycipher.ErrEmptySequence)

	_, err = NewMatrix([]rune("ABC"), nil, '?')
	require.ErrorIs(t, err, polycipher.ErrEmptySequence)
}

func TestMatrix_Reorder(t *testing.T) {
	m := cyclic(t)

	rows := m.ReorderRows(1)
	require.Equal(t, []rune("CAB"), rows.RowVector(0))
	require.Equal(t, m.Rows(), rows.ReorderRows(-1).Rows())

	cols, err := NewMatrix([]rune("ABC"), runes("ABC", "CBA", "BCA"), '?')
	require.NoError(t, err)
	require.Equal(t, []rune("CAB"), cols.ReorderColumns(1).RowVector(0))
}

func TestMatrix_CopiesInput(t *testing.T) {
	rows := runes("ABC", "BCA")
	m, err := NewMatrix([]rune("ABC"), rows, '?')
	require.NoError(t, err)

	rows[0][0] = 'Z'
	require.Equal(t, 'A', m.Lookup(0, 0))
}
