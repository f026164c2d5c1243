package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *Grid {
	t.Helper()
	g, err := FromRows([][]string{
		{"name", "qty"},
		{"apple", "3"},
		{"pear", "12"},
	})
	require.NoError(t, err)
	return g
}

func requireRectangular(t *testing.T, g *Grid) {
	t.Helper()
	for i, row := range g.Rows() {
		require.Len(t, row, g.Width(), "row %d", i)
	}
	require.GreaterOrEqual(t, g.Width(), 1)
	require.GreaterOrEqual(t, g.Height(), 1)
}

func TestNew(t *testing.T) {
	g := New()
	w, h := g.Dims()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
	assert.Empty(t, g.Get(0, 0))
}

func TestFromRows(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]string
		wantErr error
	}{
		{name: "rectangular", rows: [][]string{{"a", "b"}, {"1", "2"}}},
		{name: "no rows", rows: nil, wantErr: ErrEmpty},
		{name: "no columns", rows: [][]string{{}}, wantErr: ErrEmpty},
		{name: "ragged", rows: [][]string{{"a", "b"}, {"1"}}, wantErr: ErrRagged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromRows(tt.rows)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			requireRectangular(t, g)
		})
	}
}

func TestFromRows_CopiesInput(t *testing.T) {
	rows := [][]string{{"a"}}
	g, err := FromRows(rows)
	require.NoError(t, err)

	rows[0][0] = "changed"
	assert.Equal(t, "a", g.Get(0, 0))

	out := g.Rows()
	out[0][0] = "changed"
	assert.Equal(t, "a", g.Get(0, 0))
}

func TestGetUpdateClear(t *testing.T) {
	g := sample(t)

	assert.Equal(t, "apple", g.Get(1, 0))
	assert.Empty(t, g.Get(10, 0))

	require.NoError(t, g.Update(1, 1, "4"))
	assert.Equal(t, "4", g.Get(1, 1))

	require.NoError(t, g.Clear(1, 1))
	assert.Empty(t, g.Get(1, 1))

	require.ErrorIs(t, g.Update(3, 0, "x"), ErrOutOfRange)
	require.ErrorIs(t, g.Update(0, -1, "x"), ErrOutOfRange)
}

func TestRowInsertion(t *testing.T) {
	t.Run("before shifts rows down", func(t *testing.T) {
		g := sample(t)
		require.NoError(t, g.AddRowBefore(1))

		assert.Equal(t, 4, g.Height())
		assert.Equal(t, []string{"", ""}, g.Rows()[1])
		assert.Equal(t, "apple", g.Get(2, 0))
		requireRectangular(t, g)
	})

	t.Run("after last row appends", func(t *testing.T) {
		g := sample(t)
		require.NoError(t, g.AddRowAfter(2))

		assert.Equal(t, 4, g.Height())
		assert.Equal(t, []string{"", ""}, g.Rows()[3])
		requireRectangular(t, g)
	})

	t.Run("out of range", func(t *testing.T) {
		g := sample(t)
		require.ErrorIs(t, g.AddRowAfter(3), ErrOutOfRange)
		require.ErrorIs(t, g.AddRowBefore(4), ErrOutOfRange)
		assert.Equal(t, 3, g.Height())
	})
}

func TestDeleteRow(t *testing.T) {
	g := sample(t)
	require.NoError(t, g.DeleteRow(1))
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, "pear", g.Get(1, 0))

	require.NoError(t, g.DeleteRow(0))
	assert.Equal(t, 1, g.Height())

	require.ErrorIs(t, g.DeleteRow(0), ErrLastRow)
	assert.Equal(t, 1, g.Height())
	assert.Equal(t, "pear", g.Get(0, 0))
}

func TestColumnInsertion(t *testing.T) {
	g := sample(t)
	require.NoError(t, g.AddColAfter(0))
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, []string{"name", "", "qty"}, g.Rows()[0])

	require.NoError(t, g.AddColBefore(0))
	assert.Equal(t, []string{"", "apple", "", "3"}, g.Rows()[1])
	requireRectangular(t, g)

	require.ErrorIs(t, g.AddColAfter(4), ErrOutOfRange)
}

func TestDeleteCol(t *testing.T) {
	g := sample(t)
	require.NoError(t, g.DeleteCol(0))
	assert.Equal(t, [][]string{{"qty"}, {"3"}, {"12"}}, g.Rows())

	require.ErrorIs(t, g.DeleteCol(0), ErrLastColumn)
	assert.Equal(t, 1, g.Width())
	requireRectangular(t, g)
}

func TestColumnWidths(t *testing.T) {
	g := sample(t)
	assert.Equal(t, []int{5, 3}, g.ColumnWidths())

	require.NoError(t, g.Update(2, 1, "1234567"))
	assert.Equal(t, []int{5, 7}, g.ColumnWidths())

	require.NoError(t, g.Update(1, 0, "日本"))
	assert.Equal(t, []int{4, 7}, g.ColumnWidths())
}
