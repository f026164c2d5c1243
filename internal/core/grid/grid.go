// Package grid holds the in-memory rectangular table edited by cic.
package grid

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/x/ansi"
)

var (
	// ErrEmpty is returned when a grid would have no rows or no columns.
	ErrEmpty = errors.New("grid must have at least one row and one column")
	// ErrRagged is returned when rows of differing lengths are supplied.
	ErrRagged = errors.New("rows have differing lengths")
	// ErrOutOfRange is returned when a row or column index is outside the grid.
	ErrOutOfRange = errors.New("index out of range")
	// ErrLastRow is returned when deleting the only remaining row.
	ErrLastRow = errors.New("cannot delete the only row")
	// ErrLastColumn is returned when deleting the only remaining column.
	ErrLastColumn = errors.New("cannot delete the only column")
)

// Grid is a non-empty rectangular matrix of string cells. Row 0 is
// conventionally the header row but receives no special treatment.
type Grid struct {
	rows [][]string
}

// New returns the default grid: a single empty cell.
func New() *Grid {
	return &Grid{rows: [][]string{{""}}}
}

// FromRows builds a grid from rows, copying the input. Every row must have
// the same, non-zero, length.
func FromRows(rows [][]string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}

	width := len(rows[0])
	data := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), width, ErrRagged)
		}
		data[i] = slices.Clone(row)
	}

	return &Grid{rows: data}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return len(g.rows[0]) }

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.rows) }

// Dims returns (width, height).
func (g *Grid) Dims() (int, int) { return g.Width(), g.Height() }

// Rows returns a deep copy of the cell matrix.
func (g *Grid) Rows() [][]string {
	out := make([][]string, len(g.rows))
	for i, row := range g.rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// Get returns the cell at (y, x), or "" when the position is outside the grid.
func (g *Grid) Get(y, x int) string {
	if !g.contains(y, x) {
		return ""
	}
	return g.rows[y][x]
}

// Update replaces the cell at (y, x).
func (g *Grid) Update(y, x int, value string) error {
	if !g.contains(y, x) {
		return fmt.Errorf("update (%d,%d): %w", y, x, ErrOutOfRange)
	}
	g.rows[y][x] = value
	return nil
}

// Clear empties the cell at (y, x).
func (g *Grid) Clear(y, x int) error {
	return g.Update(y, x, "")
}

// AddRowBefore inserts an empty row at index y.
func (g *Grid) AddRowBefore(y int) error {
	return g.insertRow(y)
}

// AddRowAfter inserts an empty row at index y+1.
func (g *Grid) AddRowAfter(y int) error {
	if y < 0 || y >= g.Height() {
		return fmt.Errorf("add row after %d: %w", y, ErrOutOfRange)
	}
	return g.insertRow(y + 1)
}

func (g *Grid) insertRow(at int) error {
	if at < 0 || at > g.Height() {
		return fmt.Errorf("insert row at %d: %w", at, ErrOutOfRange)
	}
	g.rows = slices.Insert(g.rows, at, make([]string, g.Width()))
	return nil
}

// DeleteRow removes row y. The only remaining row is never removed.
func (g *Grid) DeleteRow(y int) error {
	if y < 0 || y >= g.Height() {
		return fmt.Errorf("delete row %d: %w", y, ErrOutOfRange)
	}
	if g.Height() == 1 {
		return ErrLastRow
	}
	g.rows = slices.Delete(g.rows, y, y+1)
	return nil
}

// AddColBefore inserts an empty cell at index x in every row.
func (g *Grid) AddColBefore(x int) error {
	return g.insertCol(x)
}

// AddColAfter inserts an empty cell at index x+1 in every row.
func (g *Grid) AddColAfter(x int) error {
	if x < 0 || x >= g.Width() {
		return fmt.Errorf("add column after %d: %w", x, ErrOutOfRange)
	}
	return g.insertCol(x + 1)
}

func (g *Grid) insertCol(at int) error {
	if at < 0 || at > g.Width() {
		return fmt.Errorf("insert column at %d: %w", at, ErrOutOfRange)
	}
	for i := range g.rows {
		g.rows[i] = slices.Insert(g.rows[i], at, "")
	}
	return nil
}

// DeleteCol removes column x from every row. The only remaining column is
// never removed.
func (g *Grid) DeleteCol(x int) error {
	if x < 0 || x >= g.Width() {
		return fmt.Errorf("delete column %d: %w", x, ErrOutOfRange)
	}
	if g.Width() == 1 {
		return ErrLastColumn
	}
	for i := range g.rows {
		g.rows[i] = slices.Delete(g.rows[i], x, x+1)
	}
	return nil
}

// ColumnWidths returns the display width of the widest cell in each column,
// header included. It is recomputed on every call.
func (g *Grid) ColumnWidths() []int {
	widths := make([]int, g.Width())
	for _, row := range g.rows {
		for x, cell := range row {
			widths[x] = max(widths[x], ansi.StringWidth(cell))
		}
	}
	return widths
}

func (g *Grid) contains(y, x int) bool {
	return y >= 0 && y < g.Height() && x >= 0 && x < g.Width()
}
