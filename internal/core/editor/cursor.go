package editor

import "github.com/colonyops/cic/internal/core/action"

// Cursor is the selected cell. It always satisfies 0 <= X < width and
// 0 <= Y < height of the grid it was last moved or clamped against.
type Cursor struct {
	X int
	Y int
}

// Move returns the cursor moved in direction d within a width x height grid.
// Movement clamps at the edges and never wraps.
func (c Cursor) Move(d action.Direction, width, height int) Cursor {
	switch d {
	case action.Up:
		c.Y--
	case action.Down:
		c.Y++
	case action.Left:
		c.X--
	case action.Right:
		c.X++
	case action.Top:
		c.Y = 0
	case action.Bottom:
		c.Y = height - 1
	case action.LineStart:
		c.X = 0
	case action.LineEnd:
		c.X = width - 1
	}
	return c.Clamp(width, height)
}

// Clamp pulls the cursor back inside a width x height grid.
func (c Cursor) Clamp(width, height int) Cursor {
	c.X = clamp(c.X, 0, width-1)
	c.Y = clamp(c.Y, 0, height-1)
	return c
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
