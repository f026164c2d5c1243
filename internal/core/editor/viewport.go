package editor

// Viewport is the vertical scroll anchor: Y is the first visible row.
type Viewport struct {
	Y int
}

// Align returns the viewport adjusted so that row cursorY is one of the
// visible rows. visible below 1 is treated as 1. Aligning an already
// aligned viewport returns it unchanged.
func (v Viewport) Align(cursorY, visible int) Viewport {
	visible = max(visible, 1)
	switch {
	case cursorY < v.Y:
		v.Y = cursorY
	case cursorY > v.Y+visible-1:
		v.Y = cursorY - visible + 1
	}
	return v
}

// Last returns the index of the last visible row for a grid of height rows.
func (v Viewport) Last(visible, height int) int {
	return min(v.Y+max(visible, 1), height) - 1
}
