package editor

import "github.com/colonyops/cic/internal/core/grid"

// Display draws session state. Implementations must not retain g beyond the
// call. RenderStatus reports whether the last dispatched action failed.
type Display interface {
	RenderTable(g *grid.Grid, c Cursor, v Viewport)
	RenderStatus(label string, failed bool)
	RenderPrompt(prefix, buffer string)
	ClearPrompt()
}

// Storage persists a grid.
type Storage interface {
	Save(g *grid.Grid, path string) error
}

// EnterBehavior selects what a carriage return does in Insert mode.
type EnterBehavior string

const (
	// EnterNextRow moves to column 0 of the next row, appending a row when
	// the cursor is on the last one.
	EnterNextRow EnterBehavior = "next_row"
	// EnterDown moves the cursor down one row.
	EnterDown EnterBehavior = "down"
)

// IsValid reports whether b is a known behavior.
func (b EnterBehavior) IsValid() bool {
	return b == EnterNextRow || b == EnterDown
}
