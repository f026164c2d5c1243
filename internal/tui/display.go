package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/cic/internal/core/editor"
	"github.com/colonyops/cic/internal/core/grid"
	"github.com/colonyops/cic/internal/core/styles"
	"github.com/colonyops/cic/internal/tui/components"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// reservedRows are the status and prompt lines below the table.
	reservedRows = 2

	cellGap = " "
)

// Display is the lipgloss implementation of editor.Display. Each Render call
// replaces one section of the frame; View joins the sections.
type Display struct {
	width  int
	height int

	table  []string
	status string
	prompt string
}

var _ editor.Display = (*Display)(nil)

// NewDisplay creates a display for a terminal of the given size.
func NewDisplay(width, height int) *Display {
	d := &Display{}
	d.SetSize(width, height)
	return d
}

// SetSize records the terminal size. Non-positive values keep the defaults.
func (d *Display) SetSize(width, height int) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	d.width, d.height = width, height
}

// VisibleRows is the number of table rows that fit above the status line.
func (d *Display) VisibleRows() int {
	return max(d.height-reservedRows, 1)
}

// RenderTable draws the rows visible from the viewport anchor with a row
// index gutter. The cursor cell is drawn in reverse video.
func (d *Display) RenderTable(g *grid.Grid, c editor.Cursor, v editor.Viewport) {
	widths := g.ColumnWidths()
	gutter := len(strconv.Itoa(g.Height()))
	last := v.Last(d.VisibleRows(), g.Height())

	d.table = d.table[:0]
	for y := v.Y; y <= last; y++ {
		var sb strings.Builder
		sb.WriteString(styles.RowIndexStyle.Render(components.PadRight(strconv.Itoa(y), gutter)))
		sb.WriteString("  ")

		for x, w := range widths {
			text := components.PadRight(g.Get(y, x), max(w, 1))
			switch {
			case y == c.Y && x == c.X:
				sb.WriteString(styles.CursorCellStyle.Render(text))
			case y == 0:
				sb.WriteString(styles.HeaderCellStyle.Render(text))
			default:
				sb.WriteString(styles.CellStyle.Render(text))
			}
			sb.WriteString(cellGap)
		}

		d.table = append(d.table, ansi.Truncate(sb.String(), d.width, ""))
	}
}

// RenderStatus draws the full-width status bar, in the error style when the
// last action failed.
func (d *Display) RenderStatus(label string, failed bool) {
	text := components.PadRight(ansi.Truncate(" "+label, d.width, "…"), d.width)
	if failed {
		d.status = styles.StatusErrorStyle.Render(text)
		return
	}
	d.status = styles.StatusBarStyle.Render(text)
}

// RenderPrompt draws the prompt line: prefix, buffer and a block cursor.
func (d *Display) RenderPrompt(prefix, buffer string) {
	line := styles.PromptPrefixStyle.Render(prefix) +
		styles.PromptTextStyle.Render(buffer) +
		styles.CursorCellStyle.Render(" ")
	d.prompt = ansi.TruncateLeft(line, max(ansi.StringWidth(line)-d.width, 0), "")
}

// ClearPrompt blanks the prompt line.
func (d *Display) ClearPrompt() {
	d.prompt = ""
}

// View returns the composed frame: table rows padded to the visible height,
// then the status and prompt lines.
func (d *Display) View() string {
	lines := make([]string, 0, d.height)
	lines = append(lines, d.table...)
	for len(lines) < d.VisibleRows() {
		lines = append(lines, "")
	}
	lines = append(lines, d.status, d.prompt)
	return strings.Join(lines, "\n")
}
