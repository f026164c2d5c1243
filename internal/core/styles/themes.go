package styles

import (
	"image/color"
	"maps"
	"slices"

	lipgloss "charm.land/lipgloss/v2"
)

// Palette names the colors the editor draws with. Each field is a role in
// the table view rather than a hue.
type Palette struct {
	Header   color.Color // row 0 text
	Cell     color.Color // body cell text
	Gutter   color.Color // row indices and secondary text
	CursorFg color.Color
	CursorBg color.Color
	StatusFg color.Color
	StatusBg color.Color
	Accent   color.Color // prompt prefix, dialog border
	Section  color.Color // help dialog headings
	Error    color.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

var none = lipgloss.NoColor{}

var themes = map[string]Palette{
	"tokyo-night": {
		Header:   lipgloss.Color("#7aa2f7"),
		Cell:     lipgloss.Color("#c0caf5"),
		Gutter:   lipgloss.Color("#565f89"),
		CursorFg: lipgloss.Color("#1a1b26"),
		CursorBg: lipgloss.Color("#7dcfff"),
		StatusFg: lipgloss.Color("#c0caf5"),
		StatusBg: lipgloss.Color("#3b4261"),
		Accent:   lipgloss.Color("#7aa2f7"),
		Section:  lipgloss.Color("#9ece6a"),
		Error:    lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Header:   lipgloss.Color("#fabd2f"),
		Cell:     lipgloss.Color("#ebdbb2"),
		Gutter:   lipgloss.Color("#665c54"),
		CursorFg: lipgloss.Color("#282828"),
		CursorBg: lipgloss.Color("#83a598"),
		StatusFg: lipgloss.Color("#ebdbb2"),
		StatusBg: lipgloss.Color("#3c3836"),
		Accent:   lipgloss.Color("#83a598"),
		Section:  lipgloss.Color("#b8bb26"),
		Error:    lipgloss.Color("#fb4934"),
	},
	"catppuccin": {
		Header:   lipgloss.Color("#89b4fa"), // Blue
		Cell:     lipgloss.Color("#cdd6f4"), // Text
		Gutter:   lipgloss.Color("#6c7086"), // Overlay0
		CursorFg: lipgloss.Color("#1e1e2e"), // Base
		CursorBg: lipgloss.Color("#94e2d5"), // Teal
		StatusFg: lipgloss.Color("#cdd6f4"), // Text
		StatusBg: lipgloss.Color("#313244"), // Surface0
		Accent:   lipgloss.Color("#cba6f7"), // Mauve
		Section:  lipgloss.Color("#a6e3a1"), // Green
		Error:    lipgloss.Color("#f38ba8"), // Red
	},
	// mono leaves the terminal's own colors alone; the cursor and status
	// line fall back to reverse video.
	"mono": {
		Header:   none,
		Cell:     none,
		Gutter:   none,
		CursorFg: none,
		CursorBg: none,
		StatusFg: none,
		StatusBg: none,
		Accent:   none,
		Section:  none,
		Error:    none,
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// monochrome reports whether p carries no colors at all.
func (p Palette) monochrome() bool {
	for _, c := range []color.Color{p.Header, p.Cell, p.CursorBg, p.StatusBg, p.Error} {
		if _, ok := c.(lipgloss.NoColor); !ok {
			return false
		}
	}
	return true
}
