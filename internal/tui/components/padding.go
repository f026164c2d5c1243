package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

const maxCachedPad = 256

// paddingCache holds strings of 0..maxCachedPad spaces. Table rows pad every
// cell on every frame.
var (
	paddingCache [maxCachedPad + 1]string
	paddingOnce  sync.Once
)

func initPaddingCache() {
	spaces := strings.Repeat(" ", maxCachedPad)
	for i := range paddingCache {
		paddingCache[i] = spaces[:i]
	}
}

// Pad returns a string of n spaces.
func Pad(n int) string {
	if n <= 0 {
		return ""
	}
	if n <= maxCachedPad {
		paddingOnce.Do(initPaddingCache)
		return paddingCache[n]
	}
	return strings.Repeat(" ", n)
}

// PadRight pads s with spaces to the given display width. Strings already
// at least that wide are returned unchanged.
func PadRight(s string, width int) string {
	return s + Pad(width-ansi.StringWidth(s))
}
