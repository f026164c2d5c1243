package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewport_Align(t *testing.T) {
	tests := []struct {
		name    string
		start   Viewport
		cursorY int
		visible int
		want    Viewport
	}{
		{"cursor visible", Viewport{Y: 2}, 4, 5, Viewport{Y: 2}},
		{"cursor above", Viewport{Y: 5}, 3, 5, Viewport{Y: 3}},
		{"cursor below", Viewport{Y: 0}, 7, 5, Viewport{Y: 3}},
		{"last visible row", Viewport{Y: 0}, 4, 5, Viewport{Y: 0}},
		{"zero visible acts as one", Viewport{Y: 0}, 3, 0, Viewport{Y: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Align(tt.cursorY, tt.visible)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, got.Align(tt.cursorY, tt.visible), "align is idempotent")
		})
	}
}

func TestViewport_Last(t *testing.T) {
	assert.Equal(t, 4, Viewport{Y: 0}.Last(5, 10))
	assert.Equal(t, 9, Viewport{Y: 7}.Last(5, 10))
	assert.Equal(t, 1, Viewport{Y: 0}.Last(5, 2))
	assert.Equal(t, 3, Viewport{Y: 3}.Last(0, 10))
}
