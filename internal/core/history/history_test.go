package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntry_Failed(t *testing.T) {
	assert.False(t, (&Entry{Command: "w"}).Failed())
	assert.True(t, (&Entry{Command: "w", Error: "disk full"}).Failed())
}

func TestNavigator(t *testing.T) {
	n := NewNavigator([]string{"wq", "addcol", "addcol", "w out.csv", ""})
	assert.Equal(t, 3, n.Len(), "duplicates and blanks collapsed")

	got, ok := n.Prev("del")
	assert.True(t, ok)
	assert.Equal(t, "wq", got)

	got, _ = n.Prev(got)
	assert.Equal(t, "addcol", got)

	got, _ = n.Prev(got)
	assert.Equal(t, "w out.csv", got)

	_, ok = n.Prev(got)
	assert.False(t, ok, "oldest entry reached")

	got, _ = n.Next()
	assert.Equal(t, "addcol", got)
	got, _ = n.Next()
	assert.Equal(t, "wq", got)

	got, ok = n.Next()
	assert.True(t, ok)
	assert.Equal(t, "del", got, "draft restored")

	_, ok = n.Next()
	assert.False(t, ok)
}

func TestNavigator_Push(t *testing.T) {
	n := NewNavigator(nil)
	_, ok := n.Prev("")
	assert.False(t, ok)

	n.Push("addrow")
	n.Push("addrow")
	n.Push("w")
	assert.Equal(t, 2, n.Len())

	got, _ := n.Prev("")
	assert.Equal(t, "w", got)

	n.Push("q")
	got, _ = n.Prev("")
	assert.Equal(t, "q", got, "push resets navigation")
}
