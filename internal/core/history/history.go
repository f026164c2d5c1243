// Package history defines command-line history domain types and interfaces.
package history

import (
	"context"
	"time"
)

// Entry represents a submitted command line.
type Entry struct {
	Command   string    `json:"command"`
	File      string    `json:"file,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Failed returns true if the command reported an error.
func (e *Entry) Failed() bool {
	return e.Error != ""
}

// Store persists command history.
type Store interface {
	// List returns all entries, newest first.
	List(ctx context.Context) ([]Entry, error)
	// Save prepends entry, keeping at most maxEntries (0 keeps everything).
	Save(ctx context.Context, entry Entry, maxEntries int) error
}

// Navigator steps through previous commands the way a shell does: Prev walks
// toward older entries, Next back toward the line being typed.
type Navigator struct {
	commands []string // newest first
	pos      int      // -1 is the line being typed
	draft    string
}

// NewNavigator creates a navigator over commands ordered newest first.
// Consecutive duplicates are collapsed.
func NewNavigator(commands []string) *Navigator {
	n := &Navigator{pos: -1}
	for _, c := range commands {
		n.append(c)
	}
	return n
}

func (n *Navigator) append(c string) {
	if c == "" || (len(n.commands) > 0 && n.commands[len(n.commands)-1] == c) {
		return
	}
	n.commands = append(n.commands, c)
}

// Push records a newly submitted command and resets navigation.
func (n *Navigator) Push(c string) {
	n.Reset()
	if c == "" || (len(n.commands) > 0 && n.commands[0] == c) {
		return
	}
	n.commands = append([]string{c}, n.commands...)
}

// Prev returns the next older command. current is the buffer being edited and
// is restored when Next walks past the newest entry. ok is false when there
// is nothing older.
func (n *Navigator) Prev(current string) (string, bool) {
	if n.pos+1 >= len(n.commands) {
		return "", false
	}
	if n.pos == -1 {
		n.draft = current
	}
	n.pos++
	return n.commands[n.pos], true
}

// Next returns the next newer command, or the saved draft once past the
// newest entry. ok is false when already at the draft.
func (n *Navigator) Next() (string, bool) {
	if n.pos == -1 {
		return "", false
	}
	n.pos--
	if n.pos == -1 {
		return n.draft, true
	}
	return n.commands[n.pos], true
}

// Reset returns to the line being typed.
func (n *Navigator) Reset() {
	n.pos = -1
	n.draft = ""
}

// Len returns the number of distinct commands available.
func (n *Navigator) Len() int {
	return len(n.commands)
}
