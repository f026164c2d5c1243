// Package tuitest provides testing utilities for TUI components.
package tuitest

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes and trailing whitespace so rendered
// frames can be compared as plain text.
func StripANSI(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		result = append(result, strings.TrimRight(line, " "))
	}
	return strings.TrimRight(strings.Join(result, "\n"), "\n")
}

// KeyText creates a key press message for printable text, as the terminal
// reports a typed character.
func KeyText(s string) tea.KeyPressMsg {
	var code rune
	for _, r := range s {
		code = r
		break
	}
	return tea.KeyPressMsg{Code: code, Text: s}
}

// KeyCode creates a key press message for a special key such as
// tea.KeyEnter or tea.KeyTab.
func KeyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// KeyCtrl creates a ctrl+<r> key press message.
func KeyCtrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

// KeyEnter creates an enter key press message.
func KeyEnter() tea.KeyPressMsg { return KeyCode(tea.KeyEnter) }

// KeyEsc creates an escape key press message.
func KeyEsc() tea.KeyPressMsg { return KeyCode(tea.KeyEscape) }

// KeyBackspace creates a backspace key press message.
func KeyBackspace() tea.KeyPressMsg { return KeyCode(tea.KeyBackspace) }

// KeyDown creates a down arrow key press message.
func KeyDown() tea.KeyPressMsg { return KeyCode(tea.KeyDown) }

// KeyUp creates an up arrow key press message.
func KeyUp() tea.KeyPressMsg { return KeyCode(tea.KeyUp) }

// Type creates one key press message per rune of s.
func Type(s string) []tea.KeyPressMsg {
	msgs := make([]tea.KeyPressMsg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, KeyText(string(r)))
	}
	return msgs
}

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}
