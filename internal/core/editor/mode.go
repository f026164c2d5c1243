package editor

import "github.com/colonyops/cic/internal/core/action"

// ModeKind is the interaction state of a session.
type ModeKind int

const (
	ModeNavigation ModeKind = iota
	ModeInsert
	ModePrompt
	ModeExit
)

// Mode is the current interaction state. Prompt is only meaningful when
// Kind is ModePrompt.
type Mode struct {
	Kind   ModeKind
	Prompt action.PromptKind
}

var (
	Navigation = Mode{Kind: ModeNavigation}
	Insert     = Mode{Kind: ModeInsert}
	Exit       = Mode{Kind: ModeExit}
)

// PromptMode returns the prompt mode of kind k.
func PromptMode(k action.PromptKind) Mode {
	return Mode{Kind: ModePrompt, Prompt: k}
}

// Label is the status line text for the mode.
func (m Mode) Label() string {
	switch m.Kind {
	case ModeNavigation:
		return "Movement Mode"
	case ModeInsert:
		return "Insert Mode"
	case ModePrompt:
		switch m.Prompt {
		case action.ReplaceCell:
			return "Replace Cell"
		case action.AppendCell:
			return "Append Cell"
		case action.CommandLine:
			return "Command"
		}
	case ModeExit:
		return "Exiting"
	}
	return ""
}

// PromptPrefix is the text shown before the edit buffer on the prompt line.
func (m Mode) PromptPrefix() string {
	if m.Kind != ModePrompt {
		return ""
	}
	if m.Prompt == action.CommandLine {
		return ":"
	}
	return "edit: "
}

func (m Mode) String() string { return m.Label() }
