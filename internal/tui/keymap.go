package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/cic/internal/core/action"
	"github.com/colonyops/cic/internal/core/editor"
	"github.com/colonyops/cic/internal/tui/components"
)

// Key constants for event handling.
const (
	keyCtrlC = "ctrl+c"
	keyHelp  = "?"
)

// binding maps one key binding to the actions it produces.
type binding struct {
	key     key.Binding
	actions []action.Action
}

func bind(keys []string, help, desc string, actions ...action.Action) binding {
	return binding{
		key:     key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc)),
		actions: actions,
	}
}

var navigationBindings = []binding{
	bind([]string{"h", "left"}, "h/←", "move left", action.Move(action.Left)),
	bind([]string{"j", "down"}, "j/↓", "move down", action.Move(action.Down)),
	bind([]string{"k", "up"}, "k/↑", "move up", action.Move(action.Up)),
	bind([]string{"l", "right"}, "l/→", "move right", action.Move(action.Right)),
	bind([]string{"g"}, "g", "first row", action.Move(action.Top)),
	bind([]string{"G"}, "G", "last row", action.Move(action.Bottom)),
	bind([]string{"0"}, "0", "first column", action.Move(action.LineStart)),
	bind([]string{"$"}, "$", "last column", action.Move(action.LineEnd)),
	bind([]string{"o"}, "o", "add row below", action.AddRowAfter(), action.Move(action.Down)),
	bind([]string{"O"}, "O", "add row above", action.AddRowBefore()),
	bind([]string{"D"}, "D", "delete row", action.DeleteRow()),
	bind([]string{"I"}, "I", "insert mode", action.EnterInsert()),
	bind([]string{"a"}, "a", "append to cell", action.EnterPrompt(action.AppendCell)),
	bind([]string{"c"}, "c", "replace cell", action.EnterPrompt(action.ReplaceCell)),
	bind([]string{":"}, ":", "command line", action.EnterPrompt(action.CommandLine)),
	bind([]string{"S"}, "S", "clear cell", action.ClearCell()),
	bind([]string{"esc", "q"}, "esc/q", "quit", action.Quit()),
}

var insertBindings = []binding{
	bind([]string{"up"}, "↑", "move up", action.Move(action.Up)),
	bind([]string{"down"}, "↓", "move down", action.Move(action.Down)),
	bind([]string{"left", "shift+tab"}, "←/shift+tab", "move left", action.Move(action.Left)),
	bind([]string{"right", "tab"}, "→/tab", "move right", action.Move(action.Right)),
	bind([]string{"backspace"}, "backspace", "delete character", action.InsertBackspace()),
	bind([]string{"enter"}, "enter", "next row", action.InsertReturn()),
	bind([]string{"esc"}, "esc", "movement mode", action.InsertExit()),
}

// History keys only apply on the command line; the model resolves them
// against the command history.
var (
	historyPrevKey = key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑/ctrl+p", "previous command"))
	historyNextKey = key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓/ctrl+n", "next command"))
)

var promptBindings = []binding{
	bind([]string{"backspace"}, "backspace", "delete character", action.PromptBackspace()),
	bind([]string{"enter"}, "enter", "submit", action.PromptSubmit()),
	bind([]string{"esc"}, "esc", "cancel", action.PromptExit()),
}

// MapKey translates a key press into the actions it means in mode. Printable
// input that matches no binding becomes character actions in Insert and
// Prompt modes. ctrl+c quits from any mode.
func MapKey(mode editor.Mode, msg tea.KeyPressMsg) []action.Action {
	if msg.String() == keyCtrlC {
		return []action.Action{action.Quit()}
	}

	switch mode.Kind {
	case editor.ModeNavigation:
		return lookup(navigationBindings, msg)
	case editor.ModeInsert:
		if actions := lookup(insertBindings, msg); actions != nil {
			return actions
		}
		return textActions(msg, action.InsertChar)
	case editor.ModePrompt:
		if actions := lookup(promptBindings, msg); actions != nil {
			return actions
		}
		return textActions(msg, action.PromptPush)
	}
	return nil
}

func lookup(bindings []binding, msg tea.KeyPressMsg) []action.Action {
	for _, b := range bindings {
		if key.Matches(msg, b.key) {
			return b.actions
		}
	}
	return nil
}

func textActions(msg tea.KeyPressMsg, mk func(rune) action.Action) []action.Action {
	if msg.Text == "" || msg.Mod.Contains(tea.ModCtrl) || msg.Mod.Contains(tea.ModAlt) {
		return nil
	}

	actions := make([]action.Action, 0, len(msg.Text))
	for _, r := range msg.Text {
		if r < ' ' || r == 0x7f {
			continue
		}
		actions = append(actions, mk(r))
	}
	if len(actions) == 0 {
		return nil
	}
	return actions
}

// helpSections lists the bindings of every mode for the help dialog.
func helpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{
		{Title: "Movement Mode", Entries: helpEntries(navigationBindings, components.HelpEntry{Key: keyHelp, Desc: "toggle help"})},
		{Title: "Insert Mode", Entries: helpEntries(insertBindings, components.HelpEntry{Key: "text", Desc: "append to cell"})},
		{Title: "Prompt", Entries: helpEntries(promptBindings,
			components.HelpEntry{Key: "text", Desc: "append to buffer"},
			keyHelpEntry(historyPrevKey),
			keyHelpEntry(historyNextKey),
		)},
	}
}

func helpEntries(bindings []binding, extra ...components.HelpEntry) []components.HelpEntry {
	entries := make([]components.HelpEntry, 0, len(bindings)+len(extra))
	for _, b := range bindings {
		entries = append(entries, keyHelpEntry(b.key))
	}
	return append(entries, extra...)
}

func keyHelpEntry(k key.Binding) components.HelpEntry {
	h := k.Help()
	return components.HelpEntry{Key: h.Key, Desc: h.Desc}
}
