package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/cic/internal/core/action"
	"github.com/colonyops/cic/internal/core/editor"
	"github.com/colonyops/cic/pkg/tuitest"
)

func TestMapKey_Navigation(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyPressMsg
		want []action.Action
	}{
		{"h", tuitest.KeyText("h"), []action.Action{action.Move(action.Left)}},
		{"j", tuitest.KeyText("j"), []action.Action{action.Move(action.Down)}},
		{"down arrow", tuitest.KeyDown(), []action.Action{action.Move(action.Down)}},
		{"k", tuitest.KeyText("k"), []action.Action{action.Move(action.Up)}},
		{"l", tuitest.KeyText("l"), []action.Action{action.Move(action.Right)}},
		{"g", tuitest.KeyText("g"), []action.Action{action.Move(action.Top)}},
		{"G", tuitest.KeyText("G"), []action.Action{action.Move(action.Bottom)}},
		{"0", tuitest.KeyText("0"), []action.Action{action.Move(action.LineStart)}},
		{"$", tuitest.KeyText("$"), []action.Action{action.Move(action.LineEnd)}},
		{"o", tuitest.KeyText("o"), []action.Action{action.AddRowAfter(), action.Move(action.Down)}},
		{"O", tuitest.KeyText("O"), []action.Action{action.AddRowBefore()}},
		{"D", tuitest.KeyText("D"), []action.Action{action.DeleteRow()}},
		{"I", tuitest.KeyText("I"), []action.Action{action.EnterInsert()}},
		{"a", tuitest.KeyText("a"), []action.Action{action.EnterPrompt(action.AppendCell)}},
		{"c", tuitest.KeyText("c"), []action.Action{action.EnterPrompt(action.ReplaceCell)}},
		{":", tuitest.KeyText(":"), []action.Action{action.EnterPrompt(action.CommandLine)}},
		{"S", tuitest.KeyText("S"), []action.Action{action.ClearCell()}},
		{"q", tuitest.KeyText("q"), []action.Action{action.Quit()}},
		{"esc", tuitest.KeyEsc(), []action.Action{action.Quit()}},
		{"unbound", tuitest.KeyText("z"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapKey(editor.Navigation, tt.msg))
		})
	}
}

func TestMapKey_Insert(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyPressMsg
		want []action.Action
	}{
		{"text", tuitest.KeyText("j"), []action.Action{action.InsertChar('j')}},
		{"space", tuitest.KeyText(" "), []action.Action{action.InsertChar(' ')}},
		{"multi rune text", tuitest.KeyText("hé"), []action.Action{action.InsertChar('h'), action.InsertChar('é')}},
		{"tab", tuitest.KeyCode(tea.KeyTab), []action.Action{action.Move(action.Right)}},
		{"shift+tab", tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}, []action.Action{action.Move(action.Left)}},
		{"up", tuitest.KeyUp(), []action.Action{action.Move(action.Up)}},
		{"backspace", tuitest.KeyBackspace(), []action.Action{action.InsertBackspace()}},
		{"enter", tuitest.KeyEnter(), []action.Action{action.InsertReturn()}},
		{"esc", tuitest.KeyEsc(), []action.Action{action.InsertExit()}},
		{"ctrl+a ignored", tuitest.KeyCtrl('a'), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapKey(editor.Insert, tt.msg))
		})
	}
}

func TestMapKey_Prompt(t *testing.T) {
	mode := editor.PromptMode(action.CommandLine)

	tests := []struct {
		name string
		msg  tea.KeyPressMsg
		want []action.Action
	}{
		{"text", tuitest.KeyText("w"), []action.Action{action.PromptPush('w')}},
		{"q is text", tuitest.KeyText("q"), []action.Action{action.PromptPush('q')}},
		{"backspace", tuitest.KeyBackspace(), []action.Action{action.PromptBackspace()}},
		{"enter", tuitest.KeyEnter(), []action.Action{action.PromptSubmit()}},
		{"esc", tuitest.KeyEsc(), []action.Action{action.PromptExit()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapKey(mode, tt.msg))
		})
	}
}

func TestMapKey_CtrlCQuitsEverywhere(t *testing.T) {
	modes := []editor.Mode{editor.Navigation, editor.Insert, editor.PromptMode(action.ReplaceCell)}
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			assert.Equal(t, []action.Action{action.Quit()}, MapKey(mode, tuitest.KeyCtrl('c')))
		})
	}
}

func TestHelpSections(t *testing.T) {
	sections := helpSections()
	assert.Len(t, sections, 3)
	assert.Equal(t, "Movement Mode", sections[0].Title)
	assert.Len(t, sections[0].Entries, len(navigationBindings)+1)
	assert.Equal(t, "h/←", sections[0].Entries[0].Key)
}
