// Package action defines the closed vocabulary of editor operations. Key
// mappers produce actions and the editor session is the only consumer.
package action

import "fmt"

// Action is a single semantic operation. Only the fields relevant to Type
// are set: Direction for TypeMove, Prompt for TypeEnterPrompt, Char for
// TypePromptPush and TypeInsertChar, Text for TypePromptSet, Path for
// TypeSave (empty means the edited file).
type Action struct {
	Type      Type
	Direction Direction
	Prompt    PromptKind
	Char      rune
	Text      string
	Path      string
}

// String renders the action for logs, e.g. "move(down)".
func (a Action) String() string {
	switch a.Type {
	case TypeMove:
		return fmt.Sprintf("%s(%s)", a.Type, a.Direction)
	case TypeEnterPrompt:
		return fmt.Sprintf("%s(%s)", a.Type, a.Prompt)
	case TypePromptPush, TypeInsertChar:
		return fmt.Sprintf("%s(%q)", a.Type, a.Char)
	case TypePromptSet:
		return fmt.Sprintf("%s(%q)", a.Type, a.Text)
	case TypeSave:
		if a.Path != "" {
			return fmt.Sprintf("%s(%s)", a.Type, a.Path)
		}
	}
	return a.Type.String()
}

func Move(d Direction) Action        { return Action{Type: TypeMove, Direction: d} }
func EnterPrompt(k PromptKind) Action { return Action{Type: TypeEnterPrompt, Prompt: k} }
func PromptPush(r rune) Action        { return Action{Type: TypePromptPush, Char: r} }
func PromptBackspace() Action         { return Action{Type: TypePromptBackspace} }
func PromptSubmit() Action            { return Action{Type: TypePromptSubmit} }
func PromptExit() Action              { return Action{Type: TypePromptExit} }
func EnterInsert() Action             { return Action{Type: TypeEnterInsert} }
func InsertChar(r rune) Action        { return Action{Type: TypeInsertChar, Char: r} }
func InsertBackspace() Action         { return Action{Type: TypeInsertBackspace} }
func InsertReturn() Action            { return Action{Type: TypeInsertReturn} }
func InsertExit() Action              { return Action{Type: TypeInsertExit} }
func ClearCell() Action               { return Action{Type: TypeClearCell} }
func AddRowBefore() Action            { return Action{Type: TypeAddRowBefore} }
func AddRowAfter() Action             { return Action{Type: TypeAddRowAfter} }
func DeleteRow() Action               { return Action{Type: TypeDeleteRow} }
func AddColBefore() Action            { return Action{Type: TypeAddColBefore} }
func AddColAfter() Action             { return Action{Type: TypeAddColAfter} }
func DeleteCol() Action               { return Action{Type: TypeDeleteCol} }
func Quit() Action                    { return Action{Type: TypeQuit} }

// PromptSet replaces the prompt buffer with text, as when recalling history.
func PromptSet(text string) Action { return Action{Type: TypePromptSet, Text: text} }

// Save writes the grid to path, or to the edited file when path is empty.
func Save(path string) Action { return Action{Type: TypeSave, Path: path} }
