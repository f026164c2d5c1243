package action

// Type identifies the kind of action the dispatcher applies.
type Type int

const (
	TypeNone Type = iota
	TypeMove
	TypeEnterPrompt
	TypePromptPush
	TypePromptBackspace
	TypePromptSubmit
	TypePromptExit
	TypePromptSet
	TypeEnterInsert
	TypeInsertChar
	TypeInsertBackspace
	TypeInsertReturn
	TypeInsertExit
	TypeClearCell
	TypeAddRowBefore
	TypeAddRowAfter
	TypeDeleteRow
	TypeAddColBefore
	TypeAddColAfter
	TypeDeleteCol
	TypeSave
	TypeQuit
)

var typeNames = map[Type]string{
	TypeNone:            "none",
	TypeMove:            "move",
	TypeEnterPrompt:     "enter-prompt",
	TypePromptPush:      "prompt-push",
	TypePromptBackspace: "prompt-backspace",
	TypePromptSubmit:    "prompt-submit",
	TypePromptExit:      "prompt-exit",
	TypePromptSet:       "prompt-set",
	TypeEnterInsert:     "enter-insert",
	TypeInsertChar:      "insert-char",
	TypeInsertBackspace: "insert-backspace",
	TypeInsertReturn:    "insert-return",
	TypeInsertExit:      "insert-exit",
	TypeClearCell:       "clear-cell",
	TypeAddRowBefore:    "add-row-before",
	TypeAddRowAfter:     "add-row-after",
	TypeDeleteRow:       "delete-row",
	TypeAddColBefore:    "add-col-before",
	TypeAddColAfter:     "add-col-after",
	TypeDeleteCol:       "delete-col",
	TypeSave:            "save",
	TypeQuit:            "quit",
}

// String returns the kebab-case name used in logs.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Direction is the target of a cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	Top
	Bottom
	LineStart
	LineEnd
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case LineStart:
		return "line-start"
	case LineEnd:
		return "line-end"
	default:
		return "unknown"
	}
}

// PromptKind selects what a submitted prompt buffer is used for.
type PromptKind int

const (
	ReplaceCell PromptKind = iota
	AppendCell
	CommandLine
)

func (k PromptKind) String() string {
	switch k {
	case ReplaceCell:
		return "replace-cell"
	case AppendCell:
		return "append-cell"
	case CommandLine:
		return "command-line"
	default:
		return "unknown"
	}
}
