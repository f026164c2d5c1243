// Package editor implements the modal interaction engine: cursor and
// viewport bookkeeping, the mode state machine and the action dispatcher.
package editor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/colonyops/cic/internal/core/action"
	"github.com/colonyops/cic/internal/core/grid"
	"github.com/colonyops/cic/internal/core/logging"
)

// ErrNoStorage is returned by a save when the session has no Storage.
var ErrNoStorage = errors.New("no storage configured")

// Options configures a Session.
type Options struct {
	Display     Display
	Storage     Storage
	Enter       EnterBehavior   // defaults to EnterNextRow
	VisibleRows int             // rows the display can show, defaults to 1
	Logger      *zerolog.Logger // defaults to the "editor" component logger
}

// Session is the aggregate editor state. It is owned by a single goroutine;
// every mutation goes through Apply.
type Session struct {
	grid     *grid.Grid
	path     string
	cursor   Cursor
	viewport Viewport
	visible  int
	mode     Mode
	buffer   string
	message  string
	err      error
	dirty    bool

	display Display
	storage Storage
	enter   EnterBehavior
	log     zerolog.Logger
}

// New creates a session editing g, which was loaded from path.
func New(g *grid.Grid, path string, opts Options) *Session {
	if g == nil {
		g = grid.New()
	}
	if !opts.Enter.IsValid() {
		opts.Enter = EnterNextRow
	}

	logger := logging.Component("editor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Session{
		grid:    g,
		path:    path,
		visible: max(opts.VisibleRows, 1),
		mode:    Navigation,
		display: opts.Display,
		storage: opts.Storage,
		enter:   opts.Enter,
		log:     logger,
	}
}

func (s *Session) Grid() *grid.Grid   { return s.grid }
func (s *Session) Path() string       { return s.path }
func (s *Session) Cursor() Cursor     { return s.cursor }
func (s *Session) Viewport() Viewport { return s.viewport }
func (s *Session) VisibleRows() int   { return s.visible }
func (s *Session) Mode() Mode         { return s.mode }
func (s *Session) Buffer() string     { return s.buffer }
func (s *Session) Message() string    { return s.message }
func (s *Session) Dirty() bool        { return s.dirty }

// Err returns the error that stopped the last dispatched batch, if any.
func (s *Session) Err() error { return s.err }

// Done reports whether the session reached Exit.
func (s *Session) Done() bool { return s.mode.Kind == ModeExit }

// Resize records the number of visible rows and re-aligns the viewport.
func (s *Session) Resize(visibleRows int) {
	s.visible = max(visibleRows, 1)
	s.align()
}

// Dispatch applies a batch of actions produced by one input event. The batch
// stops at the first failing action; the failure is logged and shown on the
// status line. The previous status message and error are cleared first.
func (s *Session) Dispatch(actions ...action.Action) {
	s.message = ""
	s.err = nil
	for _, a := range actions {
		if err := s.Apply(a); err != nil {
			s.log.Warn().Err(err).Stringer("action", a).Stringer("mode", s.mode).Msg("action failed")
			s.message = "error: " + err.Error()
			s.err = err
			return
		}
	}
}

// Apply performs a single action. Move, Save, Quit and the cell and structural
// mutations apply in any mode. Mode-scoped actions, such as entering a prompt
// or inserting a character, are ignored outside their mode. Compound actions
// re-enter Apply with their primitives.
func (s *Session) Apply(a action.Action) error {
	if s.mode.Kind == ModeExit {
		return nil
	}

	s.log.Debug().Stringer("action", a).Stringer("mode", s.mode).Msg("apply")

	switch a.Type {
	case action.TypeNone:
		return nil
	case action.TypeMove:
		s.cursor = s.cursor.Move(a.Direction, s.grid.Width(), s.grid.Height())
		s.align()
		return nil
	case action.TypeQuit:
		s.mode = Exit
		return nil
	case action.TypeSave:
		return s.save(a.Path)
	case action.TypeClearCell, action.TypeAddRowBefore, action.TypeAddRowAfter, action.TypeDeleteRow,
		action.TypeAddColBefore, action.TypeAddColAfter, action.TypeDeleteCol:
		return s.mutate(a)
	}

	switch s.mode.Kind {
	case ModeNavigation:
		return s.applyNavigation(a)
	case ModeInsert:
		return s.applyInsert(a)
	case ModePrompt:
		return s.applyPrompt(a)
	}
	return nil
}

func (s *Session) applyNavigation(a action.Action) error {
	switch a.Type {
	case action.TypeEnterInsert:
		s.mode = Insert
	case action.TypeEnterPrompt:
		s.mode = PromptMode(a.Prompt)
		s.buffer = ""
		if a.Prompt == action.AppendCell {
			s.buffer = s.currentCell()
		}
	}
	return nil
}

func (s *Session) applyInsert(a action.Action) error {
	switch a.Type {
	case action.TypeInsertChar:
		return s.setCurrentCell(s.currentCell() + string(a.Char))
	case action.TypeInsertBackspace:
		cell := s.currentCell()
		if cell == "" {
			return nil
		}
		return s.setCurrentCell(popRune(cell))
	case action.TypeInsertReturn:
		return s.carriageReturn()
	case action.TypeInsertExit:
		s.mode = Navigation
	}
	return nil
}

func (s *Session) applyPrompt(a action.Action) error {
	switch a.Type {
	case action.TypePromptPush:
		s.buffer += string(a.Char)
	case action.TypePromptBackspace:
		s.buffer = popRune(s.buffer)
	case action.TypePromptSet:
		s.buffer = a.Text
	case action.TypePromptExit:
		s.buffer = ""
		s.mode = Navigation
	case action.TypePromptSubmit:
		return s.submitPrompt()
	}
	return nil
}

// submitPrompt consumes the buffer and returns to Navigation before acting on
// it, so command-line expansions run as if typed in Navigation.
func (s *Session) submitPrompt() error {
	kind, buf := s.mode.Prompt, s.buffer
	s.buffer = ""
	s.mode = Navigation

	switch kind {
	case action.ReplaceCell, action.AppendCell:
		return s.setCurrentCell(buf)
	case action.CommandLine:
		expanded := ParseLine(buf)
		if len(expanded) == 0 {
			s.log.Debug().Str("input", buf).Msg("ignoring unrecognised command")
		}
		for _, sub := range expanded {
			if err := s.Apply(sub); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Session) carriageReturn() error {
	if s.enter == EnterDown {
		return s.Apply(action.Move(action.Down))
	}

	steps := []action.Action{action.Move(action.Down), action.Move(action.LineStart)}
	if s.cursor.Y == s.grid.Height()-1 {
		steps = append([]action.Action{action.AddRowAfter()}, steps...)
	}
	for _, step := range steps {
		if err := s.Apply(step); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) mutate(a action.Action) error {
	x, y := s.cursor.X, s.cursor.Y

	var err error
	switch a.Type {
	case action.TypeClearCell:
		err = s.grid.Clear(y, x)
	case action.TypeAddRowBefore:
		err = s.grid.AddRowBefore(y)
	case action.TypeAddRowAfter:
		err = s.grid.AddRowAfter(y)
	case action.TypeDeleteRow:
		err = s.grid.DeleteRow(y)
	case action.TypeAddColBefore:
		err = s.grid.AddColBefore(x)
	case action.TypeAddColAfter:
		err = s.grid.AddColAfter(x)
	case action.TypeDeleteCol:
		err = s.grid.DeleteCol(x)
	}
	if err != nil {
		return err
	}

	s.dirty = true
	s.cursor = s.cursor.Clamp(s.grid.Width(), s.grid.Height())
	s.align()

	w, h := s.grid.Dims()
	s.log.Debug().Stringer("action", a).Int("width", w).Int("height", h).Msg("grid changed")
	return nil
}

func (s *Session) save(path string) error {
	target := path
	if target == "" {
		target = s.path
	}
	if s.storage == nil {
		return ErrNoStorage
	}
	if err := s.storage.Save(s.grid, target); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	if target == s.path {
		s.dirty = false
	}
	w, h := s.grid.Dims()
	s.message = fmt.Sprintf("%q %dx%d written", filepath.Base(target), h, w)
	s.log.Info().Str("path", target).Int("rows", h).Int("cols", w).Msg("grid saved")
	return nil
}

func (s *Session) currentCell() string {
	return s.grid.Get(s.cursor.Y, s.cursor.X)
}

func (s *Session) setCurrentCell(v string) error {
	if err := s.grid.Update(s.cursor.Y, s.cursor.X, v); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

func (s *Session) align() {
	s.viewport = s.viewport.Align(s.cursor.Y, s.visible)
}

// StatusLabel is the text for the status line: the mode label, file name,
// dirty marker, 1-based position and the last message.
func (s *Session) StatusLabel() string {
	parts := []string{s.mode.Label()}

	name := filepath.Base(s.path)
	if s.path == "" {
		name = "[no name]"
	}
	if s.dirty {
		name += " [+]"
	}
	parts = append(parts, name, fmt.Sprintf("%d:%d", s.cursor.Y+1, s.cursor.X+1))

	if s.message != "" {
		parts = append(parts, s.message)
	}
	return strings.Join(parts, "  ")
}

// Render pushes the current state to the display.
func (s *Session) Render() {
	if s.display == nil {
		return
	}

	s.display.RenderTable(s.grid, s.cursor, s.viewport)
	s.display.RenderStatus(s.StatusLabel(), s.err != nil)
	if s.mode.Kind == ModePrompt {
		s.display.RenderPrompt(s.mode.PromptPrefix(), s.buffer)
	} else {
		s.display.ClearPrompt()
	}
}

func popRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
