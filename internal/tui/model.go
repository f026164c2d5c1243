// Package tui is the bubbletea front end for the table editor. It turns key
// presses into editor actions and draws the session with lipgloss.
package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/cic/internal/core/action"
	"github.com/colonyops/cic/internal/core/editor"
	"github.com/colonyops/cic/internal/core/grid"
	"github.com/colonyops/cic/internal/core/history"
	"github.com/colonyops/cic/internal/core/logging"
	"github.com/colonyops/cic/internal/tui/components"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateShowingHelp
)

// Options configures the TUI.
type Options struct {
	Grid    *grid.Grid
	Path    string
	Storage editor.Storage
	Enter   editor.EnterBehavior
	Logger  *zerolog.Logger // optional

	History     history.Store // optional, persists command lines
	HistorySize int           // entries kept by History, 0 keeps everything
}

// Model is the main TUI model.
type Model struct {
	session *editor.Session
	display *Display
	help    *components.HelpDialog
	state   UIState

	path        string
	history     history.Store
	historySize int
	recall      *history.Navigator
	log         zerolog.Logger
}

// New creates a new TUI model editing opts.Grid.
func New(opts Options) Model {
	logger := logging.Component("tui")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	display := NewDisplay(defaultWidth, defaultHeight)

	session := editor.New(opts.Grid, opts.Path, editor.Options{
		Display:     display,
		Storage:     opts.Storage,
		Enter:       opts.Enter,
		VisibleRows: display.VisibleRows(),
		Logger:      &logger,
	})
	session.Render()

	return Model{
		session:     session,
		display:     display,
		help:        components.NewHelpDialog("Keys", helpSections()),
		path:        opts.Path,
		history:     opts.History,
		historySize: opts.HistorySize,
		recall:      history.NewNavigator(loadCommands(opts.History, logger)),
		log:         logger,
	}
}

func loadCommands(store history.Store, logger zerolog.Logger) []string {
	if store == nil {
		return nil
	}

	entries, err := store.List(context.Background())
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load command history")
		return nil
	}

	commands := make([]string, 0, len(entries))
	for _, e := range entries {
		commands = append(commands, e.Command)
	}
	return commands
}

// Session returns the editor session driven by the model.
func (m Model) Session() *editor.Session {
	return m.session
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.display.SetSize(msg.Width, msg.Height)
	m.session.Resize(m.display.VisibleRows())
	m.session.Render()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.state == stateShowingHelp {
		switch msg.String() {
		case keyCtrlC:
			// falls through to the editor so ctrl+c still quits
		case keyHelp, "esc", "q", "enter":
			m.state = stateNormal
			return m, nil
		default:
			return m, nil
		}
	}

	mode := m.session.Mode()
	if mode.Kind == editor.ModeNavigation && msg.String() == keyHelp {
		m.state = stateShowingHelp
		return m, nil
	}

	commandLine := mode == editor.PromptMode(action.CommandLine)
	if commandLine {
		if actions, ok := m.recallHistory(msg); ok {
			m.session.Dispatch(actions...)
			m.session.Render()
			return m, nil
		}
	}

	actions := MapKey(mode, msg)
	if len(actions) == 0 {
		return m, nil
	}

	line := m.session.Buffer()
	m.session.Dispatch(actions...)
	if commandLine && m.session.Mode() != mode {
		m.recordCommand(line, actions)
	}
	m.session.Render()

	if m.session.Done() {
		return m, tea.Quit
	}
	return m, nil
}

// recallHistory maps the history keys to a prompt buffer replacement.
func (m Model) recallHistory(msg tea.KeyPressMsg) ([]action.Action, bool) {
	var (
		text string
		ok   bool
	)
	switch {
	case key.Matches(msg, historyPrevKey):
		text, ok = m.recall.Prev(m.session.Buffer())
	case key.Matches(msg, historyNextKey):
		text, ok = m.recall.Next()
	default:
		return nil, false
	}

	if !ok {
		return nil, true
	}
	return []action.Action{action.PromptSet(text)}, true
}

// recordCommand remembers a submitted command line. Cancelled prompts are
// not recorded.
func (m Model) recordCommand(line string, actions []action.Action) {
	submitted := false
	for _, a := range actions {
		if a.Type == action.TypePromptSubmit {
			submitted = true
		}
	}
	if !submitted || line == "" {
		m.recall.Reset()
		return
	}

	m.recall.Push(line)
	if m.history == nil {
		return
	}

	entry := history.Entry{
		Command:   line,
		File:      m.path,
		Timestamp: time.Now(),
	}
	if err := m.session.Err(); err != nil {
		entry.Error = err.Error()
	}

	if err := m.history.Save(context.Background(), entry, m.historySize); err != nil {
		m.log.Warn().Err(err).Msg("failed to save command history")
	}
}

// View renders the model.
func (m Model) View() tea.View {
	content := m.display.View()
	if m.state == stateShowingHelp {
		content = m.help.Overlay(content, m.display.width, m.display.height)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}
