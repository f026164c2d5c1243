package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/cic/internal/core/history"
	"github.com/colonyops/cic/internal/core/logging"
	"github.com/colonyops/cic/internal/store/csvfile"
	"github.com/colonyops/cic/internal/store/jsonfile"
	"github.com/colonyops/cic/internal/tui"
)

// ErrNoTerminal is returned when the editor is started without a terminal.
var ErrNoTerminal = errors.New("cic needs an interactive terminal")

const usageHint = "Enter a csv to edit"

type EditCmd struct {
	flags *Flags

	// isTerminal reports whether stdin and stdout are terminals.
	isTerminal func() bool
	// runProgram runs the bubbletea program to completion.
	runProgram func(ctx context.Context, m tea.Model) error
}

// NewEditCmd creates the edit command, the root action of cic.
func NewEditCmd(flags *Flags) *EditCmd {
	return &EditCmd{
		flags:      flags,
		isTerminal: stdioIsTerminal,
		runProgram: runProgram,
	}
}

// Register installs the edit command as the root action.
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.ArgsUsage = "<file.csv>"
	app.Action = cmd.run
	return app
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	switch c.Args().Len() {
	case 0:
		_, err := fmt.Fprintln(c.Root().Writer, usageHint)
		return err
	case 1:
	default:
		return fmt.Errorf("expected one file, got %d arguments", c.Args().Len())
	}

	path := c.Args().First()

	cfg, err := cmd.flags.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dialect := cfg.DialectFor(path)
	store := csvfile.New(csvfile.Options{
		Comma:      dialect.Comma,
		LazyQuotes: dialect.LazyQuotes,
	})

	g, err := store.Load(path)
	if err != nil {
		return err
	}

	ctx = logging.WithFile(ctx, path)
	w, h := g.Dims()
	log.Info().Ctx(ctx).Int("rows", h).Int("cols", w).Str("delimiter", string(dialect.Comma)).Msg("loaded file")

	if !cmd.isTerminal() {
		return ErrNoTerminal
	}

	var hist history.Store
	if cmd.flags.HistoryFile != "" {
		hist = jsonfile.NewHistoryStore(cmd.flags.HistoryFile)
	}

	logger := logging.ForFile(ctx, "editor")
	m := tui.New(tui.Options{
		Grid:        g,
		Path:        path,
		Storage:     store,
		Enter:       cfg.Editor.Enter,
		Logger:      &logger,
		History:     hist,
		HistorySize: cfg.Editor.HistorySize,
	})

	if err := cmd.runProgram(ctx, m); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if m.Session().Dirty() {
		log.Info().Ctx(ctx).Msg("exited with unsaved changes")
	}
	return nil
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runProgram(ctx context.Context, m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	return err
}
