package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/cic/internal/core/history"
	"github.com/colonyops/cic/internal/store/jsonfile"
	"github.com/colonyops/cic/pkg/iojson"
)

var errHistoryDisabled = errors.New("command history is disabled (--history-file is empty)")

type HistoryCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	limit      int
	failed     bool
	clear      bool
}

// NewHistoryCmd creates a new history command.
func NewHistoryCmd(flags *Flags) *HistoryCmd {
	return &HistoryCmd{flags: flags}
}

// Register adds the history command to the application.
func (cmd *HistoryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "history",
		Usage:     "List command lines entered in the editor",
		UsageText: "cic history [--json] [--limit N] [--failed] | cic history --clear",
		Description: `Displays the command lines submitted with ':' in previous editing sessions,
newest first, along with the file being edited and any error they reported.

Use --json for JSON lines output and --clear to forget every entry.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "show at most N entries (0 shows all)",
				Value:       20,
				Destination: &cmd.limit,
			},
			&cli.BoolFlag{
				Name:        "failed",
				Usage:       "only show commands that reported an error",
				Destination: &cmd.failed,
			},
			&cli.BoolFlag{
				Name:        "clear",
				Usage:       "delete the stored history",
				Destination: &cmd.clear,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *HistoryCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.flags.HistoryFile == "" {
		return errHistoryDisabled
	}

	store := jsonfile.NewHistoryStore(cmd.flags.HistoryFile)

	if cmd.clear {
		if err := store.Clear(ctx); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		_, err := fmt.Fprintf(c.Root().Writer, "Cleared %s\n", store.Path())
		return err
	}

	entries, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	entries = filterEntries(entries, cmd.failed, cmd.limit)

	if len(entries) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No history found\n")
		}
		return nil
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, e := range entries {
			if err := iojson.WriteLine(out, e); err != nil {
				return fmt.Errorf("encode entry: %w", err)
			}
		}
		return nil
	}

	now := time.Now()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "WHEN\tFILE\tCOMMAND\tERROR")
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t:%s\t%s\n", humanize.RelTime(e.Timestamp, now, "ago", "from now"), displayFile(e.File), e.Command, e.Error)
	}
	return w.Flush()
}

func filterEntries(entries []history.Entry, failedOnly bool, limit int) []history.Entry {
	filtered := make([]history.Entry, 0, len(entries))
	for _, e := range entries {
		if failedOnly && !e.Failed() {
			continue
		}
		filtered = append(filtered, e)
		if limit > 0 && len(filtered) == limit {
			break
		}
	}
	return filtered
}

func displayFile(path string) string {
	if path == "" {
		return "-"
	}
	return filepath.Base(path)
}
