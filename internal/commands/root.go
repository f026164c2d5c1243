package commands

import "github.com/urfave/cli/v3"

// NewRootCommand builds the cic command tree with its global flags bound to
// flags. Lifecycle hooks and the version are left to the caller.
func NewRootCommand(flags *Flags) *cli.Command {
	root := &cli.Command{
		Name:      "cic",
		Usage:     "Edit CSV files in the terminal",
		UsageText: "cic [global options] <file.csv>",
		Description: `cic is a modal table editor for delimited text files.

Movement mode navigates with h/j/k/l, insert mode (I) types into cells and
':' opens the command line (:w, :q, :wq, :addcol, :delcol, :addrow, :delrow).
Press '?' inside the editor for the full key list.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CIC_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("CIC_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CIC_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "color theme, overrides tui.theme from the config file",
				Sources:     cli.EnvVars("CIC_THEME"),
				Destination: &flags.Theme,
			},
			&cli.StringFlag{
				Name:        "history-file",
				Usage:       "path to the command-line history file, empty disables history",
				Sources:     cli.EnvVars("CIC_HISTORY_FILE"),
				Value:       DefaultHistoryFile(),
				Destination: &flags.HistoryFile,
			},
		},
	}

	root = NewEditCmd(flags).Register(root)
	root = NewConfigValidateCmd(flags).Register(root)
	root = NewHistoryCmd(flags).Register(root)
	return root
}
