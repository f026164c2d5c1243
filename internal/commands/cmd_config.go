package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/cic/internal/core/styles"
	"github.com/colonyops/cic/pkg/iojson"
)

// ErrInvalidConfig is returned by config validate when problems were found.
var ErrInvalidConfig = errors.New("config is invalid")

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// ValidationProblem is one invalid config field.
type ValidationProblem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "cic config validate [options]",
				Description: "Validates the configuration file, checking the theme, enter behavior, delimiters and dialect globs.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	cfg, err := cmd.flags.readConfig()
	if err != nil {
		return err
	}

	problems, err := collectProblems(cfg.Validate())
	if err != nil {
		return err
	}

	w := c.Root().Writer
	switch cmd.format {
	case "json":
		err = outputJSON(w, cmd.flags.ConfigPath, problems)
	case "text":
		err = outputText(w, cmd.flags.ConfigPath, problems)
	default:
		return fmt.Errorf("unknown format %q", cmd.format)
	}
	if err != nil {
		return err
	}

	if len(problems) > 0 {
		return ErrInvalidConfig
	}
	return nil
}

func collectProblems(err error) ([]ValidationProblem, error) {
	if err == nil {
		return nil, nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return nil, err
	}

	problems := make([]ValidationProblem, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, ValidationProblem{Field: fe.Field, Message: fe.Err.Error()})
	}
	return problems, nil
}

func outputJSON(w io.Writer, path string, problems []ValidationProblem) error {
	out := struct {
		Path     string              `json:"path"`
		Valid    bool                `json:"valid"`
		Problems []ValidationProblem `json:"problems,omitempty"`
	}{
		Path:     path,
		Valid:    len(problems) == 0,
		Problems: problems,
	}

	return iojson.WriteWith(w, os.Stderr, out)
}

func outputText(w io.Writer, path string, problems []ValidationProblem) error {
	if len(problems) == 0 {
		_, err := fmt.Fprintln(w, styles.TextPrimaryBoldStyle.Render("✓")+" "+path+" is valid")
		return err
	}

	for _, p := range problems {
		line := styles.StatusErrorStyle.Render("✗") + " " +
			styles.TextForegroundBoldStyle.Render(p.Field) + ": " + p.Message
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
