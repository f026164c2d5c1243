package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/cic/internal/core/editor"
	"github.com/colonyops/cic/internal/core/styles"
)

// Validate checks that the configuration is valid. All problems are reported
// together as criterio field errors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
		criterio.Run("editor.enter", string(c.Editor.Enter), validEnter),
		c.validateHistorySize(),
		criterio.Run("csv.delimiter", c.CSV.Delimiter, validDelimiter),
		c.validateDialects(),
	)
}

func (c *Config) validateDialects() error {
	var errs criterio.FieldErrorsBuilder
	for i, d := range c.CSV.Dialects {
		field := fmt.Sprintf("csv.dialects[%d]", i)
		if d.Pattern == "" {
			errs = errs.Append(field+".pattern", fmt.Errorf("pattern is required"))
		} else if !doublestar.ValidatePattern(d.Pattern) {
			errs = errs.Append(field+".pattern", fmt.Errorf("invalid glob %q", d.Pattern))
		}
		if d.Delimiter != "" {
			if err := validDelimiter(d.Delimiter); err != nil {
				errs = errs.Append(field+".delimiter", err)
			}
		}
	}
	return errs.ToError()
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func validEnter(v string) error {
	if !editor.EnterBehavior(v).IsValid() {
		return fmt.Errorf("must be one of %s, %s; got %q", editor.EnterNextRow, editor.EnterDown, v)
	}
	return nil
}

func (c *Config) validateHistorySize() error {
	var errs criterio.FieldErrorsBuilder
	if n := c.Editor.HistorySize; n < 0 {
		errs = errs.Append("editor.history_size", fmt.Errorf("must not be negative, got %d", n))
	}
	return errs.ToError()
}

// validDelimiter mirrors the restrictions encoding/csv places on Comma.
func validDelimiter(s string) error {
	if utf8.RuneCountInString(s) != 1 {
		return fmt.Errorf("must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	switch {
	case r == '"' || r == '\r' || r == '\n':
		return fmt.Errorf("%q cannot be used as a delimiter", s)
	case r == utf8.RuneError:
		return fmt.Errorf("invalid delimiter %q", s)
	}
	return nil
}
