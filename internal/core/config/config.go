// Package config handles configuration loading and validation for cic.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/cic/internal/core/editor"
	"github.com/colonyops/cic/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	TUI    TUIConfig    `yaml:"tui"`
	Editor EditorConfig `yaml:"editor"`
	CSV    CSVConfig    `yaml:"csv"`
}

// TUIConfig holds presentation settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// EditorConfig holds editing behavior settings.
type EditorConfig struct {
	// Enter selects what a carriage return does in insert mode.
	Enter editor.EnterBehavior `yaml:"enter"`
	// HistorySize caps the stored command-line history. 0 keeps everything.
	HistorySize int `yaml:"history_size"`
}

// CSVConfig holds the default CSV dialect and per-file overrides.
type CSVConfig struct {
	Delimiter  string    `yaml:"delimiter"`
	LazyQuotes bool      `yaml:"lazy_quotes"`
	Dialects   []Dialect `yaml:"dialects"`
}

// Dialect overrides the delimiter for files whose path or base name matches
// Pattern (doublestar glob syntax).
type Dialect struct {
	Pattern    string `yaml:"pattern"`
	Delimiter  string `yaml:"delimiter"`
	LazyQuotes *bool  `yaml:"lazy_quotes"` // nil inherits csv.lazy_quotes
}

// ResolvedDialect is the effective dialect for one file.
type ResolvedDialect struct {
	Comma      rune
	LazyQuotes bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
		Editor: EditorConfig{
			Enter:       editor.EnterNextRow,
			HistorySize: 100,
		},
		CSV: CSVConfig{
			Delimiter: ",",
			Dialects: []Dialect{
				{Pattern: "*.tsv", Delimiter: "\t"},
			},
		},
	}
}

// Load reads configuration from the given path and validates it.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg, err := Read(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read parses the config file at configPath and fills in defaults without
// validating the result.
func Read(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.Editor.Enter == "" {
		c.Editor.Enter = defaults.Editor.Enter
	}
	if c.CSV.Delimiter == "" {
		c.CSV.Delimiter = defaults.CSV.Delimiter
	}
}

// DialectFor returns the dialect for the file at path. The first dialect
// whose pattern matches the slash-separated path or its base name wins.
func (c *Config) DialectFor(path string) ResolvedDialect {
	resolved := ResolvedDialect{
		Comma:      firstRune(c.CSV.Delimiter, ','),
		LazyQuotes: c.CSV.LazyQuotes,
	}

	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, d := range c.CSV.Dialects {
		if !matches(d.Pattern, slashed) && !matches(d.Pattern, base) {
			continue
		}
		resolved.Comma = firstRune(d.Delimiter, resolved.Comma)
		if d.LazyQuotes != nil {
			resolved.LazyQuotes = *d.LazyQuotes
		}
		break
	}

	return resolved
}

func matches(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
