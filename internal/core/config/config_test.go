package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/cic/internal/core/editor"
	"github.com/colonyops/cic/internal/core/styles"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, styles.DefaultTheme, cfg.TUI.Theme)
	assert.Equal(t, editor.EnterNextRow, cfg.Editor.Enter)
	assert.Equal(t, 100, cfg.Editor.HistorySize)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
tui:
  theme: gruvbox
editor:
  enter: down
  history_size: 0
csv:
  delimiter: ";"
  lazy_quotes: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, editor.EnterDown, cfg.Editor.Enter)
	assert.Equal(t, 0, cfg.Editor.HistorySize, "explicit zero keeps unlimited history")
	assert.Equal(t, ";", cfg.CSV.Delimiter)
	assert.True(t, cfg.CSV.LazyQuotes)
	// Dialects not mentioned keep their defaults.
	require.Len(t, cfg.CSV.Dialects, 1)
	assert.Equal(t, "*.tsv", cfg.CSV.Dialects[0].Pattern)
}

func TestLoad_PartialFileFillsDefaults(t *testing.T) {
	path := writeConfig(t, "tui:\n  theme: \"\"\neditor: {}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, styles.DefaultTheme, cfg.TUI.Theme)
	assert.Equal(t, editor.EnterNextRow, cfg.Editor.Enter)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "tui: [unclosed"))
		require.ErrorContains(t, err, "parse config file")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "tui:\n  theme: neon\n"))
		require.ErrorContains(t, err, "invalid config")
		require.ErrorContains(t, err, "unknown theme")
	})
}

func TestRead_SkipsValidation(t *testing.T) {
	cfg, err := Read(writeConfig(t, "tui:\n  theme: neon\n"))
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.TUI.Theme)
	assert.Error(t, cfg.Validate())
}

func TestDialectFor(t *testing.T) {
	lazy := false
	cfg := DefaultConfig()
	cfg.CSV.LazyQuotes = true
	cfg.CSV.Dialects = append(cfg.CSV.Dialects,
		Dialect{Pattern: "**/exports/*.txt", Delimiter: "|", LazyQuotes: &lazy},
		Dialect{Pattern: "*.txt", Delimiter: ";"},
	)

	tests := []struct {
		path     string
		wantRune rune
		wantLazy bool
	}{
		{path: "data.csv", wantRune: ',', wantLazy: true},
		{path: "/home/me/data.tsv", wantRune: '\t', wantLazy: true},
		{path: "srv/exports/a.txt", wantRune: '|', wantLazy: false},
		{path: "notes.txt", wantRune: ';', wantLazy: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			d := cfg.DialectFor(tt.path)
			assert.Equal(t, tt.wantRune, d.Comma)
			assert.Equal(t, tt.wantLazy, d.LazyQuotes)
		})
	}
}
