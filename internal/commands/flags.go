package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/cic/internal/core/config"
	"github.com/colonyops/cic/internal/core/styles"
)

type Flags struct {
	LogLevel    string
	LogFile     string
	ConfigPath  string
	Theme       string
	HistoryFile string
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "cic", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/cic/cic.log
// On Linux: $XDG_STATE_HOME/cic/cic.log (defaults to ~/.local/state/cic/cic.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "cic", "cic.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "cic", "cic.log")
	}

	return filepath.Join(home, ".local", "state", "cic", "cic.log")
}

// DefaultHistoryFile returns where submitted command lines are kept.
func DefaultHistoryFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "cic", "history.json")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", "cic", "history.json")
	}

	return filepath.Join(home, ".local", "state", "cic", "history.json")
}

// LoadConfig reads and validates the config file, applies the --theme
// override and activates the resulting theme.
func (f *Flags) LoadConfig() (*config.Config, error) {
	cfg, err := f.readConfig()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	palette, _ := styles.GetPalette(cfg.TUI.Theme)
	styles.SetTheme(palette)
	return cfg, nil
}

func (f *Flags) readConfig() (*config.Config, error) {
	cfg, err := config.Read(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	if f.Theme != "" {
		cfg.TUI.Theme = f.Theme
	}
	return cfg, nil
}
