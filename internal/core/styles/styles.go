// Package styles provides shared lipgloss v2 styles for the table editor.
package styles

import (
	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports. Rebuilt by SetTheme.
var (
	// Table.
	CellStyle       lipgloss.Style
	HeaderCellStyle lipgloss.Style
	CursorCellStyle lipgloss.Style
	RowIndexStyle   lipgloss.Style

	// Status and prompt lines.
	StatusBarStyle    lipgloss.Style
	StatusErrorStyle  lipgloss.Style
	PromptPrefixStyle lipgloss.Style
	PromptTextStyle   lipgloss.Style

	// Help dialog.
	HelpDialogModalStyle   lipgloss.Style
	HelpDialogSectionStyle lipgloss.Style
	HelpDialogHelpStyle    lipgloss.Style

	// CLI output.
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style
	TextMutedStyle          lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p
	mono := p.monochrome()

	CellStyle = lipgloss.NewStyle().
		Foreground(p.Cell)
	HeaderCellStyle = lipgloss.NewStyle().
		Foreground(p.Header).
		Bold(true)
	RowIndexStyle = lipgloss.NewStyle().
		Foreground(p.Gutter)

	CursorCellStyle = lipgloss.NewStyle().
		Foreground(p.CursorFg).
		Background(p.CursorBg).
		Reverse(mono)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(p.StatusFg).
		Background(p.StatusBg).
		Reverse(mono)
	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(p.CursorFg).
		Background(p.Error).
		Bold(true).
		Reverse(mono)

	PromptPrefixStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)
	PromptTextStyle = lipgloss.NewStyle().
		Foreground(p.Cell)

	HelpDialogModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(1, 2)
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(p.Section).
		Bold(true)
	HelpDialogHelpStyle = lipgloss.NewStyle().
		Foreground(p.Gutter).
		MarginTop(1)

	TextForegroundStyle = lipgloss.NewStyle().Foreground(p.Cell)
	TextForegroundBoldStyle = lipgloss.NewStyle().Foreground(p.Cell).Bold(true)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(p.Section).Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Gutter)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
