// Package components provides reusable TUI components.
package components

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/cic/internal/core/styles"
)

// HelpEntry represents a single keyboard shortcut entry.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related help entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpDialog lists key bindings, one column per section.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
}

// NewHelpDialog creates a new help dialog with the given sections.
func NewHelpDialog(title string, sections []HelpDialogSection) *HelpDialog {
	return &HelpDialog{
		title:    title,
		sections: sections,
	}
}

// View renders the help dialog. Sections are laid out side by side when they
// fit in maxWidth, otherwise stacked.
func (h *HelpDialog) View(maxWidth int) string {
	columns := make([]string, 0, len(h.sections))
	for _, section := range h.sections {
		columns = append(columns, renderSection(section))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, spaced(columns)...)
	frame := styles.HelpDialogModalStyle.GetHorizontalFrameSize()
	if maxWidth > 0 && lipgloss.Width(body)+frame > maxWidth {
		body = lipgloss.JoinVertical(lipgloss.Left, columns...)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TextForegroundBoldStyle.Render(h.title),
		"",
		body,
		styles.HelpDialogHelpStyle.Render("esc/? close"),
	)

	return styles.HelpDialogModalStyle.Render(content)
}

// Overlay renders the help dialog centered over the given background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	modal := h.View(width)

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	modalW := lipgloss.Width(modal)
	modalH := lipgloss.Height(modal)
	modalLayer.X(max((width-modalW)/2, 0)).Y(max((height-modalH)/2, 0)).Z(1)

	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}

// renderSection lays out one column. Keys are padded to the widest key in
// the section plus a two space gap.
func renderSection(section HelpDialogSection) string {
	keyWidth := 0
	for _, entry := range section.Entries {
		keyWidth = max(keyWidth, ansi.StringWidth(entry.Key))
	}
	keyWidth += 2

	lines := make([]string, 0, len(section.Entries)+2)
	if section.Title != "" {
		lines = append(lines, styles.HelpDialogSectionStyle.Render(section.Title))
		lines = append(lines, styles.TextMutedStyle.Render(strings.Repeat("─", 24)))
	}
	for _, entry := range section.Entries {
		lines = append(lines,
			styles.TextPrimaryBoldStyle.Render(PadRight(entry.Key, keyWidth))+
				styles.TextForegroundStyle.Render(entry.Desc))
	}
	return strings.Join(lines, "\n")
}

// spaced inserts a gutter between columns.
func spaced(columns []string) []string {
	out := make([]string, 0, len(columns)*2)
	for i, c := range columns {
		if i > 0 {
			out = append(out, Pad(4))
		}
		out = append(out, c)
	}
	return out
}
