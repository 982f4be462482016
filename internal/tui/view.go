package tui

import (
	"fmt"
	"strings"

	"themectl/internal/color"
	"themectl/internal/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	pathColumnWidth = 22
	swatchWidth     = 11
	// header, blank line, column titles, blank line, status, help
	chromeLines = 6
)

func (m Model) View() string {
	nav := m.theme.Navigation()
	frame := frameStyle(nav)

	var b strings.Builder
	b.WriteString(titleStyle(nav).Render("themectl preview"))
	b.WriteString(" ")
	b.WriteString(mutedStyle(nav).Render(fmt.Sprintf("scheme: %s  amount: %s", m.theme.Scheme, color.FormatNumber(m.amount))))
	b.WriteString("\n\n")

	b.WriteString(mutedStyle(nav).Render(fmt.Sprintf("  %s %s %s %s  %s",
		padRight("PATH", pathColumnWidth),
		padRight("COLOR", swatchWidth),
		padRight("LIGHTEN", swatchWidth),
		padRight("DARKEN", swatchWidth),
		"ALPHA 0.15")))
	b.WriteString("\n")

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i, nav))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus(nav))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return frame.Render(b.String())
}

func (m Model) renderRow(i int, nav theme.NavigationColors) string {
	e := m.entries[i]
	cursor := "  "
	pathStyle := textStyle(nav)
	if i == m.cursor {
		cursor = "▸ "
		pathStyle = selectedStyle(nav)
	}

	return cursor + pathStyle.Render(padRight(e.Path, pathColumnWidth)) + " " +
		swatch(e.Hex) + " " +
		swatch(m.theme.Lighten(e.Hex, m.amount)) + " " +
		swatch(m.theme.Darken(e.Hex, m.amount)) + "  " +
		mutedStyle(nav).Render(m.theme.Alpha(e.Hex, 0.15))
}

func (m Model) renderStatus(nav theme.NavigationColors) string {
	if m.status == "" {
		return ""
	}
	if m.statusIsError {
		return statusStyle(m.theme.Palette.Error.Main).Render(m.status)
	}
	return statusStyle(m.theme.Palette.Success.Main).Render(m.status)
}

// visibleRange keeps the cursor on screen when the palette is taller than
// the window.
func (m Model) visibleRange() (int, int) {
	n := len(m.entries)
	rows := m.height - chromeLines
	if m.help.ShowAll {
		rows -= len(m.keys.FullHelp())
	}
	if m.height <= 0 || rows >= n {
		return 0, n
	}
	if rows < 1 {
		rows = 1
	}
	start := m.cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > n {
		start = n - rows
	}
	return start, start + rows
}

// swatch renders hex as a block of its own color with readable text on top.
func swatch(hex string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(theme.ReadableText(hex))).
		Width(swatchWidth).
		Align(lipgloss.Center).
		Render(hex)
}

func padRight(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
