package tui

import (
	"errors"
	"strings"
	"testing"

	"themectl/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msgs through Update and returns the resulting model and the
// command produced by the last message.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update must return a Model")
	}
	return m, cmd
}

func TestNavigation(t *testing.T) {
	m := New(theme.Default())
	assert.Equal(t, "primary.main", m.Selected().Path)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "primary.main", m.Selected().Path, "cursor stops at the top")

	m, _ = send(t, m, runeKey("j"), tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "primary.dark", m.Selected().Path)

	for i := 0; i < 100; i++ {
		m, _ = send(t, m, runeKey("j"))
	}
	assert.Equal(t, "divider", m.Selected().Path, "cursor stops at the bottom")
}

func TestAmountIsClamped(t *testing.T) {
	m := New(theme.Default())
	assert.Equal(t, DefaultAmount, m.Amount())

	m, _ = send(t, m, runeKey("+"))
	assert.Equal(t, DefaultAmount+AmountStep, m.Amount())

	for i := 0; i < 50; i++ {
		m, _ = send(t, m, runeKey("+"))
	}
	assert.Equal(t, 100.0, m.Amount())

	for i := 0; i < 50; i++ {
		m, _ = send(t, m, runeKey("-"))
	}
	assert.Equal(t, 0.0, m.Amount())

	assert.Equal(t, 100.0, New(theme.Default(), WithAmount(250)).Amount())
}

func TestToggleDark(t *testing.T) {
	th := theme.Default()
	m := New(th)

	m, _ = send(t, m, runeKey("D"))
	assert.Equal(t, theme.SchemeDark, m.Scheme())
	assert.Equal(t, theme.SchemeLight, th.Scheme, "the caller's theme is not mutated")

	m, _ = send(t, m, runeKey("D"))
	assert.Equal(t, theme.SchemeLight, m.Scheme())
}

func TestCopySelected(t *testing.T) {
	var copied string
	m := New(theme.Default(), WithClipboard(func(s string) error {
		copied = s
		return nil
	}))

	m, cmd := send(t, m, runeKey("j"), runeKey("c"))
	assert.Equal(t, "#81C784", copied)
	assert.Contains(t, m.Status(), "#81C784")
	assert.NotNil(t, cmd, "a clear-status tick is scheduled")

	// A stale clear does nothing, the current one clears.
	m, _ = send(t, m, clearStatusMsg{seq: m.statusSeq - 1})
	assert.NotEmpty(t, m.Status())
	m, _ = send(t, m, clearStatusMsg{seq: m.statusSeq})
	assert.Empty(t, m.Status())
}

func TestCopyFailure(t *testing.T) {
	m := New(theme.Default(), WithClipboard(func(string) error {
		return errors.New("no clipboard")
	}))

	m, _ = send(t, m, runeKey("c"))
	assert.Equal(t, "Copy failed", m.Status())
	assert.True(t, m.statusIsError)
}

func TestQuit(t *testing.T) {
	_, cmd := send(t, New(theme.Default()), runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView(t *testing.T) {
	m := New(theme.Default())
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 100})

	view := m.View()
	assert.Contains(t, view, "themectl preview")
	assert.Contains(t, view, "scheme: light")
	assert.Contains(t, view, "primary.main")
	assert.Contains(t, view, "divider")
	assert.Contains(t, view, "rgba(76, 175, 80, 0.15)")
	assert.Contains(t, view, "#66c96a", "lightened primary at the default amount")
}

func TestViewScrollsWithCursor(t *testing.T) {
	m := New(theme.Default())
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 12})

	start, end := m.visibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 12-chromeLines, end)

	for i := 0; i < 40; i++ {
		m, _ = send(t, m, runeKey("j"))
	}
	start, end = m.visibleRange()
	assert.Equal(t, len(m.entries), end)
	assert.True(t, m.cursor >= start && m.cursor < end)
	assert.False(t, strings.Contains(m.View(), "primary.main"))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, 5, len([]rune(padRight("abcdefgh", 5))))
}
