package tui

import (
	"fmt"
	"time"

	"themectl/internal/theme"
	"themectl/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// AmountStep is how much +/- changes the lighten/darken amount.
	AmountStep = 5.0
	// DefaultAmount matches the hover/pressed variants the app uses.
	DefaultAmount = 10.0

	statusTimeout = 3 * time.Second
)

// clearStatusMsg removes the status line once its timeout has passed.
type clearStatusMsg struct{ seq int }

// Model is the palette preview. It is a plain value; the only side effect
// outside of returned commands is the injected clipboard write.
type Model struct {
	theme   *theme.Theme
	entries []theme.Entry
	cursor  int
	amount  float64

	keys KeyMap
	help help.Model

	width  int
	height int

	status        string
	statusIsError bool
	statusSeq     int

	copyFn func(string) error
}

// Option customizes a Model.
type Option func(*Model)

// WithClipboard replaces the system clipboard, mainly for tests.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) { m.copyFn = fn }
}

// WithAmount sets the initial lighten/darken amount.
func WithAmount(amount float64) Option {
	return func(m *Model) { m.amount = clampAmount(amount) }
}

// New creates a preview for th.
func New(th *theme.Theme, opts ...Option) Model {
	m := Model{
		theme:   th,
		entries: th.Palette.Entries(),
		amount:  DefaultAmount,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		copyFn:  clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// NewProgram wraps the preview in a Bubble Tea program on the alt screen.
func NewProgram(th *theme.Theme, opts ...Option) *tea.Program {
	return tea.NewProgram(New(th, opts...), tea.WithAltScreen())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusIsError = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.More):
		m.amount = clampAmount(m.amount + AmountStep)

	case key.Matches(msg, m.keys.Less):
		m.amount = clampAmount(m.amount - AmountStep)

	case key.Matches(msg, m.keys.ToggleDark):
		m.theme = m.theme.WithScheme(m.theme.Scheme.Toggle())
		logging.Debug("Preview", "Switched to %s scheme", m.theme.Scheme)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Copy):
		return m.copySelected()
	}
	return m, nil
}

func (m Model) copySelected() (tea.Model, tea.Cmd) {
	if len(m.entries) == 0 {
		return m, nil
	}
	entry := m.entries[m.cursor]
	if err := m.copyFn(entry.Hex); err != nil {
		logging.Error("Preview", err, "Failed to copy %s", entry.Path)
		return m.setStatus("Copy failed", true)
	}
	return m.setStatus(fmt.Sprintf("Copied %s (%s)", entry.Hex, entry.Path), false)
}

func (m Model) setStatus(text string, isError bool) (tea.Model, tea.Cmd) {
	m.status = text
	m.statusIsError = isError
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// Selected returns the entry under the cursor.
func (m Model) Selected() theme.Entry {
	if len(m.entries) == 0 {
		return theme.Entry{}
	}
	return m.entries[m.cursor]
}

// Amount returns the current lighten/darken amount.
func (m Model) Amount() float64 { return m.amount }

// Scheme returns the scheme currently previewed.
func (m Model) Scheme() theme.Scheme { return m.theme.Scheme }

// Status returns the status line text, empty when there is none.
func (m Model) Status() string { return m.status }

func clampAmount(a float64) float64 {
	if a < 0 {
		return 0
	}
	if a > 100 {
		return 100
	}
	return a
}
