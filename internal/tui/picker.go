// Package tui provides Bubble Tea models for past.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chazuruo/past/internal/search"
)

// maxVisible caps the rendered match list at the 20 most recent matches.
const maxVisible = 20

// PickerModel is a Bubble Tea model for incrementally filtering the
// deduplicated command history and selecting a single command.
type PickerModel struct {
	// Candidates is the deduplicated command list, most recent first.
	Candidates []string

	// Matches is the current filtered list, recomputed on every keystroke.
	Matches []string

	// QueryInput is the text input holding the filter query.
	QueryInput textinput.Model

	// cursor is the current selection index into the visible match list.
	cursor int

	// Quit indicates the user left without selecting.
	Quit bool

	// Confirmed indicates the user committed a selection.
	Confirmed bool

	// selection is the committed command, valid when Confirmed is true.
	selection string

	// styles
	headerStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	normalStyle   lipgloss.Style
	borderStyle   lipgloss.Style
}

// NewPickerModel creates a picker over the full command history. Commands
// arrive oldest first; the candidate list keeps only the most recent
// occurrence of each distinct command, most recent first. Empty commands
// from tokenization are dropped.
func NewPickerModel(commands []string) PickerModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()

	seen := make(map[string]bool, len(commands))
	var candidates []string
	for i := len(commands) - 1; i >= 0; i-- {
		cmd := commands[i]
		if cmd == "" || seen[cmd] {
			continue
		}
		seen[cmd] = true
		candidates = append(candidates, cmd)
	}

	return PickerModel{
		Candidates: candidates,
		Matches:    candidates,
		QueryInput: ti,
		cursor:     0,
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")),
		selectedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true),
		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Quit = true
			return m, tea.Quit

		case "enter":
			if visible := m.Visible(); len(visible) > 0 {
				m.Confirmed = true
				m.selection = visible[m.cursor]
				return m, tea.Quit
			}
			return m, nil

		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down":
			if m.cursor < m.maxCursor() {
				m.cursor++
			}
			return m, nil
		}
	}

	// Every other key edits the query.
	oldQuery := m.QueryInput.Value()
	m.QueryInput, cmd = m.QueryInput.Update(msg)
	if m.QueryInput.Value() != oldQuery {
		m.applyFilter()
	}

	return m, cmd
}

// applyFilter recomputes the match list from scratch against the full
// candidate list and resets the selection to the top.
func (m *PickerModel) applyFilter() {
	m.Matches = search.Filter(m.Candidates, m.QueryInput.Value())
	m.cursor = 0
}

// Visible returns the match list capped at maxVisible entries.
func (m PickerModel) Visible() []string {
	if len(m.Matches) > maxVisible {
		return m.Matches[:maxVisible]
	}
	return m.Matches
}

// maxCursor returns the largest legal selection index.
func (m PickerModel) maxCursor() int {
	n := len(m.Visible())
	if n == 0 {
		return 0
	}
	return n - 1
}

// View implements tea.Model.
func (m PickerModel) View() string {
	var b strings.Builder

	header := m.headerStyle.Render("Interactive Search") +
		m.normalStyle.Render("  (Enter to select, Esc to quit)")
	b.WriteString(m.borderStyle.Render(header + "\n  Filter: " + m.QueryInput.View()))
	b.WriteString("\n")

	var list strings.Builder
	visible := m.Visible()
	if len(visible) == 0 {
		list.WriteString(m.normalStyle.Render("  (no matches)"))
	} else {
		for i, cmd := range visible {
			if i == m.cursor {
				list.WriteString(m.selectedStyle.Render("> " + cmd))
			} else {
				list.WriteString(m.normalStyle.Render("  " + cmd))
			}
			if i < len(visible)-1 {
				list.WriteString("\n")
			}
		}
	}
	b.WriteString(m.borderStyle.Render(list.String()))
	b.WriteString("\n")

	return b.String()
}

// DidQuit returns true if the user quit without selecting.
func (m PickerModel) DidQuit() bool {
	return m.Quit
}

// DidConfirm returns true if the user committed a selection.
func (m PickerModel) DidConfirm() bool {
	return m.Confirmed
}

// Selection returns the committed command, or "" when nothing was selected.
func (m PickerModel) Selection() string {
	if !m.Confirmed {
		return ""
	}
	return m.selection
}
