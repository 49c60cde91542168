package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/kherrera/taskdeck/internal/config"
)

// filterPickerModel is a picker with a type-to-filter input on top. Typing
// narrows the items with fuzzy matching; arrow keys move within the
// narrowed set; enter returns the index of the selected item in the
// ORIGINAL slice.
type filterPickerModel struct {
	title    string
	items    []PickerItem
	input    textinput.Model
	filtered []int // indices into items
	cursor   int   // position within filtered
	chosen   bool
	aborted  bool
	theme    config.ThemeConfig
}

func newFilterPickerModel(title string, items []PickerItem, theme config.ThemeConfig) filterPickerModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.CharLimit = 120
	ti.Width = 40
	ti.Focus()

	m := filterPickerModel{
		title: title,
		items: items,
		input: ti,
		theme: theme,
	}
	m.filtered = allIndices(len(items))
	return m
}

func allIndices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}

func (m filterPickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m filterPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if len(m.filtered) > 0 {
				m.chosen = true
			} else {
				m.aborted = true
			}
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return m, cmd
}

// refilter recomputes the narrowed set from the current input.
func (m *filterPickerModel) refilter() {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.filtered = allIndices(len(m.items))
	} else {
		labels := make([]string, len(m.items))
		for i, item := range m.items {
			labels[i] = item.Label
		}
		matches := fuzzy.Find(query, labels)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m filterPickerModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorAccent)).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  "+m.title) + " ")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  no matches") + "\n")
	}

	for pos, index := range m.filtered {
		item := m.items[index]
		if pos == m.cursor {
			arrow := activeStyle.Render("▸")
			line := activeStyle.Render(fmt.Sprintf(" %-30s %s", item.Label, item.Desc))
			b.WriteString(fmt.Sprintf("  %s%s\n", arrow, line))
		} else {
			b.WriteString(dimStyle.Render(fmt.Sprintf("    %-30s %s", item.Label, item.Desc)) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  type to filter · ↑/↓ navigate · enter select · esc back") + "\n")

	return b.String()
}

// RunFilterPicker launches a fuzzy type-to-filter picker and returns the
// selected index into the original items slice.
func RunFilterPicker(title string, items []PickerItem, theme *config.ThemeConfig) PickerResult {
	m := newFilterPickerModel(title, items, resolveTheme(theme))

	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return PickerResult{Aborted: true}
	}

	final := result.(filterPickerModel)
	if final.aborted || len(final.filtered) == 0 {
		return PickerResult{Aborted: true}
	}
	return PickerResult{Index: final.filtered[final.cursor]}
}
