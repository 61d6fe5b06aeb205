package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
)

// entry is one issue together with the file it came from.
type entry struct {
	file  string
	issue issue.Issue
}

type modelT struct {
	entries  []entry
	visible  []int // indexes into entries after the severity filter
	cursor   int
	expanded bool
	minimum  issue.Severity
	height   int
}

func initialModel(results []issue.AnalysisResult) modelT {
	m := modelT{minimum: issue.Low, height: 20}
	for _, r := range results {
		for _, is := range r.Issues {
			m.entries = append(m.entries, entry{file: r.File, issue: is})
		}
	}
	m.refilter()
	return m
}

func (m *modelT) refilter() {
	m.visible = make([]int, 0, len(m.entries))
	for i, e := range m.entries {
		if e.issue.Severity.AtLeast(m.minimum) {
			m.visible = append(m.visible, i)
		}
	}
	m.cursor = min(m.cursor, max(0, len(m.visible)-1))
}

// cycleFilter steps the minimum severity low -> medium -> high -> low.
func (m *modelT) cycleFilter() {
	switch m.minimum {
	case issue.Low:
		m.minimum = issue.Medium
	case issue.Medium:
		m.minimum = issue.High
	default:
		m.minimum = issue.Low
	}
	m.refilter()
}

func (m modelT) Init() tea.Cmd { return nil }

func (m modelT) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = max(5, msg.Height-6)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = max(0, len(m.visible)-1)
		case "enter", " ":
			m.expanded = !m.expanded
		case "f":
			m.cycleFilter()
		}
	}
	return m, nil
}

func (m modelT) selected() (entry, bool) {
	if len(m.visible) == 0 {
		return entry{}, false
	}
	return m.entries[m.visible[m.cursor]], true
}

func (m modelT) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Gas issues (%d of %d, min severity: %s)\n\n", len(m.visible), len(m.entries), m.minimum)

	if len(m.visible) == 0 {
		b.WriteString("  no issues\n")
	}

	start := 0
	if m.cursor >= m.height {
		start = m.cursor - m.height + 1
	}
	end := min(len(m.visible), start+m.height)
	for row := start; row < end; row++ {
		e := m.entries[m.visible[row]]
		pointer := " "
		if row == m.cursor {
			pointer = ">"
		}
		fmt.Fprintf(&b, "%s %-6s %s %s:%d %s\n",
			pointer, e.issue.Severity, e.issue.Type.Code(), e.file, e.issue.Line, e.issue.Message)
	}

	if e, ok := m.selected(); ok && m.expanded {
		fmt.Fprintf(&b, "\n%s (%s)\n", e.issue.Type.Title(), e.issue.Type)
		if e.issue.GasImpact != "" {
			fmt.Fprintf(&b, "Gas impact: %s\n", e.issue.GasImpact)
		}
		if e.issue.Suggestion != "" {
			fmt.Fprintf(&b, "\n%s\n", e.issue.Suggestion)
		}
	}

	b.WriteString("\n↑/↓ move • enter details • f filter • q quit\n")
	return b.String()
}

// Run opens the interactive issue browser and blocks until it is closed.
func Run(results []issue.AnalysisResult) error {
	p := tea.NewProgram(initialModel(results))
	_, err := p.Run()
	return err
}
