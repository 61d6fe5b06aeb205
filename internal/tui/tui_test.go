package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
)

func results() []issue.AnalysisResult {
	return []issue.AnalysisResult{
		issue.NewResult("a.sol", []issue.Issue{
			{Type: issue.StorageReadInLoop, Severity: issue.High, Line: 4, Message: "read in loop", GasImpact: "~2100 gas per iteration"},
			{Type: issue.PublicVsExternal, Severity: issue.Low, Line: 9, Message: "make it external"},
		}),
		issue.NewResult("b.sol", []issue.Issue{
			{Type: issue.UseCustomErrors, Severity: issue.Medium, Line: 2, Message: "use custom error", Suggestion: "error NotOwner();"},
		}),
	}
}

func press(m tea.Model, keys ...string) tea.Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = m.Update(msg)
	}
	return m
}

func TestNavigation(t *testing.T) {
	var m tea.Model = initialModel(results())
	assert.Contains(t, m.View(), "Gas issues (3 of 3")
	assert.Contains(t, m.View(), "> high   GAS001 a.sol:4 read in loop")

	m = press(m, "down", "down", "down")
	assert.Contains(t, m.View(), "> medium GAS301 b.sol:2", "cursor stops at the last issue")

	m = press(m, "up", "g")
	assert.Contains(t, m.View(), "> high   GAS001")
}

func TestDetails(t *testing.T) {
	var m tea.Model = initialModel(results())
	assert.NotContains(t, m.View(), "Gas impact")

	m = press(m, "enter")
	assert.Contains(t, m.View(), "Storage Reads in Loops (storage-read-in-loop)")
	assert.Contains(t, m.View(), "Gas impact: ~2100 gas per iteration")

	m = press(m, "G")
	assert.Contains(t, m.View(), "error NotOwner();")
}

func TestSeverityFilter(t *testing.T) {
	var m tea.Model = initialModel(results())
	m = press(m, "G", "f")
	view := m.View()
	assert.Contains(t, view, "Gas issues (2 of 3, min severity: medium)")
	assert.NotContains(t, view, "make it external")
	assert.Contains(t, view, "> medium GAS301", "cursor is clamped to the filtered list")

	m = press(m, "f")
	assert.Contains(t, m.View(), "(1 of 3, min severity: high)")

	m = press(m, "f")
	assert.Contains(t, m.View(), "(3 of 3, min severity: low)")
}

func TestQuit(t *testing.T) {
	_, cmd := initialModel(results()).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestEmpty(t *testing.T) {
	m := initialModel(nil)
	assert.Contains(t, m.View(), "no issues")
	m2 := press(m, "down", "enter")
	assert.Contains(t, m2.View(), "no issues")
}
