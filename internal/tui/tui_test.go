package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/xab-mack/solscan/internal/model"
)

func findings() []model.Finding {
	return []model.Finding{
		{RuleID: "SOL-REENTRANCY", Severity: model.SeverityHigh, File: "bank.sol", Line: 6, Message: "call before write"},
		{RuleID: "SOL-FUNC-NAMING", Severity: model.SeverityInfo, File: "bank.sol", Line: 12, Message: "not mixedCase"},
	}
}

func key(s string) tea.Msg {
	if s == "down" {
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNavigationClampsToList(t *testing.T) {
	m := modelT{findings: findings()}

	next, _ := m.Update(key("j"))
	m = next.(modelT)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(key("down"))
	m = next.(modelT)
	assert.Equal(t, 1, m.cursor, "cursor stops at the last finding")

	next, _ = m.Update(key("k"))
	m = next.(modelT)
	assert.Equal(t, 0, m.cursor)

	next, _ = m.Update(key("k"))
	m = next.(modelT)
	assert.Equal(t, 0, m.cursor, "cursor stops at the first finding")
}

func TestQuitKeys(t *testing.T) {
	m := modelT{findings: findings()}
	_, cmd := m.Update(key("q"))
	assert.NotNil(t, cmd)
}

func TestViewListsFindings(t *testing.T) {
	m := modelT{findings: findings()}
	out := m.View()
	assert.Contains(t, out, "Findings (2)")
	assert.Contains(t, out, "SOL-REENTRANCY")
	assert.Contains(t, out, "bank.sol:6")
	assert.Contains(t, out, "> SOL-REENTRANCY", "first row carries the cursor")
}
