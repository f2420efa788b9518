package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xab-mack/solscan/internal/model"
)

var severityStyle = map[model.Severity]lipgloss.Style{
	model.SeverityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true),
	model.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	model.SeverityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	model.SeverityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	model.SeverityInfo:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var cursorStyle = lipgloss.NewStyle().Bold(true)

type modelT struct {
	findings []model.Finding
	cursor   int
}

func (m modelT) Init() tea.Cmd { return nil }

func (m modelT) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.findings)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m modelT) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Findings (%d)  |  j/k to move, q to quit\n\n", len(m.findings))
	for i, f := range m.findings {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s [%s] %s:%d %s", prefix, f.RuleID,
			severityStyle[f.Severity].Render(string(f.Severity)), f.File, f.Line, f.Message)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if len(m.findings) > 0 {
		f := m.findings[m.cursor]
		if f.Snippet != "" {
			b.WriteString("\n" + f.Snippet + "\n")
		}
		for _, s := range f.Suggestions {
			fmt.Fprintf(&b, "  * %s\n", s)
		}
	}
	return b.String()
}

// Run launches an interactive finding browser.
func Run(findings []model.Finding) error {
	p := tea.NewProgram(modelT{findings: findings})
	_, err := p.Run()
	return err
}
