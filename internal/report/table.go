package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/xab-mack/solscan/internal/model"
)

// WriteTable renders findings and severity totals as a terminal table.
func WriteTable(w io.Writer, result model.AnalysisResult) {
	if result.Stats.TotalIssues == 0 {
		fmt.Fprintln(w, "No issues found.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rule", "Severity", "Category", "Location", "Message"})
	for _, f := range result.Issues {
		loc := f.File
		if f.Line > 0 {
			loc = fmt.Sprintf("%s:%d", f.File, f.Line)
		}
		t.AppendRow(table.Row{f.RuleID, f.Severity, f.Category, loc, f.Message})
	}
	t.Render()

	fmt.Fprintf(w, "\n%d issue(s): %d security, %d gas, %d style\n",
		result.Stats.TotalIssues, result.Stats.Security, result.Stats.Gas, result.Stats.Style)
	for _, s := range []model.Severity{model.SeverityCritical, model.SeverityHigh, model.SeverityMedium, model.SeverityLow, model.SeverityInfo} {
		if n := result.Stats.BySeverity[s]; n > 0 {
			fmt.Fprintf(w, "  %-8s %d\n", s, n)
		}
	}
}
