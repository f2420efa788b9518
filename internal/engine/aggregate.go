package engine

import "github.com/xab-mack/solscan/internal/model"

// Aggregate merges per-category findings into one result and computes the
// severity histogram. Pure: no list is mutated and empty inputs yield zero
// counts.
func Aggregate(security, gas, style []model.Finding) model.AnalysisResult {
	issues := make([]model.Finding, 0, len(security)+len(gas)+len(style))
	issues = append(issues, security...)
	issues = append(issues, gas...)
	issues = append(issues, style...)

	bySeverity := make(map[model.Severity]int, len(model.Severities()))
	for _, s := range model.Severities() {
		bySeverity[s] = 0
	}
	for _, f := range issues {
		bySeverity[f.Severity]++
	}

	return model.AnalysisResult{
		Security: security,
		Gas:      gas,
		Style:    style,
		Issues:   issues,
		Stats: model.Stats{
			TotalIssues: len(issues),
			BySeverity:  bySeverity,
			Security:    len(security),
			Gas:         len(gas),
			Style:       len(style),
		},
	}
}

// SplitByCategory partitions a combined finding list the way Aggregate
// expects its inputs.
func SplitByCategory(findings []model.Finding) (security, gas, style []model.Finding) {
	for _, f := range findings {
		switch f.Category {
		case model.CategoryGas:
			gas = append(gas, f)
		case model.CategoryStyle:
			style = append(style, f)
		default:
			security = append(security, f)
		}
	}
	return security, gas, style
}
