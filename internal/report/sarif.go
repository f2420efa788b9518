package report

import (
	"bytes"
	"fmt"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/xab-mack/solscan/internal/model"
)

// ToSARIF renders an analysis result as a SARIF 2.1.0 document.
func ToSARIF(result model.AnalysisResult) ([]byte, error) {
	doc, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("create sarif report: %w", err)
	}
	run := sarif.NewRunWithInformationURI("solscan", "https://github.com/xab-mack/solscan")

	seen := map[string]struct{}{}
	for _, f := range result.Issues {
		if _, ok := seen[f.RuleID]; !ok {
			seen[f.RuleID] = struct{}{}
			run.AddRule(f.RuleID).
				WithDescription(f.Title).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: sarifLevel(f.Severity)})
		}

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(f.File)).
				WithRegion(sarif.NewRegion().WithStartLine(f.Line)),
		)
		run.AddResult(sarif.NewRuleResult(f.RuleID).
			WithMessage(sarif.NewTextMessage(f.Message)).
			WithLevel(sarifLevel(f.Severity)).
			WithLocations([]*sarif.Location{location}))
	}
	doc.AddRun(run)

	var buf bytes.Buffer
	if err := doc.PrettyWrite(&buf); err != nil {
		return nil, fmt.Errorf("write sarif report: %w", err)
	}
	return buf.Bytes(), nil
}

func sarifLevel(s model.Severity) string {
	switch s {
	case model.SeverityCritical, model.SeverityHigh:
		return "error"
	case model.SeverityMedium:
		return "warning"
	default:
		return "note"
	}
}
