package rules

import (
	"github.com/xab-mack/solscan/internal/ast"
	"github.com/xab-mack/solscan/internal/model"
	"github.com/xab-mack/solscan/internal/util"
)

// Rule is one check. Detect must be a pure function of its inputs: it is
// invoked once per visited node, may return nil, and must tolerate nodes
// with absent optional fields. Rules hold no state between invocations so
// independent analyses can run in parallel.
type Rule interface {
	Meta() model.RuleMeta
	Detect(n *ast.Node, source string, file string) []model.Finding
}

// finding builds a Finding from a rule's metadata and the offending node.
// Location and snippet are filled only when the node carries a span.
func finding(meta model.RuleMeta, n *ast.Node, source, file, msg string, suggestions ...string) model.Finding {
	f := model.Finding{
		RuleID:      meta.ID,
		Title:       meta.Title,
		Severity:    meta.Severity,
		Category:    meta.Category,
		File:        file,
		Message:     msg,
		Suggestions: suggestions,
		AutoFixable: meta.SupportsFix,
		References:  meta.References,
	}
	if line, ok := ast.LineOf(n); ok {
		f.Line = line
		f.Column = n.Span.Start.Column
		f.Snippet = util.ExtractSnippet(source, line, n.Span.End.Line, 6)
	}
	f.Fingerprint = util.Fingerprint(meta.ID, file, f.Line, f.Column, msg)
	return f
}
