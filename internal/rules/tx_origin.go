package rules

import (
	"strings"

	"github.com/xab-mack/solscan/internal/ast"
	"github.com/xab-mack/solscan/internal/model"
)

// txOriginRule flags tx.origin inside authorization checks. tx.origin is
// the transaction sender, not the immediate caller, so any intermediate
// contract can pass the check on the victim's behalf.
type txOriginRule struct{}

func (txOriginRule) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:          "SOL-TX-ORIGIN",
		Title:       "tx.origin used for authorization",
		Description: "Authorization via tx.origin is phishable through intermediate contract calls.",
		Severity:    model.SeverityHigh,
		Category:    model.CategorySecurity,
		References:  []string{"SWC-115"},
	}
}

func (r txOriginRule) Detect(n *ast.Node, source, file string) []model.Finding {
	d, ok := n.Call()
	if !ok {
		return nil
	}
	guard := d.Method == "require" || d.Method == "assert"
	if !guard || !strings.Contains(d.Args, "tx.origin") {
		return nil
	}
	return []model.Finding{finding(r.Meta(), n, source, file,
		"tx.origin used in an authorization check",
		"compare msg.sender instead of tx.origin",
	)}
}
