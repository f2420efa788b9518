package rules

import (
	"fmt"

	"github.com/xab-mack/solscan/internal/analysis"
	"github.com/xab-mack/solscan/internal/ast"
	"github.com/xab-mack/solscan/internal/model"
)

// reentrancyRule flags functions where an external call can be followed by
// a state write. Emits at most one finding per function.
type reentrancyRule struct{}

func (reentrancyRule) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:          "SOL-REENTRANCY",
		Title:       "External call before state update",
		Description: "An external call followed by a state write lets the callee re-enter while state is stale.",
		Severity:    model.SeverityHigh,
		Category:    model.CategorySecurity,
		References:  []string{"SWC-107"},
	}
}

func (r reentrancyRule) Detect(n *ast.Node, source, file string) []model.Finding {
	fn, ok := n.Function()
	if !ok {
		return nil
	}
	if fn.Mutability == "view" || fn.Mutability == "pure" {
		return nil
	}

	calls := ast.Collect(n, func(c *ast.Node) bool {
		d, ok := c.Call()
		return ok && d.External
	})
	writes := ast.Collect(n, func(w *ast.Node) bool {
		d, ok := w.Assignment()
		return ok && d.StateWrite
	})
	if len(calls) == 0 || len(writes) == 0 {
		return nil
	}
	if !analysis.CallBeforeWrite(calls, writes) {
		return nil
	}

	name := fn.Name
	if fn.IsCtor {
		name = "constructor"
	}
	return []model.Finding{finding(r.Meta(), n, source, file,
		fmt.Sprintf("function %q makes an external call before updating state", name),
		"reorder to checks-effects-interactions: update state before external calls",
		"add a reentrancy guard or switch to a pull-payment pattern",
	)}
}
