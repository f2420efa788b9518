package rules

import (
	"fmt"

	"github.com/xab-mack/solscan/internal/ast"
	"github.com/xab-mack/solscan/internal/model"
)

// missingEventRule flags non-constructor functions that change state
// without emitting any event, leaving off-chain observers blind.
type missingEventRule struct{}

func (missingEventRule) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:          "SOL-MISSING-EVENT",
		Title:       "State change without event",
		Description: "State transitions should emit events so off-chain consumers can track them.",
		Severity:    model.SeverityLow,
		Category:    model.CategoryStyle,
	}
}

func (r missingEventRule) Detect(n *ast.Node, source, file string) []model.Finding {
	d, ok := n.Function()
	if !ok || d.IsCtor {
		return nil
	}
	writes := ast.Collect(n, func(w *ast.Node) bool {
		a, ok := w.Assignment()
		return ok && a.StateWrite
	})
	if len(writes) == 0 || ast.Contains(n, ast.KindEmit) {
		return nil
	}
	name := d.Name
	return []model.Finding{finding(r.Meta(), n, source, file,
		fmt.Sprintf("function %q writes state but emits no event", name),
		"emit an event describing the state transition",
	)}
}
