package rules

import (
	"fmt"

	"github.com/xab-mack/solscan/internal/ast"
	"github.com/xab-mack/solscan/internal/model"
)

// storageLoopRule flags storage writes inside loop bodies; each iteration
// pays an SSTORE that could usually be accumulated in memory first.
type storageLoopRule struct{}

func (storageLoopRule) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:          "SOL-STORAGE-LOOP",
		Title:       "Storage write inside loop",
		Description: "Repeated storage writes in a loop multiply gas cost.",
		Severity:    model.SeverityLow,
		Category:    model.CategoryGas,
	}
}

func (r storageLoopRule) Detect(n *ast.Node, source, file string) []model.Finding {
	if n.Kind != ast.KindLoop {
		return nil
	}
	var out []model.Finding
	for _, w := range ast.Collect(n, ast.OfKind(ast.KindAssignment)) {
		d, ok := w.Assignment()
		if !ok || !d.StateWrite {
			continue
		}
		out = append(out, finding(r.Meta(), w, source, file,
			fmt.Sprintf("state variable %q is written on every loop iteration", d.Target),
			"accumulate in a local variable and write storage once after the loop",
		))
	}
	return out
}
