package rules

import (
	"github.com/xab-mack/solscan/internal/ast"
	"github.com/xab-mack/solscan/internal/model"
)

// selfdestructRule flags any reachable selfdestruct (or the legacy suicide
// alias). Destroying a contract reroutes its ether and bricks callers.
type selfdestructRule struct{}

func (selfdestructRule) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:          "SOL-SELFDESTRUCT",
		Title:       "Use of selfdestruct",
		Description: "selfdestruct removes the contract and force-sends its balance.",
		Severity:    model.SeverityHigh,
		Category:    model.CategorySecurity,
		References:  []string{"SWC-106"},
	}
}

func (r selfdestructRule) Detect(n *ast.Node, source, file string) []model.Finding {
	d, ok := n.Call()
	if !ok || (d.Method != "selfdestruct" && d.Method != "suicide") {
		return nil
	}
	return []model.Finding{finding(r.Meta(), n, source, file,
		"selfdestruct is reachable from contract code",
		"gate destruction behind strict access control, or remove it",
	)}
}
