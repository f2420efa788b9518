package rules

import (
	"fmt"

	"github.com/xab-mack/solscan/internal/ast"
	"github.com/xab-mack/solscan/internal/model"
)

// uncheckedCallRule flags low-level calls whose success flag is neither
// captured nor guarded on the same statement. transfer is exempt because it
// reverts on failure.
type uncheckedCallRule struct{}

func (uncheckedCallRule) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:          "SOL-UNCHECKED-LOWLEVEL",
		Title:       "Unchecked low-level call",
		Description: "call/delegatecall/staticcall/send report failure through a return value that must be handled.",
		Severity:    model.SeverityMedium,
		Category:    model.CategorySecurity,
		References:  []string{"SWC-104"},
	}
}

func (r uncheckedCallRule) Detect(n *ast.Node, source, file string) []model.Finding {
	d, ok := n.Call()
	if !ok || !d.External || d.Checked || d.Method == "transfer" {
		return nil
	}
	return []model.Finding{finding(r.Meta(), n, source, file,
		fmt.Sprintf("return value of %s is not checked", d.Callee),
		"capture the success flag and revert or recover on failure",
	)}
}
