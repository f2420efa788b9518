package rules

import (
	"fmt"
	"strings"

	"github.com/xab-mack/solscan/internal/ast"
	"github.com/xab-mack/solscan/internal/model"
)

// delegatecallRule flags delegatecall whose target comes from a function
// parameter: the callee then executes with this contract's storage.
type delegatecallRule struct{}

func (delegatecallRule) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:          "SOL-UNSAFE-DELEGATECALL",
		Title:       "delegatecall to caller-controlled target",
		Description: "delegatecall runs foreign code against this contract's storage; a caller-supplied target takes over the contract.",
		Severity:    model.SeverityCritical,
		Category:    model.CategorySecurity,
		References:  []string{"SWC-112"},
	}
}

func (r delegatecallRule) Detect(n *ast.Node, source, file string) []model.Finding {
	fn, ok := n.Function()
	if !ok || len(fn.Params) == 0 {
		return nil
	}
	params := map[string]struct{}{}
	for _, p := range fn.Params {
		params[p] = struct{}{}
	}

	var out []model.Finding
	for _, c := range ast.Collect(n, ast.OfKind(ast.KindCall)) {
		d, ok := c.Call()
		if !ok || d.Method != "delegatecall" {
			continue
		}
		base := d.Target
		if i := strings.IndexAny(base, ".[("); i >= 0 {
			base = base[:i]
		}
		if _, fromParam := params[base]; !fromParam {
			continue
		}
		out = append(out, finding(r.Meta(), c, source, file,
			fmt.Sprintf("delegatecall target %q is a function parameter", d.Target),
			"restrict delegatecall targets to a fixed, audited implementation address",
		))
	}
	return out
}
