package rules

import (
	"fmt"
	"strings"

	"github.com/xab-mack/solscan/internal/ast"
	"github.com/xab-mack/solscan/internal/model"
)

var criticalAddressHints = []string{"owner", "admin", "oracle", "token", "router", "treasury"}

// nonImmutableAddressRule flags critical address state variables assigned
// in the constructor but not declared immutable.
type nonImmutableAddressRule struct{}

func (nonImmutableAddressRule) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:          "SOL-NONIMM-ADDR",
		Title:       "Critical address not immutable",
		Description: "Addresses fixed at deployment should be immutable: cheaper reads, no later mutation.",
		Severity:    model.SeverityLow,
		Category:    model.CategoryGas,
	}
}

func (r nonImmutableAddressRule) Detect(n *ast.Node, source, file string) []model.Finding {
	if _, ok := n.Contract(); !ok {
		return nil
	}

	ctorWrites := map[string]struct{}{}
	for _, f := range ast.Collect(n, ast.OfKind(ast.KindFunction)) {
		fd, ok := f.Function()
		if !ok || !fd.IsCtor {
			continue
		}
		for _, a := range ast.Collect(f, ast.OfKind(ast.KindAssignment)) {
			if d, ok := a.Assignment(); ok {
				ctorWrites[d.Target] = struct{}{}
			}
		}
	}
	if len(ctorWrites) == 0 {
		return nil
	}

	var out []model.Finding
	for _, v := range ast.Collect(n, ast.OfKind(ast.KindStateVar)) {
		d, ok := v.StateVar()
		if !ok || !strings.HasPrefix(d.Type, "address") || d.Immutable || d.Constant {
			continue
		}
		if !hintsCritical(d.Name) {
			continue
		}
		if _, assigned := ctorWrites[d.Name]; !assigned {
			continue
		}
		out = append(out, finding(r.Meta(), v, source, file,
			fmt.Sprintf("address %q is set in the constructor but not immutable", d.Name),
			"declare the variable immutable if it never changes after deployment",
		))
	}
	return out
}

func hintsCritical(name string) bool {
	lower := strings.ToLower(name)
	for _, h := range criticalAddressHints {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}
