package rules

import (
	"regexp"
	"strings"

	"github.com/xab-mack/solscan/internal/ast"
	"github.com/xab-mack/solscan/internal/model"
)

var reNumericBound = regexp.MustCompile(`<=?\s*\d`)

// unboundedLoopRule flags loops bounded by a dynamic array length inside
// public or external functions; anyone can grow the array until the loop
// exhausts the block gas limit.
type unboundedLoopRule struct{}

func (unboundedLoopRule) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:          "SOL-UNBOUNDED-LOOP",
		Title:       "Unbounded loop in externally callable function",
		Description: "Iterating a dynamic array in a public/external function can be driven past the gas limit.",
		Severity:    model.SeverityMedium,
		Category:    model.CategoryGas,
		References:  []string{"SWC-128"},
	}
}

func (r unboundedLoopRule) Detect(n *ast.Node, source, file string) []model.Finding {
	fn, ok := n.Function()
	if !ok || (fn.Visibility != "public" && fn.Visibility != "external") {
		return nil
	}

	var out []model.Finding
	for _, l := range ast.Collect(n, ast.OfKind(ast.KindLoop)) {
		d, ok := l.Loop()
		if !ok {
			continue
		}
		if !strings.Contains(d.Condition, ".length") || reNumericBound.MatchString(d.Condition) {
			continue
		}
		out = append(out, finding(r.Meta(), l, source, file,
			"loop bound depends on a dynamic array length",
			"bound the iteration count or split the work across transactions",
		))
	}
	return out
}
