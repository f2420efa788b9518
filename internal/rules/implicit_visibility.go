package rules

import (
	"fmt"

	"github.com/xab-mack/solscan/internal/ast"
	"github.com/xab-mack/solscan/internal/model"
)

// implicitVisibilityRule flags functions without an explicit visibility
// keyword.
type implicitVisibilityRule struct{}

func (implicitVisibilityRule) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:          "SOL-IMPLICIT-VISIBILITY",
		Title:       "Function without explicit visibility",
		Description: "Visibility should be spelled out; relying on defaults hides the external surface.",
		Severity:    model.SeverityInfo,
		Category:    model.CategoryStyle,
		SupportsFix: true,
		References:  []string{"SWC-100"},
	}
}

func (r implicitVisibilityRule) Detect(n *ast.Node, source, file string) []model.Finding {
	d, ok := n.Function()
	if !ok || d.Visibility != "" || d.IsCtor || d.Name == "fallback" || d.Name == "receive" {
		return nil
	}
	return []model.Finding{finding(r.Meta(), n, source, file,
		fmt.Sprintf("function %q has no visibility specifier", d.Name),
		"declare the function public, external, internal or private",
	)}
}
