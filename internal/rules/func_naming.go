package rules

import (
	"fmt"
	"regexp"

	"github.com/xab-mack/solscan/internal/ast"
	"github.com/xab-mack/solscan/internal/model"
)

// mixedCase, with an optional leading underscore for internal helpers.
var reMixedCase = regexp.MustCompile(`^_?[a-z][a-zA-Z0-9]*$`)

// funcNamingRule checks function names against the conventional mixedCase
// style.
type funcNamingRule struct{}

func (funcNamingRule) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:          "SOL-FUNC-NAMING",
		Title:       "Function name not in mixedCase",
		Description: "Function names conventionally use mixedCase.",
		Severity:    model.SeverityInfo,
		Category:    model.CategoryStyle,
	}
}

func (r funcNamingRule) Detect(n *ast.Node, source, file string) []model.Finding {
	d, ok := n.Function()
	if !ok || d.IsCtor || d.Name == "" || d.Name == "fallback" || d.Name == "receive" {
		return nil
	}
	if reMixedCase.MatchString(d.Name) {
		return nil
	}
	return []model.Finding{finding(r.Meta(), n, source, file,
		fmt.Sprintf("function name %q is not mixedCase", d.Name),
		"rename the function to mixedCase",
	)}
}
