package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xab-mack/solscan/internal/ast"
	"github.com/xab-mack/solscan/internal/model"
)

var reExactVersion = regexp.MustCompile(`^=?\s*\d+\.\d+\.\d+$`)

// floatingPragmaRule flags caret or open version ranges; the same source
// can compile with different compilers across builds.
type floatingPragmaRule struct{}

func (floatingPragmaRule) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:          "SOL-FLOATING-PRAGMA",
		Title:       "Floating pragma solidity version",
		Description: "Unpinned compiler versions make builds non-reproducible.",
		Severity:    model.SeverityMedium,
		Category:    model.CategoryStyle,
		SupportsFix: true,
		References:  []string{"SWC-103"},
	}
}

func (r floatingPragmaRule) Detect(n *ast.Node, source, file string) []model.Finding {
	d, ok := n.Pragma()
	if !ok || d.Name != "solidity" {
		return nil
	}
	floating := strings.ContainsAny(d.Value, "^<>")
	if !floating || reExactVersion.MatchString(d.Value) {
		return nil
	}
	return []model.Finding{finding(r.Meta(), n, source, file,
		fmt.Sprintf("pragma solidity %s allows multiple compiler versions", d.Value),
		"pin an exact compiler version, e.g. pragma solidity 0.8.20;",
	)}
}
