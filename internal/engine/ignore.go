package engine

import (
	"path/filepath"
	"strings"

	"github.com/xab-mack/solscan/internal/config"
	"github.com/xab-mack/solscan/internal/model"
)

// ApplyIgnores filters findings through config ignore rules and inline
// suppression markers of the form: // solscan:ignore RULE-ID
func ApplyIgnores(findings []model.Finding, cfg config.Config, sources map[string]string) []model.Finding {
	var out []model.Finding
	for _, f := range findings {
		if isIgnored(f, cfg, sources[f.File]) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func isIgnored(f model.Finding, cfg config.Config, source string) bool {
	for _, ig := range cfg.Ignore {
		if ig.Rule != "" && !strings.EqualFold(ig.Rule, f.RuleID) {
			continue
		}
		if ig.Path != "" && !strings.HasPrefix(filepath.ToSlash(f.File), filepath.ToSlash(ig.Path)) {
			continue
		}
		return true
	}
	return hasInlineSuppression(source, f.RuleID, f.Line)
}

// hasInlineSuppression scans a small window above the finding for a
// suppression comment naming the rule.
func hasInlineSuppression(source, ruleID string, line int) bool {
	if source == "" || line < 1 {
		return false
	}
	lines := strings.Split(source, "\n")
	from := max(0, line-1-2)
	to := min(len(lines)-1, line-1)
	needle := "solscan:ignore " + ruleID
	for i := from; i <= to; i++ {
		if strings.Contains(lines[i], needle) {
			return true
		}
	}
	return false
}
