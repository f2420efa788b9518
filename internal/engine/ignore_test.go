package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xab-mack/solscan/internal/config"
	"github.com/xab-mack/solscan/internal/engine"
	"github.com/xab-mack/solscan/internal/model"
)

func TestApplyIgnoresByRule(t *testing.T) {
	findings := []model.Finding{
		{RuleID: "SOL-REENTRANCY", File: "a.sol"},
		{RuleID: "SOL-FUNC-NAMING", File: "a.sol"},
	}
	cfg := config.Config{Ignore: []config.IgnoreRule{{Rule: "sol-func-naming"}}}

	out := engine.ApplyIgnores(findings, cfg, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "SOL-REENTRANCY", out[0].RuleID)
}

func TestApplyIgnoresByPathPrefix(t *testing.T) {
	findings := []model.Finding{
		{RuleID: "SOL-REENTRANCY", File: "contracts/vendor/Pool.sol"},
		{RuleID: "SOL-REENTRANCY", File: "contracts/Bank.sol"},
	}
	cfg := config.Config{Ignore: []config.IgnoreRule{{Path: "contracts/vendor/"}}}

	out := engine.ApplyIgnores(findings, cfg, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "contracts/Bank.sol", out[0].File)
}

func TestApplyIgnoresRuleAndPathMustBothMatch(t *testing.T) {
	findings := []model.Finding{
		{RuleID: "SOL-REENTRANCY", File: "contracts/Bank.sol"},
	}
	cfg := config.Config{Ignore: []config.IgnoreRule{{Rule: "SOL-REENTRANCY", Path: "contracts/vendor/"}}}

	out := engine.ApplyIgnores(findings, cfg, nil)
	assert.Len(t, out, 1)
}

func TestInlineSuppression(t *testing.T) {
	source := "line one\n// solscan:ignore SOL-REENTRANCY\nbad line\n"
	findings := []model.Finding{
		{RuleID: "SOL-REENTRANCY", File: "a.sol", Line: 3},
		{RuleID: "SOL-TX-ORIGIN", File: "a.sol", Line: 3},
	}
	sources := map[string]string{"a.sol": source}

	out := engine.ApplyIgnores(findings, config.Config{}, sources)
	require.Len(t, out, 1, "marker suppresses only the named rule")
	assert.Equal(t, "SOL-TX-ORIGIN", out[0].RuleID)
}

func TestInlineSuppressionWindow(t *testing.T) {
	source := "// solscan:ignore SOL-REENTRANCY\na\nb\nc\nbad line\n"
	findings := []model.Finding{{RuleID: "SOL-REENTRANCY", File: "a.sol", Line: 5}}
	sources := map[string]string{"a.sol": source}

	out := engine.ApplyIgnores(findings, config.Config{}, sources)
	assert.Len(t, out, 1, "markers further than two lines above do not apply")
}
