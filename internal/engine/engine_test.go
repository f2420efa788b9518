package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xab-mack/solscan/internal/ast"
	"github.com/xab-mack/solscan/internal/engine"
	"github.com/xab-mack/solscan/internal/model"
	"github.com/xab-mack/solscan/internal/rules"
	"github.com/xab-mack/solscan/internal/solidity"
)

const bankSource = `pragma solidity 0.8.20;

contract Bank {
    mapping(address => uint256) balances;

    function withdraw() public {
        uint256 amount = balances[msg.sender];
        msg.sender.call{value: amount}("");
        balances[msg.sender] = 0;
    }
}
`

func parseBank(t *testing.T) *ast.Node {
	t.Helper()
	root, errs := solidity.Parse(bankSource)
	require.Empty(t, errs)
	return root
}

func newEngine() *engine.Engine {
	reg := rules.NewRegistry()
	reg.RegisterBuiltin()
	return engine.New(reg, nil)
}

func TestAnalyzeWithdrawReentrancy(t *testing.T) {
	eng := newEngine()
	findings := eng.Analyze(parseBank(t), bankSource, "bank.sol", engine.Options{
		IncludeRules: []string{"SOL-REENTRANCY"},
	})

	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, "SOL-REENTRANCY", f.RuleID)
	assert.Equal(t, model.SeverityHigh, f.Severity)
	assert.Equal(t, model.CategorySecurity, f.Category)
	assert.Equal(t, "bank.sol", f.File)
	assert.Equal(t, 6, f.Line, "finding must point at the function declaration")
	assert.NotEmpty(t, f.Fingerprint)
}

func TestAnalyzeDeterministic(t *testing.T) {
	eng := newEngine()
	root := parseBank(t)
	opts := engine.Options{}

	first := eng.Analyze(root, bankSource, "bank.sol", opts)
	second := eng.Analyze(root, bankSource, "bank.sol", opts)
	assert.Equal(t, first, second)
}

func TestAnalyzeFindingsFollowRegistryOrder(t *testing.T) {
	reg := rules.NewRegistry()
	reg.RegisterBuiltin()
	eng := engine.New(reg, nil)

	order := map[string]int{}
	for i, r := range reg.Rules() {
		order[r.Meta().ID] = i
	}
	findings := eng.Analyze(parseBank(t), bankSource, "bank.sol", engine.Options{})
	require.NotEmpty(t, findings)
	for i := 1; i < len(findings); i++ {
		assert.LessOrEqual(t, order[findings[i-1].RuleID], order[findings[i].RuleID],
			"findings must be grouped rule by rule in registration order")
	}
}

func TestIncludeThenExcludeSameRule(t *testing.T) {
	eng := newEngine()
	findings := eng.Analyze(parseBank(t), bankSource, "bank.sol", engine.Options{
		IncludeRules: []string{"SOL-REENTRANCY"},
		ExcludeRules: []string{"SOL-REENTRANCY"},
	})
	assert.Empty(t, findings, "exclusion applies after inclusion")
}

func TestUnknownRuleIDsMatchNothing(t *testing.T) {
	eng := newEngine()
	root := parseBank(t)

	assert.Empty(t, eng.Analyze(root, bankSource, "bank.sol", engine.Options{
		IncludeRules: []string{"NO-SUCH-RULE"},
	}))

	baseline := eng.Analyze(root, bankSource, "bank.sol", engine.Options{})
	withUnknownExclude := eng.Analyze(root, bankSource, "bank.sol", engine.Options{
		ExcludeRules: []string{"NO-SUCH-RULE"},
	})
	assert.Equal(t, baseline, withUnknownExclude)
}

func TestMinSeverityFilterIsMonotonic(t *testing.T) {
	eng := newEngine()
	root := parseBank(t)

	var prev []model.Finding
	for i, sev := range model.Severities() {
		got := eng.Analyze(root, bankSource, "bank.sol", engine.Options{MinSeverity: sev})
		for _, f := range got {
			assert.True(t, model.SeverityGTE(f.Severity, sev))
		}
		if i > 0 {
			assert.LessOrEqual(t, len(got), len(prev))
			assert.Subset(t, prev, got, "raising the threshold must only drop findings")
		}
		prev = got
	}
}

// panicRule fails on every function node; the engine must contain the
// panic and keep the remaining rules' findings.
type panicRule struct{}

func (panicRule) Meta() model.RuleMeta {
	return model.RuleMeta{ID: "TEST-PANIC", Title: "always panics", Severity: model.SeverityInfo, Category: model.CategoryStyle}
}

func (panicRule) Detect(n *ast.Node, source, file string) []model.Finding {
	if _, ok := n.Function(); ok {
		panic("boom")
	}
	return nil
}

func TestPanickingRuleIsIsolated(t *testing.T) {
	reg := rules.NewRegistry()
	reg.Register(panicRule{})
	reg.RegisterBuiltin()
	eng := engine.New(reg, nil)

	var findings []model.Finding
	require.NotPanics(t, func() {
		findings = eng.Analyze(parseBank(t), bankSource, "bank.sol", engine.Options{})
	})

	ids := map[string]bool{}
	for _, f := range findings {
		ids[f.RuleID] = true
	}
	assert.False(t, ids["TEST-PANIC"])
	assert.True(t, ids["SOL-REENTRANCY"], "rules after the failing one still run")
}
