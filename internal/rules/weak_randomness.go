package rules

import (
	"strings"

	"github.com/xab-mack/solscan/internal/ast"
	"github.com/xab-mack/solscan/internal/model"
)

// weakRandomnessRule flags randomness derived from chain attributes miners
// can influence (block.timestamp, block.number, blockhash).
type weakRandomnessRule struct{}

func (weakRandomnessRule) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:          "SOL-WEAK-RANDOMNESS",
		Title:       "Weak randomness from chain attributes",
		Description: "Block attributes are predictable and miner-influenced; they are not a randomness source.",
		Severity:    model.SeverityMedium,
		Category:    model.CategorySecurity,
		References:  []string{"SWC-120"},
	}
}

func (r weakRandomnessRule) Detect(n *ast.Node, source, file string) []model.Finding {
	d, ok := n.Call()
	if !ok {
		return nil
	}
	hashing := d.Method == "keccak256" || d.Method == "sha256" || d.Method == "blockhash"
	if !hashing {
		return nil
	}
	if d.Method != "blockhash" &&
		!strings.Contains(d.Args, "block.timestamp") &&
		!strings.Contains(d.Args, "block.number") &&
		!strings.Contains(d.Args, "blockhash") {
		return nil
	}
	return []model.Finding{finding(r.Meta(), n, source, file,
		"randomness derived from miner-influenced block attributes",
		"use a verifiable randomness source (e.g. VRF) or a commit-reveal scheme",
	)}
}
