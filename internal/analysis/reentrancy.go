package analysis

import (
	"sort"

	"github.com/xab-mack/solscan/internal/ast"
)

// ordered is one external call or state write pinned to a source position.
type ordered struct {
	line  int
	col   int
	write bool
}

// CallBeforeWrite decides whether the hazardous ordering "external call
// followed later by a state write" occurs among the given nodes of one
// function body. Ordering is purely textual (line, then column): branches,
// loops and modifier-injected code are not modeled. Nodes without location
// metadata cannot be ordered and are dropped. Calls sort before writes on
// identical positions so the scan stays deterministic.
func CallBeforeWrite(calls, writes []*ast.Node) bool {
	if len(calls) == 0 || len(writes) == 0 {
		return false
	}

	seq := make([]ordered, 0, len(calls)+len(writes))
	for _, n := range calls {
		if n != nil && n.Span != nil {
			seq = append(seq, ordered{line: n.Span.Start.Line, col: n.Span.Start.Column})
		}
	}
	for _, n := range writes {
		if n != nil && n.Span != nil {
			seq = append(seq, ordered{line: n.Span.Start.Line, col: n.Span.Start.Column, write: true})
		}
	}
	sort.SliceStable(seq, func(i, j int) bool {
		if seq[i].line != seq[j].line {
			return seq[i].line < seq[j].line
		}
		return seq[i].col < seq[j].col
	})

	for i, ev := range seq {
		if ev.write {
			continue
		}
		for j := i + 1; j < len(seq); j++ {
			if !seq[j].write {
				break
			}
			return true
		}
	}
	return false
}
