package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xab-mack/solscan/internal/analysis"
	"github.com/xab-mack/solscan/internal/ast"
)

func callAt(line, col int) *ast.Node {
	return ast.New(ast.KindCall, &ast.Span{Start: ast.Position{Line: line, Column: col}},
		ast.CallData{Method: "call", External: true})
}

func writeAt(line, col int) *ast.Node {
	return ast.New(ast.KindAssignment, &ast.Span{Start: ast.Position{Line: line, Column: col}},
		ast.AssignData{Target: "total", StateWrite: true})
}

func TestCallBeforeWrite(t *testing.T) {
	tests := []struct {
		name   string
		calls  []*ast.Node
		writes []*ast.Node
		want   bool
	}{
		{
			name:   "no calls",
			writes: []*ast.Node{writeAt(3, 1)},
			want:   false,
		},
		{
			name:  "no writes",
			calls: []*ast.Node{callAt(3, 1)},
			want:  false,
		},
		{
			name:   "call then write",
			calls:  []*ast.Node{callAt(8, 9)},
			writes: []*ast.Node{writeAt(9, 9)},
			want:   true,
		},
		{
			name:   "write then call",
			calls:  []*ast.Node{callAt(9, 9)},
			writes: []*ast.Node{writeAt(8, 9)},
			want:   false,
		},
		{
			name:   "writes both sides of the call",
			calls:  []*ast.Node{callAt(5, 1)},
			writes: []*ast.Node{writeAt(4, 1), writeAt(6, 1)},
			want:   true,
		},
		{
			name:   "same line ordered by column",
			calls:  []*ast.Node{callAt(7, 30)},
			writes: []*ast.Node{writeAt(7, 5)},
			want:   false,
		},
		{
			name:   "identical position counts the call first",
			calls:  []*ast.Node{callAt(7, 5)},
			writes: []*ast.Node{writeAt(7, 5)},
			want:   true,
		},
		{
			name:   "calls without location cannot be ordered",
			calls:  []*ast.Node{ast.New(ast.KindCall, nil, ast.CallData{External: true})},
			writes: []*ast.Node{writeAt(9, 1)},
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analysis.CallBeforeWrite(tt.calls, tt.writes))
		})
	}
}

func TestCallBeforeWriteDoesNotMutateInputs(t *testing.T) {
	calls := []*ast.Node{callAt(9, 1), callAt(2, 1)}
	writes := []*ast.Node{writeAt(5, 1)}
	analysis.CallBeforeWrite(calls, writes)
	assert.Equal(t, 9, calls[0].Span.Start.Line)
	assert.Equal(t, 2, calls[1].Span.Start.Line)
}
