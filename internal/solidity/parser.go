package solidity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xab-mack/solscan/internal/ast"
)

// ParseError is a diagnostic from the parsing collaborator. When Parse
// returns any errors the tree must not be analyzed.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

var (
	rePragma   = regexp.MustCompile(`^\s*pragma\s+(\w+)\s+([^;]+);`)
	reContract = regexp.MustCompile(`^\s*(?:abstract\s+)?(contract|library|interface)\s+([A-Za-z_]\w*)`)
	reFunction = regexp.MustCompile(`^\s*(function\s+([A-Za-z_]\w*)|constructor|fallback|receive)\s*\(([^)]*)\)(.*)$`)
	reStateVar = regexp.MustCompile(`^\s*(address(?:\s+payable)?|u?int\d*|bool|string|bytes\d*|mapping\s*\([^;{]*\))\s+(?:(public|private|internal)\s+)?(?:(constant|immutable)\s+)?([A-Za-z_]\w*)\s*(?:=[^;]*)?;`)
	reLowLevel = regexp.MustCompile(`([A-Za-z_][\w.\[\]()]*)\.(call|delegatecall|staticcall|send|transfer)\s*[({]`)
	reBareCall = regexp.MustCompile(`\b(require|assert|revert|selfdestruct|suicide|keccak256|sha256|blockhash)\s*\(`)
	reAssign   = regexp.MustCompile(`^\s*([A-Za-z_]\w*(?:\[[^\]]*\])?(?:\.\w+)*)\s*(\+=|-=|\*=|/=|=)\s*([^=].*)$`)
	reLoop     = regexp.MustCompile(`\b(for|while)\s*\((.*)\)`)
	reEmit     = regexp.MustCompile(`\bemit\s+([A-Za-z_]\w*)`)
)

var assignKeywords = map[string]struct{}{
	"if": {}, "for": {}, "while": {}, "return": {}, "emit": {}, "require": {}, "assert": {},
}

// openBlock tracks a node whose body braces are still open.
type openBlock struct {
	node      *ast.Node
	bodyDepth int
}

// Parse builds a tree from Solidity source with a line-oriented scan. The
// result approximates the real grammar: construct headers, state variables,
// calls, assignments, loops and emits are recognized; expressions inside
// them are kept as raw text. Comments and string literals are blanked
// before matching so their contents never produce nodes.
func Parse(source string) (*ast.Node, []ParseError) {
	lines := strings.Split(source, "\n")
	root := ast.New(ast.KindSourceUnit, &ast.Span{
		Start: ast.Position{Line: 1, Column: 1},
		End:   ast.Position{Line: len(lines), Column: 1},
	}, nil)

	var (
		errs     []ParseError
		stack    []openBlock
		depth    int
		stateVar = map[string]struct{}{}
	)

	top := func() *openBlock {
		if len(stack) == 0 {
			return nil
		}
		return &stack[len(stack)-1]
	}
	parent := func() *ast.Node {
		if t := top(); t != nil {
			return t.node
		}
		return root
	}
	enclosing := func(k ast.Kind) *ast.Node {
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].node.Kind == k {
				return stack[i].node
			}
		}
		return nil
	}

	inComment := false
	for i, raw := range lines {
		lineNo := i + 1
		line, nowIn := blank(raw, inComment)
		inComment = nowIn

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")
		hasBody := opens > 0 || !strings.Contains(line, ";")

		switch {
		case rePragma.MatchString(line):
			m := rePragma.FindStringSubmatch(line)
			root.Append(ast.New(ast.KindPragma, lineSpan(lineNo, line, m[0]),
				ast.PragmaData{Name: m[1], Value: strings.TrimSpace(m[2])}))

		case reContract.MatchString(line) && enclosing(ast.KindContract) == nil:
			m := reContract.FindStringSubmatch(line)
			n := ast.New(ast.KindContract, lineSpan(lineNo, line, m[0]),
				ast.ContractData{Name: m[2], Kind: m[1]})
			root.Append(n)
			stack = append(stack, openBlock{node: n, bodyDepth: depth + 1})
			stateVar = map[string]struct{}{}

		case reFunction.MatchString(line) && enclosing(ast.KindFunction) == nil:
			m := reFunction.FindStringSubmatch(line)
			data := ast.FunctionData{
				Name:       m[2],
				Params:     paramNames(m[3]),
				Visibility: firstKeyword(m[4], "public", "external", "internal", "private"),
				Mutability: firstKeyword(m[4], "view", "pure", "payable"),
				IsCtor:     strings.HasPrefix(strings.TrimSpace(m[1]), "constructor"),
			}
			if data.Name == "" && !data.IsCtor {
				// fallback/receive keep the keyword as the name
				data.Name = strings.TrimSpace(m[1])
			}
			n := ast.New(ast.KindFunction, lineSpan(lineNo, line, m[0]), data)
			parent().Append(n)
			if hasBody {
				stack = append(stack, openBlock{node: n, bodyDepth: depth + 1})
			}

		case enclosing(ast.KindContract) != nil && enclosing(ast.KindFunction) == nil && reStateVar.MatchString(line):
			m := reStateVar.FindStringSubmatch(line)
			parent().Append(ast.New(ast.KindStateVar, lineSpan(lineNo, line, m[0]), ast.StateVarData{
				Name:       m[4],
				Type:       strings.TrimSpace(m[1]),
				Visibility: m[2],
				Constant:   m[3] == "constant",
				Immutable:  m[3] == "immutable",
			}))
			stateVar[m[4]] = struct{}{}

		case enclosing(ast.KindFunction) != nil:
			scanStatement(line, lineNo, parent(), stateVar, &stack, depth)
		}

		depth += opens - closes
		if depth < 0 {
			errs = append(errs, ParseError{Line: lineNo, Column: strings.Index(raw, "}") + 1, Message: "unexpected '}'"})
			depth = 0
		}
		for t := top(); t != nil && depth < t.bodyDepth; t = top() {
			if t.node.Span != nil {
				t.node.Span.End = ast.Position{Line: lineNo, Column: len(raw) + 1}
			}
			stack = stack[:len(stack)-1]
		}
	}
	if depth != 0 {
		errs = append(errs, ParseError{Line: len(lines), Column: 1, Message: "unbalanced braces at end of file"})
	}
	if inComment {
		errs = append(errs, ParseError{Line: len(lines), Column: 1, Message: "unterminated block comment"})
	}
	return root, errs
}

// scanStatement extracts call, assignment, loop and emit nodes from one
// line inside a function body and appends them to the innermost open block.
func scanStatement(line string, lineNo int, parent *ast.Node, stateVar map[string]struct{}, stack *[]openBlock, depth int) {
	if m := reLoop.FindStringSubmatchIndex(line); m != nil {
		data := ast.LoopData{Keyword: line[m[2]:m[3]], Condition: line[m[4]:m[5]]}
		n := ast.New(ast.KindLoop, pointSpan(lineNo, m[0]+1), data)
		parent.Append(n)
		if strings.Contains(line, "{") || !strings.Contains(line, ";") || data.Keyword == "for" {
			*stack = append(*stack, openBlock{node: n, bodyDepth: depth + 1})
		}
		return
	}

	if m := reEmit.FindStringSubmatchIndex(line); m != nil {
		parent.Append(ast.New(ast.KindEmit, pointSpan(lineNo, m[0]+1),
			ast.EmitData{Event: line[m[2]:m[3]]}))
	}

	for _, m := range reLowLevel.FindAllStringSubmatchIndex(line, -1) {
		target := line[m[2]:m[3]]
		method := line[m[4]:m[5]]
		parent.Append(ast.New(ast.KindCall, pointSpan(lineNo, m[0]+1), ast.CallData{
			Callee:   target + "." + method,
			Target:   target,
			Method:   method,
			Args:     line[m[1]:],
			External: true,
			Checked:  callChecked(line, m[0]),
		}))
	}

	for _, m := range reBareCall.FindAllStringSubmatchIndex(line, -1) {
		name := line[m[2]:m[3]]
		parent.Append(ast.New(ast.KindCall, pointSpan(lineNo, m[0]+1), ast.CallData{
			Callee:  name,
			Method:  name,
			Args:    line[m[1]:],
			Checked: true,
		}))
	}

	if m := reAssign.FindStringSubmatchIndex(line); m != nil {
		target := line[m[2]:m[3]]
		base := baseIdent(target)
		if _, kw := assignKeywords[base]; !kw {
			_, isState := stateVar[base]
			parent.Append(ast.New(ast.KindAssignment, pointSpan(lineNo, m[2]+1), ast.AssignData{
				Target:     target,
				Operator:   line[m[4]:m[5]],
				Value:      strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line[m[6]:m[7]]), ";")),
				StateWrite: isState,
			}))
		}
	}
}

// blank replaces comment and string literal contents with spaces, keeping
// byte offsets stable so columns refer to the original line.
func blank(line string, inComment bool) (string, bool) {
	b := []byte(line)
	inStr := false
	for i := 0; i < len(b); i++ {
		switch {
		case inComment:
			if b[i] == '*' && i+1 < len(b) && b[i+1] == '/' {
				b[i], b[i+1] = ' ', ' '
				i++
				inComment = false
			} else {
				b[i] = ' '
			}
		case inStr:
			if b[i] == '\\' && i+1 < len(b) {
				b[i], b[i+1] = ' ', ' '
				i++
			} else if b[i] == '"' {
				inStr = false
			} else {
				b[i] = ' '
			}
		case b[i] == '"':
			inStr = true
		case b[i] == '/' && i+1 < len(b) && b[i+1] == '/':
			for j := i; j < len(b); j++ {
				b[j] = ' '
			}
			return string(b), false
		case b[i] == '/' && i+1 < len(b) && b[i+1] == '*':
			b[i], b[i+1] = ' ', ' '
			i++
			inComment = true
		}
	}
	return string(b), inComment
}

// callChecked reports whether a low-level call at offset idx has its result
// handled on the same statement.
func callChecked(line string, idx int) bool {
	before := strings.ToLower(line[:idx])
	return strings.Contains(before, "require(") ||
		strings.Contains(before, "assert(") ||
		strings.Contains(before, "if (") || strings.Contains(before, "if(") ||
		strings.Contains(before, "=") ||
		strings.Contains(before, "bool ") ||
		strings.Contains(before, "return ")
}

func baseIdent(target string) string {
	if i := strings.IndexAny(target, ".["); i >= 0 {
		return target[:i]
	}
	return target
}

func paramNames(raw string) []string {
	var names []string
	for _, p := range strings.Split(raw, ",") {
		toks := strings.Fields(strings.TrimSpace(p))
		if len(toks) == 0 {
			continue
		}
		name := toks[len(toks)-1]
		if isIdentifier(name) {
			names = append(names, name)
		}
	}
	return names
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}

func firstKeyword(tail string, kws ...string) string {
	for _, f := range strings.Fields(tail) {
		f = strings.Trim(f, "{")
		for _, kw := range kws {
			if f == kw {
				return kw
			}
		}
	}
	return ""
}

func lineSpan(lineNo int, line, match string) *ast.Span {
	col := strings.Index(line, match) + 1
	if col < 1 {
		col = 1
	}
	return &ast.Span{
		Start: ast.Position{Line: lineNo, Column: col},
		End:   ast.Position{Line: lineNo, Column: col + len(match)},
	}
}

func pointSpan(lineNo, col int) *ast.Span {
	return &ast.Span{
		Start: ast.Position{Line: lineNo, Column: col},
		End:   ast.Position{Line: lineNo, Column: col},
	}
}
