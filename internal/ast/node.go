package ast

// Kind identifies the construct a Node represents.
type Kind string

const (
	KindSourceUnit Kind = "source_unit"
	KindPragma     Kind = "pragma"
	KindContract   Kind = "contract"
	KindStateVar   Kind = "state_variable"
	KindFunction   Kind = "function"
	KindCall       Kind = "call"
	KindAssignment Kind = "assignment"
	KindLoop       Kind = "loop"
	KindEmit       Kind = "emit"
)

// Position is a 1-based line/column pair.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Span covers a node's source range. A nil Span on a Node means the
// location is unknown.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Node is one element of the parsed tree. A node exclusively owns its
// children and is never mutated after the parser hands it out. The
// construct-specific payload is reachable only through the typed accessors,
// which report absence instead of handing back partially filled data.
type Node struct {
	Kind     Kind
	Span     *Span
	Children []*Node

	data any
}

type PragmaData struct {
	Name  string // "solidity"
	Value string // version expression, e.g. "^0.8.0"
}

type ContractData struct {
	Name string
	Kind string // contract, library, interface
}

type StateVarData struct {
	Name       string
	Type       string
	Visibility string
	Constant   bool
	Immutable  bool
}

type FunctionData struct {
	Name       string
	Visibility string // empty when not declared
	Mutability string // view, pure, payable or empty
	Params     []string
	IsCtor     bool
}

type CallData struct {
	Callee string // full callee text, e.g. "msg.sender.call" or "require"
	Target string // receiver before the method, empty for bare calls
	Method string // last path element, e.g. "call", "require"
	Args   string // raw argument text
	// External marks calls that leave the contract's trust boundary
	// (call/delegatecall/staticcall/send/transfer forms).
	External bool
	// Checked is true when the call result is captured or guarded on the
	// same statement.
	Checked bool
}

type AssignData struct {
	Target   string
	Operator string
	Value    string
	// StateWrite is true when the target resolves to a contract state
	// variable rather than a local.
	StateWrite bool
}

type LoopData struct {
	Keyword   string // for or while
	Condition string
}

type EmitData struct {
	Event string
}

func New(kind Kind, span *Span, data any, children ...*Node) *Node {
	return &Node{Kind: kind, Span: span, Children: children, data: data}
}

func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

func (n *Node) Pragma() (PragmaData, bool)     { d, ok := n.data.(PragmaData); return d, ok }
func (n *Node) Contract() (ContractData, bool) { d, ok := n.data.(ContractData); return d, ok }
func (n *Node) StateVar() (StateVarData, bool) { d, ok := n.data.(StateVarData); return d, ok }
func (n *Node) Function() (FunctionData, bool) { d, ok := n.data.(FunctionData); return d, ok }
func (n *Node) Call() (CallData, bool)         { d, ok := n.data.(CallData); return d, ok }
func (n *Node) Assignment() (AssignData, bool) { d, ok := n.data.(AssignData); return d, ok }
func (n *Node) Loop() (LoopData, bool)         { d, ok := n.data.(LoopData); return d, ok }
func (n *Node) Emit() (EmitData, bool)         { d, ok := n.data.(EmitData); return d, ok }
