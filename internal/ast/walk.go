package ast

// Predicate selects nodes during traversal.
type Predicate func(*Node) bool

// Any matches every node.
func Any(*Node) bool { return true }

// OfKind matches nodes of the given kind.
func OfKind(k Kind) Predicate {
	return func(n *Node) bool { return n.Kind == k }
}

// Collect returns all nodes under root (root included) matching pred, in
// pre-order: a node before its children, children left to right. Nil roots
// and nil children are skipped silently so traversal stays total over
// partially built trees.
func Collect(root *Node, pred Predicate) []*Node {
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if pred(n) {
			out = append(out, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}

// Contains reports whether the subtree rooted at root holds a node of kind
// k, short-circuiting at the first match.
func Contains(root *Node, k Kind) bool {
	if root == nil {
		return false
	}
	if root.Kind == k {
		return true
	}
	for _, c := range root.Children {
		if Contains(c, k) {
			return true
		}
	}
	return false
}

// LineOf returns the node's starting line. The second return is false when
// location metadata is absent; callers must treat that as "location
// unknown", never as line 0.
func LineOf(n *Node) (int, bool) {
	if n == nil || n.Span == nil {
		return 0, false
	}
	return n.Span.Start.Line, true
}
