package rope

import "github.com/outlinerope/outlinerope/internal/core"

// Node is a node of a rope: either a paragraph leaf or an internal
// join of two subtrees. It is the shared currency of every operation
// in this package — each one takes a Node and returns a new Node,
// sharing whatever subtrees it did not touch.
type Node = core.Node

// Balancer is the pluggable join strategy behind every structural
// operation. AVL (core.NewAVLBalancer, the package-level default) is
// the only strategy that guarantees invariant I3; FibonacciBalancer
// trades that guarantee for cheaper append-heavy joins. Build a
// Builder with WithBalancer to use a non-default one.
type Balancer = core.Balancer

// ops bundles every structural operation behind one configurable
// Balancer, so Join, Split, Insert, Delete, Indent, Collapse and
// Expand all rebalance the same way. The package-level functions and
// Builder both go through an *ops value; only the balancer differs.
type ops struct {
	balancer Balancer
}

var defaultOps = &ops{balancer: core.NewAVLBalancer()}

func (o *ops) join(left, right Node) Node {
	return o.balancer.Join(left, right)
}

// split divides n at internal offset at into two ropes whose join
// reconstructs the original content, (left, right). at must fall on a
// leaf boundary — 0 or a leaf's own Weight when the recursion bottoms
// out at that leaf — anything else is a programming error and split
// panics rather than silently truncating a paragraph (spec.md §4.1).
func (o *ops) split(n Node, at int) (Node, Node) {
	switch t := n.(type) {
	case nil:
		return nil, nil
	case *core.Leaf:
		switch at {
		case 0:
			return nil, t
		case t.Weight():
			return t, nil
		default:
			panic("rope: split offset does not fall on a leaf boundary")
		}
	case *core.Internal:
		if at < t.Weight() {
			l, r := o.split(t.Left, at)
			return l, o.join(r, t.Right)
		}
		l, r := o.split(t.Right, at-t.Weight())
		return o.join(t.Left, l), r
	default:
		panic("rope: unknown node type")
	}
}

// Join combines two ropes into one, rebalancing with the default (AVL)
// balancer. Either side may be nil.
func Join(left, right Node) Node {
	return defaultOps.join(left, right)
}

// Split divides n at internal offset at into two ropes whose Join
// reconstructs the original content, using the default (AVL) balancer
// to rejoin untouched siblings on the way back up.
func Split(n Node, at int) (Node, Node) {
	return defaultOps.split(n, at)
}

// VisibleString returns n's content as the user sees it: every
// paragraph's text in order, collapsed subtrees omitted, and — when n
// is a whole document rather than an arbitrary subtree — without the
// structural trailing '\n' invariant I6 hides on the rightmost leaf.
func VisibleString(n Node) string {
	s := core.VisibleString(n)
	if len(s) > 0 && s[len(s)-1] == '\n' {
		return s[:len(s)-1]
	}
	return s
}

// Length returns n's visible length in UTF-16 code units: the total
// weight of the tree minus the one sentinel code unit I6 hides.
func Length(n Node) int {
	w := core.TotalWeight(n)
	if w == 0 {
		return 0
	}
	return w - 1
}

// FileString renders n the way it would be saved to disk: each
// paragraph prefixed by its indentation (as literal tabs), collapsed
// subtrees omitted, sentinel newline dropped (spec.md §4.9, §6.4).
func FileString(n Node) string {
	s := core.FileString(n)
	if len(s) > 0 && s[len(s)-1] == '\n' {
		return s[:len(s)-1]
	}
	return s
}

// FileLength returns the UTF-16 length of FileString(n). Unlike
// Length, this has no cached shortcut — indentation is virtual and
// not folded into any node's Weight — so it walks every leaf. The
// trailing sentinel '\n' that FileString drops is excluded too.
func FileLength(n Node) int {
	total := 0
	core.Traverse(n, 0, -1, true, func(leaf *core.Leaf, _ int) bool {
		total += int(leaf.Indentation) + leaf.Weight()
		return true
	})
	if total == 0 {
		return 0
	}
	return total - 1
}
