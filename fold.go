package rope

import (
	"sort"

	"github.com/outlinerope/outlinerope/internal/core"
)

// leavesIntersecting returns the leaves whose visible range intersects
// [start, end). A zero-length range resolves to the single leaf at
// start, matching the "click the disclosure triangle" usage spec.md §9
// calls out for a zero-length collapse/expand range.
func leavesIntersecting(n Node, start, end int) []LeafInfo {
	if start == end {
		leaf, off, ok := LeafAt(n, start)
		if !ok {
			return nil
		}
		return []LeafInfo{{Leaf: leaf, Offset: off}}
	}
	return LeavesIn(n, start, end)
}

// Collapse folds one or more parent subtrees in [location, location+length)
// under their own leaf, per spec.md §4.6, using the default (AVL)
// balancer.
func Collapse(n Node, location, length int) (Node, error) {
	return defaultOps.collapse(n, location, length)
}

type foldCandidate struct {
	leaf   *core.Leaf
	offset int
}

func (o *ops) collapse(n Node, location, length int) (Node, error) {
	docLen := Length(n)
	if location < 0 || length < 0 || location+length > docLen {
		return nil, errInvalidRange("collapse", location, length, docLen)
	}

	seen := map[*core.Leaf]bool{}
	var candidates []foldCandidate

	for _, li := range leavesIntersecting(n, location, location+length) {
		if children := ChildrenOfLeaf(n, li.Offset); len(children) > 0 {
			if !seen[li.Leaf] {
				seen[li.Leaf] = true
				candidates = append(candidates, foldCandidate{li.Leaf, li.Offset})
			}
			continue
		}
		if parent, ok := ParentOfLeaf(n, li.Offset); ok {
			if !seen[parent.Leaf] {
				seen[parent.Leaf] = true
				candidates = append(candidates, foldCandidate{parent.Leaf, parent.Offset})
			}
		}
	}

	if len(candidates) == 0 {
		return nil, errCannotFold("collapse", location, length)
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].offset > candidates[j].offset })

	root := n
	for _, c := range candidates {
		children := ChildrenOfLeaf(root, c.offset)
		childWidth := 0
		for _, ch := range children {
			childWidth += ch.Leaf.Weight()
		}

		splitPoint := c.offset + c.leaf.Weight()
		left, mid := o.split(root, splitPoint)
		block, right := o.split(mid, childWidth)

		block = rebaseLeaves(block, -int64(c.leaf.Indentation))

		newCollapsed := block
		if c.leaf.Collapsed != nil {
			newCollapsed = o.join(c.leaf.Collapsed, block)
		}
		newLeaf := c.leaf.WithCollapsed(newCollapsed)

		root = o.join(o.replaceLeaf(left, c.leaf, Node(newLeaf)), right)
	}

	return root, nil
}

// Expand unfolds every leaf in [location, location+length) that has a
// non-nil Collapsed, per spec.md §4.7, using the default (AVL)
// balancer.
func Expand(n Node, location, length int) (Node, error) {
	return defaultOps.expand(n, location, length)
}

func (o *ops) expand(n Node, location, length int) (Node, error) {
	docLen := Length(n)
	if location < 0 || length < 0 || location+length > docLen {
		return nil, errInvalidRange("expand", location, length, docLen)
	}

	var targets []LeafInfo
	for _, li := range leavesIntersecting(n, location, location+length) {
		if li.Leaf.Collapsed != nil {
			targets = append(targets, li)
		}
	}
	if len(targets) == 0 {
		return nil, errCannotFold("expand", location, length)
	}

	sort.Slice(targets, func(i, j int) bool { return targets[i].Offset > targets[j].Offset })

	root := n
	for _, t := range targets {
		saved := rebaseLeaves(t.Leaf.Collapsed, int64(t.Leaf.Indentation))
		cleared := t.Leaf.WithCollapsed(nil)

		root = o.replaceLeaf(root, t.Leaf, Node(cleared))

		p := t.Offset + cleared.Weight()
		left, right := o.split(root, p)
		root = o.join(o.join(left, saved), right)
	}

	return root, nil
}

// rebaseLeaves returns n with delta added to every leaf's indentation,
// clamped at 0. It rebuilds a fresh balanced tree from the resulting
// leaves rather than mutating in place — n is always a just-extracted
// or just-about-to-be-grafted subtree here, not the live document, so
// there is no shape to preserve.
func rebaseLeaves(n Node, delta int64) Node {
	leaves := core.CollectLeaves(n)
	rebased := make([]*core.Leaf, len(leaves))
	for i, l := range leaves {
		v := int64(l.Indentation) + delta
		if v < 0 {
			v = 0
		}
		rebased[i] = l.WithIndentation(uint32(v))
	}
	return core.BuildBalanced(rebased)
}
