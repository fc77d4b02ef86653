package rope

import "github.com/outlinerope/outlinerope/internal/core"

// LeafInfo describes one paragraph leaf found during a traversal: the
// leaf itself and the internal offset its content begins at.
type LeafInfo struct {
	Leaf   *core.Leaf
	Offset int
}

// LeavesIn returns every leaf whose range intersects [start, end), in
// left-to-right order, along with each leaf's starting offset. end < 0
// means unbounded.
func LeavesIn(n Node, start, end int) []LeafInfo {
	var out []LeafInfo
	core.Traverse(n, start, end, true, func(leaf *core.Leaf, offset int) bool {
		out = append(out, LeafInfo{Leaf: leaf, Offset: offset})
		return true
	})
	return out
}

// LeafAt returns the leaf whose range contains offset, and the offset
// where that leaf's content begins. offset == TotalWeight(n) (the very
// end of the tree) resolves to the rightmost leaf.
func LeafAt(n Node, offset int) (leaf *core.Leaf, leafStart int, ok bool) {
	total := core.TotalWeight(n)
	if offset < 0 || offset > total {
		return nil, 0, false
	}
	if offset == total {
		core.Traverse(n, 0, -1, false, func(l *core.Leaf, off int) bool {
			leaf, leafStart, ok = l, off, true
			return false
		})
		return leaf, leafStart, ok
	}
	core.Traverse(n, offset, offset+1, true, func(l *core.Leaf, off int) bool {
		leaf, leafStart, ok = l, off, true
		return false
	})
	return leaf, leafStart, ok
}

// ParentOfLeaf implements §4.4's parent_of_leaf(offset): the first
// leaf strictly before offset whose indentation is strictly less than
// leaf_at(offset)'s, or (nil, false) if that leaf is already at
// indentation 0.
func ParentOfLeaf(n Node, offset int) (LeafInfo, bool) {
	target, targetStart, ok := LeafAt(n, offset)
	if !ok || target.Indentation == 0 {
		return LeafInfo{}, false
	}
	var found LeafInfo
	hit := false
	core.Traverse(n, 0, targetStart, false, func(l *core.Leaf, off int) bool {
		if l.Indentation < target.Indentation {
			found, hit = LeafInfo{Leaf: l, Offset: off}, true
			return false
		}
		return true
	})
	return found, hit
}

// ChildrenOfLeaf implements §4.4's children_of_leaf(offset): the
// contiguous run of leaves immediately following leaf_at(offset) whose
// indentation is strictly greater than it, stopping at the first leaf
// whose indentation is not.
func ChildrenOfLeaf(n Node, offset int) []LeafInfo {
	target, targetStart, ok := LeafAt(n, offset)
	if !ok {
		return nil
	}
	after := targetStart + target.Weight()
	var out []LeafInfo
	core.Traverse(n, after, -1, true, func(l *core.Leaf, off int) bool {
		if l.Indentation <= target.Indentation {
			return false
		}
		out = append(out, LeafInfo{Leaf: l, Offset: off})
		return true
	})
	return out
}
