package rope

import "github.com/outlinerope/outlinerope/internal/core"

// Delete removes the UTF-16 range [location, location+length) and
// returns the new root (spec.md §4.3), using the default (AVL)
// balancer.
func Delete(n Node, location, length int) (Node, error) {
	return defaultOps.delete(n, location, length)
}

// delete implements §4.3. A delete confined to one leaf's content,
// not reaching its trailing '\n', is a local content splice. A delete
// that reaches through a leaf's trailing '\n' — whether or not it
// goes on to remove any of the next leaf's content — needs
// paragraph-repair: the surviving prefix of the first leaf and the
// surviving suffix of the first leaf the deletion does not fully
// consume must merge into one paragraph, since the newline that used
// to separate them is gone. That leaf can be further away than the
// one nominally "last" under the deleted range: a deletion can land
// exactly on a leaf boundary and consume that leaf's own trailing
// '\n' in full too, in which case its suffix is empty and the search
// continues rightward until a leaf survives with something left.
func (o *ops) delete(n Node, location, length int) (Node, error) {
	docLen := Length(n)
	if location < 0 || length < 0 || location+length > docLen {
		return nil, errInvalidRange("Delete", location, length, docLen)
	}
	if length == 0 {
		return n, nil
	}
	return o.deleteRange(n, location, location+length), nil
}

func (o *ops) deleteRange(n Node, start, end int) Node {
	startLeaf, startLeafOffset, _ := LeafAt(n, start)
	localStart := start - startLeafOffset
	localEnd := end - startLeafOffset

	if localEnd < startLeaf.Weight() {
		return o.replaceLeaf(n, startLeaf, splitLeafRemoving(startLeaf, localStart, localEnd))
	}

	// The deletion reaches through startLeaf's own trailing '\n'.
	// Length's validation guarantees startLeaf is never the rightmost
	// leaf here (that leaf's trailing '\n' is the sentinel, never a
	// reachable end offset), so a following leaf always exists.
	lastLeaf, lastLeafOffset, _ := LeafAt(n, end-1)
	if lastLeaf == startLeaf {
		lastLeaf, lastLeafOffset, _ = LeafAt(n, startLeafOffset+startLeaf.Weight())
	}

	// If the deletion also consumes lastLeaf's own trailing '\n' in
	// full, that leaf contributes nothing to the merge either; the
	// same reasoning that ruled out startLeaf being rightmost applies
	// again, so the next leaf always exists.
	localLastEnd := end - lastLeafOffset
	for localLastEnd == lastLeaf.Weight() {
		lastLeaf, lastLeafOffset, _ = LeafAt(n, lastLeafOffset+lastLeaf.Weight())
		localLastEnd = end - lastLeafOffset
	}

	prefix := startLeaf.Content[:startLeaf.ByteOffset(localStart)]
	suffix := lastLeaf.Content[lastLeaf.ByteOffset(localLastEnd):]
	merged := mergeAcrossCut(startLeaf, lastLeaf, prefix, suffix)

	firstStart := startLeafOffset
	lastEnd := lastLeafOffset + lastLeaf.Weight()
	left, rest := o.split(n, firstStart)
	_, right := o.split(rest, lastEnd-firstStart)
	return o.join(o.join(left, Node(merged)), right)
}

// splitLeafRemoving cuts [localStart, localEnd) out of leaf's content.
// Collapsed is dropped if the cut removes the leaf's own trailing '\n'
// (invariant I5: a leaf without a terminator cannot own one) — which
// cannot happen here since the caller only reaches this helper when
// localEnd < leaf.Weight(), but WithCollapsed(nil) is cheap enough to
// apply unconditionally for any future caller that cuts right up to
// the boundary.
func splitLeafRemoving(leaf *core.Leaf, localStart, localEnd int) Node {
	b0, b1 := leaf.ByteOffset(localStart), leaf.ByteOffset(localEnd)
	newLeaf := leaf.WithContent(leaf.Content[:b0] + leaf.Content[b1:])
	if !newLeaf.EndsInNewline() {
		newLeaf = newLeaf.WithCollapsed(nil)
	}
	return newLeaf
}

// mergeAcrossCut builds the single replacement leaf for a delete that
// reaches past startLeaf's own trailing '\n': prefix (startLeaf's
// surviving head) glued to suffix (the surviving tail of cutLeaf, the
// leaf whose own line is being absorbed into startLeaf's).
//
// The merged leaf keeps startLeaf's indentation — the surviving text
// continues the first paragraph's line. Its Collapsed is startLeaf's
// own if it has one; otherwise cutLeaf's transfers over, since cutLeaf
// stops existing as its own line and its collapsed subtree needs a new
// home. A leaf owns at most one, so startLeaf's always wins when both
// have one.
func mergeAcrossCut(startLeaf, cutLeaf *core.Leaf, prefix, suffix string) *core.Leaf {
	collapsed := startLeaf.Collapsed
	if collapsed == nil {
		collapsed = cutLeaf.Collapsed
	}
	merged := core.NewLeaf(prefix+suffix, startLeaf.Indentation).WithCollapsed(collapsed)
	if !merged.EndsInNewline() {
		merged = merged.WithCollapsed(nil)
	}
	return merged
}

// replaceLeaf rebuilds n with old swapped for replacement, rejoining
// the path back to the root through join so the result stays balanced.
func (o *ops) replaceLeaf(n Node, old *core.Leaf, replacement Node) Node {
	if n == Node(old) {
		return replacement
	}
	in, ok := n.(*core.Internal)
	if !ok {
		return n
	}
	if leafUnder(in.Left, old) {
		return o.join(o.replaceLeaf(in.Left, old, replacement), in.Right)
	}
	return o.join(in.Left, o.replaceLeaf(in.Right, old, replacement))
}

func leafUnder(n Node, target *core.Leaf) bool {
	switch t := n.(type) {
	case *core.Leaf:
		return t == target
	case *core.Internal:
		return leafUnder(t.Left, target) || leafUnder(t.Right, target)
	default:
		return false
	}
}
