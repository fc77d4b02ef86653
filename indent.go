package rope

// Indent adjusts the indentation of every leaf whose visible range
// intersects [location, location+length) by delta, clamping each
// result at 0 (spec.md §4.5). It makes no structural change to the
// tree — the same leaves occupy the same positions, only their
// Indentation field changes.
func Indent(n Node, delta int, location, length int) (Node, error) {
	return defaultOps.indent(n, delta, location, length)
}

// Outdent is Indent with a negated delta.
func Outdent(n Node, delta int, location, length int) (Node, error) {
	return defaultOps.indent(n, -delta, location, length)
}

func (o *ops) indent(n Node, delta int, location, length int) (Node, error) {
	docLen := Length(n)
	if location < 0 || length < 0 || location+length > docLen {
		return nil, errInvalidRange("indent", location, length, docLen)
	}

	root := n
	for _, li := range leavesIntersecting(n, location, location+length) {
		v := int64(li.Leaf.Indentation) + int64(delta)
		if v < 0 {
			v = 0
		}
		root = o.replaceLeaf(root, li.Leaf, Node(li.Leaf.WithIndentation(uint32(v))))
	}
	return root, nil
}

// Depth returns the indentation of the leaf at offset (spec.md §4.9).
func Depth(n Node, offset int) (uint32, error) {
	docLen := Length(n)
	if offset < 0 || offset > docLen {
		return 0, errInvalidOffset("depth", offset, docLen)
	}
	leaf, _, ok := LeafAt(n, offset)
	if !ok {
		return 0, errInvalidOffset("depth", offset, docLen)
	}
	return leaf.Indentation, nil
}

// RangeOfLine returns the starting visible offset and weight of the
// leaf at offset (spec.md §4.9) — the leaf's full Weight, including its
// own trailing '\n'.
func RangeOfLine(n Node, offset int) (start int, length int, err error) {
	docLen := Length(n)
	if offset < 0 || offset > docLen {
		return 0, 0, errInvalidOffset("range_of_line", offset, docLen)
	}
	leaf, leafStart, ok := LeafAt(n, offset)
	if !ok {
		return 0, 0, errInvalidOffset("range_of_line", offset, docLen)
	}
	return leafStart, leaf.Weight(), nil
}
