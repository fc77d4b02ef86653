package rope

import (
	"strings"

	"github.com/outlinerope/outlinerope/internal/core"
)

// Insert splices text into n at the given UTF-16 offset and returns
// the new root (spec.md §4.2), using the default (AVL) balancer.
func Insert(n Node, offset int, text string) (Node, error) {
	return defaultOps.insert(n, offset, text)
}

// insert implements §4.2. text is split into at most three pieces,
// each handled in turn:
//   - a terminal partial paragraph (text after its last '\n', or all
//     of text if it contains none) is spliced into the leaf at offset
//     as a plain character run;
//   - the first full, newline-terminated paragraph in text, if any, is
//     inserted immediately after that, at the same offset, becoming
//     its own leaf;
//   - any further full paragraphs are built into a small balanced rope
//     and grafted in with split/join at the offset advanced past the
//     first paragraph.
//
// Doing the partial piece first and the first full paragraph second —
// both at the original offset — is what makes the first paragraph
// land before the partial text in the final document: the partial
// splice happens inside whatever leaf already covers offset, and the
// paragraph insert that follows prepends onto that same leaf.
func (o *ops) insert(n Node, offset int, text string) (Node, error) {
	length := Length(n)
	if offset < 0 || offset > length {
		return nil, errInvalidOffset("Insert", offset, length)
	}
	if text == "" {
		return n, nil
	}

	idx := strings.LastIndexByte(text, '\n')
	var partial, full string
	if idx == len(text)-1 {
		full = text
	} else {
		partial = text[idx+1:]
		full = text[:idx+1]
	}

	result := n
	if partial != "" {
		result = o.insertFragment(result, offset, partial)
	}
	if full == "" {
		return result, nil
	}

	firstNL := strings.IndexByte(full, '\n')
	firstFrag := full[:firstNL+1]
	middle := full[firstNL+1:]

	result = o.insertFragment(result, offset, firstFrag)
	offset += core.Utf16Len(firstFrag)

	if middle == "" {
		return result, nil
	}

	leaves := parseParagraphs(middle)
	middleTree := core.BuildBalanced(leaves)
	left, right := o.split(result, offset)
	return o.join(o.join(left, middleTree), right), nil
}

// insertFragment locates the leaf covering offset and applies the
// leaf-level insertion case appropriate for fragment, rebalancing the
// path back to the root. fragment is either a plain run with no '\n'
// or a single run ending in exactly one '\n'.
//
// For a newline-terminated fragment, ties at an Internal's weight
// boundary descend left rather than right (unlike split's
// convention): offset == t.Weight() lands at the rightmost leaf of
// the left subtree with local offset equal to that leaf's own weight,
// which is the "append under current paragraph" case below. That is
// what makes a paragraph inserted right after an existing paragraph
// inherit that paragraph's indentation instead of the following one's.
// A plain run descends right on a tie, so it is spliced in at the
// start of the following leaf and never becomes an unterminated leaf.
func (o *ops) insertFragment(n Node, offset int, fragment string) Node {
	switch t := n.(type) {
	case *core.Leaf:
		return o.insertIntoLeaf(t, offset, fragment)
	case *core.Internal:
		if offset < t.Weight() || (offset == t.Weight() && strings.HasSuffix(fragment, "\n")) {
			return o.join(o.insertFragment(t.Left, offset, fragment), t.Right)
		}
		return o.join(t.Left, o.insertFragment(t.Right, offset-t.Weight(), fragment))
	default:
		panic("rope: insertFragment on unknown node type")
	}
}

func (o *ops) insertIntoLeaf(leaf *core.Leaf, offset int, fragment string) Node {
	switch {
	case offset == leaf.Weight():
		newLeaf := core.NewLeaf(fragment, leaf.Indentation)
		return o.join(leaf, newLeaf)
	case strings.HasSuffix(fragment, "\n"):
		b := leaf.ByteOffset(offset)
		prefix, suffix := leaf.Content[:b], leaf.Content[b:]
		left := core.NewLeaf(prefix+fragment, leaf.Indentation).WithCollapsed(leaf.Collapsed)
		right := core.NewLeaf(suffix, leaf.Indentation)
		return o.join(left, right)
	default:
		b := leaf.ByteOffset(offset)
		return leaf.WithContent(leaf.Content[:b] + fragment + leaf.Content[b:])
	}
}

// parseParagraphs splits s, a run of one or more newline-terminated
// paragraphs with no trailing partial remainder, into leaves using the
// same leading-tab indentation rule as FromText.
func parseParagraphs(s string) []*core.Leaf {
	lines := splitLines(s)
	leaves := make([]*core.Leaf, len(lines))
	for i, line := range lines {
		leaves[i] = leafFromLine(line)
	}
	return leaves
}
