// Package core implements the balanced-tree mechanics of the outline
// rope: leaves, internal nodes, and AVL-style joining. It knows
// nothing about the public (visible, UTF-16) coordinate space — that
// translation lives one layer up, in the root package.
package core

import "strings"

// Node is either a *Leaf or an *Internal. It matches the public
// interface but is defined here so internal types can refer to it
// without an import cycle.
type Node interface {
	// Weight is a cached UTF-16 length: for a Leaf, the length of its
	// paragraph Content; for an Internal, the total length of its left
	// subtree only (invariant I2). TotalWeight gives a whole subtree's
	// length.
	Weight() int
	// Height is 1 + max(child heights) for an Internal, 0 for a Leaf.
	Height() int
}

// Leaf owns exactly one paragraph: Content always ends in exactly one
// '\n', which is the only newline Content contains (invariant I1).
// Indentation is virtual: it is not part of Content and does not
// contribute to Weight. Collapsed, when non-nil, roots a separate
// rope holding hidden descendant paragraphs (invariant I5); it is
// owned exclusively by this Leaf and must never be aliased.
type Leaf struct {
	Content     string
	Indentation uint32
	Collapsed   Node
	weight      int
}

// NewLeaf builds a Leaf from paragraph content and an indentation
// level. Callers are responsible for content satisfying I1 (exactly
// one trailing '\n', no other '\n' inside); NewLeaf does not validate
// this because it is also used to build leaf halves whose invariant
// the caller has already established by construction.
func NewLeaf(content string, indentation uint32) *Leaf {
	return &Leaf{Content: content, Indentation: indentation, weight: utf16Len(content)}
}

// Weight returns the UTF-16 length of Content.
func (l *Leaf) Weight() int { return l.weight }

// Height is always 0 for a Leaf.
func (l *Leaf) Height() int { return 0 }

// EndsInNewline reports whether Content's last code unit is '\n'. It
// is true for every well-formed Leaf; exposed so deletion can detect
// the moment a leaf's trailing newline is cut (see invariant I5's
// "collapsed is destroyed when the leaf's final \n is deleted").
func (l *Leaf) EndsInNewline() bool {
	return len(l.Content) > 0 && l.Content[len(l.Content)-1] == '\n'
}

// WithContent returns a new Leaf with Content replaced and weight
// recomputed, preserving Indentation and Collapsed. Rope operations
// above this package never mutate a Leaf in place, so a caller still
// holding an old root never observes a half-applied edit.
func (l *Leaf) WithContent(content string) *Leaf {
	return &Leaf{Content: content, Indentation: l.Indentation, Collapsed: l.Collapsed, weight: utf16Len(content)}
}

// WithIndentation returns a new Leaf with Indentation replaced.
func (l *Leaf) WithIndentation(indentation uint32) *Leaf {
	return &Leaf{Content: l.Content, Indentation: indentation, Collapsed: l.Collapsed, weight: l.weight}
}

// WithCollapsed returns a new Leaf with Collapsed replaced.
func (l *Leaf) WithCollapsed(collapsed Node) *Leaf {
	return &Leaf{Content: l.Content, Indentation: l.Indentation, Collapsed: collapsed, weight: l.weight}
}

// Internal composes two non-nil children (invariant I4). Weight is
// the UTF-16 length of the left subtree (invariant I2); Height is
// 1+max(child heights), used to enforce invariant I3.
type Internal struct {
	Left, Right Node
	weight      int
	height      int
}

// NewInternal builds an Internal node from two non-nil children,
// computing weight and height from them. It performs no balancing;
// callers that need AVL-balanced joins should use a Balancer.
func NewInternal(left, right Node) *Internal {
	h := left.Height()
	if right.Height() > h {
		h = right.Height()
	}
	return &Internal{Left: left, Right: right, weight: TotalWeight(left), height: h + 1}
}

// Weight returns the UTF-16 length of the left subtree.
func (n *Internal) Weight() int { return n.weight }

// Height returns 1 + max(child heights).
func (n *Internal) Height() int { return n.height }

// VisibleString concatenates every leaf's Content under n, excluding
// any Collapsed subtrees. The sentinel trailing '\n' on the document's
// rightmost leaf is not stripped here — that is a document-level
// concern handled one layer up, not a property of an arbitrary
// subtree.
func VisibleString(n Node) string {
	var b strings.Builder
	writeVisible(n, &b)
	return b.String()
}

func writeVisible(n Node, b *strings.Builder) {
	switch t := n.(type) {
	case *Leaf:
		b.WriteString(t.Content)
	case *Internal:
		writeVisible(t.Left, b)
		writeVisible(t.Right, b)
	}
}

// FileString concatenates each leaf's Indentation-many tabs followed
// by its Content, excluding Collapsed subtrees.
func FileString(n Node) string {
	var b strings.Builder
	writeFile(n, &b)
	return b.String()
}

func writeFile(n Node, b *strings.Builder) {
	switch t := n.(type) {
	case *Leaf:
		for i := uint32(0); i < t.Indentation; i++ {
			b.WriteByte('\t')
		}
		b.WriteString(t.Content)
	case *Internal:
		writeFile(t.Left, b)
		writeFile(t.Right, b)
	}
}

// utf16Len returns the number of UTF-16 code units needed to encode s,
// counting an astral-plane rune (U+10000-U+10FFFF) as a surrogate
// pair. Go strings are UTF-8; callers are expected to derive offsets
// the same way a Leaf measures its own Content (spec's §9 note: the
// engine does not itself police surrogate-pair atomicity).
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// Utf16Len exports utf16Len for sibling packages that need to measure
// an arbitrary string the same way a Leaf measures its own Content.
func Utf16Len(s string) int { return utf16Len(s) }
