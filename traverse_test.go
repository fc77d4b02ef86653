package rope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeafAt_Boundaries(t *testing.T) {
	n := FromText("one\ntwo\nthree")
	leaf, start, ok := LeafAt(n, 0)
	require.True(t, ok)
	require.Equal(t, 0, start)
	require.Equal(t, "one\n", leaf.Content)

	// The last visible offset still falls within the rightmost leaf.
	leaf, _, ok = LeafAt(n, Length(n))
	require.True(t, ok)
	require.Equal(t, "three\n", leaf.Content)
}

func TestLeafAt_OutOfRange(t *testing.T) {
	n := FromText("one")
	// LeafAt takes internal offsets: TotalWeight(n), which is Length(n)+1
	// (the sentinel '\n' included), still resolves to the rightmost leaf.
	_, _, ok := LeafAt(n, Length(n)+2)
	require.False(t, ok)
	_, _, ok = LeafAt(n, -1)
	require.False(t, ok)
}

func TestLeavesIn_UnboundedEnd(t *testing.T) {
	n := FromText("a\nb\nc")
	leaves := LeavesIn(n, 0, -1)
	require.Len(t, leaves, 3)
	require.Equal(t, "a\n", leaves[0].Leaf.Content)
	require.Equal(t, "c\n", leaves[2].Leaf.Content)
}

func TestLeavesIn_PartialRange(t *testing.T) {
	n := FromText("aa\nbb\ncc")
	// "aa\n" spans [0,3), "bb\n" spans [3,6), "cc\n" spans [6,9).
	leaves := LeavesIn(n, 3, 6)
	require.Len(t, leaves, 1)
	require.Equal(t, "bb\n", leaves[0].Leaf.Content)
}

func TestParentOfLeaf_ClimbsPastSameDepthSiblings(t *testing.T) {
	n := FromText("A\n\tB\n\tC\nD")
	// offset 4 is the start of "C" (second tab child of A): "A\n"(2)+"B\n"(2).
	parent, ok := ParentOfLeaf(n, 4)
	require.True(t, ok)
	require.Equal(t, "A\n", parent.Leaf.Content)
}

func TestParentOfLeaf_TopLevelHasNoParent(t *testing.T) {
	n := FromText("A\nB")
	_, ok := ParentOfLeaf(n, 0)
	require.False(t, ok)
}

func TestChildrenOfLeaf_StopsAtSameOrLowerIndentation(t *testing.T) {
	n := FromText("A\n\tB\n\t\tC\nD")
	children := ChildrenOfLeaf(n, 0)
	require.Len(t, children, 2)
	require.Equal(t, "B\n", children[0].Leaf.Content)
	require.Equal(t, "C\n", children[1].Leaf.Content)
}

func TestChildrenOfLeaf_NoneWhenFollowingLeafIsNotDeeper(t *testing.T) {
	n := FromText("A\nB")
	require.Empty(t, ChildrenOfLeaf(n, 0))
}
