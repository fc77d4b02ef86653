package rope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The scenario table from spec.md §8.2, each case driving the public
// API the way an editor surface would.
func TestScenario1_CollapseSimpleParent(t *testing.T) {
	n := FromText("A\n\tB\n\tC\nD")
	n, err := Collapse(n, 0, 1)
	require.NoError(t, err)
	require.Equal(t, "A\nD", VisibleString(n))

	leaf, _, ok := LeafAt(n, 0)
	require.True(t, ok)
	require.NotNil(t, leaf.Collapsed)
	require.Equal(t, "B\nC", VisibleString(leaf.Collapsed))
}

func TestScenario2_CollapseMultipleDescendants(t *testing.T) {
	n := FromText("A\n\tB\n\t\tC\n\tD\nE")
	n, err := Collapse(n, 0, 1)
	require.NoError(t, err)
	require.Equal(t, "A\nE", VisibleString(n))
}

func TestScenario3_CollapseClimbsFromChildToParent(t *testing.T) {
	n := FromText("A\n\tB\n\tC\nD")
	// offset 2 falls inside "B".
	n, err := Collapse(n, 2, 1)
	require.NoError(t, err)
	require.Equal(t, "A\nD", VisibleString(n))
}

func TestScenario4_CollapseWithNoChildrenFails(t *testing.T) {
	n := FromText("A\nB\nC")
	before := VisibleString(n)
	_, err := Collapse(n, 0, 1)
	require.Error(t, err)
	var cannot *ErrCannotFold
	require.ErrorAs(t, err, &cannot)
	require.Equal(t, before, VisibleString(n))
}

func TestScenario5_InsertNewlineInheritsIndentation(t *testing.T) {
	n := FromText("\tHello")
	n, err := Insert(n, 5, "\n")
	require.NoError(t, err)
	require.Equal(t, "\tHello\n\t", FileString(n))
}

func TestScenario6_DeleteNewlineSplicesParagraphs(t *testing.T) {
	n := FromText("a\nc\nd\nf")
	n, err := Delete(n, 3, 1)
	require.NoError(t, err)
	require.Equal(t, "a\ncd\nf", VisibleString(n))
}

func TestScenario7_InsertSplitPreservesIndentation(t *testing.T) {
	n := FromText("\t\tHelloWorld")
	n, err := Insert(n, 5, "X\n")
	require.NoError(t, err)
	require.Equal(t, "HelloX\nWorld", VisibleString(n))

	leaves := LeavesIn(n, 0, -1)
	require.Len(t, leaves, 2)
	require.EqualValues(t, 2, leaves[0].Leaf.Indentation)
	require.EqualValues(t, 2, leaves[1].Leaf.Indentation)
}

func TestScenario8_IndentRangeOfLines(t *testing.T) {
	n := FromText("Line 1\nLine 2\nLine 3")
	// "Line 2" starts at offset 7, "Line 3" ends the document.
	n, err := Indent(n, 1, 7, Length(n)-7)
	require.NoError(t, err)
	require.Equal(t, "Line 1\n\tLine 2\n\tLine 3", FileString(n))
}

func TestScenario9_CollapseEmptyTreeFails(t *testing.T) {
	n := New()
	_, err := Collapse(n, 0, 0)
	require.Error(t, err)
	var cannot *ErrCannotFold
	require.ErrorAs(t, err, &cannot)
}
