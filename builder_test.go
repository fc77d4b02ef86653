package rope

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outlinerope/outlinerope/internal/core"
)

func TestBuilder_DefaultsToAVL(t *testing.T) {
	b := NewBuilder()
	require.Equal(t, "avl", b.ops.balancer.Name())
	n := FromText("one\ntwo\nthree\nfour\nfive")
	n, err := b.Insert(n, 0, "x")
	require.NoError(t, err)
	require.Equal(t, "xone\ntwo\nthree\nfour\nfive", VisibleString(n))
}

func TestBuilder_WithFibonacciBalancerAffectsEveryOperation(t *testing.T) {
	// Runs Insert and Delete through a Builder configured with the
	// Fibonacci balancer and checks the paragraph structure they
	// produce.
	fib := core.NewFibonacciBalancer()
	b := NewBuilder(WithBalancer(fib))

	n := New()
	var err error
	for i := 0; i < 40; i++ {
		n, err = b.Insert(n, Length(n), "line\n")
		require.NoError(t, err)
	}
	// 40 "line\n" leaves plus the empty final paragraph (the sentinel).
	require.Equal(t, 41, len(LeavesIn(n, 0, -1)))

	n, err = b.Delete(n, 0, 5) // remove the first "line\n"
	require.NoError(t, err)
	require.Equal(t, 40, len(LeavesIn(n, 0, -1)))
}

func TestBuilder_SplitJoinRoundTrip(t *testing.T) {
	b := NewBuilder()
	n := FromText("Hello\nWorld")
	// 6 is the leaf boundary between "Hello\n" and "World\n".
	left, right := b.Split(n, 6)
	rejoined := b.Join(left, right)
	require.Equal(t, VisibleString(n), VisibleString(rejoined))
}

func TestBuilder_IndentAndCollapseShareOpsPlumbing(t *testing.T) {
	b := NewBuilder()
	n := FromText("A\n\tB\nC")
	n, err := b.Indent(n, 1, 0, Length(n))
	require.NoError(t, err)
	n, err = b.Collapse(n, 0, 1)
	require.NoError(t, err)
	require.Equal(t, "A\nC", VisibleString(n))
}
