package rope

import (
	"strings"

	"github.com/outlinerope/outlinerope/internal/core"
)

// New returns the empty document: a single leaf holding only the
// sentinel newline, at indentation 0.
func New() Node {
	return core.NewLeaf("\n", 0)
}

// FromText parses s into a document rope (spec.md §4.8). Each line's
// leading tabs become its indentation; the line's remaining text plus
// a trailing '\n' becomes its leaf content. If s does not already end
// in '\n', one is appended — it becomes the sentinel newline that
// VisibleString and Length hide on the document's rightmost leaf.
//
// The resulting leaves are assembled with core.BuildBalanced, the same
// middle-out construction Collapse and Expand use to rebuild a
// balanced subtree from a flat leaf list, so a freshly parsed document
// and a freshly re-balanced one have the same shape for the same
// content.
func FromText(s string) Node {
	if s == "" {
		return New()
	}
	if s[len(s)-1] != '\n' {
		s += "\n"
	}
	return core.BuildBalanced(parseParagraphs(s))
}

// leafFromLine turns one newline-terminated line into a Leaf, peeling
// off leading tabs as indentation.
func leafFromLine(line string) *core.Leaf {
	tabs := 0
	for tabs < len(line) && line[tabs] == '\t' {
		tabs++
	}
	return core.NewLeaf(line[tabs:], uint32(tabs))
}

// splitLines breaks s, which must end in '\n', into its newline-
// terminated lines without discarding the terminators.
func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		nl := strings.IndexByte(s, '\n')
		lines = append(lines, s[:nl+1])
		s = s[nl+1:]
	}
	return lines
}
