// Package rope implements a balanced rope specialized for outliner
// documents: a sequence of newline-terminated paragraphs, each with a
// logical indentation level and an optional collapsed subtree hiding
// its descendants from view.
//
// A Rope is a tree of paragraph leaves. It is immutable in the sense
// that every operation returns a new root sharing unchanged structure
// with the original, but the package makes no concurrency guarantees:
// the rope is meant to be owned and mutated sequentially by a single
// caller (see the package-level Insert/Delete/Collapse/Expand, and
// Document for a small bookkeeping wrapper around a root).
//
// Offsets and lengths throughout the public API are UTF-16 code
// units, not bytes and not runes, and never include virtual
// indentation or collapsed content.
//
// Features:
//   - Immutable: every operation returns a new Node.
//   - Efficient: O(log N) split, join and insert. Traversal starts at
//     the first (or last) leaf and skips leaves outside the requested
//     range, so LeafAt, Delete and the fold operations take time
//     linear in the number of leaves.
//   - Foldable: Collapse/Expand hide and restore descendant paragraphs.
//   - Flexible: pluggable balancing strategies (AVL by default, an
//     optional lazy Fibonacci strategy for append-heavy workloads).
package rope
