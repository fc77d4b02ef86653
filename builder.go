package rope

import "github.com/outlinerope/outlinerope/internal/core"

// Builder runs every structural operation (Join, Split, Insert,
// Delete, Indent, Collapse, Expand) against a chosen Balancer instead
// of the package-level AVL default. The zero value is not usable;
// construct one with NewBuilder.
type Builder struct {
	ops *ops
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithBalancer selects the join strategy a Builder uses. The package
// default (used by the bare Join/Insert/Delete/... functions) is
// core.NewAVLBalancer(); pass core.NewFibonacciBalancer() for the
// lazy, append-heavy alternative. A Balancer other than AVL does not
// guarantee invariant I3.
func WithBalancer(b Balancer) BuilderOption {
	return func(builder *Builder) {
		builder.ops.balancer = b
	}
}

// NewBuilder creates a Builder, AVL-balanced by default.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{ops: &ops{balancer: core.NewAVLBalancer()}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Join combines two ropes using the Builder's balancer.
func (b *Builder) Join(left, right Node) Node {
	return b.ops.join(left, right)
}

// Split divides n at internal offset at, rejoining untouched siblings
// with the Builder's balancer.
func (b *Builder) Split(n Node, at int) (Node, Node) {
	return b.ops.split(n, at)
}

// Insert splices text into n at offset using the Builder's balancer.
func (b *Builder) Insert(n Node, offset int, text string) (Node, error) {
	return b.ops.insert(n, offset, text)
}

// Delete removes [location, location+length) using the Builder's
// balancer.
func (b *Builder) Delete(n Node, location, length int) (Node, error) {
	return b.ops.delete(n, location, length)
}

// Indent adjusts indentation over [location, location+length) using
// the Builder's balancer for any path rejoining (Indent itself makes
// no structural change, but shares the same ops plumbing).
func (b *Builder) Indent(n Node, delta, location, length int) (Node, error) {
	return b.ops.indent(n, delta, location, length)
}

// Collapse folds descendants in [location, location+length) using the
// Builder's balancer.
func (b *Builder) Collapse(n Node, location, length int) (Node, error) {
	return b.ops.collapse(n, location, length)
}

// Expand unfolds descendants in [location, location+length) using the
// Builder's balancer.
func (b *Builder) Expand(n Node, location, length int) (Node, error) {
	return b.ops.expand(n, location, length)
}
