package renderer

import (
	"errors"

	"github.com/dshills/inkwell/internal/document"
)

// ErrNoMatch is returned by a resolver that does not claim its input.
// Chains treat it as a signal to try the next resolver; it never escapes
// Resolve.
var ErrNoMatch = errors.New("renderer: no match")

// NodeRenderer produces the view for a block from its already-resolved children.
type NodeRenderer[V any] func(n document.Node, children []V) V

// NodeResolver renders a block or returns ErrNoMatch.
type NodeResolver[V any] func(n document.Node, children []V) (V, error)

// MatchType returns a resolver claiming blocks of the given type.
func MatchType[V any](typ string, render NodeRenderer[V]) NodeResolver[V] {
	return MatchNode[V](func(n document.Node) bool { return n.Type() == typ }, render)
}

// MatchNode returns a resolver claiming blocks accepted by match.
func MatchNode[V any](match func(document.Node) bool, render NodeRenderer[V]) NodeResolver[V] {
	return func(n document.Node, children []V) (V, error) {
		if !match(n) {
			var zero V
			return zero, ErrNoMatch
		}
		return render(n, children), nil
	}
}

// NodeChain resolves block views through an ordered resolver list with a
// terminal default. The zero value is not usable; build with NewNodeChain.
type NodeChain[V any] struct {
	resolvers []NodeResolver[V]
	fallback  NodeRenderer[V]
}

// NewNodeChain creates a chain ending in fallback. It panics if fallback is nil.
func NewNodeChain[V any](fallback NodeRenderer[V], resolvers ...NodeResolver[V]) NodeChain[V] {
	if fallback == nil {
		panic("renderer: node chain requires a default renderer")
	}
	return NodeChain[V]{resolvers: append([]NodeResolver[V](nil), resolvers...), fallback: fallback}
}

// With returns a chain with resolvers appended after the existing ones.
func (c NodeChain[V]) With(resolvers ...NodeResolver[V]) NodeChain[V] {
	out := make([]NodeResolver[V], 0, len(c.resolvers)+len(resolvers))
	out = append(out, c.resolvers...)
	out = append(out, resolvers...)
	return NodeChain[V]{resolvers: out, fallback: c.fallback}
}

// Prepend returns a chain with resolvers checked before the existing ones.
func (c NodeChain[V]) Prepend(resolvers ...NodeResolver[V]) NodeChain[V] {
	out := make([]NodeResolver[V], 0, len(c.resolvers)+len(resolvers))
	out = append(out, resolvers...)
	out = append(out, c.resolvers...)
	return NodeChain[V]{resolvers: out, fallback: c.fallback}
}

// Alias returns a chain that renders blocks of type from exactly as the
// receiver renders blocks of type to.
func (c NodeChain[V]) Alias(from, to string) NodeChain[V] {
	return c.Prepend(MatchType[V](from, func(n document.Node, children []V) V {
		return c.Resolve(n.WithType(to), children)
	}))
}

// Len returns the number of resolvers, not counting the default.
func (c NodeChain[V]) Len() int {
	return len(c.resolvers)
}

// Resolve returns the view for n. The first resolver that does not return
// an error wins; any error, including ErrNoMatch, falls through. When no
// resolver claims n, the default renderer is used.
func (c NodeChain[V]) Resolve(n document.Node, children []V) V {
	for _, r := range c.resolvers {
		if v, err := r(n, children); err == nil {
			return v
		}
	}
	return c.fallback(n, children)
}

// MarkRenderer wraps an inner view for a mark.
type MarkRenderer[V any] func(m document.Mark, inner V) V

// MarkResolver wraps an inner view or returns ErrNoMatch.
type MarkResolver[V any] func(m document.Mark, inner V) (V, error)

// MatchMark returns a resolver claiming a single mark tag.
func MatchMark[V any](mark document.Mark, wrap MarkRenderer[V]) MarkResolver[V] {
	return func(m document.Mark, inner V) (V, error) {
		if m != mark {
			var zero V
			return zero, ErrNoMatch
		}
		return wrap(m, inner), nil
	}
}

// Passthrough is a mark renderer that returns the inner view unchanged.
func Passthrough[V any](_ document.Mark, inner V) V {
	return inner
}

// MarkChain resolves mark views through an ordered resolver list with a
// terminal default.
type MarkChain[V any] struct {
	resolvers []MarkResolver[V]
	fallback  MarkRenderer[V]
}

// NewMarkChain creates a chain ending in fallback. A nil fallback leaves
// unknown marks' inner views unchanged.
func NewMarkChain[V any](fallback MarkRenderer[V], resolvers ...MarkResolver[V]) MarkChain[V] {
	if fallback == nil {
		fallback = Passthrough[V]
	}
	return MarkChain[V]{resolvers: append([]MarkResolver[V](nil), resolvers...), fallback: fallback}
}

// With returns a chain with resolvers appended after the existing ones.
func (c MarkChain[V]) With(resolvers ...MarkResolver[V]) MarkChain[V] {
	out := make([]MarkResolver[V], 0, len(c.resolvers)+len(resolvers))
	out = append(out, c.resolvers...)
	out = append(out, resolvers...)
	return MarkChain[V]{resolvers: out, fallback: c.fallback}
}

// Alias returns a chain that renders mark from exactly as it renders mark to.
func (c MarkChain[V]) Alias(from, to document.Mark) MarkChain[V] {
	alias := MatchMark[V](from, func(_ document.Mark, inner V) V {
		return c.Resolve(to, inner)
	})
	out := append([]MarkResolver[V]{alias}, c.resolvers...)
	return MarkChain[V]{resolvers: out, fallback: c.fallback}
}

// Resolve wraps inner for mark m.
func (c MarkChain[V]) Resolve(m document.Mark, inner V) V {
	for _, r := range c.resolvers {
		if v, err := r(m, inner); err == nil {
			return v
		}
	}
	return c.fallback(m, inner)
}

// Apply wraps inner with every mark in set order, the first mark innermost.
func (c MarkChain[V]) Apply(marks document.MarkSet, inner V) V {
	view := inner
	for _, m := range marks.Slice() {
		view = c.Resolve(m, view)
	}
	return view
}
