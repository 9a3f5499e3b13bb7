// Package renderer maps documents to views.
//
// Rendering is driven by two ordered chains of resolvers, one keyed on the
// block type of a node and one keyed on a mark tag. Each chain ends in a
// mandatory default renderer, so resolution is total: a node or mark that
// no resolver claims is still rendered, by the default.
//
// Views are opaque to this package. The chains are generic over the view
// type V; the markup and term subpackages supply concrete view types.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│        Renderer[V] (document walk)      │
//	├───────────────────┬─────────────────────┤
//	│   NodeChain[V]    │    MarkChain[V]     │
//	│  type -> view     │  mark, inner -> view│
//	├───────────────────┴─────────────────────┤
//	│   markup.View     │   term.View         │
//	└─────────────────────────────────────────┘
//
// Marks on a text node are applied in MarkSet order with the first mark
// innermost, so {bold, italic} renders as italic(bold(text)).
//
// Usage:
//
//	r := markup.New()
//	views := r.Render(doc)
package renderer
