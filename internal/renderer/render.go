package renderer

import "github.com/dshills/inkwell/internal/document"

// TextRenderer produces the bare view of a text leaf before marks apply.
type TextRenderer[V any] func(text string) V

// Renderer walks a document through a node chain and a mark chain.
type Renderer[V any] struct {
	Nodes NodeChain[V]
	Marks MarkChain[V]
	Text  TextRenderer[V]
}

// New creates a renderer from its chains and text renderer.
func New[V any](nodes NodeChain[V], marks MarkChain[V], text TextRenderer[V]) Renderer[V] {
	return Renderer[V]{Nodes: nodes, Marks: marks, Text: text}
}

// Render returns the view of each top-level block in document order.
func (r Renderer[V]) Render(doc document.Document) []V {
	blocks := doc.Blocks()
	views := make([]V, len(blocks))
	for i, b := range blocks {
		views[i] = r.RenderNode(b)
	}
	return views
}

// RenderNode returns the view of a single node and its descendants.
// Children are resolved before their parent.
func (r Renderer[V]) RenderNode(n document.Node) V {
	if n.IsText() {
		return r.Marks.Apply(n.Marks(), r.Text(n.Text()))
	}
	children := n.Children()
	views := make([]V, len(children))
	for i, c := range children {
		views[i] = r.RenderNode(c)
	}
	return r.Nodes.Resolve(n, views)
}
