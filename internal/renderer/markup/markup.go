// Package markup renders documents as HTML-like element trees.
package markup

import (
	"html"
	"strings"

	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/renderer"
)

// View is an element or a text leaf. A View with an empty Tag is text.
type View struct {
	Tag      string
	Text     string
	Children []View
}

// Element creates an element view.
func Element(tag string, children ...View) View {
	return View{Tag: tag, Children: children}
}

// Text creates a text leaf view.
func Text(s string) View {
	return View{Text: s}
}

// IsText returns true for text leaves.
func (v View) IsText() bool {
	return v.Tag == ""
}

// String renders the view as markup. Text is HTML-escaped.
func (v View) String() string {
	var sb strings.Builder
	v.writeTo(&sb)
	return sb.String()
}

func (v View) writeTo(sb *strings.Builder) {
	if v.IsText() {
		sb.WriteString(html.EscapeString(v.Text))
		return
	}
	sb.WriteString("<" + v.Tag + ">")
	for _, c := range v.Children {
		c.writeTo(sb)
	}
	sb.WriteString("</" + v.Tag + ">")
}

// Block renders a block as a single element wrapping its children.
func Block(tag string) renderer.NodeRenderer[View] {
	return func(_ document.Node, children []View) View {
		return Element(tag, children...)
	}
}

// Wrap renders a mark as an element around the inner view.
func Wrap(tag string) renderer.MarkRenderer[View] {
	return func(_ document.Mark, inner View) View {
		return Element(tag, inner)
	}
}

// Code renders a code block as <pre><code>...</code></pre>.
func Code(_ document.Node, children []View) View {
	return Element("pre", Element("code", children...))
}

// Nodes returns the standard block chain: code and quote blocks, then
// paragraphs as the default.
func Nodes() renderer.NodeChain[View] {
	return renderer.NewNodeChain(Block("p"),
		renderer.MatchType[View](document.TypeCode, Code),
		renderer.MatchType("quote", Block("blockquote")),
	)
}

// Marks returns the standard mark chain: bold and italic. Unknown marks
// leave the inner view unchanged.
func Marks() renderer.MarkChain[View] {
	return renderer.NewMarkChain(nil,
		renderer.MatchMark(document.MarkBold, Wrap("strong")),
		renderer.MatchMark(document.MarkItalic, Wrap("i")),
	)
}

// New returns a renderer using the standard chains.
func New() renderer.Renderer[View] {
	return renderer.New(Nodes(), Marks(), Text)
}

// HTML renders doc with r and joins the top-level views with newlines.
func HTML(r renderer.Renderer[View], doc document.Document) string {
	views := r.Render(doc)
	parts := make([]string, len(views))
	for i, v := range views {
		parts[i] = v.String()
	}
	return strings.Join(parts, "\n")
}
