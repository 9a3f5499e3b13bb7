package markup

import (
	"testing"

	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/renderer"
)

func TestRenderDocument(t *testing.T) {
	doc := document.New(
		document.NewBlock(document.TypeParagraph,
			document.NewText("Hello "),
			document.NewText("world", document.MarkBold, document.MarkItalic),
		),
		document.NewBlock(document.TypeCode, document.NewText("if a < b {}")),
		document.NewBlock("quote", document.NewBlock(document.TypeParagraph, document.NewText("q"))),
		document.NewBlock("heading", document.NewText("Title")),
	)

	got := HTML(New(), doc)
	want := "<p>Hello <i><strong>world</strong></i></p>\n" +
		"<pre><code>if a &lt; b {}</code></pre>\n" +
		"<blockquote><p>q</p></blockquote>\n" +
		"<p>Title</p>"
	if got != want {
		t.Errorf("HTML =\n%s\nwant\n%s", got, want)
	}
}

func TestUnknownMarkPassesThrough(t *testing.T) {
	doc := document.New(document.NewBlock("paragraph", document.NewText("u", "underline")))
	if got := HTML(New(), doc); got != "<p>u</p>" {
		t.Errorf("HTML = %q", got)
	}
}

func TestCustomChains(t *testing.T) {
	r := renderer.New(
		Nodes().Alias("heading", document.TypeCode),
		Marks().With(renderer.MatchMark[View]("underline", Wrap("u"))),
		Text,
	)
	doc := document.New(document.NewBlock("heading", document.NewText("h", "underline")))
	if got := HTML(r, doc); got != "<pre><code><u>h</u></code></pre>" {
		t.Errorf("HTML = %q", got)
	}
}

func TestViewTree(t *testing.T) {
	v := New().RenderNode(document.NewBlock(document.TypeCode, document.NewText("x")))
	if v.Tag != "pre" || len(v.Children) != 1 || v.Children[0].Tag != "code" {
		t.Fatalf("view = %+v", v)
	}
	leaf := v.Children[0].Children[0]
	if !leaf.IsText() || leaf.Text != "x" {
		t.Errorf("leaf = %+v", leaf)
	}
}
