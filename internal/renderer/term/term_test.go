package term

import (
	"testing"

	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/renderer/core"
)

func TestRenderLines(t *testing.T) {
	doc := document.New(
		document.NewBlock(document.TypeParagraph,
			document.NewText("Hello "),
			document.NewText("bold", document.MarkBold),
		),
		document.NewBlock(document.TypeCode, document.NewText("a := 1\nb := 2")),
		document.NewBlock("quote",
			document.NewBlock(document.TypeParagraph, document.NewText("one")),
			document.NewBlock(document.TypeParagraph, document.NewText("two")),
		),
		document.NewBlock("heading", document.NewText("")),
	)

	lines := Lines(New(DefaultTheme()), doc)
	want := []string{
		"Hello bold",
		"│ a := 1",
		"│ b := 2",
		"▎ one",
		"▎ two",
		"",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i, w := range want {
		if got := lines[i].String(); got != w {
			t.Errorf("line %d = %q, want %q", i, got, w)
		}
	}
}

func TestMarkAttributes(t *testing.T) {
	r := New(DefaultTheme())
	v := r.RenderNode(document.NewBlock(document.TypeParagraph,
		document.NewText("a"),
		document.NewText("b", document.MarkBold, document.MarkItalic),
		document.NewText("c", "underline"),
		document.NewText("d", "sparkle"),
	))

	line := v.Lines[0]
	tests := []struct {
		col   int
		attrs core.Attribute
	}{
		{0, core.AttrNone},
		{1, core.AttrBold | core.AttrItalic},
		{2, core.AttrUnderline},
		{3, core.AttrNone},
	}
	for _, tt := range tests {
		if got := line[tt.col].Style.Attributes; got != tt.attrs {
			t.Errorf("col %d attrs = %b, want %b", tt.col, got, tt.attrs)
		}
	}
}

func TestCodeColors(t *testing.T) {
	theme := DefaultTheme()
	v := New(theme).RenderNode(document.NewBlock(document.TypeCode, document.NewText("x")))
	line := v.Lines[0]

	body := line[2]
	if !body.Style.Background.Equals(theme.CodeBackground) || !body.Style.Foreground.Equals(theme.CodeForeground) {
		t.Errorf("code cell style = %+v", body.Style)
	}
	gutter := line[0]
	if gutter.Rune != '│' || gutter.Style.Foreground.Equals(theme.CodeForeground) {
		t.Errorf("gutter cell = %+v", gutter)
	}
}

func TestNewThemeErrors(t *testing.T) {
	if _, err := NewTheme("#zzzzzz", DefaultCodeForeground); err == nil {
		t.Error("expected error for bad background")
	}
	if _, err := NewTheme(DefaultCodeBackground, "nope"); err == nil {
		t.Error("expected error for bad foreground")
	}
	theme, err := NewTheme("000", "fff")
	if err != nil {
		t.Fatalf("NewTheme: %v", err)
	}
	if !theme.CodeForeground.Equals(core.ColorWhite) {
		t.Errorf("foreground = %s", theme.CodeForeground)
	}
}

func TestWideText(t *testing.T) {
	v := DefaultTheme().Text("日本語")
	line := v.Lines[0]
	if line.Width() != 6 {
		t.Errorf("Width() = %d, want 6", line.Width())
	}
	clipped := Clip(line, 5)
	if clipped.String() != "日本" || clipped.Width() != 4 {
		t.Errorf("Clip = %q (%d)", clipped.String(), clipped.Width())
	}
	if got := Clip(line, 10); got.Width() != 6 {
		t.Errorf("Clip wide = %d", got.Width())
	}
}

func TestViewString(t *testing.T) {
	v := New(DefaultTheme()).RenderNode(document.NewBlock("paragraph", document.NewText("a\nb")))
	if v.Inline {
		t.Error("block view should not be inline")
	}
	if got := v.String(); got != "a\nb" {
		t.Errorf("String() = %q", got)
	}
}
