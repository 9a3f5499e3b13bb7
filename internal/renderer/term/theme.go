package term

import (
	"fmt"

	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/renderer"
	"github.com/dshills/inkwell/internal/renderer/core"
)

// Theme holds the colors and glyphs used for terminal views.
type Theme struct {
	// Base is the style of plain text.
	Base           core.Style
	CodeBackground core.Color
	CodeForeground core.Color
	// Gutter is drawn at the start of every code line.
	Gutter      rune
	QuotePrefix string
}

// Default theme colors.
const (
	DefaultCodeBackground = "#1e1e2e"
	DefaultCodeForeground = "#cdd6f4"
)

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	t, _ := NewTheme(DefaultCodeBackground, DefaultCodeForeground)
	return t
}

// NewTheme creates a theme with code colors given as hex strings.
func NewTheme(codeBackground, codeForeground string) (Theme, error) {
	bg, err := core.ColorFromHex(codeBackground)
	if err != nil {
		return Theme{}, fmt.Errorf("code background: %w", err)
	}
	fg, err := core.ColorFromHex(codeForeground)
	if err != nil {
		return Theme{}, fmt.Errorf("code foreground: %w", err)
	}
	return Theme{
		Base:           core.DefaultStyle(),
		CodeBackground: bg,
		CodeForeground: fg,
		Gutter:         '│',
		QuotePrefix:    "▎ ",
	}, nil
}

// Nodes returns the block chain for the theme.
func (t Theme) Nodes() renderer.NodeChain[View] {
	return renderer.NewNodeChain[View](Paragraph,
		renderer.MatchType[View](document.TypeCode, t.Code),
		renderer.MatchType[View]("quote", t.Quote),
	)
}

// Marks returns the mark chain: bold, italic, and the common extras.
func Marks() renderer.MarkChain[View] {
	return renderer.NewMarkChain(nil,
		renderer.MatchMark(document.MarkBold, Attr(core.AttrBold)),
		renderer.MatchMark(document.MarkItalic, Attr(core.AttrItalic)),
		renderer.MatchMark("underline", Attr(core.AttrUnderline)),
		renderer.MatchMark("strikethrough", Attr(core.AttrStrikethrough)),
	)
}

// New returns a terminal renderer for the theme.
func New(t Theme) renderer.Renderer[View] {
	return renderer.New(t.Nodes(), Marks(), t.Text)
}

// Lines renders doc and stacks the top-level views into one list of lines.
func Lines(r renderer.Renderer[View], doc document.Document) []Line {
	var lines []Line
	for _, v := range r.Render(doc) {
		lines = append(lines, v.Lines...)
	}
	return lines
}
