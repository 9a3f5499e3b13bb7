// Package term renders documents as lines of styled terminal cells.
package term

import (
	"strings"

	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/renderer"
	"github.com/dshills/inkwell/internal/renderer/core"
)

// Line is one row of cells.
type Line []core.Cell

// String returns the text of the line.
func (l Line) String() string {
	return core.StringFromCells(l)
}

// Width returns the display width of the line.
func (l Line) Width() int {
	return core.LineWidth(l)
}

// View is a rendered node. Inline views come from text leaves and flow
// into their parent's current line; block views always start a new line.
type View struct {
	Lines  []Line
	Inline bool
}

// String returns the text of the view, one line per row.
func (v View) String() string {
	parts := make([]string, len(v.Lines))
	for i, l := range v.Lines {
		parts[i] = l.String()
	}
	return strings.Join(parts, "\n")
}

// Text returns an inline view for s. Newlines in s break lines.
func (t Theme) Text(s string) View {
	parts := strings.Split(s, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = core.CellsFromString(p, t.Base)
	}
	return View{Lines: lines, Inline: true}
}

// Attr renders a mark by adding attr to every cell of the inner view.
func Attr(attr core.Attribute) renderer.MarkRenderer[View] {
	return func(_ document.Mark, inner View) View {
		return restyle(inner, func(s core.Style) core.Style { return s.WithAttributes(attr) })
	}
}

// Paragraph renders a block by laying out its children.
func Paragraph(_ document.Node, children []View) View {
	return View{Lines: layout(children)}
}

// Code renders a code block with a gutter and the theme's code colors.
func (t Theme) Code(_ document.Node, children []View) View {
	body := core.DefaultStyle().
		WithForeground(t.CodeForeground).
		WithBackground(t.CodeBackground)
	gutter := body.WithForeground(t.CodeBackground.Blend(t.CodeForeground, 0.4))

	lines := layout(children)
	for i, l := range lines {
		prefix := core.CellsFromString(string(t.Gutter)+" ", gutter)
		styled := make(Line, 0, len(prefix)+len(l))
		styled = append(styled, prefix...)
		for _, c := range l {
			styled = append(styled, c.WithStyle(body.Merge(c.Style)))
		}
		lines[i] = styled
	}
	return View{Lines: lines}
}

// Quote renders a block with a dim bar in front of each line.
func (t Theme) Quote(_ document.Node, children []View) View {
	bar := core.CellsFromString(t.QuotePrefix, t.Base.WithAttributes(core.AttrDim))
	lines := layout(children)
	for i, l := range lines {
		lines[i] = append(append(Line{}, bar...), l...)
	}
	return View{Lines: lines}
}

// layout flows inline children onto shared lines and stacks block children.
func layout(children []View) []Line {
	lines := []Line{{}}
	open := true
	for _, c := range children {
		if len(c.Lines) == 0 {
			continue
		}
		if !c.Inline {
			if !open || len(lines[len(lines)-1]) > 0 {
				lines = append(lines, c.Lines...)
			} else {
				lines = append(lines[:len(lines)-1], c.Lines...)
			}
			open = false
			continue
		}
		if !open {
			lines = append(lines, Line{})
		}
		last := len(lines) - 1
		lines[last] = append(lines[last], c.Lines[0]...)
		for _, l := range c.Lines[1:] {
			lines = append(lines, append(Line{}, l...))
		}
		open = true
	}
	return lines
}

func restyle(v View, fn func(core.Style) core.Style) View {
	lines := make([]Line, len(v.Lines))
	for i, l := range v.Lines {
		out := make(Line, len(l))
		for j, c := range l {
			out[j] = c.WithStyle(fn(c.Style))
		}
		lines[i] = out
	}
	return View{Lines: lines, Inline: v.Inline}
}

// Clip returns the prefix of l that fits in width columns.
// A wide cell that would straddle the edge is dropped.
func Clip(l Line, width int) Line {
	w := 0
	for i, c := range l {
		if w+c.Width > width {
			// Drop the continuation cells of a partially visible wide cell.
			return l[:i]
		}
		w += c.Width
	}
	return l
}

// Rows converts lines to plain cell rows for a backend.
func Rows(lines []Line) [][]core.Cell {
	rows := make([][]core.Cell, len(lines))
	for i, l := range lines {
		rows[i] = l
	}
	return rows
}
