package document

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Path addresses a node by child indexes from the document root.
// Path{0} is the first top-level block; Path{0, 2} its third child.
type Path []int

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Equal returns true if both paths address the same node.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix returns true if prefix is an ancestor of (or equal to) p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	return p[:len(prefix)].Equal(prefix)
}

// Child returns the path of the i-th child of p.
func (p Path) Child(i int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = i
	return out
}

// String returns a representation like "[0 2]".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Point is a position in a document: a block and a rune offset into the
// flattened text of that block.
type Point struct {
	Path   Path
	Offset int
}

// String returns a representation like "[0]@5".
func (p Point) String() string {
	return fmt.Sprintf("%s@%d", p.Path, p.Offset)
}

// Range is a scope between two points. The points may be given in either
// order. The zero Range is the empty scope.
type Range struct {
	Anchor Point
	Focus  Point
}

// IsEmpty returns true for the zero Range, which touches nothing.
func (r Range) IsEmpty() bool {
	return r.Anchor.Path == nil && r.Focus.Path == nil
}

// IsCollapsed returns true if both points are the same position.
func (r Range) IsCollapsed() bool {
	return r.Anchor.Path.Equal(r.Focus.Path) && r.Anchor.Offset == r.Focus.Offset
}

// String returns a representation like "[0]@0..[0]@5".
func (r Range) String() string {
	if r.IsEmpty() {
		return "<empty>"
	}
	return r.Anchor.String() + ".." + r.Focus.String()
}

// Whole returns the scope covering every block of doc.
// An empty document yields the empty scope.
func Whole(doc Document) Range {
	n := doc.Len()
	if n == 0 {
		return Range{}
	}
	last, _ := doc.Block(n - 1)
	return Range{
		Anchor: Point{Path: Path{0}, Offset: 0},
		Focus:  Point{Path: Path{n - 1}, Offset: utf8.RuneCountInString(PlainText(last))},
	}
}

// BlockRange returns the scope covering the full text of the block at path.
// The path is not validated here; resolving the scope reports bad paths.
func BlockRange(doc Document, path Path) Range {
	length := 0
	if n, ok := NodeAt(doc, path); ok {
		length = utf8.RuneCountInString(PlainText(n))
	}
	return Range{
		Anchor: Point{Path: path.Clone(), Offset: 0},
		Focus:  Point{Path: path.Clone(), Offset: length},
	}
}

// TextRange returns the scope covering [start, end) runes of the block at path.
func TextRange(path Path, start, end int) Range {
	return Range{
		Anchor: Point{Path: path.Clone(), Offset: start},
		Focus:  Point{Path: path.Clone(), Offset: end},
	}
}

// Span is the part of one text block that a resolved scope covers.
// Start and End are rune offsets into the block's flattened text.
type Span struct {
	Path  Path
	Block Node
	Start int
	End   int
}

// IsEmpty returns true if the span covers no text.
func (s Span) IsEmpty() bool {
	return s.Start >= s.End
}

// textBlock is a text block together with its location and text length.
type textBlock struct {
	path   Path
	node   Node
	length int
}

// Resolve maps the scope onto the text blocks of doc in document order.
// The empty scope resolves to no spans. A point that does not address a
// block of doc, or whose offset lies outside that block's text, yields an
// error matching ErrInvalidScope.
func (r Range) Resolve(doc Document) ([]Span, error) {
	if r.IsEmpty() {
		return nil, nil
	}

	blocks := collectTextBlocks(doc)

	aIdx, aOff, err := locate(doc, blocks, r.Anchor, false)
	if err != nil {
		return nil, err
	}
	fIdx, fOff, err := locate(doc, blocks, r.Focus, false)
	if err != nil {
		return nil, err
	}

	start, end := r.Anchor, r.Focus
	if fIdx < aIdx || (fIdx == aIdx && fOff < aOff) {
		start, end = end, start
	}

	// The end point prefers the last text block sharing its position so a
	// scope ending on a block boundary does not spill into the next block.
	startIdx, startOff, _ := locate(doc, blocks, start, false)
	endIdx, endOff, _ := locate(doc, blocks, end, true)

	spans := make([]Span, 0, endIdx-startIdx+1)
	for i := startIdx; i <= endIdx; i++ {
		tb := blocks[i]
		lo, hi := 0, tb.length
		if i == startIdx {
			lo = startOff
		}
		if i == endIdx {
			hi = endOff
		}
		spans = append(spans, Span{Path: tb.path, Block: tb.node, Start: lo, End: hi})
	}
	return spans, nil
}

// locate finds the text block index and local offset for a point.
// When the point sits on a boundary between text blocks, preferLast picks
// the later of the blocks that end there instead of the earliest candidate.
func locate(doc Document, blocks []textBlock, p Point, preferLast bool) (int, int, error) {
	if len(p.Path) == 0 {
		return 0, 0, &ScopeError{Point: p, Reason: "empty path"}
	}
	n, ok := NodeAt(doc, p.Path)
	if !ok {
		return 0, 0, &ScopeError{Point: p, Reason: "no such node"}
	}
	if !n.IsBlock() {
		return 0, 0, &ScopeError{Point: p, Reason: "path addresses a text node"}
	}
	length := utf8.RuneCountInString(PlainText(n))
	if p.Offset < 0 || p.Offset > length {
		return 0, 0, &ScopeError{Point: p, Reason: fmt.Sprintf("offset outside [0, %d]", length)}
	}

	offset := p.Offset
	found := false
	var lastIdx, lastOff int
	for i, tb := range blocks {
		if !tb.path.HasPrefix(p.Path) {
			continue
		}
		if !preferLast {
			if offset <= tb.length {
				return i, offset, nil
			}
			offset -= tb.length
			continue
		}
		if found && tb.length > 0 {
			return lastIdx, lastOff, nil
		}
		if offset < tb.length {
			return i, offset, nil
		}
		if offset == tb.length {
			found, lastIdx, lastOff = true, i, offset
			offset = 0
			continue
		}
		offset -= tb.length
	}
	if found {
		return lastIdx, lastOff, nil
	}
	return 0, 0, &ScopeError{Point: p, Reason: "no text block under node"}
}

// collectTextBlocks lists every text block of doc in document order.
func collectTextBlocks(doc Document) []textBlock {
	var out []textBlock
	Walk(doc, func(path Path, n Node) bool {
		if n.IsTextBlock() {
			out = append(out, textBlock{
				path:   path.Clone(),
				node:   n,
				length: utf8.RuneCountInString(PlainText(n)),
			})
			return false
		}
		return n.IsBlock()
	})
	return out
}
