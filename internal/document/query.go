package document

import "unicode/utf8"

// WalkFunc is called for each node during Walk. Returning false skips the
// node's children.
type WalkFunc func(path Path, n Node) bool

// Walk traverses doc depth-first in pre-order, preserving child order.
// The path passed to fn is only valid for the duration of the call.
func Walk(doc Document, fn WalkFunc) {
	path := make(Path, 0, 8)
	for i, b := range doc.blocks {
		walkNode(append(path, i), b, fn)
	}
}

func walkNode(path Path, n Node, fn WalkFunc) {
	if !fn(path, n) {
		return
	}
	for i, c := range n.children {
		walkNode(append(path, i), c, fn)
	}
}

// NodeAt returns the node at path and whether it exists.
func NodeAt(doc Document, path Path) (Node, bool) {
	if len(path) == 0 {
		return Node{}, false
	}
	n, ok := doc.Block(path[0])
	if !ok {
		return Node{}, false
	}
	for _, idx := range path[1:] {
		n, ok = n.Child(idx)
		if !ok {
			return Node{}, false
		}
	}
	return n, true
}

// BlocksOfType returns every block whose type is typ, in document order.
// The result is never nil; no match yields an empty slice.
func BlocksOfType(doc Document, typ string) []Node {
	out := make([]Node, 0)
	Walk(doc, func(_ Path, n Node) bool {
		if !n.IsBlock() {
			return false
		}
		if n.typ == typ {
			out = append(out, n)
		}
		return true
	})
	return out
}

// TextSegment is one text child of a span's block that the span intersects.
type TextSegment struct {
	// Index is the child index of the text node within its block.
	Index int

	// Node is the text node.
	Node Node

	// Start and End are the node's rune offsets within the block.
	Start, End int

	// CutStart and CutEnd bound the intersected part, relative to the node.
	CutStart, CutEnd int
}

// Covers returns true if the whole node lies inside the span.
func (s TextSegment) Covers() bool {
	return s.CutStart == 0 && s.CutEnd == s.End-s.Start
}

// Segments returns the text children of the span's block that the span
// covers with a non-empty sub-range, in child order. Empty text nodes
// never participate.
func (s Span) Segments() []TextSegment {
	if s.IsEmpty() {
		return nil
	}
	var out []TextSegment
	offset := 0
	for i, c := range s.Block.children {
		if c.kind != KindText {
			continue
		}
		length := utf8.RuneCountInString(c.text)
		start, end := offset, offset+length
		offset = end

		lo := max(start, s.Start)
		hi := min(end, s.End)
		if lo >= hi {
			continue
		}
		out = append(out, TextSegment{
			Index:    i,
			Node:     c,
			Start:    start,
			End:      end,
			CutStart: lo - start,
			CutEnd:   hi - start,
		})
	}
	return out
}

// HasMarkEverywhere returns true only if every text node within scope
// carries mark. A scope that touches no text returns false.
func HasMarkEverywhere(doc Document, scope Range, mark Mark) (bool, error) {
	spans, err := scope.Resolve(doc)
	if err != nil {
		return false, err
	}
	found := false
	for _, span := range spans {
		for _, seg := range span.Segments() {
			if !seg.Node.marks.Has(mark) {
				return false, nil
			}
			found = true
		}
	}
	return found, nil
}

// TextBlocksIn returns the text blocks a scope touches, including those
// it touches only at a zero-length position.
func TextBlocksIn(doc Document, scope Range) ([]Node, error) {
	spans, err := scope.Resolve(doc)
	if err != nil {
		return nil, err
	}
	out := make([]Node, len(spans))
	for i, s := range spans {
		out[i] = s.Block
	}
	return out, nil
}
