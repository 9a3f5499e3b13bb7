package engine

import (
	"unicode/utf8"

	"github.com/dshills/inkwell/internal/document"
)

// markOp selects how a mark is applied to covered text.
type markOp uint8

const (
	markAdd markOp = iota
	markRemove
)

// ToggleMark removes mark from every text node in scope if all of them
// carry it, and adds it to all of them otherwise. A scope that covers no
// text returns doc unchanged.
func ToggleMark(doc document.Document, scope document.Range, mark document.Mark) (document.Document, error) {
	if mark == "" {
		return doc, ErrEmptyMark
	}
	if err := document.Validate(doc); err != nil {
		return doc, err
	}
	active, err := document.HasMarkEverywhere(doc, scope, mark)
	if err != nil {
		return doc, err
	}
	if active {
		return applyMark(doc, scope, mark, markRemove)
	}
	return applyMark(doc, scope, mark, markAdd)
}

// AddMark adds mark to every text node in scope.
func AddMark(doc document.Document, scope document.Range, mark document.Mark) (document.Document, error) {
	if mark == "" {
		return doc, ErrEmptyMark
	}
	if err := document.Validate(doc); err != nil {
		return doc, err
	}
	return applyMark(doc, scope, mark, markAdd)
}

// RemoveMark removes mark from every text node in scope.
func RemoveMark(doc document.Document, scope document.Range, mark document.Mark) (document.Document, error) {
	if mark == "" {
		return doc, ErrEmptyMark
	}
	if err := document.Validate(doc); err != nil {
		return doc, err
	}
	return applyMark(doc, scope, mark, markRemove)
}

// applyMark rewrites every span of scope. The result is assembled from
// fresh blocks, so a failure part way leaves doc untouched.
func applyMark(doc document.Document, scope document.Range, mark document.Mark, op markOp) (document.Document, error) {
	spans, err := scope.Resolve(doc)
	if err != nil {
		return doc, err
	}

	out := doc
	changed := false
	for _, span := range spans {
		segs := span.Segments()
		if len(segs) == 0 {
			continue
		}
		block := markBlock(span.Block, segs, mark, op)
		if out, err = out.Replace(span.Path, block); err != nil {
			return doc, err
		}
		changed = true
	}
	if !changed {
		return doc, nil
	}
	return out, nil
}

// markBlock splits the covered text children of block at the segment
// boundaries and applies op to the covered pieces.
func markBlock(block document.Node, segs []document.TextSegment, mark document.Mark, op markOp) document.Node {
	bySeg := make(map[int]document.TextSegment, len(segs))
	for _, s := range segs {
		bySeg[s.Index] = s
	}

	children := block.Children()
	out := make([]document.Node, 0, len(children)+2)
	for i, c := range children {
		seg, ok := bySeg[i]
		if !ok {
			out = append(out, c)
			continue
		}
		out = append(out, splitAndMark(c, seg, mark, op)...)
	}
	return block.WithChildren(mergeAdjacent(out))
}

// splitAndMark returns up to three pieces of a text node: the part before
// the cut, the cut with op applied, and the part after. Their texts
// concatenate to the original text.
func splitAndMark(n document.Node, seg document.TextSegment, mark document.Mark, op markOp) []document.Node {
	text := n.Text()
	lo := byteOffset(text, seg.CutStart)
	hi := lo + byteOffset(text[lo:], seg.CutEnd-seg.CutStart)
	left, mid, right := text[:lo], text[lo:hi], text[hi:]

	marks := n.Marks()
	switch op {
	case markAdd:
		marks = marks.With(mark)
	case markRemove:
		marks = marks.Without(mark)
	}

	pieces := make([]document.Node, 0, 3)
	if left != "" {
		pieces = append(pieces, document.NewTextWithMarks(left, n.Marks()))
	}
	pieces = append(pieces, document.NewTextWithMarks(mid, marks))
	if right != "" {
		pieces = append(pieces, document.NewTextWithMarks(right, n.Marks()))
	}
	return pieces
}

// byteOffset returns the byte index of the n-th rune of s. Invalid bytes
// count as one rune each, as utf8.RuneCountInString does.
func byteOffset(s string, n int) int {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}
