package engine

import (
	"strings"

	"github.com/dshills/inkwell/internal/document"
)

// Normalize merges adjacent text siblings with equal mark sets and drops
// empty text nodes that are not the only child of their block. Mark
// toggles keep normalized documents normalized.
func Normalize(doc document.Document) document.Document {
	blocks := doc.Blocks()
	for i, b := range blocks {
		blocks[i] = normalizeNode(b)
	}
	return document.New(blocks...)
}

func normalizeNode(n document.Node) document.Node {
	if !n.IsBlock() {
		return n
	}
	children := n.Children()
	for i, c := range children {
		children[i] = normalizeNode(c)
	}
	return n.WithChildren(mergeAdjacent(children))
}

// mergeAdjacent joins runs of text nodes sharing a mark set and removes
// empty text nodes unless nothing else would remain.
func mergeAdjacent(nodes []document.Node) []document.Node {
	out := make([]document.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.IsText() && len(out) > 0 {
			prev := out[len(out)-1]
			if prev.IsText() && prev.Marks().Equal(n.Marks()) {
				var sb strings.Builder
				sb.WriteString(prev.Text())
				sb.WriteString(n.Text())
				out[len(out)-1] = document.NewTextWithMarks(sb.String(), n.Marks())
				continue
			}
		}
		out = append(out, n)
	}

	if len(out) <= 1 {
		return out
	}
	kept := out[:0]
	for _, n := range out {
		if n.IsText() && n.Text() == "" {
			continue
		}
		kept = append(kept, n)
	}
	if len(kept) == 0 {
		return out[:1]
	}
	return kept
}
