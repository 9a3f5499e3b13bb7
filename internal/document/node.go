package document

import (
	"fmt"
	"strings"
)

// Kind distinguishes block nodes from text leaves.
type Kind uint8

const (
	// KindBlock is a structural node with a type tag and children.
	KindBlock Kind = iota
	// KindText is a leaf holding literal text and marks.
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Well-known block types.
const (
	TypeParagraph = "paragraph"
	TypeCode      = "code"

	// DefaultBlockType is the type a toggled-off block reverts to.
	DefaultBlockType = TypeParagraph
)

// Node is an immutable tree element: either a block or a text leaf.
type Node struct {
	kind     Kind
	typ      string
	children []Node
	text     string
	marks    MarkSet
}

// NewBlock creates a block node. The children slice is copied.
func NewBlock(typ string, children ...Node) Node {
	n := Node{kind: KindBlock, typ: typ}
	if len(children) > 0 {
		n.children = make([]Node, len(children))
		copy(n.children, children)
	}
	return n
}

// NewText creates a text leaf carrying the given marks.
func NewText(text string, marks ...Mark) Node {
	return Node{kind: KindText, text: text, marks: NewMarkSet(marks...)}
}

// NewTextWithMarks creates a text leaf from an existing mark set.
func NewTextWithMarks(text string, marks MarkSet) Node {
	return Node{kind: KindText, text: text, marks: marks}
}

// Kind returns the node kind.
func (n Node) Kind() Kind { return n.kind }

// IsBlock returns true for block nodes.
func (n Node) IsBlock() bool { return n.kind == KindBlock }

// IsText returns true for text leaves.
func (n Node) IsText() bool { return n.kind == KindText }

// Type returns the block type tag. Text leaves have no type.
func (n Node) Type() string { return n.typ }

// Text returns the literal text of a leaf. Blocks return "".
func (n Node) Text() string { return n.text }

// Marks returns the mark set of a leaf.
func (n Node) Marks() MarkSet { return n.marks }

// Len returns the number of children.
func (n Node) Len() int { return len(n.children) }

// Child returns the i-th child and whether it exists.
func (n Node) Child(i int) (Node, bool) {
	if i < 0 || i >= len(n.children) {
		return Node{}, false
	}
	return n.children[i], true
}

// Children returns a copy of the children.
func (n Node) Children() []Node {
	out := make([]Node, len(n.children))
	copy(out, n.children)
	return out
}

// WithType returns a copy of the block with a new type tag.
// Children are carried over unchanged.
func (n Node) WithType(typ string) Node {
	n.typ = typ
	return n
}

// WithChildren returns a copy of the block with new children.
func (n Node) WithChildren(children []Node) Node {
	return NewBlock(n.typ, children...)
}

// WithMarks returns a copy of the leaf with a new mark set.
func (n Node) WithMarks(marks MarkSet) Node {
	n.marks = marks
	return n
}

// IsTextBlock returns true for a block that holds no block children.
// Text blocks are the units that block toggles and scopes operate on.
func (n Node) IsTextBlock() bool {
	if n.kind != KindBlock {
		return false
	}
	for _, c := range n.children {
		if c.kind == KindBlock {
			return false
		}
	}
	return true
}

// Equal reports deep structural equality.
func (n Node) Equal(other Node) bool {
	if n.kind != other.kind {
		return false
	}
	if n.kind == KindText {
		return n.text == other.text && n.marks.Equal(other.marks)
	}
	if n.typ != other.typ || len(n.children) != len(other.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// String returns a compact debug representation.
func (n Node) String() string {
	var sb strings.Builder
	n.writeTo(&sb)
	return sb.String()
}

func (n Node) writeTo(sb *strings.Builder) {
	if n.kind == KindText {
		fmt.Fprintf(sb, "%q", n.text)
		if !n.marks.IsEmpty() {
			sb.WriteString(n.marks.String())
		}
		return
	}
	sb.WriteString(n.typ)
	sb.WriteByte('(')
	for i, c := range n.children {
		if i > 0 {
			sb.WriteString(", ")
		}
		c.writeTo(sb)
	}
	sb.WriteByte(')')
}

// PlainText returns the concatenated text of n and all its descendants.
func PlainText(n Node) string {
	if n.kind == KindText {
		return n.text
	}
	var sb strings.Builder
	for _, c := range n.children {
		sb.WriteString(PlainText(c))
	}
	return sb.String()
}
