package document

import "strings"

// Document is the ordered sequence of top-level block nodes.
// A Document is an immutable value; the zero value is an empty document.
type Document struct {
	blocks []Node
}

// New creates a document from top-level blocks. The slice is copied.
func New(blocks ...Node) Document {
	if len(blocks) == 0 {
		return Document{}
	}
	d := Document{blocks: make([]Node, len(blocks))}
	copy(d.blocks, blocks)
	return d
}

// Len returns the number of top-level blocks.
func (d Document) Len() int {
	return len(d.blocks)
}

// Block returns the i-th top-level block and whether it exists.
func (d Document) Block(i int) (Node, bool) {
	if i < 0 || i >= len(d.blocks) {
		return Node{}, false
	}
	return d.blocks[i], true
}

// Blocks returns a copy of the top-level blocks.
func (d Document) Blocks() []Node {
	out := make([]Node, len(d.blocks))
	copy(out, d.blocks)
	return out
}

// IsEmpty returns true if the document has no blocks.
func (d Document) IsEmpty() bool {
	return len(d.blocks) == 0
}

// Equal reports deep structural equality.
func (d Document) Equal(other Document) bool {
	if len(d.blocks) != len(other.blocks) {
		return false
	}
	for i := range d.blocks {
		if !d.blocks[i].Equal(other.blocks[i]) {
			return false
		}
	}
	return true
}

// String returns a compact debug representation.
func (d Document) String() string {
	parts := make([]string, len(d.blocks))
	for i, b := range d.blocks {
		parts[i] = b.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Replace returns a new document with the node at path replaced.
// Ancestors along the path are copied; every other subtree is shared.
func (d Document) Replace(path Path, n Node) (Document, error) {
	if len(path) == 0 {
		return d, &StructureError{Path: path, Reason: "empty path"}
	}
	blocks := d.Blocks()
	idx := path[0]
	if idx < 0 || idx >= len(blocks) {
		return d, &StructureError{Path: path, Reason: "index out of range"}
	}
	replaced, err := replaceIn(blocks[idx], path[1:], n, path)
	if err != nil {
		return d, err
	}
	blocks[idx] = replaced
	return Document{blocks: blocks}, nil
}

func replaceIn(parent Node, rest Path, n Node, full Path) (Node, error) {
	if len(rest) == 0 {
		return n, nil
	}
	child, ok := parent.Child(rest[0])
	if !ok {
		return parent, &StructureError{Path: full, Reason: "index out of range"}
	}
	replaced, err := replaceIn(child, rest[1:], n, full)
	if err != nil {
		return parent, err
	}
	children := parent.Children()
	children[rest[0]] = replaced
	return parent.WithChildren(children), nil
}
