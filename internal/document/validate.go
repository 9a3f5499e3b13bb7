package document

// Validate checks the structural invariants of doc:
//   - every top-level node is a block
//   - every block has a non-empty type
//   - a block's children are either all blocks or all text nodes
//   - a code block holds only text nodes
//
// The first violation is returned as a *StructureError matching ErrMalformed.
func Validate(doc Document) error {
	for i, b := range doc.blocks {
		if err := validateNode(Path{i}, b, true); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(path Path, n Node, topLevel bool) error {
	if n.kind == KindText {
		if topLevel {
			return &StructureError{Path: path.Clone(), Reason: "text node at document level"}
		}
		return nil
	}
	if n.typ == "" {
		return &StructureError{Path: path.Clone(), Reason: "block without type"}
	}

	var blocks, texts int
	for _, c := range n.children {
		if c.kind == KindBlock {
			blocks++
		} else {
			texts++
		}
	}
	if blocks > 0 && texts > 0 {
		return &StructureError{Path: path.Clone(), Reason: "block mixes block and text children"}
	}
	if n.typ == TypeCode && blocks > 0 {
		return &StructureError{Path: path.Clone(), Reason: "code block holds nested blocks"}
	}

	for i, c := range n.children {
		if err := validateNode(path.Child(i), c, false); err != nil {
			return err
		}
	}
	return nil
}
