// Package document provides the immutable rich-text document model.
//
// A Document is an ordered sequence of top-level block nodes. Each Node is
// either a block (a type tag and ordered children) or a text leaf (a string
// and a set of marks):
//
//	doc := document.New(
//	    document.NewBlock(document.TypeParagraph,
//	        document.NewText("A line of text in a paragraph."),
//	    ),
//	)
//
// # Immutability
//
// Node and Document values never change after construction. Accessors that
// expose slices return copies, and every mutation in the engine package
// produces a new Document. Holding on to an older value is always safe.
//
// # Scopes
//
// A Range (scope) is built from two Points. A Point addresses a block by
// Path and a rune offset into the flattened text of that block, so splitting
// a text node never invalidates a scope:
//
//	scope := document.Whole(doc)
//	scope := document.BlockRange(doc, document.Path{0})
//
// Resolving a scope against a document that does not contain it returns an
// error matching ErrInvalidScope.
//
// # Serialization
//
// Documents encode to a record form ({type, children} for blocks and
// {text, marks} for leaves) in JSON or YAML, and to the legacy
// {document: {nodes: [...]}} value shape.
package document
