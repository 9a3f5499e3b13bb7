// Package engine applies structural mutations to rich-text documents.
//
// Every operation takes a document.Document and a document.Range (scope)
// and returns a new Document. The input value is never modified, and an
// operation either applies to its whole scope or returns the input
// unchanged together with an error.
//
// # Marks
//
// ToggleMark removes a mark when every text node in scope already carries
// it, and adds it otherwise. Text nodes that straddle a scope boundary are
// split so the mark changes on exactly the covered runes:
//
//	doc, err := engine.ToggleMark(doc, document.TextRange(document.Path{0}, 2, 6), document.MarkBold)
//
// After a mark change, adjacent text siblings with identical mark sets in
// the affected blocks are merged back together.
//
// # Blocks
//
// ToggleBlock converts every text block in scope to a type, or back to
// document.DefaultBlockType when any of them already has it. Only the type
// tag changes; children are carried over unchanged.
//
// # Errors
//
// A scope that does not fit the document yields an error matching
// document.ErrInvalidScope. A document that breaks structural rules yields
// document.ErrMalformed.
package engine
