package engine

import (
	"github.com/dshills/inkwell/internal/document"
)

// ToggleBlock converts every text block in scope to typ. If any of those
// blocks already has typ, all of them revert to document.DefaultBlockType
// instead. A scope that touches no block returns doc unchanged.
func ToggleBlock(doc document.Document, scope document.Range, typ string) (document.Document, error) {
	if typ == "" {
		return doc, ErrEmptyBlockType
	}
	if err := document.Validate(doc); err != nil {
		return doc, err
	}
	spans, err := scope.Resolve(doc)
	if err != nil {
		return doc, err
	}

	target := typ
	for _, span := range spans {
		if span.Block.Type() == typ {
			target = document.DefaultBlockType
			break
		}
	}
	return retype(doc, spans, target)
}

// SetBlockType converts every text block in scope to typ.
func SetBlockType(doc document.Document, scope document.Range, typ string) (document.Document, error) {
	if typ == "" {
		return doc, ErrEmptyBlockType
	}
	if err := document.Validate(doc); err != nil {
		return doc, err
	}
	spans, err := scope.Resolve(doc)
	if err != nil {
		return doc, err
	}
	return retype(doc, spans, typ)
}

func retype(doc document.Document, spans []document.Span, typ string) (document.Document, error) {
	if len(spans) == 0 {
		return doc, nil
	}
	out := doc
	var err error
	for _, span := range spans {
		if span.Block.Type() == typ {
			continue
		}
		if out, err = out.Replace(span.Path, span.Block.WithType(typ)); err != nil {
			return doc, err
		}
	}
	return out, nil
}
