package document

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Legacy value objects use an "object" discriminator on every node:
//
//	{"object": "value", "document": {"object": "document", "nodes": [
//	    {"object": "block", "type": "paragraph", "nodes": [
//	        {"object": "text", "text": "Hi", "marks": [{"object": "mark", "type": "bold"}]}
//	    ]}
//	]}}
//
// Older text nodes may carry their content in "leaves" instead, one leaf per
// run of identically marked text. Each leaf decodes to its own text node.
const (
	legacyObjectValue    = "value"
	legacyObjectDocument = "document"
	legacyObjectBlock    = "block"
	legacyObjectText     = "text"
	legacyObjectMark     = "mark"
)

// DecodeLegacy parses a legacy value object into a document.
func DecodeLegacy(data []byte) (Document, error) {
	if !gjson.ValidBytes(data) {
		return Document{}, fmt.Errorf("%w: invalid JSON", ErrDecode)
	}
	nodes := gjson.GetBytes(data, "document.nodes")
	if !nodes.IsArray() {
		return Document{}, fmt.Errorf("%w: missing document.nodes", ErrDecode)
	}

	var blocks []Node
	for i, raw := range nodes.Array() {
		decoded, err := decodeLegacyNode(raw)
		if err != nil {
			return Document{}, fmt.Errorf("node %d: %w", i, err)
		}
		blocks = append(blocks, decoded...)
	}

	doc := New(blocks...)
	if err := Validate(doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// decodeLegacyNode decodes one legacy node. A text node with leaves expands
// to several nodes.
func decodeLegacyNode(raw gjson.Result) ([]Node, error) {
	switch object := raw.Get("object").String(); object {
	case legacyObjectBlock:
		typ := raw.Get("type").String()
		if typ == "" {
			return nil, fmt.Errorf("%w: block without type", ErrDecode)
		}
		var children []Node
		for _, c := range raw.Get("nodes").Array() {
			decoded, err := decodeLegacyNode(c)
			if err != nil {
				return nil, err
			}
			children = append(children, decoded...)
		}
		return []Node{NewBlock(typ, children...)}, nil

	case legacyObjectText:
		if leaves := raw.Get("leaves"); leaves.IsArray() {
			out := make([]Node, 0, len(leaves.Array()))
			for _, leaf := range leaves.Array() {
				out = append(out, NewText(leaf.Get("text").String(), legacyMarks(leaf)...))
			}
			return out, nil
		}
		return []Node{NewText(raw.Get("text").String(), legacyMarks(raw)...)}, nil

	default:
		return nil, fmt.Errorf("%w: unsupported object %q", ErrDecode, object)
	}
}

func legacyMarks(raw gjson.Result) []Mark {
	var marks []Mark
	raw.Get("marks").ForEach(func(_, m gjson.Result) bool {
		if m.Type == gjson.String {
			marks = append(marks, Mark(m.String()))
		} else {
			marks = append(marks, Mark(m.Get("type").String()))
		}
		return true
	})
	return marks
}

// EncodeLegacy writes doc as a legacy value object.
func EncodeLegacy(doc Document) ([]byte, error) {
	out := []byte(`{}`)
	var err error
	if out, err = sjson.SetBytes(out, "object", legacyObjectValue); err != nil {
		return nil, err
	}
	if out, err = sjson.SetBytes(out, "document.object", legacyObjectDocument); err != nil {
		return nil, err
	}
	if out, err = sjson.SetRawBytes(out, "document.nodes", []byte(`[]`)); err != nil {
		return nil, err
	}
	for _, b := range doc.blocks {
		raw, err := encodeLegacyNode(b)
		if err != nil {
			return nil, err
		}
		if out, err = sjson.SetRawBytes(out, "document.nodes.-1", raw); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func encodeLegacyNode(n Node) ([]byte, error) {
	out := []byte(`{}`)
	var err error

	if n.kind == KindText {
		if out, err = sjson.SetBytes(out, "object", legacyObjectText); err != nil {
			return nil, err
		}
		if out, err = sjson.SetBytes(out, "text", n.text); err != nil {
			return nil, err
		}
		if out, err = sjson.SetRawBytes(out, "marks", []byte(`[]`)); err != nil {
			return nil, err
		}
		for _, m := range n.marks.marks {
			mark := map[string]string{"object": legacyObjectMark, "type": string(m)}
			if out, err = sjson.SetBytes(out, "marks.-1", mark); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	if out, err = sjson.SetBytes(out, "object", legacyObjectBlock); err != nil {
		return nil, err
	}
	if out, err = sjson.SetBytes(out, "type", n.typ); err != nil {
		return nil, err
	}
	if out, err = sjson.SetRawBytes(out, "nodes", []byte(`[]`)); err != nil {
		return nil, err
	}
	for _, c := range n.children {
		raw, err := encodeLegacyNode(c)
		if err != nil {
			return nil, err
		}
		if out, err = sjson.SetRawBytes(out, "nodes.-1", raw); err != nil {
			return nil, err
		}
	}
	return out, nil
}
