package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Record is the serializable form of a Node. Blocks use Type and Children;
// text leaves use Text and Marks. Text is a pointer so an empty leaf is
// still distinguishable from a block.
type Record struct {
	Type     string   `json:"type,omitempty" yaml:"type,omitempty"`
	Children []Record `json:"children,omitempty" yaml:"children,omitempty"`
	Text     *string  `json:"text,omitempty" yaml:"text,omitempty"`
	Marks    []string `json:"marks,omitempty" yaml:"marks,omitempty"`
}

// ToRecord converts a node to its record form.
func ToRecord(n Node) Record {
	if n.kind == KindText {
		text := n.text
		rec := Record{Text: &text}
		if !n.marks.IsEmpty() {
			rec.Marks = make([]string, 0, n.marks.Len())
			for _, m := range n.marks.marks {
				rec.Marks = append(rec.Marks, string(m))
			}
		}
		return rec
	}
	rec := Record{Type: n.typ}
	if len(n.children) > 0 {
		rec.Children = make([]Record, len(n.children))
		for i, c := range n.children {
			rec.Children[i] = ToRecord(c)
		}
	}
	return rec
}

// FromRecord converts a record to a node.
func FromRecord(rec Record) (Node, error) {
	if rec.Text != nil {
		if rec.Type != "" || len(rec.Children) > 0 {
			return Node{}, fmt.Errorf("%w: record has both text and block fields", ErrDecode)
		}
		marks := make([]Mark, len(rec.Marks))
		for i, m := range rec.Marks {
			marks[i] = Mark(m)
		}
		return NewText(*rec.Text, marks...), nil
	}
	if rec.Type == "" {
		return Node{}, fmt.Errorf("%w: record has neither text nor type", ErrDecode)
	}
	children := make([]Node, len(rec.Children))
	for i, c := range rec.Children {
		n, err := FromRecord(c)
		if err != nil {
			return Node{}, err
		}
		children[i] = n
	}
	return NewBlock(rec.Type, children...), nil
}

// ToRecords converts a document to its record form.
func ToRecords(doc Document) []Record {
	out := make([]Record, len(doc.blocks))
	for i, b := range doc.blocks {
		out[i] = ToRecord(b)
	}
	return out
}

// FromRecords builds a validated document from records.
func FromRecords(recs []Record) (Document, error) {
	blocks := make([]Node, len(recs))
	for i, r := range recs {
		n, err := FromRecord(r)
		if err != nil {
			return Document{}, err
		}
		blocks[i] = n
	}
	doc := New(blocks...)
	if err := Validate(doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// MarshalJSON encodes the document as an array of records.
func (d Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToRecords(d))
}

// UnmarshalJSON decodes an array of records.
func (d *Document) UnmarshalJSON(data []byte) error {
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	doc, err := FromRecords(recs)
	if err != nil {
		return err
	}
	*d = doc
	return nil
}

// MarshalYAML encodes the document as a sequence of records.
func (d Document) MarshalYAML() (any, error) {
	return ToRecords(d), nil
}

// UnmarshalYAML decodes a sequence of records.
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	var recs []Record
	if err := value.Decode(&recs); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	doc, err := FromRecords(recs)
	if err != nil {
		return err
	}
	*d = doc
	return nil
}

// DecodeJSON reads a record-form document from r.
func DecodeJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, decodeErr(err)
	}
	return doc, nil
}

// EncodeJSON writes doc in record form to w.
func EncodeJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// DecodeYAML reads a record-form document from r.
func DecodeYAML(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, decodeErr(err)
	}
	return doc, nil
}

// EncodeYAML writes doc in record form to w.
func EncodeYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// decodeErr makes every decode failure match ErrDecode or ErrMalformed.
func decodeErr(err error) error {
	if errors.Is(err, ErrDecode) || errors.Is(err, ErrMalformed) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrDecode, err)
}
