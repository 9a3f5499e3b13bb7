package document

import (
	"errors"
	"testing"
)

const legacySeed = `{
  "document": {
    "nodes": [
      {
        "object": "block",
        "type": "paragraph",
        "nodes": [
          {"object": "text", "text": "A line of text in a paragraph."}
        ]
      }
    ]
  }
}`

func TestDecodeLegacy(t *testing.T) {
	doc, err := DecodeLegacy([]byte(legacySeed))
	if err != nil {
		t.Fatalf("DecodeLegacy() error: %v", err)
	}
	want := New(NewBlock(TypeParagraph, NewText("A line of text in a paragraph.")))
	if !doc.Equal(want) {
		t.Errorf("decoded %s, want %s", doc, want)
	}
}

func TestDecodeLegacyLeaves(t *testing.T) {
	input := `{"document":{"nodes":[{"object":"block","type":"paragraph","nodes":[
		{"object":"text","leaves":[
			{"text":"plain "},
			{"text":"bold","marks":[{"type":"bold"}]},
			{"text":"!","marks":["italic"]}
		]}
	]}]}}`
	doc, err := DecodeLegacy([]byte(input))
	if err != nil {
		t.Fatalf("DecodeLegacy() error: %v", err)
	}
	want := New(NewBlock(TypeParagraph,
		NewText("plain "),
		NewText("bold", MarkBold),
		NewText("!", MarkItalic),
	))
	if !doc.Equal(want) {
		t.Errorf("decoded %s, want %s", doc, want)
	}
}

func TestLegacyRoundTrip(t *testing.T) {
	doc := sampleDoc()
	data, err := EncodeLegacy(doc)
	if err != nil {
		t.Fatalf("EncodeLegacy() error: %v", err)
	}
	got, err := DecodeLegacy(data)
	if err != nil {
		t.Fatalf("DecodeLegacy() error: %v", err)
	}
	if !got.Equal(doc) {
		t.Errorf("round trip mismatch:\n got %s\nwant %s", got, doc)
	}
}

func TestDecodeLegacyErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid json", `{"document":`},
		{"no nodes", `{"document":{}}`},
		{"unknown object", `{"document":{"nodes":[{"object":"inline","type":"link"}]}}`},
		{"untyped block", `{"document":{"nodes":[{"object":"block"}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeLegacy([]byte(tt.input)); !errors.Is(err, ErrDecode) {
				t.Errorf("expected ErrDecode, got %v", err)
			}
		})
	}
}
