package document

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	doc := sampleDoc()

	var buf bytes.Buffer
	if err := EncodeJSON(&buf, doc); err != nil {
		t.Fatalf("EncodeJSON() error: %v", err)
	}
	got, err := DecodeJSON(&buf)
	if err != nil {
		t.Fatalf("DecodeJSON() error: %v", err)
	}
	if !got.Equal(doc) {
		t.Errorf("round trip mismatch:\n got %s\nwant %s", got, doc)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	doc := New(
		NewBlock(TypeParagraph, NewText(""), NewText("b", MarkBold, MarkItalic)),
		NewBlock(TypeCode),
	)

	var buf bytes.Buffer
	if err := EncodeYAML(&buf, doc); err != nil {
		t.Fatalf("EncodeYAML() error: %v", err)
	}
	got, err := DecodeYAML(&buf)
	if err != nil {
		t.Fatalf("DecodeYAML() error: %v", err)
	}
	if !got.Equal(doc) {
		t.Errorf("round trip mismatch:\n got %s\nwant %s", got, doc)
	}
}

func TestDecodeJSONSeed(t *testing.T) {
	seed := `[{"type":"paragraph","children":[{"text":"A line of text in a paragraph."}]}]`
	doc, err := DecodeJSON(strings.NewReader(seed))
	if err != nil {
		t.Fatalf("DecodeJSON() error: %v", err)
	}
	want := New(NewBlock(TypeParagraph, NewText("A line of text in a paragraph.")))
	if !doc.Equal(want) {
		t.Errorf("decoded %s, want %s", doc, want)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"syntax", `[{`, ErrDecode},
		{"neither text nor type", `[{}]`, ErrDecode},
		{"both text and type", `[{"type":"p","text":"x"}]`, ErrDecode},
		{"text at top level", `[{"text":"x"}]`, ErrMalformed},
		{"nested block in code", `[{"type":"code","children":[{"type":"paragraph"}]}]`, ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("DecodeJSON() error = %v, want %v", err, tt.want)
			}
		})
	}
}
